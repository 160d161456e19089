package reconcile

import (
	"fmt"
	"strings"
)

// separator closes every log message block.
var separator = strings.Repeat("=", 33)

// OrphanPaymentMessage builds the message for a payment that matches no debt.
func OrphanPaymentMessage(p Payment) string {
	return fmt.Sprintf("\nthe following payment does not correspond to any debt:\n%s\n\n%s\n", p, separator)
}

// CreditMessage builds the message for a debt left with a negative balance.
// The credit is reported as a positive amount.
func CreditMessage(d Debt) string {
	return fmt.Sprintf("\nidentifier: %d holds $%s in credit\n\n%s\n", d.ID, d.Owed.Abs().String(), separator)
}

// MismatchMessage builds the message for a payment whose surname does not match its debt.
func MismatchMessage(d Debt, p Payment) string {
	return fmt.Sprintf("\nerror updating this debt:\n%s\nwith this payment:\n%s\n\noriginal record unchanged\n\n%s\n", d, p, separator)
}
