package reconcile

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Field names accepted by Sort. They match the serialized record keys.
const (
	FieldID      = "id"
	FieldSurname = "surname"
	FieldOwed    = "owed"
	FieldDate    = "date"
	FieldAmount  = "amount"
)

// Record is a flat record whose values can be looked up by field name.
type Record interface {
	// Field returns the value stored under name, or false if the record has no such field.
	Field(name string) (any, bool)
}

// Debt is the outstanding balance of one person.
// A positive Owed is money owed; a negative Owed is credit in the person's favor.
type Debt struct {
	// ID identifies the person. It is unique within a debts collection.
	ID int64 `json:"id"`

	// Surname is the person's surname as recorded in the ledger.
	Surname string `json:"surname"`

	// Owed is the remaining balance.
	Owed decimal.Decimal `json:"owed"`
}

// Field implements Record.
func (d Debt) Field(name string) (any, bool) {
	switch name {
	case FieldID:
		return d.ID, true
	case FieldSurname:
		return d.Surname, true
	case FieldOwed:
		return d.Owed, true
	default:
		return nil, false
	}
}

// String renders the debt as a single-line dump used in log messages.
func (d Debt) String() string {
	return fmt.Sprintf("{ id: %d, surname: '%s', owed: %s }", d.ID, d.Surname, d.Owed.String())
}

// Payment is money applied against a person's debt on a given date.
// Several payments may share an ID.
type Payment struct {
	// ID identifies the person the payment belongs to.
	ID int64 `json:"id"`

	// Date is the day the payment was made.
	Date Date `json:"date"`

	// Surname is the payer's surname; it must match the debt's to be applied.
	Surname string `json:"surname"`

	// Amount is the paid amount.
	Amount decimal.Decimal `json:"amount"`
}

// Field implements Record.
func (p Payment) Field(name string) (any, bool) {
	switch name {
	case FieldID:
		return p.ID, true
	case FieldDate:
		return p.Date.Time(), true
	case FieldSurname:
		return p.Surname, true
	case FieldAmount:
		return p.Amount, true
	default:
		return nil, false
	}
}

// String renders the payment as a single-line dump used in log messages.
func (p Payment) String() string {
	return fmt.Sprintf("{ id: %d, date: '%s', surname: '%s', amount: %s }", p.ID, p.Date, p.Surname, p.Amount.String())
}

// Sink receives one formatted message per reconciliation event.
// It is called synchronously, in the order the events occur.
type Sink func(msg string)

// EventKind identifies the kind of anomaly reported during reconciliation.
type EventKind string

const (
	// EventOrphanPayment reports a payment whose id matches no debt.
	EventOrphanPayment EventKind = "orphan_payment"
	// EventOverpaymentCredit reports a debt left with a negative balance.
	EventOverpaymentCredit EventKind = "overpayment_credit"
	// EventMismatch reports a payment whose surname differs from its debt's.
	EventMismatch EventKind = "mismatch"
)

// Event is one anomaly reported during reconciliation.
type Event struct {
	// Kind classifies the anomaly.
	Kind EventKind `json:"kind"`

	// Message is the formatted log block.
	Message string `json:"message"`
}

// EventSink receives every event with its kind, in the order the events occur.
type EventSink func(ev Event)

// Summary provides aggregate counts for one reconciliation pass.
type Summary struct {
	// Debts is the number of debts emitted into the result.
	Debts int `json:"debts"`

	// Payments is the number of payments processed.
	Payments int `json:"payments"`

	// Applied counts payments subtracted from a debt.
	Applied int `json:"applied"`

	// Orphans counts payments without a matching debt.
	Orphans int `json:"orphans"`

	// Credits counts debts left with a negative balance.
	Credits int `json:"credits"`

	// Mismatches counts payments rejected because of a surname mismatch.
	Mismatches int `json:"mismatches"`
}

// Count returns the counter for the given event kind.
func (s Summary) Count(kind EventKind) int {
	switch kind {
	case EventOrphanPayment:
		return s.Orphans
	case EventOverpaymentCredit:
		return s.Credits
	case EventMismatch:
		return s.Mismatches
	default:
		return 0
	}
}

// Result is the output of Reconcile.
type Result struct {
	// Debts is the updated ledger, one entry per input debt, in input order.
	Debts []Debt `json:"debts"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}
