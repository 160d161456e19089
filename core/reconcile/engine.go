package reconcile

import (
	"cmp"
	"slices"
)

// step is the action taken by one iteration of the merge.
type step int

const (
	stepDone         step = iota // both cursors exhausted
	stepDebtsOnly                // payments exhausted, a debt remains
	stepPaymentsOnly             // debts exhausted, a payment remains
	stepOrphan                   // payment id below the current debt id
	stepCloseDebt                // debt id below the current payment id
	stepApply                    // ids match
)

// classify decides the next merge step from the cursor positions.
func classify(debts []Debt, payments []Payment, j, i int) step {
	paymentsLeft := i < len(payments)
	debtsLeft := j < len(debts)

	switch {
	case !paymentsLeft && !debtsLeft:
		return stepDone
	case !paymentsLeft:
		return stepDebtsOnly
	case !debtsLeft:
		return stepPaymentsOnly
	}

	switch cmp.Compare(payments[i].ID, debts[j].ID) {
	case -1:
		return stepOrphan
	case 1:
		return stepCloseDebt
	default:
		return stepApply
	}
}

// Reconcile applies payments to debts and reports every anomaly to sink.
//
// debts must be ordered by id and payments by id then date (see Sort).
// The input slices are not modified; the returned result holds updated copies
// of every debt in input order. A nil sink discards the messages.
func Reconcile(debts []Debt, payments []Payment, sink Sink) *Result {
	if sink == nil {
		return ReconcileEvents(debts, payments, nil)
	}
	return ReconcileEvents(debts, payments, func(ev Event) { sink(ev.Message) })
}

// ReconcileEvents is Reconcile with the event kind passed along each message.
func ReconcileEvents(debts []Debt, payments []Payment, sink EventSink) *Result {
	if sink == nil {
		sink = func(Event) {}
	}

	ledger := slices.Clone(debts)
	result := &Result{
		Debts: make([]Debt, 0, len(ledger)),
		Summary: Summary{
			Payments: len(payments),
		},
	}

	// j is the debts cursor, i the payments cursor.
	j, i := 0, 0
	for {
		switch classify(ledger, payments, j, i) {
		case stepDone:
			result.Summary.Debts = len(result.Debts)
			return result

		case stepDebtsOnly, stepCloseDebt:
			result.closeDebt(ledger[j], sink)
			j++

		case stepPaymentsOnly, stepOrphan:
			result.Summary.Orphans++
			sink(Event{Kind: EventOrphanPayment, Message: OrphanPaymentMessage(payments[i])})
			i++

		case stepApply:
			// The debt stays current so later payments with the same id accumulate on it.
			debt := &ledger[j]
			payment := payments[i]
			if payment.Surname == debt.Surname {
				debt.Owed = debt.Owed.Sub(payment.Amount)
				result.Summary.Applied++
			} else {
				result.Summary.Mismatches++
				sink(Event{Kind: EventMismatch, Message: MismatchMessage(*debt, payment)})
			}
			i++
		}
	}
}

// UpdateDebts is Reconcile without the summary.
func UpdateDebts(debts []Debt, payments []Payment, sink Sink) []Debt {
	return Reconcile(debts, payments, sink).Debts
}

// closeDebt emits a debt the debts cursor is moving past.
func (r *Result) closeDebt(debt Debt, sink EventSink) {
	if debt.Owed.IsNegative() {
		r.Summary.Credits++
		sink(Event{Kind: EventOverpaymentCredit, Message: CreditMessage(debt)})
	}
	r.Debts = append(r.Debts, debt)
}
