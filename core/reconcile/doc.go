// Package reconcile implements the debt ledger update: ordering of record
// collections and the merge-join that applies payments to debts.
//
// The package is free of I/O. Callers load both collections, order them with
// Sort and hand them to Reconcile together with a Sink that receives one
// formatted message per anomaly.
//
// # Ordering
//
// Debts are ordered by [FieldID]; payments by [FieldID] then [FieldDate]:
//
//	if err := reconcile.Sort(debts, reconcile.FieldID); err != nil {
//	    return err
//	}
//	if err := reconcile.Sort(payments, reconcile.FieldID, reconcile.FieldDate); err != nil {
//	    return err
//	}
//
// # Merge
//
// Reconcile walks both collections once with a cursor on each side. A payment
// whose id matches the current debt and carries the same surname is subtracted
// from the debt's balance. Anything else is reported to the sink:
//   - orphan payment: no debt exists for the payment's id
//   - overpayment credit: a debt was left with a negative balance
//   - mismatch: the payment's surname differs from the debt's; the debt is kept unchanged
//
// Every input debt appears exactly once in the result, in input order.
//
//	result := reconcile.Reconcile(debts, payments, func(msg string) {
//	    fmt.Print(msg)
//	})
//	fmt.Println(result.Summary.Orphans)
package reconcile
