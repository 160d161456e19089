// Package ledger runs one debt ledger update end to end.
//
// A run loads the debts and payments collections, orders them, applies the
// payments through the reconcile engine while appending every anomaly message
// to the log location, and saves the updated debts.
//
// # Locations
//
// The four locations of a run (debts in, payments in, debts out, log out) may
// each be a local file, an s3:// object or a db:// table; see package records.
//
// # Usage
//
//	locs, err := ledger.ParseLocations("debts.json", "payments.json", "debts_new.json", "reconcile.log")
//	svc := ledger.NewService(records.NewStore(nil, "", nil), logger)
//	report, err := svc.Run(ctx, locs)
package ledger
