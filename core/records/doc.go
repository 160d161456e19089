// Package records reads and writes the flat record collections of the ledger
// and appends reconciliation messages to a log location.
//
// # Locations
//
// A location is one of:
//   - a plain path or file://path: a local file
//   - s3://bucket/object: an object in the configured S3/MinIO storage
//   - db://table: a table in the configured SQL database
//
// Files and objects are encoded by extension: .json (the default) or .yaml/.yml.
// JSON output is indented with four spaces.
//
// # Store
//
// Store resolves locations against its backends. Backends are optional; using a
// location whose backend was not provided fails with ErrBackendUnavailable.
//
//	store := records.NewStore(storageClient, cfg.Storage.Bucket, db)
//	debts, err := store.LoadDebts(ctx, loc)
//
// # Log sinks
//
// OpenLog returns a LogSink that receives reconcile.Event values. File sinks
// append each message as it arrives and object sinks upload the accumulated log
// on Close. Database sinks insert one row per event with its kind. Write never
// fails; the first error is kept and returned by Err and Close.
package records
