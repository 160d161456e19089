// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to configure
// MySQL or SQLite connections based on the application's configuration. The
// connection backs db:// record locations.
//
// # Connect
//
// Connect picks the dialector from Config.Driver and verifies the connection
// with a ping. Open does the same for a caller-provided dialector, which is how
// tests plug in go-sqlmock.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns check that an existing ledger table has the
// columns the record store needs before any row is read.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "debts", "id", "surname", "owed")
package database
