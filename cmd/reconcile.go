package cmd

import (
	"fmt"

	"github.com/MoraStok/apareo-con-actualizaciones/core/config"
	"github.com/MoraStok/apareo-con-actualizaciones/core/database"
	"github.com/MoraStok/apareo-con-actualizaciones/core/logger"
	"github.com/MoraStok/apareo-con-actualizaciones/core/reconcile"
	"github.com/MoraStok/apareo-con-actualizaciones/core/records"
	"github.com/MoraStok/apareo-con-actualizaciones/core/storage"
	"github.com/MoraStok/apareo-con-actualizaciones/feature/ledger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// reconcileCmd updates a debts ledger with a batch of payments.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile <debts-in> <payments-in> <debts-out> <log-out>",
	Short: "Apply payments to debts and log anomalies",
	Long: `Reconcile merges the debts and payments collections by identifier,
applies every payment whose surname matches its debt and writes the updated debts.

Payments without a debt, surname mismatches and debts left in credit are
appended to the log location.

Locations may be local files (.json, .yaml), s3://bucket/object or db://table.

Examples:
  # Local JSON files
  apareo reconcile debts.json payments.json debts_new.json reconcile.log

  # Ledger in object storage, log in the database
  apareo reconcile s3://ledgers/debts.json payments.yaml s3://ledgers/debts.json db://reconcile_log`,
	Args: cobra.ExactArgs(4),
	RunE: runReconcile,
}

func init() {
	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	locs, err := ledger.ParseLocations(args[0], args[1], args[2], args[3])
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = l.Sync() }()

	// Backends are only dialed when a location needs them.
	var client storage.Client
	if locs.Uses(records.SchemeS3) {
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
	}

	var db *gorm.DB
	if locs.Uses(records.SchemeDB) {
		db, err = database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
	}

	l.Info("Starting reconciliation",
		zap.Stringer("debts", locs.DebtsIn),
		zap.Stringer("payments", locs.PaymentsIn),
	)

	svc := ledger.NewService(records.NewStore(client, cfg.Storage.Bucket, db), l)
	report, err := svc.Run(ctx, locs)
	if err != nil {
		return err
	}

	printReconcileReport(l, report, locs)
	return nil
}

// printReconcileReport prints the run summary using logger.
func printReconcileReport(l *zap.Logger, report *ledger.Report, locs ledger.Locations) {
	s := report.Result.Summary

	l.Info("Reconciliation report",
		zap.String("run_id", report.RunID),
		zap.Int("debts", s.Debts),
		zap.Int("payments", s.Payments),
		zap.Int("applied", s.Applied),
		zap.Int("orphan_payments", s.Orphans),
		zap.Int("credits", s.Credits),
		zap.Int("mismatches", s.Mismatches),
	)

	for _, kind := range []reconcile.EventKind{
		reconcile.EventOrphanPayment,
		reconcile.EventOverpaymentCredit,
		reconcile.EventMismatch,
	} {
		if n := s.Count(kind); n > 0 {
			l.Info("Anomalies logged",
				zap.String("kind", string(kind)),
				zap.Int("count", n),
				zap.Stringer("log", locs.LogOut),
			)
		}
	}
	l.Info("Updated debts written", zap.Stringer("location", locs.DebtsOut))
}
