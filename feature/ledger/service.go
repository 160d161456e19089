package ledger

import (
	"context"
	"fmt"

	"github.com/MoraStok/apareo-con-actualizaciones/core/logger"
	"github.com/MoraStok/apareo-con-actualizaciones/core/reconcile"
	"github.com/MoraStok/apareo-con-actualizaciones/core/records"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Report describes a finished run.
type Report struct {
	// RunID identifies the run in operational logs and database log rows.
	RunID string `json:"run_id"`

	// Result is the reconciliation output that was saved.
	Result *reconcile.Result `json:"result"`
}

// Service handles ledger update runs.
type Service struct {
	store  *records.Store
	logger *zap.Logger
}

// NewService creates a new ledger service.
func NewService(store *records.Store, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Run loads, orders and reconciles the ledger, appends anomalies to the log
// location and saves the updated debts.
// Nothing is written when an input cannot be loaded.
func (s *Service) Run(ctx context.Context, locs Locations) (*Report, error) {
	runID := uuid.NewString()
	l := logger.WithRunID(s.logger, runID)

	debts, err := s.store.LoadDebts(ctx, locs.DebtsIn)
	if err != nil {
		return nil, fmt.Errorf("failed to load debts from %s: %w", locs.DebtsIn, err)
	}
	l.Debug("Loaded debts", zap.Stringer("location", locs.DebtsIn), zap.Int("count", len(debts)))

	payments, err := s.store.LoadPayments(ctx, locs.PaymentsIn)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments from %s: %w", locs.PaymentsIn, err)
	}
	l.Debug("Loaded payments", zap.Stringer("location", locs.PaymentsIn), zap.Int("count", len(payments)))

	if err := reconcile.Sort(debts, reconcile.FieldID); err != nil {
		return nil, fmt.Errorf("failed to sort debts: %w", err)
	}
	if err := reconcile.Sort(payments, reconcile.FieldID, reconcile.FieldDate); err != nil {
		return nil, fmt.Errorf("failed to sort payments: %w", err)
	}

	sink, err := s.store.OpenLog(ctx, locs.LogOut, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to open log %s: %w", locs.LogOut, err)
	}

	result := reconcile.ReconcileEvents(debts, payments, func(ev reconcile.Event) {
		sink.Write(ctx, ev)
	})

	if err := s.store.SaveDebts(ctx, locs.DebtsOut, result.Debts); err != nil {
		_ = sink.Close(ctx)
		return nil, fmt.Errorf("failed to save debts to %s: %w", locs.DebtsOut, err)
	}
	l.Debug("Saved debts", zap.Stringer("location", locs.DebtsOut), zap.Int("count", len(result.Debts)))

	if err := sink.Close(ctx); err != nil {
		return nil, fmt.Errorf("failed to write log %s: %w", locs.LogOut, err)
	}

	return &Report{RunID: runID, Result: result}, nil
}
