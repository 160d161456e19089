package records

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MoraStok/apareo-con-actualizaciones/core/reconcile"
	"github.com/MoraStok/apareo-con-actualizaciones/core/storage"

	"gorm.io/gorm"
)

// Store loads and saves ledger collections at file, object storage and database locations.
type Store struct {
	client storage.Client
	bucket string
	db     *gorm.DB
}

// NewStore creates a new record store.
// client and db may be nil when no s3:// or db:// location is used.
// bucket is the default for s3:// locations without a bucket.
func NewStore(client storage.Client, bucket string, db *gorm.DB) *Store {
	return &Store{
		client: client,
		bucket: bucket,
		db:     db,
	}
}

// LoadDebts reads the debts collection at loc.
func (s *Store) LoadDebts(ctx context.Context, loc Location) ([]reconcile.Debt, error) {
	if loc.Scheme == SchemeDB {
		if s.db == nil {
			return nil, fmt.Errorf("%w: database for %s", ErrBackendUnavailable, loc)
		}
		return loadDebtRows(ctx, s.db, loc.Path)
	}
	return load[reconcile.Debt](ctx, s, loc)
}

// LoadPayments reads the payments collection at loc.
func (s *Store) LoadPayments(ctx context.Context, loc Location) ([]reconcile.Payment, error) {
	if loc.Scheme == SchemeDB {
		if s.db == nil {
			return nil, fmt.Errorf("%w: database for %s", ErrBackendUnavailable, loc)
		}
		return loadPaymentRows(ctx, s.db, loc.Path)
	}
	return load[reconcile.Payment](ctx, s, loc)
}

// SaveDebts replaces the debts collection at loc.
func (s *Store) SaveDebts(ctx context.Context, loc Location, debts []reconcile.Debt) error {
	if loc.Scheme == SchemeDB {
		if s.db == nil {
			return fmt.Errorf("%w: database for %s", ErrBackendUnavailable, loc)
		}
		return saveDebtRows(ctx, s.db, loc.Path, debts)
	}
	return save(ctx, s, loc, debts)
}

func load[T any](ctx context.Context, s *Store, loc Location) ([]T, error) {
	format, err := loc.Format()
	if err != nil {
		return nil, err
	}

	data, err := s.readBytes(ctx, loc)
	if err != nil {
		return nil, err
	}

	records, err := Decode[T](format, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", loc, err)
	}
	return records, nil
}

func save[T any](ctx context.Context, s *Store, loc Location, records []T) error {
	format, err := loc.Format()
	if err != nil {
		return err
	}

	data, err := Encode(format, records)
	if err != nil {
		return fmt.Errorf("%s: %w", loc, err)
	}

	return s.writeBytes(ctx, loc, data, format.ContentType())
}

func (s *Store) readBytes(ctx context.Context, loc Location) ([]byte, error) {
	switch loc.Scheme {
	case SchemeFile:
		data, err := os.ReadFile(loc.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", loc.Path, err)
		}
		return data, nil
	case SchemeS3:
		if s.client == nil {
			return nil, fmt.Errorf("%w: object storage for %s", ErrBackendUnavailable, loc)
		}
		return storage.ReadObject(ctx, s.client, s.bucketFor(loc), loc.Path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, loc.Scheme)
	}
}

func (s *Store) writeBytes(ctx context.Context, loc Location, data []byte, contentType string) error {
	switch loc.Scheme {
	case SchemeFile:
		if dir := filepath.Dir(loc.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(loc.Path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", loc.Path, err)
		}
		return nil
	case SchemeS3:
		if s.client == nil {
			return fmt.Errorf("%w: object storage for %s", ErrBackendUnavailable, loc)
		}
		return storage.WriteObject(ctx, s.client, s.bucketFor(loc), loc.Path, data, contentType)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedScheme, loc.Scheme)
	}
}

func (s *Store) bucketFor(loc Location) string {
	if loc.Bucket != "" {
		return loc.Bucket
	}
	return s.bucket
}
