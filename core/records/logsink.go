package records

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MoraStok/apareo-con-actualizaciones/core/reconcile"
	"github.com/MoraStok/apareo-con-actualizaciones/core/storage"

	"gorm.io/gorm"
)

// LogSink receives reconciliation events for one run.
type LogSink interface {
	// Write appends one event. Errors are kept and reported by Err and Close.
	Write(ctx context.Context, ev reconcile.Event)
	// Err returns the first write error, if any.
	Err() error
	// Close flushes pending output and releases the sink.
	Close(ctx context.Context) error
}

// OpenLog opens the log location for appending.
// runID tags database rows; it is ignored by other backends.
// Files and objects receive the message text only; tables also record the event kind.
func (s *Store) OpenLog(ctx context.Context, loc Location, runID string) (LogSink, error) {
	switch loc.Scheme {
	case SchemeFile:
		return openFileLog(loc.Path)
	case SchemeS3:
		if s.client == nil {
			return nil, fmt.Errorf("%w: object storage for %s", ErrBackendUnavailable, loc)
		}
		return openObjectLog(ctx, s.client, s.bucketFor(loc), loc.Path)
	case SchemeDB:
		if s.db == nil {
			return nil, fmt.Errorf("%w: database for %s", ErrBackendUnavailable, loc)
		}
		return openTableLog(ctx, s.db, loc.Path, runID)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, loc.Scheme)
	}
}

// latch keeps the first error reported by a sink.
// Sinks are used from the goroutine running the reconciliation only.
type latch struct {
	err error
}

func (l *latch) set(err error) {
	if l.err == nil {
		l.err = err
	}
}

func (l *latch) Err() error {
	return l.err
}

// fileLog appends every message to a local file as it arrives.
type fileLog struct {
	latch
	f *os.File
}

func openFileLog(path string) (*fileLog, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log %s: %w", path, err)
	}
	return &fileLog{f: f}, nil
}

func (l *fileLog) Write(_ context.Context, ev reconcile.Event) {
	if l.Err() != nil {
		return
	}
	if _, err := l.f.WriteString(ev.Message); err != nil {
		l.set(fmt.Errorf("failed to append to log %s: %w", l.f.Name(), err))
	}
}

func (l *fileLog) Close(context.Context) error {
	if err := l.f.Close(); err != nil {
		l.set(fmt.Errorf("failed to close log %s: %w", l.f.Name(), err))
	}
	return l.Err()
}

// objectLog buffers messages after the existing object content and uploads on Close.
type objectLog struct {
	latch
	client storage.Client
	bucket string
	name   string
	buf    bytes.Buffer
}

func openObjectLog(ctx context.Context, client storage.Client, bucket, name string) (*objectLog, error) {
	l := &objectLog{client: client, bucket: bucket, name: name}

	exists, err := storage.ObjectExists(ctx, client, bucket, name)
	if err != nil {
		return nil, err
	}
	if exists {
		previous, err := storage.ReadObject(ctx, client, bucket, name)
		if err != nil {
			return nil, err
		}
		l.buf.Write(previous)
	}
	return l, nil
}

func (l *objectLog) Write(_ context.Context, ev reconcile.Event) {
	l.buf.WriteString(ev.Message)
}

func (l *objectLog) Close(ctx context.Context) error {
	if err := storage.WriteObject(ctx, l.client, l.bucket, l.name, l.buf.Bytes(), "text/plain; charset=utf-8"); err != nil {
		l.set(err)
	}
	return l.Err()
}

// tableLog inserts one row per message.
type tableLog struct {
	latch
	db    *gorm.DB
	table string
	runID string
	seq   int
}

func openTableLog(ctx context.Context, db *gorm.DB, table, runID string) (*tableLog, error) {
	if err := db.WithContext(ctx).Table(table).AutoMigrate(&logRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate log table %s: %w", table, err)
	}
	return &tableLog{db: db, table: table, runID: runID}, nil
}

func (l *tableLog) Write(ctx context.Context, ev reconcile.Event) {
	if l.Err() != nil {
		return
	}
	l.seq++
	row := logRow{
		RunID:     l.runID,
		Seq:       l.seq,
		Kind:      string(ev.Kind),
		Message:   ev.Message,
		CreatedAt: time.Now().UTC(),
	}
	if err := l.db.WithContext(ctx).Table(l.table).Create(&row).Error; err != nil {
		l.set(fmt.Errorf("failed to insert into log table %s: %w", l.table, err))
	}
}

func (l *tableLog) Close(context.Context) error {
	return l.Err()
}
