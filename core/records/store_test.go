package records_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/MoraStok/apareo-con-actualizaciones/core/reconcile"
	"github.com/MoraStok/apareo-con-actualizaciones/core/records"
	"github.com/MoraStok/apareo-con-actualizaciones/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStore_FileRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := records.NewStore(nil, "", nil)

	debts := []reconcile.Debt{
		{ID: 1, Surname: "Lee", Owed: decimal.NewFromInt(60)},
		{ID: 3, Surname: "Ann", Owed: decimal.NewFromInt(-20)},
	}

	for _, name := range []string{"out/debts.json", "out/debts.yaml"} {
		t.Run(name, func(t *testing.T) {
			loc := records.MustParseLocation(filepath.Join(dir, name))

			require.NoError(t, store.SaveDebts(ctx, loc, debts))

			got, err := store.LoadDebts(ctx, loc)
			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, "Ann", got[1].Surname)
			assert.True(t, got[1].Owed.Equal(decimal.NewFromInt(-20)))
		})
	}
}

func TestStore_LoadPaymentsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payments.json")
	content := `[{"id": 1, "date": "2024-01-01", "surname": "Lee", "amount": 40}]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	payments, err := records.NewStore(nil, "", nil).LoadPayments(context.Background(), records.MustParseLocation(path))
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "Lee", payments[0].Surname)
}

func TestStore_MissingFile(t *testing.T) {
	store := records.NewStore(nil, "", nil)
	loc := records.MustParseLocation(filepath.Join(t.TempDir(), "absent.json"))

	_, err := store.LoadDebts(context.Background(), loc)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStore_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debts.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not": "a list"}`), 0o600))

	_, err := records.NewStore(nil, "", nil).LoadDebts(context.Background(), records.MustParseLocation(path))
	assert.ErrorContains(t, err, path)
}

func TestStore_BackendUnavailable(t *testing.T) {
	ctx := context.Background()
	store := records.NewStore(nil, "", nil)

	_, err := store.LoadDebts(ctx, records.MustParseLocation("s3://ledgers/debts.json"))
	assert.ErrorIs(t, err, records.ErrBackendUnavailable)

	_, err = store.LoadPayments(ctx, records.MustParseLocation("db://payments"))
	assert.ErrorIs(t, err, records.ErrBackendUnavailable)

	err = store.SaveDebts(ctx, records.MustParseLocation("db://debts"), nil)
	assert.ErrorIs(t, err, records.ErrBackendUnavailable)

	_, err = store.OpenLog(ctx, records.MustParseLocation("s3://ledgers/log.txt"), "")
	assert.ErrorIs(t, err, records.ErrBackendUnavailable)
}

func TestStore_ObjectStorage(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)
	store := records.NewStore(client, "default-bucket", nil)

	client.On("GetObject", mock.Anything, "ledgers", "in/debts.json", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(`[{"id": 2, "surname": "Kim", "owed": 50}]`))), nil)

	debts, err := store.LoadDebts(ctx, records.MustParseLocation("s3://ledgers/in/debts.json"))
	require.NoError(t, err)
	require.Len(t, debts, 1)
	assert.Equal(t, int64(2), debts[0].ID)

	// Writes without a bucket go to the store's default bucket.
	var uploaded []byte
	client.On("BucketExists", mock.Anything, "default-bucket").Return(true, nil)
	client.On("PutObject", mock.Anything, "default-bucket", "out/debts.json", mock.Anything, mock.Anything, mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
		return opts.ContentType == "application/json"
	})).Run(func(args mock.Arguments) {
		uploaded, _ = io.ReadAll(args.Get(3).(io.Reader))
	}).Return(minio.UploadInfo{}, nil)

	require.NoError(t, store.SaveDebts(ctx, records.MustParseLocation("s3:///out/debts.json"), debts))
	assert.Contains(t, string(uploaded), `"surname": "Kim"`)
	client.AssertExpectations(t)
}
