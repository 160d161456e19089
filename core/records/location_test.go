package records_test

import (
	"testing"

	"github.com/MoraStok/apareo-con-actualizaciones/core/records"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocation(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    records.Location
		wantErr error
	}{
		{"PlainPath", "data/debts.json", records.Location{Scheme: records.SchemeFile, Path: "data/debts.json"}, nil},
		{"FileScheme", "file:///tmp/debts.yaml", records.Location{Scheme: records.SchemeFile, Path: "/tmp/debts.yaml"}, nil},
		{"S3", "s3://ledgers/2024/debts.json", records.Location{Scheme: records.SchemeS3, Bucket: "ledgers", Path: "2024/debts.json"}, nil},
		{"S3DefaultBucket", "s3:///debts.json", records.Location{Scheme: records.SchemeS3, Path: "debts.json"}, nil},
		{"DB", "db://debts", records.Location{Scheme: records.SchemeDB, Path: "debts"}, nil},
		{"DBUppercaseScheme", "DB://payments_2024", records.Location{Scheme: records.SchemeDB, Path: "payments_2024"}, nil},
		{"UnknownScheme", "ftp://host/debts.json", records.Location{}, records.ErrUnsupportedScheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := records.ParseLocation(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLocation_Invalid(t *testing.T) {
	for _, raw := range []string{"", "file://", "s3://ledgers", "s3://ledgers/", "db://", "db://debts;drop", "db://1debts"} {
		t.Run(raw, func(t *testing.T) {
			_, err := records.ParseLocation(raw)
			assert.Error(t, err)
		})
	}
}

func TestLocation_String(t *testing.T) {
	for _, raw := range []string{"debts.json", "s3://ledgers/debts.json", "db://debts"} {
		assert.Equal(t, raw, records.MustParseLocation(raw).String())
	}
}

func TestLocation_Format(t *testing.T) {
	tests := []struct {
		raw     string
		want    records.Format
		wantErr bool
	}{
		{"debts.json", records.FormatJSON, false},
		{"debts", records.FormatJSON, false},
		{"debts.YAML", records.FormatYAML, false},
		{"s3://ledgers/payments.yml", records.FormatYAML, false},
		{"debts.csv", "", true},
		{"db://debts", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := records.MustParseLocation(tt.raw).Format()
			if tt.wantErr {
				assert.ErrorIs(t, err, records.ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
