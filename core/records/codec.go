package records

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/MoraStok/apareo-con-actualizaciones/core/reconcile"

	"github.com/goccy/go-yaml"
	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are written as JSON numbers, like the ledgers we read.
	decimal.MarshalJSONWithoutQuotes = true
}

// Format is a record collection encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf maps a file extension to its format. No extension means JSON.
func FormatOf(ext string) (Format, error) {
	switch strings.ToLower(ext) {
	case ".json", "":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// ContentType returns the MIME type used when uploading the format.
func (f Format) ContentType() string {
	if f == FormatYAML {
		return "application/yaml"
	}
	return "application/json"
}

// Encode serializes a record collection. Nil collections encode as empty lists.
func Encode[T any](f Format, records []T) ([]byte, error) {
	if records == nil {
		records = []T{}
	}

	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(records, "", "    ")
		if err != nil {
			return nil, fmt.Errorf("encoding json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		out, err := yaml.MarshalWithOptions(records, yamlEncodeOptions...)
		if err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Decode parses a record collection. Blank input decodes as an empty collection.
func Decode[T any](f Format, data []byte) ([]T, error) {
	records := []T{}
	if strings.TrimSpace(string(data)) == "" {
		return records, nil
	}

	switch f {
	case FormatJSON:
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("decoding json: %w", err)
		}
	case FormatYAML:
		if err := yaml.UnmarshalWithOptions(data, &records, yamlDecodeOptions...); err != nil {
			return nil, fmt.Errorf("decoding yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	return records, nil
}

// Amounts and dates are written and read as their exact scalar text;
// the default YAML number handling goes through float64.
var (
	yamlEncodeOptions = []yaml.EncodeOption{
		yaml.CustomMarshaler[decimal.Decimal](func(d decimal.Decimal) ([]byte, error) {
			return []byte(d.String()), nil
		}),
		yaml.CustomMarshaler[reconcile.Date](func(d reconcile.Date) ([]byte, error) {
			return []byte(strconv.Quote(d.String())), nil
		}),
	}

	yamlDecodeOptions = []yaml.DecodeOption{
		yaml.CustomUnmarshaler[decimal.Decimal](func(d *decimal.Decimal, b []byte) error {
			text, err := yamlScalar(b)
			if err != nil {
				return err
			}
			v, err := decimal.NewFromString(text)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", text, err)
			}
			*d = v
			return nil
		}),
		yaml.CustomUnmarshaler[reconcile.Date](func(d *reconcile.Date, b []byte) error {
			text, err := yamlScalar(b)
			if err != nil {
				return err
			}
			return d.UnmarshalText([]byte(text))
		}),
	}
)

// yamlScalar returns the text of a scalar node, unquoted and without a trailing comment.
func yamlScalar(b []byte) (string, error) {
	s := strings.TrimSpace(string(b))
	if strings.HasPrefix(s, `"`) || strings.HasPrefix(s, "'") {
		var text string
		if err := yaml.Unmarshal([]byte(s), &text); err != nil {
			return "", err
		}
		return text, nil
	}
	if i := strings.Index(s, " #"); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	return s, nil
}
