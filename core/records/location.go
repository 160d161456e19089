package records

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

var (
	// ErrUnsupportedScheme is returned for locations with an unknown scheme.
	ErrUnsupportedScheme = errors.New("unsupported location scheme")
	// ErrUnsupportedFormat is returned for file or object names with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported record format")
	// ErrBackendUnavailable is returned when a location needs a backend the store was not given.
	ErrBackendUnavailable = errors.New("backend not configured")
)

// Scheme identifies the backend of a location.
type Scheme string

const (
	SchemeFile Scheme = "file"
	SchemeS3   Scheme = "s3"
	SchemeDB   Scheme = "db"
)

// Location is a parsed record location.
type Location struct {
	// Scheme selects the backend.
	Scheme Scheme

	// Bucket is the object storage bucket (s3 only). Empty means the store's default bucket.
	Bucket string

	// Path is the file path, the object name, or the table name.
	Path string
}

// ParseLocation parses a location string.
// Strings without a scheme are local file paths.
func ParseLocation(raw string) (Location, error) {
	if raw == "" {
		return Location{}, errors.New("empty location")
	}

	scheme, rest, ok := strings.Cut(raw, "://")
	if !ok {
		return Location{Scheme: SchemeFile, Path: raw}, nil
	}

	switch Scheme(strings.ToLower(scheme)) {
	case SchemeFile:
		if rest == "" {
			return Location{}, fmt.Errorf("location %q has no path", raw)
		}
		return Location{Scheme: SchemeFile, Path: rest}, nil

	case SchemeS3:
		u, err := url.Parse(raw)
		if err != nil {
			return Location{}, fmt.Errorf("invalid location %q: %w", raw, err)
		}
		object := strings.TrimPrefix(u.Path, "/")
		if object == "" {
			return Location{}, fmt.Errorf("location %q has no object name", raw)
		}
		return Location{Scheme: SchemeS3, Bucket: u.Host, Path: object}, nil

	case SchemeDB:
		table := strings.Trim(rest, "/")
		if !validTableName(table) {
			return Location{}, fmt.Errorf("location %q: invalid table name %q", raw, table)
		}
		return Location{Scheme: SchemeDB, Path: table}, nil

	default:
		return Location{}, fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
	}
}

// MustParseLocation is like ParseLocation but panics on error.
func MustParseLocation(raw string) Location {
	loc, err := ParseLocation(raw)
	if err != nil {
		panic(err)
	}
	return loc
}

// String returns the location in the form accepted by ParseLocation.
func (l Location) String() string {
	switch l.Scheme {
	case SchemeS3:
		return "s3://" + l.Bucket + "/" + l.Path
	case SchemeDB:
		return "db://" + l.Path
	default:
		return l.Path
	}
}

// Format returns the record encoding for file and object locations.
func (l Location) Format() (Format, error) {
	var ext string
	switch l.Scheme {
	case SchemeFile:
		ext = filepath.Ext(l.Path)
	case SchemeS3:
		ext = path.Ext(l.Path)
	default:
		return "", fmt.Errorf("%w: %s locations have no encoding", ErrUnsupportedFormat, l.Scheme)
	}
	return FormatOf(ext)
}

// validTableName accepts identifiers made of letters, digits and underscores.
func validTableName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
