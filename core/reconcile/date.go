package reconcile

import (
	"fmt"
	"time"
)

// DateLayout is the serialized form of a Date.
const DateLayout = "2006-01-02"

// Date is a payment date. It serializes as YYYY-MM-DD and also accepts
// RFC 3339 timestamps on input.
type Date struct {
	t time.Time
}

// NewDate returns the date for the given calendar day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf wraps a time value.
func DateOf(t time.Time) Date {
	return Date{t: t}
}

// ParseDate parses a YYYY-MM-DD date or an RFC 3339 timestamp.
func ParseDate(s string) (Date, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return Date{t: t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected %s or RFC 3339", s, DateLayout)
	}
	return Date{t: t}, nil
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Time returns the underlying time value.
func (d Date) Time() time.Time {
	return d.t
}

// Compare orders two dates and returns -1, 0 or +1.
func (d Date) Compare(other Date) int {
	return d.t.Compare(other.t)
}

// String returns YYYY-MM-DD for a UTC midnight, or the full RFC 3339 timestamp
// when the date carries a time of day or a non-zero offset.
func (d Date) String() string {
	_, offset := d.t.Zone()
	if offset == 0 && d.t.Hour() == 0 && d.t.Minute() == 0 && d.t.Second() == 0 && d.t.Nanosecond() == 0 {
		return d.t.Format(DateLayout)
	}
	return d.t.Format(time.RFC3339Nano)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
