package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrIncomparable is returned when two values cannot be ordered against each other.
var ErrIncomparable = errors.New("values are not comparable")

// Compare orders two record values and returns -1, 0 or +1.
// It handles signed and unsigned integers, strings, times and decimals.
// Numeric kinds are compared by value regardless of their concrete type.
func Compare(a, b any) (int, error) {
	switch x := a.(type) {
	case string:
		y, ok := b.(string)
		if !ok {
			return 0, mismatch(a, b)
		}
		return strings.Compare(x, y), nil
	case time.Time:
		y, ok := b.(time.Time)
		if !ok {
			return 0, mismatch(a, b)
		}
		return x.Compare(y), nil
	}

	x, okA := ToDecimal(a)
	y, okB := ToDecimal(b)
	if !okA || !okB {
		return 0, mismatch(a, b)
	}
	return x.Cmp(y), nil
}

// ToDecimal converts numeric types to a decimal using explicit type switching.
// The second return value is false for anything that is not a number.
func ToDecimal(val any) (decimal.Decimal, bool) {
	switch v := val.(type) {
	case decimal.Decimal:
		return v, true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	case int32:
		return decimal.NewFromInt32(v), true
	case int16:
		return decimal.NewFromInt(int64(v)), true
	case int8:
		return decimal.NewFromInt(int64(v)), true
	case uint:
		return decimal.RequireFromString(strconv.FormatUint(uint64(v), 10)), true
	case uint64:
		return decimal.RequireFromString(strconv.FormatUint(v, 10)), true
	case uint32:
		return decimal.NewFromInt(int64(v)), true
	case uint16:
		return decimal.NewFromInt(int64(v)), true
	case uint8:
		return decimal.NewFromInt(int64(v)), true
	case float64:
		return decimal.NewFromFloat(v), true
	case float32:
		return decimal.NewFromFloat32(v), true
	default:
		return decimal.Zero, false
	}
}

func mismatch(a, b any) error {
	return fmt.Errorf("%w: %T and %T", ErrIncomparable, a, b)
}
