package reconcile

import (
	"errors"
	"fmt"
	"slices"

	"github.com/MoraStok/apareo-con-actualizaciones/core/utils"
)

// ErrUnknownField is returned by Sort when a field name is not part of the record type.
var ErrUnknownField = errors.New("unknown sort field")

// Sort orders records in place by the given fields, ascending.
// Records are compared field by field in priority order and the first field
// that differs decides. Records equal on every field keep their input order.
// Unknown field names are rejected before any record is moved.
func Sort[T Record](records []T, fields ...string) error {
	var zero T
	for _, field := range fields {
		if _, ok := zero.Field(field); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	slices.SortStableFunc(records, compareBy[T](fields))

	return nil
}

// IsSorted reports whether records are already in the order Sort would produce.
func IsSorted[T Record](records []T, fields ...string) bool {
	return slices.IsSortedFunc(records, compareBy[T](fields))
}

func compareBy[T Record](fields []string) func(a, b T) int {
	return func(a, b T) int {
		for _, field := range fields {
			av, _ := a.Field(field)
			bv, _ := b.Field(field)
			// Values of one field share a type, so Compare cannot fail here.
			if c, _ := utils.Compare(av, bv); c != 0 {
				return c
			}
		}
		return 0
	}
}
