package ledger

import (
	"fmt"

	"github.com/MoraStok/apareo-con-actualizaciones/core/records"
)

// Locations holds the four locations of a run.
type Locations struct {
	// DebtsIn is the original debts collection.
	DebtsIn records.Location
	// PaymentsIn is the payments collection.
	PaymentsIn records.Location
	// DebtsOut receives the updated debts collection.
	DebtsOut records.Location
	// LogOut receives the anomaly messages.
	LogOut records.Location
}

// ParseLocations parses the four location strings of a run.
func ParseLocations(debtsIn, paymentsIn, debtsOut, logOut string) (Locations, error) {
	var locs Locations
	for _, p := range []struct {
		name string
		raw  string
		dst  *records.Location
	}{
		{"debts", debtsIn, &locs.DebtsIn},
		{"payments", paymentsIn, &locs.PaymentsIn},
		{"output", debtsOut, &locs.DebtsOut},
		{"log", logOut, &locs.LogOut},
	} {
		loc, err := records.ParseLocation(p.raw)
		if err != nil {
			return Locations{}, fmt.Errorf("invalid %s location: %w", p.name, err)
		}
		*p.dst = loc
	}
	return locs, nil
}

// Uses reports whether any of the locations has the given scheme.
func (l Locations) Uses(scheme records.Scheme) bool {
	for _, loc := range []records.Location{l.DebtsIn, l.PaymentsIn, l.DebtsOut, l.LogOut} {
		if loc.Scheme == scheme {
			return true
		}
	}
	return false
}
