package domain

import "fmt"

// Edge is an ordered pair of location identifiers.
type Edge struct {
	From, To string
}

func (e Edge) String() string {
	return e.From + " " + e.To
}

// DistanceTable maps ordered location pairs to travel durations.
// It is never written after BuildDistanceTable returns, so concurrent reads need no locking.
type DistanceTable map[Edge]int

// Lookup returns the duration for from -> to and whether the pair is present.
func (t DistanceTable) Lookup(from, to string) (int, bool) {
	d, ok := t[Edge{From: from, To: to}]
	return d, ok
}

// BuildDistanceTable indexes every ordered pair of locations, self-pairs included.
//
// The duration of (from, to) is read from the from location's own matrix, at the row
// given by the position of to in the location list, column 0.
func BuildDistanceTable(locations []Location) (DistanceTable, error) {
	n := len(locations)
	seen := make(map[string]struct{}, n)
	for _, loc := range locations {
		if _, dup := seen[loc.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLocation, loc.ID)
		}
		seen[loc.ID] = struct{}{}
		if loc.Rows() < n {
			return nil, fmt.Errorf("%w: %q has %d rows, need %d", ErrMatrixTooSmall, loc.ID, loc.Rows(), n)
		}
	}

	table := make(DistanceTable, n*n)
	for i := 0; i < n; i++ {
		from := locations[i]
		for j := 0; j < n; j++ {
			table[Edge{From: from.ID, To: locations[j].ID}] = int(from.Times.At(j, 0))
		}
	}

	return table, nil
}
