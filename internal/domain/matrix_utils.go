package domain

import "gonum.org/v1/gonum/mat"

// NewLocation builds a location whose k-th value lands on row k, column 0 of a square matrix.
func NewLocation(id string, values []int) (Location, error) {
	n := len(values)
	if id == "" || n == 0 {
		return Location{}, ErrInvalidMatrix
	}

	times := mat.NewDense(n, n, nil)
	for k, v := range values {
		times.Set(k, 0, float64(v))
	}

	return Location{ID: id, Times: times}, nil
}

// Rows returns the row count of the raw matrix, 0 when there is none.
func (l Location) Rows() int {
	if l.Times == nil {
		return 0
	}
	r, _ := l.Times.Dims()
	return r
}

// LocationIDs returns the identifiers in load order.
func LocationIDs(locations []Location) []string {
	ids := make([]string, len(locations))
	for i, loc := range locations {
		ids[i] = loc.ID
	}
	return ids
}
