package optimization_test

import (
	"testing"

	"tour-optimizer/internal/domain"

	"github.com/stretchr/testify/require"
)

// triangle returns the asymmetric three-location instance
// A->B=1, B->C=1, C->A=5, A->C=5, C->B=5, B->A=5.
func triangle(t *testing.T) ([]string, domain.DistanceTable) {
	t.Helper()
	return build(t, map[string][]int{
		"A": {0, 1, 5},
		"B": {5, 0, 1},
		"C": {5, 5, 0},
	}, "A", "B", "C")
}

func build(t *testing.T, rows map[string][]int, order ...string) ([]string, domain.DistanceTable) {
	t.Helper()
	locations := make([]domain.Location, 0, len(order))
	for _, id := range order {
		loc, err := domain.NewLocation(id, rows[id])
		require.NoError(t, err)
		locations = append(locations, loc)
	}
	table, err := domain.BuildDistanceTable(locations)
	require.NoError(t, err)
	return order, table
}
