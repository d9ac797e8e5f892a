package optimization_test

import (
	"testing"

	"tour-optimizer/internal/domain"
	"tour-optimizer/pkg/optimization"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestCostFunction_Triangle(t *testing.T) {
	_, table := triangle(t)
	cost := optimization.NewCostFunction(zaptest.NewLogger(t), table, domain.MissingEdgeZero)

	d, err := cost.Value("A", "B", []string{"C"})
	require.NoError(t, err)
	require.Equal(t, 7, d)

	d, err = cost.Value("A", "C", []string{"B"})
	require.NoError(t, err)
	require.Equal(t, 15, d)
	require.Zero(t, cost.MissingEdges())
}

func TestCostFunction_ValueMatchesTourDuration(t *testing.T) {
	order, table := build(t, map[string][]int{
		"P": {0, 3, 9, 4},
		"Q": {2, 0, 6, 8},
		"R": {7, 1, 0, 5},
		"S": {3, 2, 4, 0},
	}, "P", "Q", "R", "S")
	cost := optimization.NewCostFunction(zaptest.NewLogger(t), table, domain.MissingEdgeZero)

	rest := []string{order[3], order[2]}
	value, err := cost.Value("P", "Q", rest)
	require.NoError(t, err)

	tour := []string{"P", "Q", "S", "R", "P"}
	explicit, err := cost.TourDuration(tour)
	require.NoError(t, err)
	require.Equal(t, explicit, value)

	// P->Q + Q->S + S->R + R->P
	require.Equal(t, 3+8+4+7, value)
}

func TestCostFunction_TwoLocations(t *testing.T) {
	_, table := build(t, map[string][]int{
		"A": {0, 4},
		"B": {6, 0},
	}, "A", "B")
	cost := optimization.NewCostFunction(zaptest.NewLogger(t), table, domain.MissingEdgeZero)

	d, err := cost.Value("A", "B", nil)
	require.NoError(t, err)
	require.Equal(t, 10, d)
}

func TestCostFunction_MissingEdgeCountsAsZero(t *testing.T) {
	_, table := triangle(t)
	delete(table, domain.Edge{From: "C", To: "A"})

	core, logs := observer.New(zapcore.WarnLevel)
	cost := optimization.NewCostFunction(zap.New(core), table, domain.MissingEdgeZero)

	d, err := cost.Value("A", "B", []string{"C"})
	require.NoError(t, err)
	require.Equal(t, 2, d)

	d, err = cost.TourDuration([]string{"A", "B", "C", "A"})
	require.NoError(t, err)
	require.Equal(t, 2, d)

	require.Equal(t, 2, cost.MissingEdges())
	// logged once per distinct edge
	require.Equal(t, 1, logs.FilterMessage("Missing distance entry").Len())
}

func TestCostFunction_MissingEdgeErrorPolicy(t *testing.T) {
	_, table := triangle(t)
	delete(table, domain.Edge{From: "C", To: "A"})
	cost := optimization.NewCostFunction(zaptest.NewLogger(t), table, domain.MissingEdgeError)

	_, err := cost.Value("A", "B", []string{"C"})
	require.ErrorIs(t, err, domain.ErrMissingEdge)

	d, err := cost.Value("A", "C", []string{"B"})
	require.NoError(t, err)
	require.Equal(t, 15, d)
	require.Equal(t, 1, cost.MissingEdges())
}
