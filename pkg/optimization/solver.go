package optimization

import (
	"strings"
	"time"

	"tour-optimizer/internal/domain"

	"go.uber.org/zap"
)

// PermutationSolver enumerates every tour that leaves the first location
// towards a fixed second stop and keeps the shortest one.
type PermutationSolver struct {
	logger *zap.Logger
	ids    []string
	table  domain.DistanceTable
	policy domain.MissingEdgePolicy
}

func NewPermutationSolver(logger *zap.Logger, ids []string, table domain.DistanceTable, policy domain.MissingEdgePolicy) *PermutationSolver {
	return &PermutationSolver{
		logger: logger,
		ids:    ids,
		table:  table,
		policy: policy,
	}
}

// Solve runs the partition whose second stop is ids[index]. It is safe to call
// concurrently for different indices: each call works on its own buffer.
func (s *PermutationSolver) Solve(index int) domain.PartitionResult {
	started := time.Now()

	if index < 1 || index >= len(s.ids) {
		s.logger.Error("Second stop index out of range",
			zap.Int("index", index),
			zap.Int("locations", len(s.ids)))
		return domain.PartitionResult{Index: index}
	}

	start, second := s.ids[0], s.ids[index]
	rest := s.remaining(index)
	cost := NewCostFunction(s.logger.With(zap.String("second", second)), s.table, s.policy)

	var (
		best      int
		found     bool
		orderings int
		rejected  int
		bestOrder = make([]string, len(rest))
	)

	Permute(rest, func(order []string) {
		orderings++

		duration, err := cost.Value(start, second, order)
		if err != nil {
			rejected++
			return
		}

		if !found || duration < best {
			best = duration
			found = true
			copy(bestOrder, order)
		}
	})

	result := domain.PartitionResult{
		Index:        index,
		Second:       second,
		Orderings:    orderings,
		MissingEdges: cost.MissingEdges(),
		Elapsed:      time.Since(started),
		Valid:        found,
	}
	if found {
		result.Route = FormatRoute(start, second, bestOrder)
		result.Duration = best
	}

	s.logger.Debug("Partition solved",
		zap.String("second", second),
		zap.Int("orderings", orderings),
		zap.Int("rejected", rejected),
		zap.Int("duration", result.Duration),
		zap.Bool("valid", found),
		zap.Duration("elapsed", result.Elapsed))

	return result
}

// remaining returns a fresh slice holding every id except the start and ids[index].
func (s *PermutationSolver) remaining(index int) []string {
	rest := make([]string, 0, max(len(s.ids)-2, 0))
	for i, id := range s.ids {
		if i == 0 || i == index {
			continue
		}
		rest = append(rest, id)
	}
	return rest
}

// FormatRoute renders start second rest... start as a space separated string.
func FormatRoute(start, second string, rest []string) string {
	var b strings.Builder
	b.WriteString(start)
	b.WriteByte(' ')
	b.WriteString(second)
	for _, id := range rest {
		b.WriteByte(' ')
		b.WriteString(id)
	}
	b.WriteByte(' ')
	b.WriteString(start)
	return b.String()
}
