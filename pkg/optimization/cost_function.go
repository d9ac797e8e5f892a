package optimization

import (
	"tour-optimizer/internal/domain"

	"go.uber.org/zap"
)

// CostFunction sums edge durations of closed tours.
// It keeps per-instance bookkeeping and must not be shared between goroutines.
type CostFunction struct {
	logger  *zap.Logger
	table   domain.DistanceTable
	policy  domain.MissingEdgePolicy
	missing int
	seen    map[domain.Edge]struct{}
}

func NewCostFunction(logger *zap.Logger, table domain.DistanceTable, policy domain.MissingEdgePolicy) *CostFunction {
	return &CostFunction{
		logger: logger,
		table:  table,
		policy: policy,
		seen:   make(map[domain.Edge]struct{}),
	}
}

// MissingEdges returns how many lookups found no table entry so far.
func (c *CostFunction) MissingEdges() int {
	return c.missing
}

func (c *CostFunction) edge(from, to string) (int, error) {
	if d, ok := c.table.Lookup(from, to); ok {
		return d, nil
	}

	c.missing++
	e := domain.Edge{From: from, To: to}
	if _, logged := c.seen[e]; !logged {
		c.seen[e] = struct{}{}
		c.logger.Warn("Missing distance entry",
			zap.String("from", from),
			zap.String("to", to),
			zap.Stringer("policy", c.policy))
	}

	if c.policy == domain.MissingEdgeError {
		return 0, domain.ErrMissingEdge
	}
	return 0, nil
}

// Value returns the duration of start -> second -> rest... -> start.
func (c *CostFunction) Value(start, second string, rest []string) (int, error) {
	total, err := c.edge(start, second)
	if err != nil {
		return 0, err
	}

	prev := second
	for _, id := range rest {
		d, err := c.edge(prev, id)
		if err != nil {
			return 0, err
		}
		total += d
		prev = id
	}

	// Замыкаем тур
	d, err := c.edge(prev, start)
	if err != nil {
		return 0, err
	}
	return total + d, nil
}

// TourDuration is the explicit-tour form of Value: it sums every consecutive
// pair of tour with the same lookup and missing-edge rules. A closed tour
// lists the start location at both ends, so
// Value(s, a, [b c]) == TourDuration([s a b c s]).
func (c *CostFunction) TourDuration(tour []string) (int, error) {
	var total int
	for i := 0; i+1 < len(tour); i++ {
		d, err := c.edge(tour[i], tour[i+1])
		if err != nil {
			return 0, err
		}
		total += d
	}
	return total, nil
}
