package app

import (
	"fmt"
	"sync"

	"tour-optimizer/internal/domain"
)

// Aggregator keeps one result slot per partition. Slot i belongs to the
// partition whose second stop is location i+1.
type Aggregator struct {
	mu     sync.Mutex
	slots  []domain.PartitionResult
	filled []bool
}

func NewAggregator(partitions int) *Aggregator {
	return &Aggregator{
		slots:  make([]domain.PartitionResult, partitions),
		filled: make([]bool, partitions),
	}
}

// Publish stores the result of one partition. Each partition may publish once.
func (a *Aggregator) Publish(result domain.PartitionResult) error {
	slot := result.Index - 1

	a.mu.Lock()
	defer a.mu.Unlock()

	if slot < 0 || slot >= len(a.slots) {
		return fmt.Errorf("%w: %d", domain.ErrPartitionIndex, result.Index)
	}
	if a.filled[slot] {
		return fmt.Errorf("%w: %d", domain.ErrAlreadyPublished, result.Index)
	}

	a.slots[slot] = result
	a.filled[slot] = true
	return nil
}

// Best scans the valid results and returns the one with the smallest duration.
// The second value is false when nothing valid was published.
func (a *Aggregator) Best() (domain.PartitionResult, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var (
		best  domain.PartitionResult
		found bool
	)
	for i, r := range a.slots {
		if !a.filled[i] || !r.Valid {
			continue
		}
		if !found || r.Duration < best.Duration {
			best = r
			found = true
		}
	}
	return best, found
}

// Results returns the published results ordered by partition index.
func (a *Aggregator) Results() []domain.PartitionResult {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]domain.PartitionResult, 0, len(a.slots))
	for i, r := range a.slots {
		if a.filled[i] {
			out = append(out, r)
		}
	}
	return out
}
