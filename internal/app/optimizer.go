package app

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"tour-optimizer/internal/domain"
	"tour-optimizer/internal/metrics"
	"tour-optimizer/pkg/optimization"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type RouteOptimizer struct {
	logger  *zap.Logger
	config  *domain.Config
	metrics *metrics.Recorder
}

func NewRouteOptimizer(logger *zap.Logger, config *domain.Config, recorder *metrics.Recorder) *RouteOptimizer {
	return &RouteOptimizer{
		logger:  logger,
		config:  config,
		metrics: recorder,
	}
}

// Optimize finds the shortest closed tour that starts at the first location.
//
// Every other location is tried as the second stop; those partitions run in
// waves of at most Workers goroutines, and a wave starts only after the
// previous one has published all of its results. The context is checked
// between waves only.
func (o *RouteOptimizer) Optimize(ctx context.Context, locations []domain.Location) (*domain.Summary, error) {
	started := time.Now()

	table, err := domain.BuildDistanceTable(locations)
	if err != nil {
		return nil, fmt.Errorf("build distance table: %w", err)
	}

	ids := domain.LocationIDs(locations)
	partitions := max(len(ids)-1, 0)
	workers := o.parallelism(partitions)

	o.logger.Info("Starting tour search",
		zap.Strings("locations", ids),
		zap.Int("partitions", partitions),
		zap.Int("workers", workers),
		zap.Int("orderings_per_partition", optimization.CountOrderings(max(len(ids)-2, 0))),
		zap.Stringer("missing_edge", o.config.GetMissingEdgePolicy()))

	solver := optimization.NewPermutationSolver(o.logger, ids, table, o.config.GetMissingEdgePolicy())
	store := NewAggregator(partitions)
	waves := PlanWaves(partitions, workers)

	if err := o.runWaves(ctx, waves, solver, store); err != nil {
		return nil, err
	}

	summary := &domain.Summary{
		LocationIDs: ids,
		Workers:     workers,
		Waves:       len(waves),
		Partitions:  store.Results(),
	}
	summary.Best, summary.Found = store.Best()
	summary.Elapsed = time.Since(started)

	if summary.Found {
		o.metrics.SetBestDuration(summary.Best.Duration)
		o.logger.Info("Tour search completed",
			zap.String("route", summary.Best.Route),
			zap.Int("duration", summary.Best.Duration),
			zap.Duration("elapsed", summary.Elapsed))
	} else {
		o.logger.Warn("Tour search produced no route", zap.Int("locations", len(ids)))
	}

	return summary, nil
}

func (o *RouteOptimizer) runWaves(ctx context.Context, waves [][]domain.PartitionTask, solver domain.PartitionSolver, store domain.ResultStore) error {
	for _, wave := range waves {
		if err := ctx.Err(); err != nil {
			return err
		}

		o.logger.Debug("Starting wave",
			zap.Int("wave", wave[0].Wave),
			zap.Int("size", len(wave)))

		var g errgroup.Group
		for _, task := range wave {
			task := task
			g.Go(func() error {
				result := solver.Solve(task.Index)
				o.metrics.ObservePartition(result)
				return store.Publish(result)
			})
		}

		// Ошибки публикации не прерывают поиск
		if err := g.Wait(); err != nil {
			o.logger.Error("Failed to publish partition result",
				zap.Int("wave", wave[0].Wave),
				zap.Error(err))
		}
		o.metrics.ObserveWave()
	}
	return nil
}

// parallelism clamps the configured worker count to [1, partitions].
func (o *RouteOptimizer) parallelism(partitions int) int {
	if partitions == 0 {
		return 0
	}
	workers := o.config.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return min(workers, partitions)
}

// PlanWaves splits partition indices 1..partitions into consecutive waves of at most size tasks.
func PlanWaves(partitions, size int) [][]domain.PartitionTask {
	if partitions <= 0 || size <= 0 {
		return nil
	}

	waves := make([][]domain.PartitionTask, 0, (partitions+size-1)/size)
	for first := 1; first <= partitions; first += size {
		last := min(first+size-1, partitions)
		wave := make([]domain.PartitionTask, 0, last-first+1)
		for index := first; index <= last; index++ {
			wave = append(wave, domain.PartitionTask{Wave: len(waves), Index: index})
		}
		waves = append(waves, wave)
	}
	return waves
}
