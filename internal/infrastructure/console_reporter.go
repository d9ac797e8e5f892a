package infrastructure

import (
	"fmt"
	"io"
	"strings"
	"time"

	"tour-optimizer/internal/domain"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ConsoleReporter prints a human readable summary of a finished search.
type ConsoleReporter struct {
	logger *zap.Logger
	out    io.Writer
}

func NewConsoleReporter(logger *zap.Logger, out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{logger: logger, out: out}
}

func (r *ConsoleReporter) Report(summary *domain.Summary) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Locations:\t%s\n", strings.Join(summary.LocationIDs, " "))
	fmt.Fprintf(&b, "Workers used:\t%d\n", summary.Workers)
	fmt.Fprintf(&b, "Waves:\t\t%d\n\n", summary.Waves)

	b.WriteString("Partition minima:\n")
	durations := make([]float64, 0, len(summary.Partitions))
	for _, p := range summary.Partitions {
		if !p.Valid {
			fmt.Fprintf(&b, "%s : no valid tour\n", p.Second)
			continue
		}
		fmt.Fprintf(&b, "%s : %d\n", p.Route, p.Duration)
		durations = append(durations, float64(p.Duration))
	}

	if summary.Found {
		fmt.Fprintf(&b, "\nMinimum route\n%s %d\n", summary.Best.Route, summary.Best.Duration)
	} else {
		b.WriteString("\nNo route found\n")
	}

	if len(durations) > 1 {
		mean, std := stat.MeanStdDev(durations, nil)
		fmt.Fprintf(&b, "\nPartition minima: mean %.2f, std dev %.2f, worst %.0f\n",
			mean, std, floats.Max(durations))
	}

	fmt.Fprintf(&b, "Search time:\t%s\n", summary.Elapsed)

	if _, err := io.WriteString(r.out, b.String()); err != nil {
		r.logger.Error("Failed to write summary", zap.Error(err))
		return err
	}
	return nil
}

// ReportRunTime prints the wall time of the whole run, loading and writing included.
func (r *ConsoleReporter) ReportRunTime(total time.Duration) error {
	if _, err := fmt.Fprintf(r.out, "Total run time:\t%s\n", total); err != nil {
		r.logger.Error("Failed to write run time", zap.Error(err))
		return err
	}
	return nil
}
