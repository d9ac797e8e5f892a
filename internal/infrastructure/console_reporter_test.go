package infrastructure

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"tour-optimizer/internal/domain"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestConsoleReporter_Report(t *testing.T) {
	best := domain.PartitionResult{Index: 1, Second: "B", Route: "A B C A", Duration: 7, Valid: true}
	summary := &domain.Summary{
		LocationIDs: []string{"A", "B", "C"},
		Workers:     2,
		Waves:       1,
		Partitions: []domain.PartitionResult{
			best,
			{Index: 2, Second: "C", Route: "A C B A", Duration: 15, Valid: true},
		},
		Best:    best,
		Found:   true,
		Elapsed: 3 * time.Millisecond,
	}

	var out bytes.Buffer
	require.NoError(t, NewConsoleReporter(zaptest.NewLogger(t), &out).Report(summary))

	text := out.String()
	require.Contains(t, text, "Locations:\tA B C")
	require.Contains(t, text, "Workers used:\t2")
	require.Contains(t, text, "A B C A : 7\n")
	require.Contains(t, text, "A C B A : 15\n")
	require.Contains(t, text, "Minimum route\nA B C A 7\n")
	require.Contains(t, text, "mean 11.00, std dev 5.66, worst 15")
}

func TestConsoleReporter_NoRoute(t *testing.T) {
	summary := &domain.Summary{
		LocationIDs: []string{"A", "B"},
		Partitions:  []domain.PartitionResult{{Index: 1, Second: "B"}},
	}

	var out bytes.Buffer
	require.NoError(t, NewConsoleReporter(zaptest.NewLogger(t), &out).Report(summary))
	require.Contains(t, out.String(), "B : no valid tour")
	require.Contains(t, out.String(), "No route found")
	require.NotContains(t, out.String(), "mean")
}

func TestConsoleReporter_ReportRunTime(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewConsoleReporter(zaptest.NewLogger(t), &out).ReportRunTime(1500*time.Millisecond))
	require.Equal(t, "Total run time:\t1.5s\n", out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestConsoleReporter_WriteError(t *testing.T) {
	reporter := NewConsoleReporter(zaptest.NewLogger(t), failingWriter{})
	require.Error(t, reporter.Report(&domain.Summary{}))
	require.Error(t, reporter.ReportRunTime(time.Second))
}
