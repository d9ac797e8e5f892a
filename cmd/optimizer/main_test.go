package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCmd_SolvesInputFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	output := filepath.Join(dir, "output.txt")
	metricsFile := filepath.Join(dir, "metrics.prom")
	require.NoError(t, os.WriteFile(input, []byte("A: 0 1 5\nB: 5 0 1\nC: 5 5 0\n"), 0o644))

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{
		"--config", filepath.Join(dir, "absent.yaml"),
		"--input", input,
		"--output", output,
		"--metrics-file", metricsFile,
		"--log-file", filepath.Join(dir, "run.log"),
		"--workers", "2",
	})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, "A B C A 7", string(data))

	require.Contains(t, out.String(), "Minimum route\nA B C A 7")
	require.Contains(t, out.String(), "Total run time:\t")
	require.FileExists(t, metricsFile)
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})
	require.Error(t, cmd.Execute())
}

func TestInitLogger_DefaultsToStderr(t *testing.T) {
	logger := initLogger("debug", "")
	require.NotNil(t, logger)
	require.True(t, logger.Core().Enabled(-1))
}
