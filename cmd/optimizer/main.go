package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	"tour-optimizer/internal/app"
	"tour-optimizer/internal/infrastructure"
	"tour-optimizer/internal/metrics"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "optimizer",
		Short: "Find the shortest closed tour over a set of locations",
		Long: `optimizer reads locations and their travel durations, tries every ordering
of the stops after the first one, and writes the shortest closed tour.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			run(cmd, configPath)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "config.yaml", "Path to config file")
	flags.StringP("input", "i", "", "Locations file")
	flags.StringP("output", "o", "", "File the best tour is written to")
	flags.String("metrics-file", "", "Write Prometheus metrics to this file")
	flags.IntP("workers", "w", 0, "Partitions solved in parallel (default: number of CPUs)")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	flags.String("log-file", "", "Log file path")
	flags.String("missing-edge", "", "Missing distance policy (zero, error)")
	flags.BoolP("quiet", "q", false, "Do not print the summary")

	return cmd
}

func run(cmd *cobra.Command, configPath string) {
	started := time.Now()

	// Инициализация логгера
	logger := initLogger("info")

	// Чтение конфигурации
	configReader := infrastructure.NewYAMLConfigReader(logger, cmd.Flags())
	config, err := configReader.ReadConfig(configPath)
	if err != nil {
		logger.Fatal("Failed to read config", zap.Error(err))
	}

	// Обновляем уровень логирования
	logger = initLogger(config.LogLevel, config.LogFile).With(zap.String("run_id", uuid.NewString()))
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Инициализация компонентов
	fileReader := infrastructure.NewTXTFileReader(logger)
	fileWriter := infrastructure.NewTXTFileWriter(logger)
	reporter := infrastructure.NewConsoleReporter(logger, cmd.OutOrStdout())
	recorder := metrics.NewRecorder()
	optimizer := app.NewRouteOptimizer(logger, config, recorder)

	locations, err := fileReader.ReadLocations(config.InputFile)
	if err != nil {
		logger.Fatal("Failed to read locations", zap.String("file", config.InputFile), zap.Error(err))
	}

	summary, err := optimizer.Optimize(ctx, locations)
	if err != nil {
		logger.Fatal("Tour search failed", zap.Error(err))
	}

	if !config.Quiet {
		if err := reporter.Report(summary); err != nil {
			logger.Error("Failed to print summary", zap.Error(err))
		}
	}

	if summary.Found {
		if err := fileWriter.WriteTour(config.OutputFile, summary.Best); err != nil {
			logger.Error("Failed to write tour",
				zap.String("file", config.OutputFile),
				zap.Error(err))
		} else {
			logger.Info("Successfully written tour",
				zap.String("file", config.OutputFile))
		}
	}

	if config.MetricsFile != "" {
		if err := recorder.WriteToTextfile(config.MetricsFile); err != nil {
			logger.Error("Failed to write metrics",
				zap.String("file", config.MetricsFile),
				zap.Error(err))
		}
	}

	total := time.Since(started)
	if !config.Quiet {
		if err := reporter.ReportRunTime(total); err != nil {
			logger.Error("Failed to print run time", zap.Error(err))
		}
	}
	logger.Info("Run completed", zap.Duration("total", total))
}

// initLogger initializes the logger with the specified level and log file name.
// Without a file name the logger writes to stderr.
func initLogger(level string, logfileName ...string) *zap.Logger {
	config := zap.NewProductionConfig()

	switch level {
	case "debug":
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn":
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		config.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	outputPath := make([]string, 0, len(logfileName))
	for _, item := range logfileName {
		if item != "" {
			outputPath = append(outputPath, item)
		}
	}
	if len(outputPath) == 0 {
		outputPath = []string{"stderr"}
	}

	config.OutputPaths = outputPath
	config.ErrorOutputPaths = outputPath
	config.EncoderConfig.TimeKey = "t"
	config.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	config.DisableCaller = false

	logger, err := config.Build()
	if err != nil {
		return zap.NewExample()
	}
	return logger
}
