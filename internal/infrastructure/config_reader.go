package infrastructure

import (
	"errors"
	"io/fs"
	"os"
	"runtime"
	"tour-optimizer/internal/domain"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type YAMLConfigReader struct {
	logger *zap.Logger
	flags  *pflag.FlagSet
}

// NewYAMLConfigReader returns a reader whose explicitly set flags override file values.
// flags may be nil.
func NewYAMLConfigReader(logger *zap.Logger, flags *pflag.FlagSet) *YAMLConfigReader {
	return &YAMLConfigReader{logger: logger, flags: flags}
}

// ReadConfig loads path if it exists. A missing file leaves every value at its default.
func (r *YAMLConfigReader) ReadConfig(path string) (*domain.Config, error) {
	var config domain.Config

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			r.logger.Info("Config file not found, using defaults", zap.String("path", path))
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return nil, err
			}
		}
	}

	// Применяем аргументы командной строки
	if err := r.applyCommandLineFlags(&config); err != nil {
		return nil, err
	}

	// Устанавливаем значения по умолчанию
	r.setDefaults(&config)

	return &config, nil
}

func (r *YAMLConfigReader) applyCommandLineFlags(config *domain.Config) error {
	if r.flags == nil {
		return nil
	}

	strs := map[string]*string{
		"input":        &config.InputFile,
		"output":       &config.OutputFile,
		"metrics-file": &config.MetricsFile,
		"log-level":    &config.LogLevel,
		"log-file":     &config.LogFile,
		"missing-edge": &config.MissingEdge,
	}
	for name, dst := range strs {
		if r.flags.Lookup(name) == nil || !r.flags.Changed(name) {
			continue
		}
		v, err := r.flags.GetString(name)
		if err != nil {
			return err
		}
		*dst = v
	}

	if r.flags.Lookup("workers") != nil && r.flags.Changed("workers") {
		workers, err := r.flags.GetInt("workers")
		if err != nil {
			return err
		}
		config.Workers = workers
	}
	if r.flags.Lookup("quiet") != nil && r.flags.Changed("quiet") {
		quiet, err := r.flags.GetBool("quiet")
		if err != nil {
			return err
		}
		config.Quiet = quiet
	}
	return nil
}

func (r *YAMLConfigReader) setDefaults(config *domain.Config) {
	if config.InputFile == "" {
		config.InputFile = "input.txt"
	}
	if config.OutputFile == "" {
		config.OutputFile = "output.txt"
	}
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	switch config.MissingEdge {
	case "zero", "error":
	case "":
		config.MissingEdge = "zero"
	default:
		r.logger.Warn("Unknown missing edge policy, using zero", zap.String("missing_edge", config.MissingEdge))
		config.MissingEdge = "zero"
	}
}
