package domain

import (
	"errors"
	"time"

	"gonum.org/v1/gonum/mat"
)

// Config представляет конфигурацию приложения
type Config struct {
	InputFile   string `yaml:"input_file"`
	OutputFile  string `yaml:"output_file"`
	MetricsFile string `yaml:"metrics_file"`
	Workers     int    `yaml:"workers"`
	LogLevel    string `yaml:"log_level"`
	LogFile     string `yaml:"log_file"`
	MissingEdge string `yaml:"missing_edge"`
	Quiet       bool   `yaml:"quiet"`
}

func (c *Config) GetMissingEdgePolicy() MissingEdgePolicy {
	switch c.MissingEdge {
	case "error":
		return MissingEdgeError
	default:
		return MissingEdgeZero
	}
}

// Location is one stop of the tour together with the raw value matrix it was loaded with.
type Location struct {
	ID    string
	Times *mat.Dense
}

func (l Location) String() string {
	return l.ID
}

// PartitionResult is the best tour found for one fixed second stop.
type PartitionResult struct {
	// Index is the position of the second stop in the location list, 1..n-1.
	Index        int
	Second       string
	Route        string
	Duration     int
	Orderings    int
	MissingEdges int
	Elapsed      time.Duration
	// Valid is false when every tour of the partition was rejected.
	Valid bool
}

// Summary describes a finished search.
type Summary struct {
	LocationIDs []string
	Workers     int
	Waves       int
	Partitions  []PartitionResult
	Best        PartitionResult
	Found       bool
	Elapsed     time.Duration
}

// MissingEdgePolicy decides how the evaluator treats a pair absent from the distance table
type MissingEdgePolicy int

const (
	// MissingEdgeZero counts the absent edge as zero duration.
	MissingEdgeZero MissingEdgePolicy = iota
	// MissingEdgeError rejects the whole tour.
	MissingEdgeError
)

func (p MissingEdgePolicy) String() string {
	if p == MissingEdgeError {
		return "error"
	}
	return "zero"
}

var (
	ErrInvalidFileFormat = errors.New("invalid file format")
	ErrMissingEdge       = errors.New("missing distance entry")
	ErrMatrixTooSmall    = errors.New("location matrix has fewer rows than locations")
	ErrDuplicateLocation = errors.New("duplicate location id")
	ErrAlreadyPublished  = errors.New("partition result already published")
	ErrPartitionIndex    = errors.New("partition index out of range")
	ErrInvalidMatrix     = errors.New("invalid matrix")
)
