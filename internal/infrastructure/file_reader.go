package infrastructure

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"tour-optimizer/internal/domain"

	"go.uber.org/zap"
)

type TXTFileReader struct {
	logger *zap.Logger
}

func NewTXTFileReader(logger *zap.Logger) *TXTFileReader {
	return &TXTFileReader{logger: logger}
}

// ReadLocations parses one location per line in the form "id: v0 v1 ... vn".
func (r *TXTFileReader) ReadLocations(filename string) ([]domain.Location, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var locations []domain.Location
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		loc, err := r.parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", filename, lineNo, err)
		}
		locations = append(locations, loc)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(locations) == 0 {
		return nil, fmt.Errorf("%s: %w: no locations", filename, domain.ErrInvalidFileFormat)
	}

	r.logger.Info("Locations loaded",
		zap.String("file", filename),
		zap.Strings("ids", domain.LocationIDs(locations)))

	return locations, nil
}

func (r *TXTFileReader) parseLine(line string) (domain.Location, error) {
	id, rest, ok := strings.Cut(line, ":")
	id = strings.TrimSpace(id)
	if !ok || id == "" {
		return domain.Location{}, domain.ErrInvalidFileFormat
	}

	// Остальные поля - длительности до каждой локации
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return domain.Location{}, fmt.Errorf("%w: location %q has no values", domain.ErrInvalidFileFormat, id)
	}

	values := make([]int, len(fields))
	for k, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return domain.Location{}, fmt.Errorf("%w: location %q: %w", domain.ErrInvalidFileFormat, id, err)
		}
		if v < 0 {
			r.logger.Warn("Negative duration found", zap.String("id", id), zap.Int("position", k), zap.Int("value", v))
		}
		values[k] = v
	}

	return domain.NewLocation(id, values)
}
