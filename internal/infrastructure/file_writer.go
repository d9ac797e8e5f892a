package infrastructure

import (
	"bufio"
	"os"
	"strconv"

	"go.uber.org/zap"

	"tour-optimizer/internal/domain"
)

type TXTFileWriter struct {
	logger *zap.Logger
}

func NewTXTFileWriter(logger *zap.Logger) *TXTFileWriter {
	return &TXTFileWriter{logger: logger}
}

// WriteTour stores the route followed by its duration on a single line.
func (w *TXTFileWriter) WriteTour(filename string, result domain.PartitionResult) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	writer.WriteString(result.Route)
	writer.WriteByte(' ')
	writer.WriteString(strconv.Itoa(result.Duration))

	if err := writer.Flush(); err != nil {
		return err
	}

	w.logger.Debug("Tour written", zap.String("file", filename), zap.String("route", result.Route))
	return file.Close()
}
