package telemetry

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// Exporter writes drift Samples to a CSV file, grounded on the
// teacher's header-then-append gocsv pattern.
type Exporter struct {
	file          *os.File
	headerWritten bool
}

// NewExporter opens path for CSV writing. A blank path disables
// export: every subsequent call becomes a no-op.
func NewExporter(path string) (*Exporter, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating telemetry csv: %w", err)
	}
	return &Exporter{file: f}, nil
}

// Write appends one Sample to the CSV file, writing a header on the
// first call.
func (e *Exporter) Write(s Sample) error {
	if e == nil {
		return nil
	}
	records := []Sample{s}

	if !e.headerWritten {
		if err := gocsv.Marshal(records, e.file); err != nil {
			return fmt.Errorf("writing telemetry sample: %w", err)
		}
		e.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, e.file); err != nil {
		return fmt.Errorf("writing telemetry sample: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying file.
func (e *Exporter) Close() error {
	if e == nil {
		return nil
	}
	return e.file.Close()
}
