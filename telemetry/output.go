package telemetry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/ecosim/config"
)

// csvFile appends gocsv rows to a single file, writing the header with the
// first row only.
type csvFile struct {
	name   string
	f      *os.File
	header bool
}

func createCSV(dir, name string) (*csvFile, error) {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", name, err)
	}
	return &csvFile{name: name, f: f}, nil
}

func appendRow[T any](c *csvFile, row T) error {
	rows := []T{row}
	var err error
	if c.header {
		err = gocsv.MarshalWithoutHeaders(rows, c.f)
	} else {
		err = gocsv.Marshal(rows, c.f)
		c.header = err == nil
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", c.name, err)
	}
	return nil
}

func (c *csvFile) close() error {
	if c == nil || c.f == nil {
		return nil
	}
	err := c.f.Close()
	c.f = nil
	return err
}

// OutputManager writes one run's telemetry.csv, perf.csv and config snapshot.
// A nil *OutputManager is valid and discards everything.
type OutputManager struct {
	dir       string
	telemetry *csvFile
	perf      *csvFile
}

// NewOutputManager creates dir and opens the CSV files inside it.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	tf, err := createCSV(dir, "telemetry.csv")
	if err != nil {
		return nil, err
	}
	pf, err := createCSV(dir, "perf.csv")
	if err != nil {
		tf.close()
		return nil, err
	}
	return &OutputManager{dir: dir, telemetry: tf, perf: pf}, nil
}

// WriteConfig saves cfg as config.yaml next to the CSV files.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteTelemetry appends one stats window.
func (om *OutputManager) WriteTelemetry(stats DayStats) error {
	if om == nil {
		return nil
	}
	return appendRow(om.telemetry, stats)
}

// WritePerf appends the phase timing breakdown for day.
func (om *OutputManager) WritePerf(stats PerfStats, day int) error {
	if om == nil {
		return nil
	}
	return appendRow(om.perf, stats.ToCSV(day))
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes all output files. Closing twice is a no-op.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	return errors.Join(om.telemetry.close(), om.perf.close())
}
