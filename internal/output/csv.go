package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/benloeffel/dns-compare/internal/compare"
)

// timestampLayout matches the legacy dns_comparison_DD-MM-YYYY-HHMMSS names.
const timestampLayout = "02-01-2006-150405"

// CSV exports the comparison to a timestamped file under dir. The file is
// only created on Close; the directory is created if missing.
type CSV struct {
	dir     string
	entries []compare.Entry
	path    string
	now     func() time.Time
}

// NewCSV returns a CSV writer exporting into dir.
func NewCSV(dir string) *CSV {
	return &CSV{dir: dir, now: time.Now}
}

func (c *CSV) WriteEntry(e compare.Entry) error {
	c.entries = append(c.entries, e)
	return nil
}

// Path returns the exported file path. Empty until Close succeeds.
func (c *CSV) Path() string {
	return c.path
}

// Close writes the collected entries, header row included, even when the
// run produced no entries.
func (c *CSV) Close() error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(c.dir, fmt.Sprintf("dns_comparison_%s.csv", c.now().Format(timestampLayout)))
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, e := range c.entries {
		if err := w.Write(row(e)); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush export: %w", err)
	}

	c.path = path
	return nil
}
