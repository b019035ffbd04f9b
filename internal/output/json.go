package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/benloeffel/dns-compare/internal/compare"
)

// JSON exports the comparison as a timestamped JSON array under dir.
type JSON struct {
	dir     string
	entries []compare.Entry
	path    string
	now     func() time.Time
}

// NewJSON returns a JSON writer exporting into dir.
func NewJSON(dir string) *JSON {
	return &JSON{dir: dir, now: time.Now}
}

func (j *JSON) WriteEntry(e compare.Entry) error {
	j.entries = append(j.entries, e)
	return nil
}

// Path returns the exported file path. Empty until Close succeeds.
func (j *JSON) Path() string {
	return j.path
}

func (j *JSON) Close() error {
	if err := os.MkdirAll(j.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	entries := j.entries
	if entries == nil {
		entries = []compare.Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entries: %w", err)
	}

	path := filepath.Join(j.dir, fmt.Sprintf("dns_comparison_%s.json", j.now().Format(timestampLayout)))
	if err := os.WriteFile(path, data, 0o664); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	j.path = path
	return nil
}
