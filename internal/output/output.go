// Package output renders and persists comparison results. Writers collect
// entries as the run produces them and emit everything on Close, so a
// partially failed export never leaves a half-written artifact visible as
// a success.
package output

import "github.com/benloeffel/dns-compare/internal/compare"

// Header is the column set shared by all writers.
var Header = []string{"Subdomain", "Record Type", "Current Records", "New Records", "Status"}

// Writer consumes comparison entries and materializes them somewhere
// (terminal, CSV file, JSON file).
type Writer interface {
	WriteEntry(e compare.Entry) error
	Close() error
}

func row(e compare.Entry) []string {
	return []string{e.Name, string(e.RecordType), e.Current, e.New, string(e.Status)}
}
