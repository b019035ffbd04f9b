// Package compare implements the record comparison engine: given a domain,
// a set of subdomains and two nameservers, it resolves every (name, type)
// pair against both servers and classifies each answer position as
// Identical or Different.
//
// Comparison is positional: the shorter answer set is padded with empty
// strings and elements are matched by index, byte for byte. Two servers
// returning the same records in a different order therefore report
// Different rows. That mirrors the behavior of comparing dig +short output
// line by line and is kept deliberately; see the Compare doc comment.
package compare

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/benloeffel/dns-compare/internal/resolver"
)

// Status classifies one compared record position.
type Status string

const (
	StatusIdentical Status = "Identical"
	StatusDifferent Status = "Different"
)

// Entry is one row of the diff output. Either record value may be empty
// when one server returned fewer answers than the other.
type Entry struct {
	Name       string              `json:"subdomain"`
	RecordType resolver.RecordType `json:"record_type"`
	Current    string              `json:"current_records"`
	New        string              `json:"new_records"`
	Status     Status              `json:"status"`
}

// Spec describes one comparison run.
type Spec struct {
	Domain        string
	Subdomains    []string
	CurrentServer string
	NewServer     string
	RecordTypes   []resolver.RecordType
}

// Validation errors raised before any query is issued.
var (
	ErrMissingDomain        = errors.New("domain must not be empty")
	ErrMissingCurrentServer = errors.New("current nameserver must not be empty")
	ErrMissingNewServer     = errors.New("new nameserver must not be empty")
)

func (s Spec) validate() error {
	if strings.TrimSpace(s.Domain) == "" {
		return ErrMissingDomain
	}
	if strings.TrimSpace(s.CurrentServer) == "" {
		return ErrMissingCurrentServer
	}
	if strings.TrimSpace(s.NewServer) == "" {
		return ErrMissingNewServer
	}
	return nil
}

// Targets returns the query targets in iteration order, base domain first,
// subdomains in input order.
func (s Spec) Targets() []string {
	targets := make([]string, 0, len(s.Subdomains)+1)
	targets = append(targets, s.Domain)
	return append(targets, s.Subdomains...)
}

// FullName derives the fully-qualified query name for one target. The base
// domain is used verbatim; anything else is treated as a label under it.
func FullName(target, domain string) string {
	if target == domain {
		return domain
	}
	return target + "." + domain
}

// Engine drives a Resolver against two nameservers and produces the diff.
type Engine struct {
	resolver resolver.Resolver
	logger   *slog.Logger
}

// NewEngine returns an engine using the given resolver. A nil logger falls
// back to slog.Default.
func NewEngine(r resolver.Resolver, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{resolver: r, logger: logger}
}

// Compare resolves every (target, record type) pair against both servers,
// in nested-loop order, and emits one Entry per answer position. Queries
// run strictly sequentially, two per pair; for fixed answer sets the output
// is fully deterministic.
//
// A resolution error on either side of a pair skips that pair (it
// contributes zero entries) without aborting the run. Empty answer sets on
// both sides likewise contribute nothing.
//
// Known limitation: answer sets are compared by position, so servers that
// return the same multi-record set (MX, TXT) in different orders produce
// spurious Different rows.
func (e *Engine) Compare(ctx context.Context, spec Spec) ([]Entry, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0)
	for _, target := range spec.Targets() {
		name := FullName(target, spec.Domain)
		for _, rtype := range spec.RecordTypes {
			current, err := e.resolver.Resolve(ctx, spec.CurrentServer, name, rtype)
			if err != nil {
				e.logger.Warn("skipping pair: current server lookup failed",
					"name", name, "type", string(rtype), "error", err)
				continue
			}
			updated, err := e.resolver.Resolve(ctx, spec.NewServer, name, rtype)
			if err != nil {
				e.logger.Warn("skipping pair: new server lookup failed",
					"name", name, "type", string(rtype), "error", err)
				continue
			}

			for _, pair := range zipPad(current, updated) {
				status := StatusDifferent
				if pair[0] == pair[1] {
					status = StatusIdentical
				}
				entries = append(entries, Entry{
					Name:       name,
					RecordType: rtype,
					Current:    pair[0],
					New:        pair[1],
					Status:     status,
				})
			}
		}
	}
	return entries, nil
}

// zipPad pairs two answer sets positionally, padding the shorter with
// empty strings until both have equal length. This is length equalization
// only; no value-matching alignment is attempted.
func zipPad(a, b []string) [][2]string {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	pairs := make([][2]string, n)
	for i := range pairs {
		if i < len(a) {
			pairs[i][0] = a[i]
		}
		if i < len(b) {
			pairs[i][1] = b[i]
		}
	}
	return pairs
}

// Count tallies entries by status.
func Count(entries []Entry) (identical, different int) {
	for _, e := range entries {
		if e.Status == StatusIdentical {
			identical++
		} else {
			different++
		}
	}
	return identical, different
}
