package resolver

import (
	"context"
	"log/slog"
	"os/exec"
	"strings"
)

// Dig resolves by spawning the system dig binary in +short mode, one
// process per query. No retries and no timeout beyond what dig itself
// enforces (or the caller's context).
type Dig struct {
	// Binary is the dig executable to run. Empty means "dig" on PATH.
	Binary string
	Logger *slog.Logger
}

// NewDig returns a Dig resolver using the dig binary on PATH.
func NewDig(logger *slog.Logger) *Dig {
	return &Dig{Binary: "dig", Logger: logger}
}

// Resolve runs `dig @server name TYPE +short` and returns its output lines.
// A non-zero exit or spawn failure is treated as "no records"; only a
// malformed invocation produces an error.
func (d *Dig) Resolve(ctx context.Context, server, name string, rtype RecordType) ([]string, error) {
	if err := validateQuery(server, name, rtype); err != nil {
		return nil, err
	}

	bin := d.Binary
	if bin == "" {
		bin = "dig"
	}

	out, err := exec.CommandContext(ctx, bin, "@"+server, name, string(rtype), "+short").Output()
	if err != nil {
		if d.Logger != nil {
			d.Logger.Warn("dig query failed",
				"server", server,
				"name", name,
				"type", string(rtype),
				"error", err,
			)
		}
		return nil, nil
	}
	return splitAnswers(string(out)), nil
}

// splitAnswers turns dig +short output into an ordered answer set.
// Empty output yields an empty set, not a single empty answer.
func splitAnswers(out string) []string {
	out = strings.TrimSpace(out)
	if out == "" {
		return nil
	}
	lines := strings.Split(out, "\n")
	answers := make([]string, 0, len(lines))
	for _, line := range lines {
		answers = append(answers, strings.TrimRight(line, "\r"))
	}
	return answers
}
