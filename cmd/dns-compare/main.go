// Command dns-compare compares DNS records for a domain and a set of
// subdomains as served by two nameservers, typically before and after a
// DNS migration. Results are shown as a color-coded table and exported to
// a timestamped file; runs can optionally be recorded in a SQLite history.
//
// Required inputs not supplied by flags are collected interactively.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/benloeffel/dns-compare/internal/compare"
	"github.com/benloeffel/dns-compare/internal/config"
	"github.com/benloeffel/dns-compare/internal/logging"
	"github.com/benloeffel/dns-compare/internal/output"
	"github.com/benloeffel/dns-compare/internal/resolver"
	"github.com/benloeffel/dns-compare/internal/store"
)

func main() {
	var (
		configPath   = flag.String("config", "", "Path to YAML configuration file (or set DNS_COMPARE_CONFIG)")
		domain       = flag.String("domain", "", "Domain to check (prompted for when empty)")
		subdomains   = flag.String("subdomains", "", "Comma-separated subdomains, e.g. 'www,mail'")
		currentNS    = flag.String("current", "", "Current nameserver")
		newNS        = flag.String("new", "", "New nameserver")
		types        = flag.String("types", "", "Comma-separated record types (default A,MX,CNAME,TXT,NS)")
		resolverMode = flag.String("resolver", "", "Resolution mechanism: dig or client")
		outputDir    = flag.String("output", "", "Export directory (default logs)")
		formats      = flag.String("formats", "", "Comma-separated export formats: csv,json")
		historyPath  = flag.String("history", "", "SQLite history database path (empty disables history)")
		noColor      = flag.Bool("no-color", false, "Disable colored table output")
		jsonLogs     = flag.Bool("json-logs", false, "Enable JSON structured logging")
		debug        = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	cfg, err := config.Load(config.ResolveConfigPath(*configPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *resolverMode != "" {
		cfg.Resolver.Mode = *resolverMode
	}
	if *outputDir != "" {
		cfg.Output.Dir = *outputDir
	}
	if *formats != "" {
		cfg.Output.Formats = splitList(*formats)
	}
	if *historyPath != "" {
		cfg.History.Path = *historyPath
	}
	if *types != "" {
		cfg.RecordTypes = splitList(*types)
	}
	if *noColor {
		cfg.Output.NoColor = true
	}
	if *jsonLogs {
		cfg.Logging.Format = "json"
	}
	if *debug {
		cfg.Logging.Level = "DEBUG"
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.Configure(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	spec := collectSpec(*domain, *subdomains, *currentNS, *newNS, cfg.Types())

	res := buildResolver(cfg, logger)
	engine := compare.NewEngine(res, logger)

	fmt.Printf("\nComparing DNS records for %s and its subdomains between %s and %s...\n\n",
		spec.Domain, spec.CurrentServer, spec.NewServer)

	entries, err := engine.Compare(context.Background(), spec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "comparison failed: %v\n", err)
		os.Exit(1)
	}

	writers := buildWriters(cfg)
	for _, w := range writers {
		for _, e := range entries {
			if err := w.WriteEntry(e); err != nil {
				logger.Warn("failed to buffer entry", "error", err)
			}
		}
	}
	for _, w := range writers {
		if err := w.Close(); err != nil {
			// Export failures are reported but never discard the
			// comparison already on screen.
			fmt.Fprintf(os.Stderr, "\nError exporting results: %v\n", err)
			continue
		}
		if p, ok := w.(interface{ Path() string }); ok && p.Path() != "" {
			fmt.Printf("\nComparison results exported to %s\n", p.Path())
		}
	}

	saveHistory(cfg, logger, spec, entries)
}

// collectSpec assembles the comparison spec, prompting for anything
// required that the flags did not provide. Subdomains are only prompted
// for in a fully interactive session (no -domain flag).
func collectSpec(domain, subdomains, currentNS, newNS string, types []resolver.RecordType) compare.Spec {
	reader := bufio.NewReader(os.Stdin)
	interactive := domain == ""

	if domain == "" {
		domain = prompt(reader, "Enter the domain to check")
	}
	if interactive && subdomains == "" {
		subdomains = prompt(reader, "Enter subdomains to check (comma-separated, e.g. 'www,mail')")
	}
	if currentNS == "" {
		currentNS = prompt(reader, "Enter the current nameserver")
	}
	if newNS == "" {
		newNS = prompt(reader, "Enter the new nameserver")
	}

	return compare.Spec{
		Domain:        domain,
		Subdomains:    splitList(subdomains),
		CurrentServer: currentNS,
		NewServer:     newNS,
		RecordTypes:   types,
	}
}

func prompt(r *bufio.Reader, label string) string {
	fmt.Printf("%s: ", label)
	line, _ := r.ReadString('\n')
	return strings.TrimSpace(line)
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func buildResolver(cfg *config.Config, logger *slog.Logger) resolver.Resolver {
	if cfg.Resolver.Mode == config.ModeClient {
		return resolver.NewClient(cfg.ResolverTimeout(), logger)
	}
	return &resolver.Dig{Binary: cfg.Resolver.Binary, Logger: logger}
}

func buildWriters(cfg *config.Config) []output.Writer {
	writers := []output.Writer{output.NewScreen(cfg.Output.NoColor)}
	for _, f := range cfg.Output.Formats {
		switch f {
		case "csv":
			writers = append(writers, output.NewCSV(cfg.Output.Dir))
		case "json":
			writers = append(writers, output.NewJSON(cfg.Output.Dir))
		}
	}
	return writers
}

func saveHistory(cfg *config.Config, logger *slog.Logger, spec compare.Spec, entries []compare.Entry) {
	if cfg.History.Path == "" {
		return
	}
	db, err := store.Open(cfg.History.Path)
	if err != nil {
		logger.Warn("history disabled: failed to open store", "path", cfg.History.Path, "error", err)
		return
	}
	defer db.Close()

	id, err := db.SaveRun(spec, entries)
	if err != nil {
		logger.Warn("failed to record run", "error", err)
		return
	}
	logger.Info("run recorded", "id", id, "entries", len(entries))
}
