package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/quarryhq/quarry/core"
)

// Options is the resolved command line and environment configuration.
type Options struct {
	DBURL      string `long:"db-url" env:"DATABASE_URL" description:"database connection string (user:pass@tcp(host:port)/dbname)"`
	Driver     string `long:"driver" choice:"mysql" choice:"mariadb" default:"mysql" description:"database driver alias"`
	Query      string `short:"q" long:"query" env:"DATABASE_QUERY" description:"SQL query to execute"`
	QueryFile  string `long:"query-file" description:"path to a file containing the SQL query"`
	Output     string `short:"o" long:"output" env:"OUTPUT_FILE" description:"output file path"`
	Format     string `short:"f" long:"format" choice:"csv" choice:"json" choice:"tsv" choice:"tab" description:"output format override (default: resolved from the output extension)"`
	Pretty     bool   `long:"pretty" description:"pretty-print json output"`
	AllowEmpty bool   `long:"allow-empty" description:"exit successfully when the query returns no rows"`
	Verbose    []bool `short:"v" long:"verbose" description:"increase log verbosity"`
	Quiet      bool   `long:"quiet" description:"only log errors"`
}

// Parse reads options from args and the environment.
func Parse(args []string) (*Options, error) {
	var opts Options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}

	return &opts, nil
}

// Validate checks required options and mutual exclusions.
func (o *Options) Validate() error {
	if o.DBURL == "" {
		return fmt.Errorf("%w: missing database connection string (--db-url or DATABASE_URL)", ErrConfig)
	}
	if o.Output == "" {
		return fmt.Errorf("%w: missing output file path (--output or OUTPUT_FILE)", ErrConfig)
	}
	if o.Query == "" && o.QueryFile == "" {
		return fmt.Errorf("%w: missing query (--query, --query-file or DATABASE_QUERY)", ErrConfig)
	}
	if o.Query != "" && o.QueryFile != "" {
		return fmt.Errorf("%w: --query and --query-file are mutually exclusive", ErrConfig)
	}
	if o.Quiet && len(o.Verbose) > 0 {
		return fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", ErrConfig)
	}

	return nil
}

// ResolveQuery returns the SQL to execute, reading the query file if needed.
func (o *Options) ResolveQuery() (string, error) {
	if o.Query != "" {
		return o.Query, nil
	}

	content, err := os.ReadFile(o.QueryFile)
	if err != nil {
		return "", fmt.Errorf("failed to read query file: %w", err)
	}

	query := strings.TrimSpace(string(content))
	if query == "" {
		return "", fmt.Errorf("%w: query file %q is empty", ErrConfig, o.QueryFile)
	}

	return query, nil
}

// ResolveFormat picks the output format: an explicit --format wins, otherwise
// the output file extension decides - .csv and .json map to their formats,
// any other extension falls back to tab-delimited, and a missing extension is
// a configuration error.
func (o *Options) ResolveFormat() (core.Format, error) {
	if o.Format != "" {
		selector, err := core.ParseFormat(o.Format)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrConfig, err)
		}
		return selector, nil
	}

	ext := filepath.Ext(o.Output)
	switch strings.ToLower(ext) {
	case ".csv":
		return core.FormatCSV, nil
	case ".json":
		return core.FormatJSON, nil
	case "":
		return 0, fmt.Errorf("%w: output file %q has no extension and no --format override given", ErrConfig, o.Output)
	default:
		return core.FormatTab, nil
	}
}
