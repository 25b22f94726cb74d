package main

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/quarryhq/quarry/adapters"
	"github.com/quarryhq/quarry/cli"
	"github.com/quarryhq/quarry/core"
	"github.com/quarryhq/quarry/core/format"
)

// previewRows caps the number of rows logged as a table at debug level.
const previewRows = 10

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, err := cli.Parse(args)
	if err != nil {
		if flags.WroteHelp(err) {
			return cli.ExitSuccess
		}
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitConfig
	}

	logger, err := cli.NewLogger(len(opts.Verbose), opts.Quiet)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitConfig
	}
	defer func() { _ = logger.Sync() }()

	if err := execute(opts, logger); err != nil {
		logger.Errorf("%s", err)
		return cli.ExitCode(err)
	}

	return cli.ExitSuccess
}

func execute(opts *cli.Options, log *zap.SugaredLogger) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	selector, err := opts.ResolveFormat()
	if err != nil {
		return err
	}

	query, err := opts.ResolveQuery()
	if err != nil {
		return err
	}

	conn, err := adapters.NewConnection(&core.ConnectionParams{
		Name: "quarry",
		Type: opts.Driver,
		URL:  opts.DBURL,
	})
	if err != nil {
		return err
	}
	defer conn.Close()

	log.Debugf("executing query on %s connection %s", conn.GetType(), conn.GetID())

	result, err := conn.Query(context.Background(), query)
	if err != nil {
		return err
	}

	log.Infof("query returned %d rows", result.Len())

	if result.IsEmpty() && !opts.AllowEmpty {
		return cli.ErrNoRows
	}

	logPreview(result, log)

	sink, err := os.Create(opts.Output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	var formatOpts []format.Option
	if opts.Pretty {
		formatOpts = append(formatOpts, format.WithPrettyJSON())
	}

	count, err := format.Serialize(result, selector, sink, formatOpts...)
	if err != nil {
		sink.Close()
		return err
	}
	if err := sink.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	log.Infof("successfully saved %s to %s (%d rows)", selector, opts.Output, count)
	return nil
}

// logPreview logs the first rows of the result as a text table at debug level.
func logPreview(result *core.Result, log *zap.SugaredLogger) {
	if result.IsEmpty() || !log.Desugar().Core().Enabled(zapcore.DebugLevel) {
		return
	}

	rows := result.Rows()
	if len(rows) > previewRows {
		rows = rows[:previewRows]
	}

	var buf bytes.Buffer
	if err := format.NewTable().Format(result.Header(), rows, &buf); err != nil {
		log.Debugf("result preview failed: %s", err)
		return
	}

	log.Debugf("result preview:\n%s", buf.String())
}
