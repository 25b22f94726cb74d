package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/cli"
	"github.com/quarryhq/quarry/core"
)

func TestParse(t *testing.T) {
	r := require.New(t)

	opts, err := cli.Parse([]string{
		"--db-url", "root@tcp(localhost:3306)/db",
		"-q", "select 1",
		"-o", "out.csv",
		"--pretty",
		"-v", "-v",
	})
	r.NoError(err)

	r.Equal("root@tcp(localhost:3306)/db", opts.DBURL)
	r.Equal("select 1", opts.Query)
	r.Equal("out.csv", opts.Output)
	r.Equal("mysql", opts.Driver)
	r.True(opts.Pretty)
	r.Len(opts.Verbose, 2)

	r.NoError(opts.Validate())
}

func TestValidate(t *testing.T) {
	r := require.New(t)

	valid := cli.Options{
		DBURL:  "root@tcp(localhost:3306)/db",
		Query:  "select 1",
		Output: "out.csv",
	}

	testCases := []struct {
		name   string
		mutate func(*cli.Options)
	}{
		{"missing db url", func(o *cli.Options) { o.DBURL = "" }},
		{"missing output", func(o *cli.Options) { o.Output = "" }},
		{"missing query", func(o *cli.Options) { o.Query = "" }},
		{"query and query file", func(o *cli.Options) { o.QueryFile = "query.sql" }},
		{"quiet and verbose", func(o *cli.Options) { o.Quiet = true; o.Verbose = []bool{true} }},
	}

	for _, tc := range testCases {
		opts := valid
		tc.mutate(&opts)

		err := opts.Validate()
		r.ErrorIs(err, cli.ErrConfig, tc.name)
	}

	r.NoError(valid.Validate())
}

func TestResolveQuery(t *testing.T) {
	r := require.New(t)

	opts := cli.Options{Query: "select 1"}
	query, err := opts.ResolveQuery()
	r.NoError(err)
	r.Equal("select 1", query)

	queryFile := filepath.Join(t.TempDir(), "query.sql")
	r.NoError(os.WriteFile(queryFile, []byte("select 2;\n"), 0o644))

	opts = cli.Options{QueryFile: queryFile}
	query, err = opts.ResolveQuery()
	r.NoError(err)
	r.Equal("select 2;", query)

	opts = cli.Options{QueryFile: filepath.Join(t.TempDir(), "missing.sql")}
	_, err = opts.ResolveQuery()
	r.Error(err)
}

func TestResolveFormat(t *testing.T) {
	r := require.New(t)

	testCases := []struct {
		name     string
		opts     cli.Options
		expected core.Format
	}{
		{"explicit csv", cli.Options{Format: "csv", Output: "out.json"}, core.FormatCSV},
		{"explicit tsv", cli.Options{Format: "tsv", Output: "out.json"}, core.FormatTab},
		{"csv extension", cli.Options{Output: "out.csv"}, core.FormatCSV},
		{"json extension", cli.Options{Output: "report.json"}, core.FormatJSON},
		{"uppercase extension", cli.Options{Output: "OUT.CSV"}, core.FormatCSV},
		{"unknown extension falls back to tab", cli.Options{Output: "out.txt"}, core.FormatTab},
	}

	for _, tc := range testCases {
		actual, err := tc.opts.ResolveFormat()
		r.NoError(err, tc.name)
		r.Equal(tc.expected, actual, tc.name)
	}
}

func TestResolveFormat_Errors(t *testing.T) {
	r := require.New(t)

	// no extension and no override
	_, err := (&cli.Options{Output: "outfile"}).ResolveFormat()
	r.ErrorIs(err, cli.ErrConfig)

	// unknown explicit selector
	_, err = (&cli.Options{Format: "xml", Output: "out.xml"}).ResolveFormat()
	r.ErrorIs(err, cli.ErrConfig)
	r.ErrorIs(err, core.ErrUnsupportedFormat)
}
