package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds output verbosity flags.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pathFlags holds destination flags.
type pathFlags struct {
	output   string
	backup   string
	noBackup bool
}

// documentFlags holds document content flags.
type documentFlags struct {
	title      string
	notes      string
	dateFormat string
	assetPath  string
}

// writeFlags holds all flags of peblgen-write.
type writeFlags struct {
	common   commonFlags
	paths    pathFlags
	document documentFlags
	timeout  string
	dryRun   bool
	version  bool
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
}

func addPathFlags(fs *flag.FlagSet, f *pathFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "timesheet output path")
	fs.StringVar(&f.backup, "backup", "", "backup path for the previous timesheet")
	fs.BoolVar(&f.noBackup, "no-backup", false, "replace the output without a backup")
}

func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.title, "title", "", "heading shown above the table")
	fs.StringVar(&f.notes, "notes", "", "markdown file rendered below the table")
	fs.StringVar(&f.dateFormat, "date-format", "", "footer date format or preset (iso, european, us, long)")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory overriding styles/ and templates/")
}

// parseFlags parses args (without the program name) and returns the
// remaining positional arguments.
func parseFlags(args []string, usageOut io.Writer) (*writeFlags, []string, error) {
	fs := flag.NewFlagSet("peblgen-write", flag.ContinueOnError)
	fs.SetOutput(usageOut)
	f := &writeFlags{}

	fs.StringVarP(&f.timeout, "timeout", "t", "", "render and write timeout (e.g., 10s, 1m)")
	fs.BoolVar(&f.dryRun, "dry-run", false, "render and report without writing")
	fs.BoolVar(&f.version, "version", false, "show version")

	addCommonFlags(fs, &f.common)
	addPathFlags(fs, &f.paths)
	addDocumentFlags(fs, &f.document)

	fs.Usage = func() { printUsage(usageOut) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
