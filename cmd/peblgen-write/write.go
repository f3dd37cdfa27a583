package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	peblgen "github.com/christian-pebl/PEBLgen"
	"github.com/christian-pebl/PEBLgen/internal/config"
	"github.com/christian-pebl/PEBLgen/internal/hints"
)

// Sentinel errors for command operations.
var (
	ErrReadNotes      = errors.New("failed to read notes file")
	ErrInvalidTimeout = errors.New("invalid timeout")
	ErrUnexpectedArgs = errors.New("unexpected arguments")
)

// BackupSkippedMessage replaces the backup line when there was nothing to back up.
const BackupSkippedMessage = "No existing output, backup skipped"

// writeParams is the resolved input of one run.
type writeParams struct {
	outputPath string
	backupPath string
	timeout    time.Duration
	assetPath  string
	input      peblgen.Input
}

// runMain parses args (including the program name), runs the command and
// returns the process exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}

	flags, positional, err := parseFlags(rest, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		return ExitUsage
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "peblgen-write %s\n", Version)
		return ExitSuccess
	}

	if err := run(ctx, flags, positional, env); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

func run(ctx context.Context, flags *writeFlags, positional []string, env *Environment) error {
	if len(positional) > 0 {
		return fmt.Errorf("%w: %s", ErrUnexpectedArgs, strings.Join(positional, " "))
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}

	params, err := resolveParams(flags, cfg, env)
	if err != nil {
		return err
	}
	logVerbose(flags, env, "Output: %s", params.outputPath)
	logVerbose(flags, env, "Backup: %s", displayBackup(params.backupPath))
	logVerbose(flags, env, "Entries: %d", len(params.input.Entries))

	gen, err := peblgen.NewGenerator(
		peblgen.WithOutputPath(params.outputPath),
		peblgen.WithBackupPath(params.backupPath),
		peblgen.WithTimeout(params.timeout),
		peblgen.WithAssetPath(params.assetPath),
	)
	if err != nil {
		return err
	}

	start := env.Now()

	if flags.dryRun {
		html, err := gen.Render(ctx, params.input)
		if err != nil {
			return err
		}
		logVerbose(flags, env, "Rendered %d bytes in %v", len(html), env.Now().Sub(start))
		if !flags.common.quiet {
			r := peblgen.NewReporter()
			r.OutputPath = params.outputPath
			r.BackupPath = displayBackup(params.backupPath)
			if err := r.Run(env.Stdout); err != nil {
				return err
			}
			fmt.Fprintf(env.Stderr, "Rendered %d bytes%s\n", len(html), hints.ForDryRun())
		}
		return nil
	}

	res, err := gen.Write(ctx, params.input)
	if err != nil {
		return withHint(err, params)
	}
	logVerbose(flags, env, "Wrote %d bytes in %v", len(res.HTML), env.Now().Sub(start))

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Wrote %s (%.2f hours)\n", res.OutputPath, res.TotalHours)
		if res.BackedUp {
			fmt.Fprintf(env.Stdout, "Backup created at: %s\n", res.BackupPath)
		} else {
			fmt.Fprintln(env.Stdout, BackupSkippedMessage)
		}
	}
	return nil
}

// loadConfig returns the default config when no name is given.
func loadConfig(nameOrPath string) (*config.Config, error) {
	if nameOrPath == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(nameOrPath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !strings.ContainsAny(nameOrPath, "/\\") {
			return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(nameOrPath)))
		}
		return nil, err
	}
	return cfg, nil
}

// resolveParams merges flags over config over defaults.
func resolveParams(flags *writeFlags, cfg *config.Config, env *Environment) (*writeParams, error) {
	p := &writeParams{
		outputPath: firstNonEmpty(flags.paths.output, cfg.Output.Path, peblgen.DefaultOutputPath),
		backupPath: firstNonEmpty(flags.paths.backup, cfg.Output.BackupPath, peblgen.DefaultBackupPath),
		assetPath:  flags.document.assetPath,
		timeout:    30 * time.Second,
	}
	if flags.paths.noBackup {
		p.backupPath = ""
	}

	if flags.timeout != "" {
		d, err := time.ParseDuration(flags.timeout)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimeout, flags.timeout)
		}
		if d <= 0 {
			return nil, fmt.Errorf("%w: must be positive, got %s", ErrInvalidTimeout, flags.timeout)
		}
		p.timeout = d
	}

	notes, err := readNotes(firstNonEmpty(flags.document.notes, cfg.Notes.File))
	if err != nil {
		return nil, err
	}

	entries := make([]peblgen.Entry, 0, len(cfg.Entries))
	for _, e := range cfg.Entries {
		entries = append(entries, peblgen.Entry{
			Date:    e.Date,
			Project: e.Project,
			Task:    e.Task,
			Hours:   e.Hours,
			Notes:   e.Notes,
		})
	}

	p.input = peblgen.Input{
		Title:       firstNonEmpty(flags.document.title, cfg.Document.Title),
		Entries:     entries,
		Notes:       notes,
		GeneratedAt: env.Now(),
		DateFormat:  firstNonEmpty(flags.document.dateFormat, cfg.Document.DateFormat),
	}
	return p, nil
}

func readNotes(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- notes path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrReadNotes, path, err)
	}
	return string(data), nil
}

// withHint appends an actionable hint to write and path errors.
func withHint(err error, p *writeParams) error {
	switch {
	case errors.Is(err, peblgen.ErrSamePaths):
		return fmt.Errorf("%w%s", err, hints.ForSamePaths())
	case errors.Is(err, peblgen.ErrBackup):
		return fmt.Errorf("%w%s", err, hints.ForOutputWrite(p.backupPath))
	case errors.Is(err, peblgen.ErrWriteOutput):
		return fmt.Errorf("%w%s", err, hints.ForOutputWrite(p.outputPath))
	}
	return err
}

func displayBackup(path string) string {
	if path == "" {
		return "(disabled)"
	}
	return path
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func logVerbose(flags *writeFlags, env *Environment, format string, args ...any) {
	if flags.common.verbose && !flags.common.quiet {
		fmt.Fprintf(env.Stderr, format+"\n", args...)
	}
}
