package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	verbose := hasVerboseFlag(os.Args[1:])

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}

// hasVerboseFlag parses args with the command's own flag set before
// runMain so maxprocs logging can be configured first. Combined shorthand
// such as -qv counts; parse errors are left for runMain to report.
func hasVerboseFlag(args []string) bool {
	f, _, err := parseFlags(args, io.Discard)
	if err != nil {
		return false
	}
	return f.common.verbose
}
