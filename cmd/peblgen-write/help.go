package main

import (
	"fmt"
	"io"
)

// printUsage prints the command usage.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: peblgen-write [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render the timesheet and write it, keeping a backup of the previous file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Destinations:")
	fmt.Fprintln(w, "  -o, --output <path>       Timesheet path")
	fmt.Fprintln(w, "      --backup <path>       Backup path for the previous timesheet")
	fmt.Fprintln(w, "      --no-backup           Replace the output without a backup")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>           Heading shown above the table")
	fmt.Fprintln(w, "      --notes <path>        Markdown file rendered below the table")
	fmt.Fprintln(w, "      --date-format <s>     Footer date format")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, european, us, long")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom styles/ and templates/ directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "General:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -t, --timeout <d>         Render and write timeout (default: 30s)")
	fmt.Fprintln(w, "      --dry-run             Render and report, write nothing")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed progress")
	fmt.Fprintln(w, "      --version             Show version")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Precedence: flags > config file > defaults.")
}
