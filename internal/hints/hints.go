// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound suggests --config and, when one was searched, the user
// config location to create.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(p, "peblgen") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForOutputWrite returns hints for output or backup write errors.
func ForOutputWrite(path string) string {
	if path == "" {
		return format("check the output directory is writable")
	}
	return format("check " + path + " is writable, or pass --output to write elsewhere")
}

// ForSamePaths returns a hint for identical output and backup paths.
func ForSamePaths() string {
	return format("pass --backup with a different file name")
}

// ForDryRun reminds the user that nothing was written.
func ForDryRun() string {
	return format("dry run: no file was written; drop --dry-run to write")
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
