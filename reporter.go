package peblgen

import (
	"fmt"
	"io"
)

// ReadyMessage is the last line printed by Run.
const ReadyMessage = "Script ready to execute"

// Reporter prints where the timesheet and its backup are meant to go.
// It holds the template but never renders or writes it.
type Reporter struct {
	OutputPath string
	BackupPath string
	template   string
}

// NewReporter creates a Reporter with the default paths.
func NewReporter() *Reporter {
	return &Reporter{
		OutputPath: DefaultOutputPath,
		BackupPath: DefaultBackupPath,
		template:   StaticTemplate,
	}
}

// Template returns the HTML preamble held by the reporter.
func (r *Reporter) Template() string {
	return r.template
}

// Run writes the three status lines to w.
// The paths are printed as-is; nothing is stat'ed, opened or created.
// The only error source is w itself.
func (r *Reporter) Run(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Output will be written to: %s\nBackup created at: %s\n%s\n",
		r.OutputPath, r.BackupPath, ReadyMessage)
	return err
}
