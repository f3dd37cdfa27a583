package peblgen

// Notes:
// - Run never touches the filesystem; TestReporter_Run_NoFilesystemWrites
//   points the reporter at paths inside a temp dir and checks nothing appears.
// - Write errors from the io.Writer are the only error source; covered by
//   failingWriter.

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const wantReport = "Output will be written to: /c/Users/Christian Abulhwa/PEBLGen/timesheet.html\n" +
	"Backup created at: /c/Users/Christian Abulhwa/PEBLGen/timesheet_backup.html\n" +
	"Script ready to execute\n"

// ---------------------------------------------------------------------------
// TestReporter_Run - Exact output
// ---------------------------------------------------------------------------

func TestReporter_Run(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := NewReporter().Run(&buf); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if buf.String() != wantReport {
		t.Errorf("Run() output =\n%q\nwant\n%q", buf.String(), wantReport)
	}
}

func TestReporter_Run_Idempotent(t *testing.T) {
	t.Parallel()

	r := NewReporter()
	var buf bytes.Buffer
	const runs = 5
	for range runs {
		if err := r.Run(&buf); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	}
	if want := strings.Repeat(wantReport, runs); buf.String() != want {
		t.Errorf("%d runs produced %q, want %q", runs, buf.String(), want)
	}
}

func TestReporter_Run_NoFilesystemWrites(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	r := NewReporter()
	r.OutputPath = filepath.Join(dir, "timesheet.html")
	r.BackupPath = filepath.Join(dir, "timesheet_backup.html")

	var buf bytes.Buffer
	if err := r.Run(&buf); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	for _, p := range []string{r.OutputPath, r.BackupPath} {
		if _, err := os.Stat(p); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("Run() must not create %s (stat err = %v)", p, err)
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("directory holds %d entries, want 0", len(entries))
	}
}

func TestReporter_Run_MalformedPaths(t *testing.T) {
	t.Parallel()

	r := NewReporter()
	r.OutputPath = "\x00not a path"
	r.BackupPath = ""

	var buf bytes.Buffer
	if err := r.Run(&buf); err != nil {
		t.Fatalf("Run() error = %v, paths are never dereferenced", err)
	}
	if !strings.HasPrefix(buf.String(), "Output will be written to: \x00not a path\n") {
		t.Errorf("Run() output = %q", buf.String())
	}
}

type failingWriter struct{}

var errWriter = errors.New("writer closed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWriter }

func TestReporter_Run_WriterError(t *testing.T) {
	t.Parallel()

	if err := NewReporter().Run(failingWriter{}); !errors.Is(err, errWriter) {
		t.Errorf("Run() error = %v, want %v", err, errWriter)
	}
}

// ---------------------------------------------------------------------------
// TestReporter_Template - Held preamble
// ---------------------------------------------------------------------------

func TestReporter_Template(t *testing.T) {
	t.Parallel()

	r := NewReporter()
	if r.Template() != StaticTemplate {
		t.Error("Template() should return StaticTemplate")
	}

	const wantPreamble = "<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n" +
		"    <meta charset=\"UTF-8\">\n" +
		"    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n" +
		"    <title>Timesheet - PEBLGen</title>"
	if StaticTemplate != wantPreamble {
		t.Errorf("StaticTemplate = %q, want %q", StaticTemplate, wantPreamble)
	}
}
