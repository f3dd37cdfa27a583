package main

// Notes:
// - main is exercised through run; os.Args are never read, so argument
//   independence is checked by running with altered os.Args.

import (
	"bytes"
	"os"
	"testing"
)

const want = "Output will be written to: /c/Users/Christian Abulhwa/PEBLGen/timesheet.html\n" +
	"Backup created at: /c/Users/Christian Abulhwa/PEBLGen/timesheet_backup.html\n" +
	"Script ready to execute\n"

func TestRun(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	run(&buf)
	if buf.String() != want {
		t.Errorf("run() output =\n%q\nwant\n%q", buf.String(), want)
	}
}

// Not parallel: replaces os.Args.
func TestRun_IgnoresArguments(t *testing.T) {
	orig := os.Args
	defer func() { os.Args = orig }()
	os.Args = []string{"peblgen", "--output", "/tmp/elsewhere.html", "-h", "extra"}

	var buf bytes.Buffer
	run(&buf)
	if buf.String() != want {
		t.Errorf("run() with arguments = %q, want %q", buf.String(), want)
	}
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, os.ErrClosed }

func TestRun_WriterFailureDoesNotPanic(t *testing.T) {
	t.Parallel()

	run(brokenWriter{})
}
