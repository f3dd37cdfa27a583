// Command peblgen prints where the PEBLGen timesheet and its backup are
// meant to go. It takes no flags, reads no environment and writes no files;
// peblgen-write does the actual writing.
package main

import (
	"io"
	"os"

	peblgen "github.com/christian-pebl/PEBLgen"
)

func main() {
	run(os.Stdout)
}

// run prints the status lines. Arguments are ignored and the exit status
// is always 0, so a failed stdout write is not reported.
func run(w io.Writer) {
	_ = peblgen.NewReporter().Run(w)
}
