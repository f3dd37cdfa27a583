// Package peblgen prints the status of the PEBLGen timesheet build and,
// when asked, writes the timesheet document itself.
//
// # Reporter
//
// The Reporter holds the HTML preamble and the two destination paths, and
// prints where the timesheet would go:
//
//	r := peblgen.NewReporter()
//	_ = r.Run(os.Stdout)
//
// Run writes three fixed lines and never touches the filesystem.
//
// # Generator
//
// The Generator renders the full document, starting from StaticTemplate
// verbatim, and writes it atomically. An existing output file is copied to
// the backup path first:
//
//	gen, err := peblgen.NewGenerator(
//	    peblgen.WithOutputPath("out/timesheet.html"),
//	    peblgen.WithBackupPath("out/timesheet_backup.html"),
//	)
//	if err != nil {
//	    return err
//	}
//	res, err := gen.Write(ctx, peblgen.Input{
//	    Title:   "Timesheet",
//	    Entries: []peblgen.Entry{{Date: "2024-03-01", Project: "PEBL", Hours: 7.5}},
//	    Notes:   "Site visit on **Friday**.",
//	})
//
// Notes are Markdown and rendered with goldmark. Entry fields are escaped.
package peblgen
