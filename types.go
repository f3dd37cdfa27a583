package peblgen

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// Input limits. Text lengths count characters, not bytes.
const (
	MaxTitleLength   = 200
	MaxProjectLength = 100
	MaxTaskLength    = 200
	MaxEntryNotes    = 500
	MaxEntries       = 10000
	MaxHoursPerEntry = 24.0
)

// entryDateLayout is the only accepted entry date format.
const entryDateLayout = "2006-01-02"

// Entry is one row of the timesheet.
type Entry struct {
	Date    string // YYYY-MM-DD
	Project string
	Task    string
	Hours   float64
	Notes   string
}

// Validate checks the entry date, hours and field lengths.
func (e *Entry) Validate() error {
	if e.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidEntry)
	}
	if _, err := time.Parse(entryDateLayout, e.Date); err != nil {
		return fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalidEntry, e.Date)
	}
	// Written as a negated range so NaN fails too.
	if !(e.Hours >= 0 && e.Hours <= MaxHoursPerEntry) {
		return fmt.Errorf("%w: hours must be between 0 and %.0f, got %.2f", ErrInvalidEntry, MaxHoursPerEntry, e.Hours)
	}
	if utf8.RuneCountInString(e.Project) > MaxProjectLength {
		return fmt.Errorf("%w: project exceeds %d characters", ErrInvalidEntry, MaxProjectLength)
	}
	if utf8.RuneCountInString(e.Task) > MaxTaskLength {
		return fmt.Errorf("%w: task exceeds %d characters", ErrInvalidEntry, MaxTaskLength)
	}
	if utf8.RuneCountInString(e.Notes) > MaxEntryNotes {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidEntry, MaxEntryNotes)
	}
	return nil
}

// Input holds everything needed to render one timesheet.
type Input struct {
	Title       string    // Heading shown above the table (empty = "Timesheet")
	Entries     []Entry   // Rows, sorted by date then project when rendered
	Notes       string    // Markdown, rendered below the table
	GeneratedAt time.Time // Zero = time.Now()
	DateFormat  string    // Footer date format, e.g. "DD/MM/YYYY" (empty = YYYY-MM-DD)
}

// Validate checks the title, the entry count and every entry.
func (in *Input) Validate() error {
	if n := utf8.RuneCountInString(in.Title); n > MaxTitleLength {
		return fmt.Errorf("%w: %d characters, max %d", ErrInvalidTitle, n, MaxTitleLength)
	}
	if len(in.Entries) > MaxEntries {
		return fmt.Errorf("%w: %d, max %d", ErrTooManyItems, len(in.Entries), MaxEntries)
	}
	for i := range in.Entries {
		if err := in.Entries[i].Validate(); err != nil {
			return fmt.Errorf("entries[%d]: %w", i, err)
		}
	}
	return nil
}

// Result describes a completed write.
type Result struct {
	HTML       string
	OutputPath string
	BackupPath string
	BackedUp   bool // false when no previous output existed
	TotalHours float64
}
