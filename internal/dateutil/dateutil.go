// Package dateutil formats dates with user-facing formats such as
// "DD/MM/YYYY".
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// DefaultDateFormat is used when no format is given.
const DefaultDateFormat = "YYYY-MM-DD"

// dateTokens maps format tokens to Go layout components.
// Longest tokens first so matching is greedy.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets are named shortcuts accepted wherever a format is.
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// Layout is a parsed date format. Token segments are Go layout
// components; everything else is written as is.
type Layout []segment

type segment struct {
	text  string
	token bool
}

// Format renders t with the layout.
func (l Layout) Format(t time.Time) string {
	var b strings.Builder
	for _, s := range l {
		if s.token {
			b.WriteString(t.Format(s.text))
		} else {
			b.WriteString(s.text)
		}
	}
	return b.String()
}

// ParseDateFormat parses a token format.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D. Text inside brackets and any
// other character is kept literally, so "[Week of] D MMM" keeps "Week of"
// and digits or words like "Mon" never reach the Go layout.
func ParseDateFormat(format string) (Layout, error) {
	if format == "" {
		return nil, fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if utf8.RuneCountInString(format) > MaxDateFormatLength {
		return nil, fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var l Layout
	for i := 0; i < len(format); {
		if format[i] == '[' {
			end := strings.IndexByte(format[i+1:], ']')
			if end == -1 {
				return nil, fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			l = l.literal(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		if goFmt, n := matchToken(format[i:]); n > 0 {
			l = append(l, segment{text: goFmt, token: true})
			i += n
			continue
		}
		l = l.literal(format[i : i+1])
		i++
	}

	return l, nil
}

// literal appends text, merging it into a trailing literal segment.
func (l Layout) literal(text string) Layout {
	if n := len(l); n > 0 && !l[n-1].token {
		l[n-1].text += text
		return l
	}
	return append(l, segment{text: text})
}

// matchToken returns the Go layout for the token at the start of s and its
// length, or 0 if s does not start with a token.
func matchToken(s string) (string, int) {
	for _, t := range dateTokens {
		if strings.HasPrefix(s, t.token) {
			return t.goFmt, len(t.token)
		}
	}
	return "", 0
}

// Format renders t using a token format or a preset name.
// An empty format means DefaultDateFormat.
func Format(format string, t time.Time) (string, error) {
	if format == "" {
		format = DefaultDateFormat
	}
	if preset, ok := DatePresets[strings.ToLower(format)]; ok {
		format = preset
	}
	layout, err := ParseDateFormat(format)
	if err != nil {
		return "", err
	}
	return layout.Format(t), nil
}
