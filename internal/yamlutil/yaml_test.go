package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type sheet struct {
	Title string  `yaml:"title"`
	Hours float64 `yaml:"hours"`
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Input checks
// ---------------------------------------------------------------------------

func TestUnmarshalStrict_InputChecks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
	}{
		{name: "empty data", data: nil, dest: &sheet{}, wantErr: ErrNilData},
		{name: "nil destination", data: []byte("title: x"), dest: nil, wantErr: ErrNilDestination},
		{name: "too large", data: []byte(strings.Repeat("a", MaxInputSize+1)), dest: &sheet{}, wantErr: ErrInputTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := UnmarshalStrict(tt.data, tt.dest); !errors.Is(err, tt.wantErr) {
				t.Errorf("UnmarshalStrict() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Decoding and unknown key rejection
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	var s sheet
	if err := UnmarshalStrict([]byte("title: March\nhours: 7.5\n"), &s); err != nil {
		t.Fatalf("UnmarshalStrict() error = %v", err)
	}
	if s.Title != "March" || s.Hours != 7.5 {
		t.Errorf("UnmarshalStrict() = %+v", s)
	}
	if err := UnmarshalStrict([]byte("title: March\nextra: true\n"), &s); err == nil {
		t.Error("UnmarshalStrict() expected error for unknown key")
	}
}
