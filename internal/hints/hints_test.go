package hints

import (
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		searched []string
		want     []string
	}{
		{
			name:     "suggests user config path",
			searched: []string{"work.yaml", "/home/u/.config/peblgen/work.yaml"},
			want:     []string{"--config", "or create /home/u/.config/peblgen/work.yaml"},
		},
		{
			name:     "no user path",
			searched: []string{"work.yaml"},
			want:     []string{"--config"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ForConfigNotFound(tt.searched)
			if !strings.HasPrefix(got, "\n  hint: ") {
				t.Errorf("hint %q missing prefix", got)
			}
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("hint %q missing %q", got, w)
				}
			}
		})
	}
}

func TestForOutputWrite(t *testing.T) {
	t.Parallel()

	if got := ForOutputWrite("/tmp/x.html"); !strings.Contains(got, "/tmp/x.html") {
		t.Errorf("ForOutputWrite() = %q, want path mentioned", got)
	}
	if got := ForOutputWrite(""); !strings.Contains(got, "writable") {
		t.Errorf("ForOutputWrite(\"\") = %q", got)
	}
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	for _, h := range []string{ForSamePaths(), ForDryRun()} {
		if !strings.HasPrefix(h, "\n  hint: ") {
			t.Errorf("hint %q missing prefix", h)
		}
	}
}
