package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestValidateAssetName - Name validation
// ---------------------------------------------------------------------------

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple", input: "timesheet"},
		{name: "hyphenated", input: "weekly-sheet"},
		{name: "empty", input: "", wantErr: true},
		{name: "traversal", input: "../secret", wantErr: true},
		{name: "extension", input: "timesheet.html", wantErr: true},
		{name: "backslash", input: `a\b`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if tt.wantErr && !errors.Is(err, ErrInvalidAssetName) {
				t.Errorf("ValidateAssetName(%q) = %v, want ErrInvalidAssetName", tt.input, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateAssetName(%q) unexpected error: %v", tt.input, err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestEmbeddedLoader - Built-in assets
// ---------------------------------------------------------------------------

func TestEmbeddedLoader(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	css, err := loader.LoadStyle(DefaultStyleName)
	if err != nil {
		t.Fatalf("LoadStyle() error = %v", err)
	}
	if !strings.Contains(css, "table.timesheet") {
		t.Error("default style should target the timesheet table")
	}

	tmpl, err := loader.LoadTemplate(DefaultTemplateName)
	if err != nil {
		t.Fatalf("LoadTemplate() error = %v", err)
	}
	if !strings.Contains(tmpl, "</html>") {
		t.Error("default template should close the document")
	}

	if _, err := loader.LoadStyle("nonexistent-style-xyz"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle(missing) error = %v, want ErrStyleNotFound", err)
	}
	if _, err := loader.LoadTemplate("nonexistent"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("LoadTemplate(missing) error = %v, want ErrTemplateNotFound", err)
	}
	if _, err := loader.LoadTemplate("../timesheet"); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("LoadTemplate(traversal) error = %v, want ErrInvalidAssetName", err)
	}
}

// ---------------------------------------------------------------------------
// TestNewFilesystemLoader - Base path checks
// ---------------------------------------------------------------------------

func TestNewFilesystemLoader(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "valid directory", path: dir},
		{name: "empty", path: "", wantErr: true},
		{name: "missing", path: filepath.Join(dir, "missing"), wantErr: true},
		{name: "file", path: file, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewFilesystemLoader(tt.path)
			if tt.wantErr && !errors.Is(err, ErrInvalidBasePath) {
				t.Errorf("NewFilesystemLoader(%q) = %v, want ErrInvalidBasePath", tt.path, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("NewFilesystemLoader(%q) unexpected error: %v", tt.path, err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestAssetResolver - Custom first, embedded fallback
// ---------------------------------------------------------------------------

func TestAssetResolver(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "styles"), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "styles", "timesheet.css"), []byte("body{color:red}"), 0o600); err != nil {
		t.Fatal(err)
	}

	r, err := NewAssetResolver(dir)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	css, err := r.LoadStyle(DefaultStyleName)
	if err != nil {
		t.Fatalf("LoadStyle() error = %v", err)
	}
	if css != "body{color:red}" {
		t.Errorf("LoadStyle() = %q, want custom style", css)
	}

	// No templates/ in the custom dir: embedded copy is used.
	tmpl, err := r.LoadTemplate(DefaultTemplateName)
	if err != nil {
		t.Fatalf("LoadTemplate() error = %v", err)
	}
	if !strings.Contains(tmpl, "</html>") {
		t.Error("LoadTemplate() should fall back to embedded template")
	}

	if _, err := r.LoadStyle("../x"); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("LoadStyle(traversal) error = %v, want ErrInvalidAssetName", err)
	}
}

func TestNewAssetResolver_InvalidPath(t *testing.T) {
	t.Parallel()

	if _, err := NewAssetResolver(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, ErrInvalidBasePath) {
		t.Errorf("NewAssetResolver() error = %v, want ErrInvalidBasePath", err)
	}
}
