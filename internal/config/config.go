// Package config loads peblgen YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/christian-pebl/PEBLgen/internal/fileutil"
	"github.com/christian-pebl/PEBLgen/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrSamePaths       = errors.New("output.path and output.backupPath must differ")
)

// Field length limits.
const (
	MaxPathLength       = 4096
	MaxTitleLength      = 200
	MaxDateFormatLength = 50
)

// configDirName is the directory searched under os.UserConfigDir.
const configDirName = "peblgen"

// Config holds everything the write command can read from a file.
// Empty fields fall back to the command defaults.
type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Document DocumentConfig `yaml:"document"`
	Notes    NotesConfig    `yaml:"notes"`
	Entries  []EntryConfig  `yaml:"entries"`
}

// OutputConfig defines where the timesheet and its backup go.
type OutputConfig struct {
	Path       string `yaml:"path"`
	BackupPath string `yaml:"backupPath"`
}

// DocumentConfig defines document presentation.
type DocumentConfig struct {
	Title      string `yaml:"title"`
	DateFormat string `yaml:"dateFormat"` // Footer date, token format or preset
}

// NotesConfig points at a Markdown file rendered below the table.
type NotesConfig struct {
	File string `yaml:"file"` // Relative paths resolve against the config file
}

// EntryConfig is one timesheet row as written in YAML.
type EntryConfig struct {
	Date    string  `yaml:"date"`
	Project string  `yaml:"project"`
	Task    string  `yaml:"task"`
	Hours   float64 `yaml:"hours"`
	Notes   string  `yaml:"notes"`
}

// DefaultConfig returns a config with the default title and no rows.
func DefaultConfig() *Config {
	return &Config{
		Document: DocumentConfig{Title: "Timesheet"},
	}
}

// Validate checks field lengths and path consistency.
// Entry contents are checked by the generator.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"output.path", c.Output.Path, MaxPathLength},
		{"output.backupPath", c.Output.BackupPath, MaxPathLength},
		{"document.title", c.Document.Title, MaxTitleLength},
		{"document.dateFormat", c.Document.DateFormat, MaxDateFormatLength},
		{"notes.file", c.Notes.File, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Output.Path != "" && c.Output.BackupPath != "" &&
		fileutil.SamePath(c.Output.Path, c.Output.BackupPath) {
		return fmt.Errorf("%w: %s", ErrSamePaths, c.Output.Path)
	}
	return nil
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if n := utf8.RuneCountInString(value); n > maxLength {
		return fmt.Errorf("%w: %s (%d characters, max %d)", ErrFieldTooLong, fieldName, n, maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or a config name.
// A value containing a path separator is read directly; anything else is
// searched as name.yaml or name.yml in the working directory and then in
// the user config directory. A missing file is an error.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !strings.ContainsAny(nameOrPath, "/\\") {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if cfg.Notes.File != "" && !filepath.IsAbs(cfg.Notes.File) {
		cfg.Notes.File = filepath.Join(filepath.Dir(configPath), cfg.Notes.File)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SearchPaths lists the files LoadConfig tries for a config name, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, configDirName, name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
