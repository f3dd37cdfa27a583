package peblgen

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"html/template"
	"slices"
	"time"

	"github.com/cenkalti/backoff"

	"github.com/christian-pebl/PEBLgen/internal/assets"
	"github.com/christian-pebl/PEBLgen/internal/dateutil"
	"github.com/christian-pebl/PEBLgen/internal/fileutil"
	"github.com/christian-pebl/PEBLgen/internal/pipeline"
)

// defaultTimeout bounds a single Render or Write.
const defaultTimeout = 30 * time.Second

// defaultTitle is used when Input.Title is empty.
const defaultTitle = "Timesheet"

// Backup copy retry defaults.
const (
	defaultBackupAttempts   = 3
	defaultBackupRetryDelay = time.Second
)

// Option configures a Generator.
type Option func(*Generator)

type generatorConfig struct {
	timeout          time.Duration
	outputPath       string
	backupPath       string
	assetPath        string
	backupAttempts   int
	backupRetryDelay time.Duration
}

// WithTimeout sets the render and write timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("peblgen: WithTimeout duration must be positive")
	}
	return func(g *Generator) {
		g.cfg.timeout = d
	}
}

// WithOutputPath sets where Write puts the timesheet.
func WithOutputPath(path string) Option {
	return func(g *Generator) {
		g.cfg.outputPath = path
	}
}

// WithBackupPath sets where Write copies an existing timesheet before
// replacing it. An empty path disables the backup.
func WithBackupPath(path string) Option {
	return func(g *Generator) {
		g.cfg.backupPath = path
	}
}

// WithBackupRetry sets how many times Write tries to copy the previous
// output before giving up, and the pause between tries. The default is 3
// attempts one second apart.
// Panics if attempts < 1 or delay < 0.
func WithBackupRetry(attempts int, delay time.Duration) Option {
	if attempts < 1 {
		panic("peblgen: WithBackupRetry attempts must be at least 1")
	}
	if delay < 0 {
		panic("peblgen: WithBackupRetry delay must not be negative")
	}
	return func(g *Generator) {
		g.cfg.backupAttempts = attempts
		g.cfg.backupRetryDelay = delay
	}
}

// WithAssetPath overrides the embedded style and template with files from
// a directory. Missing files fall back to the embedded copies.
func WithAssetPath(path string) Option {
	return func(g *Generator) {
		g.cfg.assetPath = path
	}
}

// withClock replaces time.Now for tests.
func withClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// withCopyFile replaces the backup copy for tests.
func withCopyFile(copyFile func(src, dst string) error) Option {
	return func(g *Generator) {
		g.copyFile = copyFile
	}
}

// Generator renders timesheets and writes them with a backup of the
// previous version. A Generator is safe for concurrent Render calls.
type Generator struct {
	cfg   generatorConfig
	notes pipeline.NotesConverter
	tmpl  *template.Template
	css   template.CSS
	now   func() time.Time

	copyFile func(src, dst string) error
}

// NewGenerator creates a Generator writing to DefaultOutputPath and
// DefaultBackupPath unless options say otherwise.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		cfg: generatorConfig{
			timeout:          defaultTimeout,
			outputPath:       DefaultOutputPath,
			backupPath:       DefaultBackupPath,
			backupAttempts:   defaultBackupAttempts,
			backupRetryDelay: defaultBackupRetryDelay,
		},
		notes:    pipeline.NewGoldmarkConverter(),
		now:      time.Now,
		copyFile: fileutil.CopyFile,
	}
	for _, opt := range opts {
		opt(g)
	}

	loader, err := assets.NewAssetResolver(g.cfg.assetPath)
	if err != nil {
		return nil, err
	}
	if err := g.loadAssets(loader); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Generator) loadAssets(loader assets.AssetLoader) error {
	css, err := loader.LoadStyle(assets.DefaultStyleName)
	if err != nil {
		return err
	}
	body, err := loader.LoadTemplate(assets.DefaultTemplateName)
	if err != nil {
		return err
	}
	tmpl, err := template.New(assets.DefaultTemplateName).Parse(body)
	if err != nil {
		return fmt.Errorf("%w: parsing template: %v", ErrRender, err)
	}
	// Style content comes from the binary or the user's own asset directory.
	g.css = template.CSS(css) // #nosec G203 -- trusted asset
	g.tmpl = tmpl
	return nil
}

// OutputPath returns the configured output path.
func (g *Generator) OutputPath() string { return g.cfg.outputPath }

// BackupPath returns the configured backup path.
func (g *Generator) BackupPath() string { return g.cfg.backupPath }

type rowData struct {
	Date    string
	Project string
	Task    string
	Hours   string
	Notes   string
}

type pageData struct {
	CSS         template.CSS
	Title       string
	Rows        []rowData
	TotalHours  string
	NotesHTML   template.HTML
	GeneratedOn string
}

// Render returns the complete timesheet document. It starts with
// StaticTemplate verbatim; entry fields are HTML-escaped and notes are
// rendered from Markdown.
func (g *Generator) Render(ctx context.Context, in Input) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.timeout)
	defer cancel()

	html, _, err := g.render(ctx, in)
	return html, err
}

func (g *Generator) render(ctx context.Context, in Input) (string, float64, error) {
	if err := in.Validate(); err != nil {
		return "", 0, err
	}

	entries := slices.Clone(in.Entries)
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Or(cmp.Compare(a.Date, b.Date), cmp.Compare(a.Project, b.Project))
	})

	var total float64
	rows := make([]rowData, 0, len(entries))
	for _, e := range entries {
		total += e.Hours
		rows = append(rows, rowData{
			Date:    e.Date,
			Project: e.Project,
			Task:    e.Task,
			Hours:   formatHours(e.Hours),
			Notes:   e.Notes,
		})
	}

	notes, err := g.notes.ToFragment(ctx, in.Notes)
	if err != nil {
		if ctx.Err() != nil {
			return "", 0, err
		}
		return "", 0, fmt.Errorf("%w: %v", ErrNotesConversion, err)
	}

	generatedAt := in.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = g.now()
	}
	generatedOn, err := dateutil.Format(in.DateFormat, generatedAt)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %w", ErrRender, err)
	}

	title := in.Title
	if title == "" {
		title = defaultTitle
	}

	data := pageData{
		CSS:        g.css,
		Title:      title,
		Rows:       rows,
		TotalHours: formatHours(total),
		// Goldmark output omits raw HTML from the notes.
		NotesHTML:   template.HTML(notes), // #nosec G203 -- sanitized by renderer
		GeneratedOn: generatedOn,
	}

	var buf bytes.Buffer
	buf.Grow(len(StaticTemplate) + 4096)
	buf.WriteString(StaticTemplate)
	buf.WriteByte('\n')
	if err := g.tmpl.Execute(&buf, data); err != nil {
		return "", 0, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.String(), total, nil
}

// Write renders the timesheet, copies any existing output to the backup
// path, then replaces the output atomically. Paths are checked before
// anything is rendered or touched on disk.
func (g *Generator) Write(ctx context.Context, in Input) (*Result, error) {
	if err := g.checkPaths(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, g.cfg.timeout)
	defer cancel()

	html, total, err := g.render(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{
		HTML:       html,
		OutputPath: g.cfg.outputPath,
		BackupPath: g.cfg.backupPath,
		TotalHours: total,
	}

	if g.cfg.backupPath != "" && fileutil.FileExists(g.cfg.outputPath) {
		if err := g.backup(ctx); err != nil {
			return nil, err
		}
		res.BackedUp = true
	}

	if err := fileutil.WriteFileAtomic(g.cfg.outputPath, []byte(html)); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrWriteOutput, g.cfg.outputPath, err)
	}
	return res, nil
}

// backup copies the current output to the backup path, retrying with a
// constant delay. The output is never replaced without a good backup.
func (g *Generator) backup(ctx context.Context) error {
	b := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(g.cfg.backupRetryDelay), uint64(g.cfg.backupAttempts-1)),
		ctx,
	)
	err := backoff.Retry(func() error {
		return g.copyFile(g.cfg.outputPath, g.cfg.backupPath)
	}, b)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %s: %w", ErrBackup, g.cfg.backupPath, err)
	}
	return nil
}

func (g *Generator) checkPaths() error {
	if g.cfg.outputPath == "" {
		return ErrEmptyOutputPath
	}
	if g.cfg.backupPath != "" && fileutil.SamePath(g.cfg.outputPath, g.cfg.backupPath) {
		return fmt.Errorf("%w: %s", ErrSamePaths, g.cfg.outputPath)
	}
	return nil
}

func formatHours(h float64) string {
	return fmt.Sprintf("%.2f", h)
}
