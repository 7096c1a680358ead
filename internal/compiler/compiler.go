package compiler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/hectorgimenez/d2rlabels/internal/applylog"
	"github.com/hectorgimenez/d2rlabels/internal/config"
	"github.com/hectorgimenez/d2rlabels/internal/fileio"
	"github.com/hectorgimenez/d2rlabels/internal/ids"
	"github.com/hectorgimenez/d2rlabels/internal/locale"
	"github.com/hectorgimenez/d2rlabels/internal/markup"
	"github.com/hectorgimenez/d2rlabels/internal/store"
)

// Progress receives one message per step of an apply or load cycle.
type Progress func(step, message string)

// Request is the immutable input of one cycle.
type Request struct {
	Home     string
	ModName  string
	Settings config.Settings
	Locales  locale.Selection
}

type FileResult struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Records int    `json:"records"`
	Updates int    `json:"updates"`
	Bytes   int    `json:"bytes"`
	// Created is set for optional tables that did not exist before this run.
	Created bool `json:"created,omitempty"`
}

type Result struct {
	RunID      string       `json:"runId"`
	Files      []FileResult `json:"files"`
	Highlights []string     `json:"highlights"`
	// Skipped lists optional tables that could not be read and were left alone.
	Skipped  []string      `json:"skipped,omitempty"`
	Backup   string        `json:"backup,omitempty"`
	Duration time.Duration `json:"duration"`
}

type Compiler struct {
	logger  *slog.Logger
	fs      fileio.FS
	writer  *fileio.Writer
	tables  ids.Tables
	backup  bool
	journal *applylog.Journal
	now     func() time.Time
}

type Option func(*Compiler)

// WithFS replaces the local disk, the writer is rebuilt on top of it unless
// WithWriter is also given.
func WithFS(fsys fileio.FS) Option {
	return func(c *Compiler) { c.fs = fsys }
}

func WithWriter(w *fileio.Writer) Option {
	return func(c *Compiler) { c.writer = w }
}

func WithTables(t ids.Tables) Option {
	return func(c *Compiler) { c.tables = t }
}

// WithBackup snapshots the strings folder before anything is written.
func WithBackup(enabled bool) Option {
	return func(c *Compiler) { c.backup = enabled }
}

// WithJournal records every progress step, tagged with the run id, in j.
func WithJournal(j *applylog.Journal) Option {
	return func(c *Compiler) { c.journal = j }
}

func New(logger *slog.Logger, opts ...Option) *Compiler {
	c := &Compiler{
		logger: logger,
		fs:     fileio.OS{},
		tables: ids.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.writer == nil {
		c.writer = fileio.NewWriter(c.fs, logger)
	}

	return c
}

// Apply reads every string table once, renders all settings into them and
// writes each touched table exactly once, followed by the rune highlight
// definitions. A failed read aborts before anything is written.
func (c *Compiler) Apply(ctx context.Context, req Request, progress Progress) (*Result, error) {
	if progress == nil {
		progress = func(step, message string) {}
	}

	start := c.now()
	result := &Result{RunID: uuid.NewString()}
	logger := c.logger.With(slog.String("run", result.RunID))
	progress = c.record(result.RunID, logger, progress)
	logger.Debug("[Apply] Starting", slog.Any("locales", req.Locales.Strings()))

	res, err := c.apply(ctx, req, progress, logger, result)
	if err != nil {
		logger.Error("[Apply] "+Title(err, PhaseApply), slog.Any("error", err))
		progress("failed", err.Error())
		return nil, err
	}

	res.Duration = c.now().Sub(start)
	logger.Info("[Apply] Settings applied",
		slog.Int("files", len(res.Files)),
		slog.Int("highlights", len(res.Highlights)),
		slog.Duration("duration", res.Duration),
	)
	progress("done", fmt.Sprintf("Applied settings to %d files", len(res.Files)))

	return res, nil
}

func (c *Compiler) apply(ctx context.Context, req Request, progress Progress, logger *slog.Logger, result *Result) (*Result, error) {
	paths, err := ResolvePaths(req.Home, req.ModName)
	if err != nil {
		return nil, err
	}
	if len(req.Locales) == 0 {
		return nil, &ConfigError{Reason: "no locale selected"}
	}

	progress("read", fmt.Sprintf("Reading string tables from %s", paths.Strings))
	tables, skipped, err := c.readAll(ctx, paths, logger)
	if err != nil {
		return nil, err
	}
	result.Skipped = skipped

	settings := req.Settings.Normalize()
	if unknown := settings.UnknownColors(); len(unknown) > 0 {
		logger.Warn("[Apply] Unknown colors render without color code",
			slog.String("colors", strings.Join(unknown, ", ")),
			slog.String("available", strings.Join(markup.Names(), ", ")),
		)
	}

	progress("transform", fmt.Sprintf("Rendering settings for %d locales", len(req.Locales)))
	c.transform(settings, req.Locales, tables, logger)

	touched := make([]*store.Table, 0, len(ids.Files))
	for _, name := range ids.Files {
		if t := tables[name]; t != nil && t.Touched() {
			touched = append(touched, t)
		}
	}

	if c.backup && len(touched) > 0 {
		progress("backup", "Backing up string tables")
		dst, err := fileio.Backup(paths.Strings, paths.Backups, c.now())
		if err != nil {
			return nil, fmt.Errorf("error backing up string tables: %w", err)
		}
		result.Backup = dst
	}

	for _, t := range touched {
		data, err := store.Encode(t)
		if err != nil {
			return nil, fmt.Errorf("error encoding %s: %w", t.Name, err)
		}

		path := paths.Locale(t.Name)
		progress("write", fmt.Sprintf("Writing %s (%s)", t.Name, humanize.Bytes(uint64(len(data)))))
		if err := c.writer.Write(ctx, path, data); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, FileResult{
			Name:    t.Name,
			Path:    path,
			Records: len(t.Records),
			Updates: t.Updates(),
			Bytes:   len(data),
			Created: t.Missing,
		})
		logger.Debug("[Apply] String table written", slog.String("file", t.Name), slog.Int("updates", t.Updates()))
	}

	progress("highlight", fmt.Sprintf("Writing %d rune definitions", c.tables.Runes.Len()))
	highlights, err := c.writeHighlights(ctx, paths, req.Settings)
	if err != nil {
		return nil, err
	}
	result.Highlights = highlights

	return result, nil
}

// record wraps progress so every step also lands in the journal.
func (c *Compiler) record(runID string, logger *slog.Logger, progress Progress) Progress {
	return func(step, message string) {
		progress(step, message)
		if err := c.journal.Record(runID, step, message); err != nil {
			logger.Debug("Could not write the operation log", slog.Any("error", err))
		}
	}
}

type readOutcome struct {
	table *store.Table
	err   error
}

// readAll reads and decodes every string table in parallel. A failing read
// does not stop the others. Optional tables that do not exist come back
// empty and marked Missing; optional tables that cannot be read or decoded
// are logged, left out of the returned map and reported as skipped. Only a
// required table aborts the cycle.
func (c *Compiler) readAll(ctx context.Context, paths Paths, logger *slog.Logger) (map[string]*store.Table, []string, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	outcomes := make([]readOutcome, len(ids.Files))
	var g errgroup.Group
	for i, name := range ids.Files {
		g.Go(func() error {
			t, err := c.read(paths, name)
			outcomes[i] = readOutcome{table: t, err: err}
			return nil
		})
	}
	_ = g.Wait()

	tables := make(map[string]*store.Table, len(outcomes))
	var skipped []string
	for i, o := range outcomes {
		name := ids.Files[i]
		if o.err == nil {
			tables[name] = o.table
			continue
		}
		if ids.Required(name) {
			return nil, nil, o.err
		}
		logger.Warn("Optional string table unusable, leaving it untouched", slog.String("file", name), slog.Any("error", o.err))
		skipped = append(skipped, name)
	}
	return tables, skipped, nil
}

func (c *Compiler) read(paths Paths, name string) (*store.Table, error) {
	path := paths.Locale(name)
	data, found, err := fileio.ReadOptional(c.fs, path)
	if err != nil {
		return nil, &ReadError{File: name, Path: path, Err: err}
	}
	if !found {
		if ids.Required(name) {
			return nil, &ReadError{File: name, Path: path, Err: errMissing}
		}
		c.logger.Debug("Optional string table not found", slog.String("file", name))
		t := store.NewTable(name, nil)
		t.Missing = true
		return t, nil
	}

	t, err := store.Decode(name, data)
	if err != nil {
		return nil, &ParseError{File: name, Path: path, Err: err}
	}
	return t, nil
}
