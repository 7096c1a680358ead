package compiler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hectorgimenez/d2go/pkg/data/item"

	"github.com/hectorgimenez/d2rlabels/internal/config"
	"github.com/hectorgimenez/d2rlabels/internal/generator"
	"github.com/hectorgimenez/d2rlabels/internal/highlight"
	"github.com/hectorgimenez/d2rlabels/internal/ids"
	"github.com/hectorgimenez/d2rlabels/internal/locale"
	"github.com/hectorgimenez/d2rlabels/internal/store"
)

// transform renders every category into the shared tables. Categories that
// target the same file go through the same *store.Table, so updates from one
// never hide updates from another.
func (c *Compiler) transform(s config.Settings, sel locale.Selection, tables map[string]*store.Table, logger *slog.Logger) {
	for _, r := range c.tables.Runes.All() {
		setting, ok := s.Runes[r.Name]
		if !ok {
			continue
		}
		t, id, ok := target(tables, r.Entry, logger)
		if !ok {
			continue
		}
		t.ApplyText(id, r.Key, sel, func(l locale.Code) string {
			return generator.Rune(r, setting, l)
		})
	}

	for _, g := range c.tables.Gems.All() {
		applyLevel(tables, g, s.Gems, sel, logger)
	}
	for _, e := range c.tables.Potions.All() {
		applyLevel(tables, e, s.Potions, sel, logger)
	}
	for _, e := range c.tables.Common.All() {
		applyLevel(tables, e, s.Common, sel, logger)
	}

	for _, b := range c.tables.Bases.All() {
		setting, ok := s.Items[b.Name]
		if !ok {
			continue
		}
		t, id, ok := target(tables, b.Entry, logger)
		if !ok {
			continue
		}
		existing, _ := t.Find(id)
		t.ApplyText(id, b.Key, sel, func(l locale.Code) string {
			return generator.Item(b.Tier, setting, s.DifficultyMarkers, l, existing.Get(l))
		})
	}

	q := c.tables.Quality
	if t := tables[q.Superior.File]; t != nil {
		generator.QualityPrefixes(t, q, s.QualityPrefixes, sel)
	}
}

// target returns the table and id e is written to. Rows are matched by Key
// first, so an id held by an unrelated row is never overwritten.
func target(tables map[string]*store.Table, e ids.Entry, logger *slog.Logger) (*store.Table, int, bool) {
	t := tables[e.File]
	if t == nil {
		return nil, 0, false
	}
	id, ok := t.Resolve(e.ID, e.Key)
	if !ok {
		logger.Warn("[Apply] Row id belongs to another key, skipping",
			slog.String("item", string(e.Name)),
			slog.String("key", e.Key),
			slog.String("file", e.File),
			slog.Int("id", e.ID),
		)
		return nil, 0, false
	}
	return t, id, true
}

func applyLevel(tables map[string]*store.Table, e ids.Entry, settings map[item.Name]config.LevelSetting, sel locale.Selection, logger *slog.Logger) {
	setting, ok := settings[e.Name]
	if !ok {
		return
	}
	t, id, ok := target(tables, e, logger)
	if !ok {
		return
	}
	t.ApplyText(id, e.Key, sel, func(l locale.Code) string {
		return generator.Level(setting, l)
	})
}

// writeHighlights regenerates the unit definition of every rune.
func (c *Compiler) writeHighlights(ctx context.Context, paths Paths, s config.Settings) ([]string, error) {
	written := make([]string, 0, c.tables.Runes.Len())
	for _, r := range c.tables.Runes.All() {
		def := highlight.Definition(r.Code, r.Number, s.Runes[r.Name].IsHighlighted)
		data, err := highlight.Encode(def)
		if err != nil {
			return nil, err
		}

		path := paths.Highlight(r.Code)
		if err := c.writer.Write(ctx, path, data); err != nil {
			return nil, fmt.Errorf("error writing highlight definition of %s: %w", r.Name, err)
		}
		written = append(written, path)
	}

	return written, nil
}
