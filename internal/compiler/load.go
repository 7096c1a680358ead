package compiler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hectorgimenez/d2go/pkg/data/item"

	"github.com/hectorgimenez/d2rlabels/internal/config"
	"github.com/hectorgimenez/d2rlabels/internal/generator"
	"github.com/hectorgimenez/d2rlabels/internal/ids"
	"github.com/hectorgimenez/d2rlabels/internal/locale"
	"github.com/hectorgimenez/d2rlabels/internal/store"
)

// Load rebuilds a settings snapshot from the string tables currently on
// disk. req.Settings provides what the files cannot tell: marker texts and
// the rune rendering mode of runes that were never written.
func (c *Compiler) Load(ctx context.Context, req Request, progress Progress) (config.Settings, error) {
	if progress == nil {
		progress = func(step, message string) {}
	}

	runID := uuid.NewString()
	logger := c.logger.With(slog.String("run", runID))
	progress = c.record(runID, logger, progress)

	s, err := c.load(ctx, req, progress, logger)
	if err != nil {
		logger.Error("[Load] "+Title(err, PhaseLoad), slog.Any("error", err))
		progress("failed", err.Error())
		return config.Settings{}, err
	}

	progress("done", fmt.Sprintf("Loaded %d runes and %d items", len(s.Runes), len(s.Items)))
	return s, nil
}

func (c *Compiler) load(ctx context.Context, req Request, progress Progress, logger *slog.Logger) (config.Settings, error) {
	paths, err := ResolvePaths(req.Home, req.ModName)
	if err != nil {
		return config.Settings{}, err
	}
	sel := req.Locales
	if len(sel) == 0 {
		sel = locale.Selection{locale.EnUS}
	}

	progress("read", fmt.Sprintf("Reading string tables from %s", paths.Strings))
	tables, _, err := c.readAll(ctx, paths, logger)
	if err != nil {
		return config.Settings{}, err
	}

	current := req.Settings.Normalize()
	out := config.Settings{
		Runes:             make(map[item.Name]config.RuneSetting),
		Gems:              make(map[item.Name]config.LevelSetting),
		Potions:           make(map[item.Name]config.LevelSetting),
		Common:            make(map[item.Name]config.LevelSetting),
		Items:             make(map[item.Name]config.ItemSetting),
		DifficultyMarkers: current.DifficultyMarkers,
		QualityPrefixes:   current.QualityPrefixes,
	}

	for _, r := range c.tables.Runes.All() {
		rec, ok := find(tables, r.Entry)
		if !ok {
			continue
		}
		setting := current.Runes[r.Name]
		setting.Mode = config.RuneModeManual
		setting.ManualSettings.Locales = locale.NewText()
		for _, l := range locale.All() {
			setting.ManualSettings.Locales[l] = generator.ReverseLines(rec.Get(l))
		}
		out.Runes[r.Name] = setting
	}

	for _, g := range c.tables.Gems.All() {
		loadLevel(tables, g, sel, out.Gems)
	}
	for _, e := range c.tables.Potions.All() {
		loadLevel(tables, e, sel, out.Potions)
	}
	for _, e := range c.tables.Common.All() {
		loadLevel(tables, e, sel, out.Common)
	}

	for _, b := range c.tables.Bases.All() {
		rec, ok := find(tables, b.Entry)
		if !ok {
			continue
		}
		setting := config.ItemSetting{
			Enabled:          anySet(rec, sel),
			Locales:          locale.NewText(),
			PreservedLocales: current.Items[b.Name].PreservedLocales,
		}
		for _, l := range locale.All() {
			text := rec.Get(l)
			stripped := generator.StripMarkers(text, current.DifficultyMarkers, l)
			if stripped != text && sel.Contains(l) {
				setting.ShowDifficultyClassMarker = true
			}
			setting.Locales[l] = stripped
		}
		out.Items[b.Name] = setting
	}

	q := c.tables.Quality
	low := q.QualityFor(item.QualityLowQuality)
	sup := q.QualityFor(item.QualitySuperior)
	if t := tables[q.Superior.File]; t != nil && len(low) > 0 {
		levels := out.QualityPrefixes.Levels
		if first, ok := t.Find(low[0].ID); ok && config.QualityLow < len(levels) {
			levels[config.QualityLow].Enabled = generator.LowQualityUniform(t, low)
			levels[config.QualityLow].Locales = first.Text()
		}
		if len(sup) > 0 && config.QualitySuperior < len(levels) {
			if r, ok := t.Find(sup[0].ID); ok {
				levels[config.QualitySuperior].Locales = r.Text()
			}
		}
	}

	return out, nil
}

func find(tables map[string]*store.Table, e ids.Entry) (store.Record, bool) {
	t := tables[e.File]
	if t == nil {
		return store.Record{}, false
	}
	id, ok := t.Resolve(e.ID, e.Key)
	if !ok {
		return store.Record{}, false
	}
	return t.Find(id)
}

func loadLevel(tables map[string]*store.Table, e ids.Entry, sel locale.Selection, out map[item.Name]config.LevelSetting) {
	rec, ok := find(tables, e)
	if !ok {
		return
	}
	out[e.Name] = config.LevelSetting{Enabled: anySet(rec, sel), Locales: rec.Text()}
}

func anySet(r store.Record, sel locale.Selection) bool {
	for _, l := range sel {
		if r.Get(l) != "" {
			return true
		}
	}
	return false
}
