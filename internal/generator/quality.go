package generator

import (
	"github.com/hectorgimenez/d2go/pkg/data/item"

	"github.com/hectorgimenez/d2rlabels/internal/config"
	"github.com/hectorgimenez/d2rlabels/internal/ids"
	"github.com/hectorgimenez/d2rlabels/internal/locale"
	"github.com/hectorgimenez/d2rlabels/internal/store"
)

// QualityPrefixes applies the quality prefix group to the affix table.
// Disabled levels are left as they are on disk. The low quality group is
// only written when its rows differ as read, a uniform group is the user's
// own override and is kept.
func QualityPrefixes(t *store.Table, rows ids.QualityRows, g config.MarkerGroup, sel locale.Selection) {
	if sup := g.Level(config.QualitySuperior); sup.Enabled {
		for _, e := range rows.QualityFor(item.QualitySuperior) {
			t.ApplyText(e.ID, e.Key, sel, sup.Locales.Get)
		}
	}

	low := g.Level(config.QualityLow)
	group := rows.QualityFor(item.QualityLowQuality)
	if !low.Enabled || len(group) == 0 || LowQualityUniform(t, group) {
		return
	}

	first := group[0]
	t.ApplyText(first.ID, first.Key, sel, low.Locales.Get)
	UnifyLowQuality(t, group, sel)
}

// UnifyLowQuality copies the first row's values to the other low quality
// rows for the selected locales, but only when the rows do not already
// carry identical values in every locale. Reports whether anything was
// written.
func UnifyLowQuality(t *store.Table, rows []ids.Entry, sel locale.Selection) bool {
	if len(rows) < 2 || LowQualityUniform(t, rows) {
		return false
	}

	src, _ := t.Find(rows[0].ID)
	for _, e := range rows[1:] {
		t.ApplyText(e.ID, e.Key, sel, src.Get)
	}
	return true
}

// LowQualityUniform reports whether every row exists and matches the first
// one in all locales.
func LowQualityUniform(t *store.Table, rows []ids.Entry) bool {
	if len(rows) == 0 {
		return false
	}

	first, ok := t.Find(rows[0].ID)
	if !ok {
		return false
	}
	want := first.Text()
	for _, e := range rows[1:] {
		r, ok := t.Find(e.ID)
		if !ok {
			return false
		}
		got := r.Text()
		for _, c := range locale.All() {
			if got[c] != want[c] {
				return false
			}
		}
	}
	return true
}
