package generator

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hectorgimenez/d2go/pkg/data/item"

	"github.com/hectorgimenez/d2rlabels/internal/config"
	"github.com/hectorgimenez/d2rlabels/internal/ids"
	"github.com/hectorgimenez/d2rlabels/internal/locale"
	"github.com/hectorgimenez/d2rlabels/internal/store"
)

func zod(t *testing.T) ids.Rune {
	t.Helper()
	r, ok := ids.RuneByNumber(33)
	if !ok {
		t.Fatal("rune 33 missing")
	}
	return r
}

func autoSetting(a config.RuneAutoSettings) config.RuneSetting {
	s := config.Settings{Runes: map[item.Name]config.RuneSetting{"ZodRune": {AutoSettings: a}}}.Normalize()
	return s.Runes["ZodRune"]
}

func TestRuneAuto(t *testing.T) {
	r := zod(t)
	tests := []struct {
		name string
		auto config.RuneAutoSettings
		c    locale.Code
		want string
	}{
		{
			name: "plain",
			auto: config.RuneAutoSettings{},
			c:    locale.EnUS,
			want: "ÿc0Zod Rune",
		},
		{
			name: "numbered with parentheses",
			auto: config.RuneAutoSettings{Numbering: config.Numbering{Show: true, NumberColor: "yellow1"}},
			c:    locale.EnUS,
			want: "ÿc0Zod Rune ÿc0(ÿc933ÿc0)",
		},
		{
			name: "numbered with brackets",
			auto: config.RuneAutoSettings{Color: "gold1", Numbering: config.Numbering{Show: true, DividerType: config.DividerBrackets, DividerColor: "gray1"}},
			c:    locale.DeDE,
			want: "ÿc4Zod-Rune ÿc5[ÿc433ÿc5]",
		},
		{
			name: "numbered with pipe",
			auto: config.RuneAutoSettings{Numbering: config.Numbering{Show: true, DividerType: config.DividerPipe, NumberColor: "red1"}},
			c:    locale.EnUS,
			want: "ÿc0Zod Rune ÿc0| ÿc133",
		},
		{
			name: "box size 1 with spaces",
			auto: config.RuneAutoSettings{BoxSize: 1},
			c:    locale.EnUS,
			want: "    ÿc0Zod Rune    ",
		},
		{
			name: "box size 2 with limiters",
			auto: config.RuneAutoSettings{BoxSize: 2, BoxLimiter: "~", LimiterColor: "red1"},
			c:    locale.EnUS,
			want: "ÿc1~        ÿc0Zod Rune        ÿc1~",
		},
		{
			name: "box size 0 ignores limiters",
			auto: config.RuneAutoSettings{BoxLimiter: "~"},
			c:    locale.EnUS,
			want: "ÿc0Zod Rune",
		},
		{
			name: "unknown color renders without code",
			auto: config.RuneAutoSettings{Color: "nope"},
			c:    locale.FrFR,
			want: "Rune Zod",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Rune(r, autoSetting(tc.auto), tc.c); got != tc.want {
				t.Errorf("Rune() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRuneAutoStripsMarkupFromBaseName(t *testing.T) {
	r := zod(t)
	r.Names = locale.Text{locale.EnUS: "ÿc1Zod ÿc2Rune"}

	if got := Rune(r, autoSetting(config.RuneAutoSettings{}), locale.EnUS); got != "ÿc0Zod Rune" {
		t.Errorf("Rune() = %q", got)
	}
}

func TestRuneManualReversesLines(t *testing.T) {
	s := config.RuneSetting{
		Mode: config.RuneModeManual,
		ManualSettings: config.RuneManualSettings{Locales: locale.Text{
			locale.EnUS: "top\nmiddle\nbottom",
			locale.DeDE: "ÿc1Zod",
		}},
	}

	if got := Rune(zod(t), s, locale.EnUS); got != "bottom\nmiddle\ntop" {
		t.Errorf("Rune(enUS) = %q", got)
	}
	if got := Rune(zod(t), s, locale.DeDE); got != "ÿc1Zod" {
		t.Errorf("Rune(deDE) = %q", got)
	}
}

func TestLevelDisableClears(t *testing.T) {
	s := config.LevelSetting{Enabled: true, Locales: locale.Text{locale.EnUS: "ÿc;Amethyst"}}
	if got := Level(s, locale.EnUS); got != "ÿc;Amethyst" {
		t.Fatalf("Level(enabled) = %q", got)
	}

	s.Enabled = false
	if got := Level(s, locale.EnUS); got != "" {
		t.Errorf("Level(disabled) = %q, want empty", got)
	}
}

func markers() config.MarkerGroup {
	return config.MarkerGroup{Levels: []config.MarkerLevel{
		{Name: "Normal", Locales: locale.Text{locale.EnUS: "[N]"}},
		{Name: "Exceptional", Locales: locale.Text{locale.EnUS: "[X]"}},
		{Name: "Elite", Locales: locale.Text{locale.EnUS: "[E]"}},
	}}
}

func TestItemDifficultyMarker(t *testing.T) {
	s := config.ItemSetting{Enabled: true, ShowDifficultyClassMarker: true, Locales: locale.Text{locale.EnUS: "Shako"}}

	once := Item(item.TierElite, s, markers(), locale.EnUS, "")
	if once != "Shako [E]" {
		t.Fatalf("Item() = %q, want %q", once, "Shako [E]")
	}

	s.Locales = nil
	twice := Item(item.TierElite, s, markers(), locale.EnUS, once)
	if twice != once {
		t.Errorf("re-applying on %q = %q, want unchanged", once, twice)
	}

	s.ShowDifficultyClassMarker = false
	if got := Item(item.TierElite, s, markers(), locale.EnUS, once); got != "Shako" {
		t.Errorf("marker off = %q, want %q", got, "Shako")
	}

	if got := Item(item.TierNormal, config.ItemSetting{Enabled: true, ShowDifficultyClassMarker: true}, markers(), locale.EnUS, "Cap [X] [E]"); got != "Cap [N]" {
		t.Errorf("stacked markers = %q, want %q", got, "Cap [N]")
	}
}

func TestItemPreservedLocalesAndDisable(t *testing.T) {
	s := config.ItemSetting{
		Enabled:          true,
		Locales:          locale.NewText(),
		PreservedLocales: locale.Text{locale.EnUS: "Monarch!"},
	}
	if got := Item(item.TierElite, s, markers(), locale.EnUS, "Monarch"); got != "Monarch!" {
		t.Errorf("Item() = %q, want preserved text", got)
	}

	s.Enabled = false
	if got := Item(item.TierElite, s, markers(), locale.EnUS, "Monarch"); got != "" {
		t.Errorf("Item(disabled) = %q, want empty", got)
	}
}

func lowQualityTable(values ...string) *store.Table {
	var records []store.Record
	for i, e := range ids.Default().Quality.LowQuality {
		r := store.NewRecord(e.ID, e.Key)
		for _, c := range locale.All() {
			r.Set(c, values[i])
		}
		records = append(records, r)
	}
	return store.NewTable(ids.FileItemNameAffix, records)
}

func TestUnifyLowQualityKeepsUniformGroup(t *testing.T) {
	tbl := lowQualityTable("Junk", "Junk", "Junk", "Junk")
	before := append([]store.Record(nil), tbl.Records...)

	if UnifyLowQuality(tbl, ids.Default().Quality.LowQuality, locale.All()) {
		t.Error("UnifyLowQuality reported a write on a uniform group")
	}
	if diff := cmp.Diff(before, tbl.Records); diff != "" {
		t.Errorf("uniform group changed (-want +got):\n%s", diff)
	}
	if tbl.Touched() {
		t.Error("table marked as touched")
	}
}

func TestUnifyLowQualityOverridesDifferingGroup(t *testing.T) {
	tbl := lowQualityTable("Low Quality", "Damaged", "Cracked", "Crude")
	rows := ids.Default().Quality.LowQuality
	sel := locale.Selection{locale.EnUS, locale.DeDE}

	if !UnifyLowQuality(tbl, rows, sel) {
		t.Fatal("UnifyLowQuality did not write a differing group")
	}
	for _, e := range rows {
		r, _ := tbl.Find(e.ID)
		for _, c := range locale.All() {
			want := map[int]string{1723: "Low Quality", 1724: "Damaged", 1725: "Cracked", 20910: "Crude"}[e.ID]
			if sel.Contains(c) {
				want = "Low Quality"
			}
			if r.Get(c) != want {
				t.Errorf("%d %s = %q, want %q", e.ID, c, r.Get(c), want)
			}
		}
	}
}

func TestQualityPrefixes(t *testing.T) {
	tbl := lowQualityTable("Low Quality", "Damaged", "Cracked", "Crude")
	g := config.Settings{}.Normalize().QualityPrefixes
	sel := locale.Selection{locale.EnUS}

	QualityPrefixes(tbl, ids.Default().Quality, g, sel)
	if tbl.Touched() {
		t.Fatal("disabled quality prefixes touched the table")
	}

	g.Levels[config.QualityLow].Enabled = true
	g.Levels[config.QualityLow].Locales[locale.EnUS] = "ÿc5Trash"
	g.Levels[config.QualitySuperior].Enabled = true
	g.Levels[config.QualitySuperior].Locales[locale.EnUS] = "ÿc0Sup"
	QualityPrefixes(tbl, ids.Default().Quality, g, sel)

	for _, e := range ids.Default().Quality.LowQuality {
		if r, _ := tbl.Find(e.ID); r.EnUS != "ÿc5Trash" {
			t.Errorf("%d enUS = %q, want ÿc5Trash", e.ID, r.EnUS)
		}
	}
	if r, ok := tbl.Find(1727); !ok || r.EnUS != "ÿc0Sup" || r.Key != "Hiquality" {
		t.Errorf("superior = %+v, %v", r, ok)
	}
	// Only enUS was selected, the other locales still differ.
	if LowQualityUniform(tbl, ids.Default().Quality.LowQuality) {
		t.Error("group reported uniform across all locales")
	}
}

func TestQualityPrefixesKeepsUniformGroup(t *testing.T) {
	tbl := lowQualityTable("Junk", "Junk", "Junk", "Junk")
	before := append([]store.Record(nil), tbl.Records...)

	g := config.Settings{}.Normalize().QualityPrefixes
	g.Levels[config.QualityLow].Enabled = true
	g.Levels[config.QualityLow].Locales[locale.EnUS] = "Trash"
	QualityPrefixes(tbl, ids.Default().Quality, g, locale.Selection{locale.EnUS})

	if diff := cmp.Diff(before, tbl.Records); diff != "" {
		t.Errorf("uniform group changed (-want +got):\n%s", diff)
	}
	if tbl.Touched() {
		t.Error("table marked as touched")
	}
}
