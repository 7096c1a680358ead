package config

import (
	"sort"

	"github.com/hectorgimenez/d2go/pkg/data/item"
	"gopkg.in/yaml.v3"

	"github.com/hectorgimenez/d2rlabels/internal/locale"
	"github.com/hectorgimenez/d2rlabels/internal/markup"
	"github.com/hectorgimenez/d2rlabels/internal/utils"
)

type RuneMode string

const (
	RuneModeAuto   RuneMode = "auto"
	RuneModeManual RuneMode = "manual"
)

type DividerType string

const (
	DividerParentheses DividerType = "parentheses"
	DividerBrackets    DividerType = "brackets"
	DividerPipe        DividerType = "pipe"
)

// LimiterSpaces is the box limiter value meaning "pad with spaces only".
const LimiterSpaces = "spaces"

const (
	MinBoxSize = 0
	MaxBoxSize = 2
)

// BoxSize is the rune box decoration size, 0 (none) to 2 (widest).
type BoxSize int

// UnmarshalYAML accepts both numbers and quoted numbers, falling back to 0
// for anything outside the supported range.
func (b *BoxSize) UnmarshalYAML(value *yaml.Node) error {
	*b = BoxSize(utils.ParseIntInRangeOrDefault(value.Value, MinBoxSize, MaxBoxSize, MinBoxSize))
	return nil
}

type Numbering struct {
	Show         bool        `yaml:"show"`
	DividerType  DividerType `yaml:"dividerType"`
	DividerColor string      `yaml:"dividerColor"`
	NumberColor  string      `yaml:"numberColor"`
}

type RuneAutoSettings struct {
	BoxSize      BoxSize   `yaml:"boxSize"`
	BoxLimiter   string    `yaml:"boxLimiters"`
	LimiterColor string    `yaml:"boxLimitersColor"`
	Color        string    `yaml:"color"`
	Numbering    Numbering `yaml:"numbering"`
}

type RuneManualSettings struct {
	Locales locale.Text `yaml:"locales"`
}

type RuneSetting struct {
	Mode           RuneMode           `yaml:"mode"`
	IsHighlighted  bool               `yaml:"isHighlighted"`
	AutoSettings   RuneAutoSettings   `yaml:"autoSettings"`
	ManualSettings RuneManualSettings `yaml:"manualSettings"`
}

// LevelSetting is the "use text if enabled" setting shared by gems, potions
// and common items.
type LevelSetting struct {
	Enabled bool        `yaml:"enabled"`
	Locales locale.Text `yaml:"locales"`
}

type ItemSetting struct {
	Enabled                   bool        `yaml:"enabled"`
	ShowDifficultyClassMarker bool        `yaml:"showDifficultyClassMarker"`
	Locales                   locale.Text `yaml:"locales"`
	// PreservedLocales keeps the text the user had before disabling the item.
	PreservedLocales locale.Text `yaml:"preservedLocales,omitempty"`
}

type MarkerLevel struct {
	Name    string      `yaml:"name"`
	Enabled bool        `yaml:"enabled"`
	Locales locale.Text `yaml:"locales"`
}

// MarkerGroup is an ordered list of marker levels.
type MarkerGroup struct {
	Levels []MarkerLevel `yaml:"levels"`
}

// Level returns the i-th level, or a disabled empty level when out of range.
func (g MarkerGroup) Level(i int) MarkerLevel {
	if i < 0 || i >= len(g.Levels) {
		return MarkerLevel{Locales: locale.NewText()}
	}
	return g.Levels[i]
}

// Indexes into the difficulty marker group.
const (
	DifficultyNormal = iota
	DifficultyExceptional
	DifficultyElite
)

// Indexes into the quality prefix group.
const (
	QualityLow = iota
	QualitySuperior
)

// Settings is the read-only snapshot the compiler renders from.
type Settings struct {
	Runes             map[item.Name]RuneSetting  `yaml:"runes"`
	Gems              map[item.Name]LevelSetting `yaml:"gems"`
	Potions           map[item.Name]LevelSetting `yaml:"potions"`
	Common            map[item.Name]LevelSetting `yaml:"common"`
	Items             map[item.Name]ItemSetting  `yaml:"items"`
	DifficultyMarkers MarkerGroup                `yaml:"difficultyMarkers"`
	QualityPrefixes   MarkerGroup                `yaml:"qualityPrefixes"`
}

// Normalize returns a copy where every locale map carries all supported
// locales and unset rune fields take their defaults.
func (s Settings) Normalize() Settings {
	out := Settings{
		Runes:             make(map[item.Name]RuneSetting, len(s.Runes)),
		Gems:              normalizeLevels(s.Gems),
		Potions:           normalizeLevels(s.Potions),
		Common:            normalizeLevels(s.Common),
		Items:             make(map[item.Name]ItemSetting, len(s.Items)),
		DifficultyMarkers: normalizeGroup(s.DifficultyMarkers, []string{"Normal", "Exceptional", "Elite"}),
		QualityPrefixes:   normalizeGroup(s.QualityPrefixes, []string{"Low Quality", "Superior"}),
	}

	for name, r := range s.Runes {
		if r.Mode != RuneModeManual {
			r.Mode = RuneModeAuto
		}
		a := &r.AutoSettings
		if a.Color == "" {
			a.Color = "white1"
		}
		if a.BoxLimiter == "" {
			a.BoxLimiter = LimiterSpaces
		}
		if a.LimiterColor == "" {
			a.LimiterColor = a.Color
		}
		switch a.Numbering.DividerType {
		case DividerParentheses, DividerBrackets, DividerPipe:
		default:
			a.Numbering.DividerType = DividerParentheses
		}
		if a.Numbering.DividerColor == "" {
			a.Numbering.DividerColor = a.Color
		}
		if a.Numbering.NumberColor == "" {
			a.Numbering.NumberColor = a.Color
		}
		r.ManualSettings.Locales = r.ManualSettings.Locales.Normalize()
		out.Runes[name] = r
	}

	for name, it := range s.Items {
		it.Locales = it.Locales.Normalize()
		if it.PreservedLocales != nil {
			it.PreservedLocales = it.PreservedLocales.Normalize()
		}
		out.Items[name] = it
	}

	return out
}

func normalizeLevels(in map[item.Name]LevelSetting) map[item.Name]LevelSetting {
	out := make(map[item.Name]LevelSetting, len(in))
	for name, l := range in {
		l.Locales = l.Locales.Normalize()
		out[name] = l
	}
	return out
}

func normalizeGroup(g MarkerGroup, names []string) MarkerGroup {
	out := MarkerGroup{Levels: make([]MarkerLevel, len(names))}
	for i, n := range names {
		lvl := g.Level(i)
		if lvl.Name == "" {
			lvl.Name = n
		}
		lvl.Locales = lvl.Locales.Normalize()
		out.Levels[i] = lvl
	}
	return out
}

// UnknownColors lists, sorted and once each, the rune color names that have
// no escape code. They render without color.
func (s Settings) UnknownColors() []string {
	seen := make(map[string]bool)
	for _, r := range s.Runes {
		a := r.AutoSettings
		for _, name := range []string{a.Color, a.LimiterColor, a.Numbering.DividerColor, a.Numbering.NumberColor} {
			if name != "" && !markup.Known(name) {
				seen[name] = true
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
