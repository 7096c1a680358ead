package generator

import (
	"strings"

	"github.com/hectorgimenez/d2go/pkg/data/item"

	"github.com/hectorgimenez/d2rlabels/internal/config"
	"github.com/hectorgimenez/d2rlabels/internal/locale"
)

// Level renders gems, potions and common items: the text when enabled,
// otherwise an empty string so a disabled entry clears what was on disk.
func Level(s config.LevelSetting, c locale.Code) string {
	if !s.Enabled {
		return ""
	}
	return s.Locales.Get(c)
}

// Item renders a base item name. existing is the value currently on disk,
// used as the base text when the setting carries none for c.
func Item(tier item.Tier, s config.ItemSetting, markers config.MarkerGroup, c locale.Code, existing string) string {
	if !s.Enabled {
		return ""
	}

	text := s.Locales.Get(c)
	if text == "" && s.PreservedLocales != nil {
		text = s.PreservedLocales.Get(c)
	}
	if text == "" {
		text = existing
	}

	text = StripMarkers(text, markers, c)
	if !s.ShowDifficultyClassMarker {
		return text
	}

	if m := Marker(markers, tier, c); m != "" && text != "" {
		return text + " " + m
	}
	return text
}

// Marker returns the marker suffix of the difficulty level matching tier.
func Marker(markers config.MarkerGroup, tier item.Tier, c locale.Code) string {
	return markers.Level(tierIndex(tier)).Locales.Get(c)
}

// StripMarkers removes every trailing " <marker>" suffix of any level, so
// the marker can be appended again without stacking.
func StripMarkers(text string, markers config.MarkerGroup, c locale.Code) string {
	for {
		stripped := false
		for _, lvl := range markers.Levels {
			m := lvl.Locales.Get(c)
			if m == "" {
				continue
			}
			if trimmed, ok := strings.CutSuffix(text, " "+m); ok {
				text = trimmed
				stripped = true
			}
		}
		if !stripped {
			return text
		}
	}
}

func tierIndex(t item.Tier) int {
	switch t {
	case item.TierExceptional:
		return config.DifficultyExceptional
	case item.TierElite:
		return config.DifficultyElite
	default:
		return config.DifficultyNormal
	}
}
