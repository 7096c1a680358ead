package markup

import (
	"regexp"
	"sort"
)

// Prefix starts every inline color escape in the game's string tables.
const Prefix = "ÿc"

var colors = map[string]string{
	"white1":     "ÿc0",
	"white2":     "ÿcF",
	"red1":       "ÿc1",
	"red2":       "ÿcU",
	"red3":       "ÿcS",
	"green1":     "ÿc2",
	"green2":     "ÿc:",
	"green3":     "ÿcQ",
	"blue1":      "ÿc3",
	"blue2":      "ÿcT",
	"gold1":      "ÿc4",
	"gold2":      "ÿc7",
	"gray1":      "ÿc5",
	"gray2":      "ÿcK",
	"black1":     "ÿc6",
	"orange1":    "ÿc8",
	"orange2":    "ÿc@",
	"yellow1":    "ÿc9",
	"yellow2":    "ÿcR",
	"purple1":    "ÿc;",
	"purple2":    "ÿcP",
	"pink1":      "ÿcO",
	"turquoise1": "ÿcN",
}

var codePattern = regexp.MustCompile(`ÿc.`)

// Code returns the escape sequence for a color name. Unknown names render as no color.
func Code(name string) string {
	return colors[name]
}

func Known(name string) bool {
	_, ok := colors[name]
	return ok
}

// Names lists the available color names, sorted.
func Names() []string {
	names := make([]string, 0, len(colors))
	for n := range colors {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Strip removes every color escape from s.
func Strip(s string) string {
	return codePattern.ReplaceAllString(s, "")
}
