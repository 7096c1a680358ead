package generator

import (
	"strconv"
	"strings"

	"github.com/hectorgimenez/d2rlabels/internal/config"
	"github.com/hectorgimenez/d2rlabels/internal/ids"
	"github.com/hectorgimenez/d2rlabels/internal/locale"
	"github.com/hectorgimenez/d2rlabels/internal/markup"
)

// boxPadding is the number of spaces added on each side per box size.
var boxPadding = [...]int{0, 4, 8}

// Rune renders the display name of r for locale c.
func Rune(r ids.Rune, s config.RuneSetting, c locale.Code) string {
	if s.Mode == config.RuneModeManual {
		return ReverseLines(s.ManualSettings.Locales.Get(c))
	}

	return autoRune(r, s.AutoSettings, c)
}

func autoRune(r ids.Rune, a config.RuneAutoSettings, c locale.Code) string {
	text := markup.Code(a.Color) + markup.Strip(r.Names.Get(c))
	if a.Numbering.Show {
		text = withNumber(text, r.Number, a.Numbering)
	}

	return withBox(text, a)
}

func withNumber(base string, number int, n config.Numbering) string {
	div := markup.Code(n.DividerColor)
	num := markup.Code(n.NumberColor) + strconv.Itoa(number)

	switch n.DividerType {
	case config.DividerBrackets:
		return base + " " + div + "[" + num + div + "]"
	case config.DividerPipe:
		return base + " " + div + "| " + num
	default:
		return base + " " + div + "(" + num + div + ")"
	}
}

func withBox(text string, a config.RuneAutoSettings) string {
	size := int(a.BoxSize)
	if size <= 0 || size >= len(boxPadding) {
		return text
	}

	pad := strings.Repeat(" ", boxPadding[size])
	text = pad + text + pad
	if a.BoxLimiter == config.LimiterSpaces || a.BoxLimiter == "" {
		return text
	}

	limiter := markup.Code(a.LimiterColor) + a.BoxLimiter
	return limiter + text + limiter
}

// ReverseLines flips the line order of manual text. The game draws
// multi-line labels bottom-up, so what the user typed top-down is stored
// reversed.
func ReverseLines(s string) string {
	if !strings.Contains(s, "\n") {
		return s
	}

	lines := strings.Split(s, "\n")
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	return strings.Join(lines, "\n")
}
