package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Code is a game locale identifier as used for the JSON string table columns.
type Code string

const (
	EnUS Code = "enUS"
	RuRU Code = "ruRU"
	ZhTW Code = "zhTW"
	DeDE Code = "deDE"
	EsES Code = "esES"
	FrFR Code = "frFR"
	ItIT Code = "itIT"
	KoKR Code = "koKR"
	PlPL Code = "plPL"
	EsMX Code = "esMX"
	JaJP Code = "jaJP"
	PtBR Code = "ptBR"
	ZhCN Code = "zhCN"
)

var all = []Code{EnUS, RuRU, ZhTW, DeDE, EsES, FrFR, ItIT, KoKR, PlPL, EsMX, JaJP, PtBR, ZhCN}

var tags = map[Code]language.Tag{
	EnUS: language.MustParse("en-US"),
	RuRU: language.MustParse("ru-RU"),
	ZhTW: language.MustParse("zh-TW"),
	DeDE: language.MustParse("de-DE"),
	EsES: language.MustParse("es-ES"),
	FrFR: language.MustParse("fr-FR"),
	ItIT: language.MustParse("it-IT"),
	KoKR: language.MustParse("ko-KR"),
	PlPL: language.MustParse("pl-PL"),
	EsMX: language.MustParse("es-MX"),
	JaJP: language.MustParse("ja-JP"),
	PtBR: language.MustParse("pt-BR"),
	ZhCN: language.MustParse("zh-CN"),
}

var matcher = func() language.Matcher {
	supported := make([]language.Tag, 0, len(all))
	for _, c := range all {
		supported = append(supported, c.Tag())
	}
	return language.NewMatcher(supported)
}()

// All returns the 13 supported locales in their canonical order.
func All() []Code {
	out := make([]Code, len(all))
	copy(out, all)
	return out
}

func (c Code) Valid() bool {
	_, ok := tags[c]
	return ok
}

func (c Code) Tag() language.Tag {
	return tags[c]
}

// Parse accepts either a game code ("deDE") or a BCP 47 tag ("de-DE", "de").
func Parse(raw string) (Code, error) {
	raw = strings.TrimSpace(raw)
	for _, c := range all {
		if strings.EqualFold(raw, string(c)) {
			return c, nil
		}
	}

	tag, err := language.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("unknown locale %q: %w", raw, err)
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence < language.High {
		return "", fmt.Errorf("unsupported locale %q", raw)
	}

	return all[idx], nil
}

// Selection is the ordered, de-duplicated set of locales an apply cycle acts on.
type Selection []Code

func ParseSelection(raw []string) (Selection, error) {
	seen := make(map[Code]struct{}, len(raw))
	sel := make(Selection, 0, len(raw))
	for _, r := range raw {
		if strings.TrimSpace(r) == "" {
			continue
		}
		c, err := Parse(r)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		sel = append(sel, c)
	}

	return sel, nil
}

func (s Selection) Contains(c Code) bool {
	for _, sc := range s {
		if sc == c {
			return true
		}
	}
	return false
}

func (s Selection) Strings() []string {
	out := make([]string, len(s))
	for i, c := range s {
		out[i] = string(c)
	}
	return out
}

// Text holds one string per supported locale.
type Text map[Code]string

// NewText returns a Text with every supported locale present and empty.
func NewText() Text {
	t := make(Text, len(all))
	for _, c := range all {
		t[c] = ""
	}
	return t
}

// Uniform returns a Text with every locale set to value.
func Uniform(value string) Text {
	t := make(Text, len(all))
	for _, c := range all {
		t[c] = value
	}
	return t
}

// Normalize fills in missing locale keys and drops unknown ones.
func (t Text) Normalize() Text {
	out := NewText()
	for c, v := range t {
		if c.Valid() {
			out[c] = v
		}
	}
	return out
}

// Get returns the text for c, falling back to enUS and then to "".
func (t Text) Get(c Code) string {
	if v := t[c]; v != "" {
		return v
	}
	return t[EnUS]
}
