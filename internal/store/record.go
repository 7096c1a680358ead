package store

import (
	"github.com/hectorgimenez/d2rlabels/internal/locale"
)

// Record is one row of a game string table. Field order matches the files
// shipped with the game and is preserved on write.
type Record struct {
	ID   int    `json:"id"`
	Key  string `json:"Key"`
	EnUS string `json:"enUS"`
	ZhTW string `json:"zhTW"`
	DeDE string `json:"deDE"`
	EsES string `json:"esES"`
	FrFR string `json:"frFR"`
	ItIT string `json:"itIT"`
	KoKR string `json:"koKR"`
	PlPL string `json:"plPL"`
	EsMX string `json:"esMX"`
	JaJP string `json:"jaJP"`
	PtBR string `json:"ptBR"`
	RuRU string `json:"ruRU"`
	ZhCN string `json:"zhCN"`
}

// NewRecord returns a record with every locale set to "".
func NewRecord(id int, key string) Record {
	return Record{ID: id, Key: key}
}

func (r *Record) field(c locale.Code) *string {
	switch c {
	case locale.EnUS:
		return &r.EnUS
	case locale.ZhTW:
		return &r.ZhTW
	case locale.DeDE:
		return &r.DeDE
	case locale.EsES:
		return &r.EsES
	case locale.FrFR:
		return &r.FrFR
	case locale.ItIT:
		return &r.ItIT
	case locale.KoKR:
		return &r.KoKR
	case locale.PlPL:
		return &r.PlPL
	case locale.EsMX:
		return &r.EsMX
	case locale.JaJP:
		return &r.JaJP
	case locale.PtBR:
		return &r.PtBR
	case locale.RuRU:
		return &r.RuRU
	case locale.ZhCN:
		return &r.ZhCN
	}
	return nil
}

func (r Record) Get(c locale.Code) string {
	if f := r.field(c); f != nil {
		return *f
	}
	return ""
}

// Set updates a single locale column. Unknown locales are ignored.
func (r *Record) Set(c locale.Code, value string) {
	if f := r.field(c); f != nil {
		*f = value
	}
}

// Text returns all locale columns.
func (r Record) Text() locale.Text {
	t := locale.NewText()
	for _, c := range locale.All() {
		t[c] = r.Get(c)
	}
	return t
}
