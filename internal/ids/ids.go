package ids

import (
	"fmt"

	"github.com/hectorgimenez/d2go/pkg/data/item"
)

// Locale files of the game's string tables touched by the compiler.
const (
	FileItemNames     = "item-names.json"
	FileItemNameAffix = "item-nameaffixes.json"
	FileItemModifiers = "item-modifiers.json"
	FileItemRunes     = "item-runes.json"
)

// Files lists every string table the compiler reads, in read order.
var Files = []string{FileItemNames, FileItemNameAffix, FileItemModifiers, FileItemRunes}

// Required reports whether a missing file aborts the cycle. The other tables
// are created on first write.
func Required(file string) bool {
	return file == FileItemNames || file == FileItemNameAffix
}

// Entry binds a d2go item name to its row in one of the game's string tables.
type Entry struct {
	Name item.Name
	Key  string
	ID   int
	File string
}

func (e Entry) entry() Entry { return e }

func (e Entry) String() string {
	return fmt.Sprintf("%s(%s#%d)", e.Name, e.File, e.ID)
}

type row interface {
	entry() Entry
}

type fileID struct {
	file string
	id   int
}

// Table is built once from a canonical list and indexed in both directions.
type Table[T row] struct {
	list   []T
	byName map[item.Name]int
	byID   map[fileID]int
}

func NewTable[T row](list []T) *Table[T] {
	t := &Table[T]{
		list:   list,
		byName: make(map[item.Name]int, len(list)),
		byID:   make(map[fileID]int, len(list)),
	}
	for i, r := range list {
		e := r.entry()
		if _, dup := t.byName[e.Name]; dup {
			panic(fmt.Sprintf("ids: duplicated item name %s", e.Name))
		}
		k := fileID{e.File, e.ID}
		if _, dup := t.byID[k]; dup {
			panic(fmt.Sprintf("ids: duplicated id %d in %s", e.ID, e.File))
		}
		t.byName[e.Name] = i
		t.byID[k] = i
	}

	return t
}

// All returns the canonical list in declaration order.
func (t *Table[T]) All() []T {
	return t.list
}

func (t *Table[T]) ByName(name item.Name) (T, bool) {
	i, ok := t.byName[name]
	if !ok {
		var zero T
		return zero, false
	}
	return t.list[i], true
}

func (t *Table[T]) ByID(file string, id int) (T, bool) {
	i, ok := t.byID[fileID{file, id}]
	if !ok {
		var zero T
		return zero, false
	}
	return t.list[i], true
}

func (t *Table[T]) Len() int {
	return len(t.list)
}

// Tables groups every lookup table the compiler needs. Tests swap individual
// tables to point rows at synthetic ids.
type Tables struct {
	Runes   *Table[Rune]
	Gems    *Table[Entry]
	Potions *Table[Entry]
	Common  *Table[Entry]
	Bases   *Table[Base]
	Quality QualityRows
}

// Default returns the tables matching the game's shipped string files.
func Default() Tables {
	return Tables{
		Runes:   runes,
		Gems:    gems,
		Potions: potions,
		Common:  common,
		Bases:   bases,
		Quality: qualityRows,
	}
}
