package store

import (
	"github.com/hectorgimenez/d2rlabels/internal/locale"
)

// ApplyUpdate sets one locale column of the record with the given id. When
// no record has that id, a new one with empty locales is appended first.
// Records are always matched by id, never by position.
func ApplyUpdate(records []Record, id int, key string, c locale.Code, value string) []Record {
	for i := range records {
		if records[i].ID == id {
			records[i].Set(c, value)
			return records
		}
	}

	r := NewRecord(id, key)
	r.Set(c, value)
	return append(records, r)
}

// Table is the in-memory copy of one string table file for a single apply
// cycle. Every category writes through the same Table so updates to one id
// from different categories accumulate instead of overwriting each other.
type Table struct {
	Name    string
	Records []Record
	// BOM is true when the file on disk started with a UTF-8 byte order mark.
	BOM bool
	// Missing is true for optional files that did not exist when read.
	Missing bool

	index   map[int]int
	keys    map[string]int
	updates int
}

func NewTable(name string, records []Record) *Table {
	t := &Table{Name: name, Records: records}
	t.reindex()
	return t
}

func (t *Table) reindex() {
	t.index = make(map[int]int, len(t.Records))
	t.keys = make(map[string]int, len(t.Records))
	for i, r := range t.Records {
		// First occurrence wins, same as a linear scan.
		if _, ok := t.index[r.ID]; !ok {
			t.index[r.ID] = i
		}
		if _, ok := t.keys[r.Key]; !ok && r.Key != "" {
			t.keys[r.Key] = i
		}
	}
}

func (t *Table) Find(id int) (Record, bool) {
	i, ok := t.index[id]
	if !ok {
		return Record{}, false
	}
	return t.Records[i], true
}

// Resolve returns the id a row with key should be written to. A record
// carrying key wins over id. Otherwise id is used, unless another row
// already occupies it, in which case ok is false and nothing must be written.
func (t *Table) Resolve(id int, key string) (resolved int, ok bool) {
	if i, found := t.keys[key]; found && key != "" {
		return t.Records[i].ID, true
	}
	if i, found := t.index[id]; found && t.Records[i].Key != key {
		return 0, false
	}
	return id, true
}

// Apply is ApplyUpdate on the table's records, using the id index.
func (t *Table) Apply(id int, key string, c locale.Code, value string) {
	t.updates++
	if i, ok := t.index[id]; ok {
		t.Records[i].Set(c, value)
		return
	}

	r := NewRecord(id, key)
	r.Set(c, value)
	t.index[id] = len(t.Records)
	if _, ok := t.keys[key]; !ok && key != "" {
		t.keys[key] = len(t.Records)
	}
	t.Records = append(t.Records, r)
}

// ApplyText applies value[c] for every locale in sel.
func (t *Table) ApplyText(id int, key string, sel locale.Selection, value func(c locale.Code) string) {
	for _, c := range sel {
		t.Apply(id, key, c, value(c))
	}
}

// Touched reports whether any update was applied during this cycle.
func (t *Table) Touched() bool {
	return t.updates > 0
}

func (t *Table) Updates() int {
	return t.updates
}
