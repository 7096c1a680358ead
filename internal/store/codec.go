package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/valyala/fastjson"

	"github.com/hectorgimenez/d2rlabels/internal/locale"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// Decode parses a string table file. Every row must be an object, numeric
// ids written as floats are accepted.
func Decode(name string, data []byte) (*Table, error) {
	hasBOM := bytes.HasPrefix(data, bom)
	data = bytes.TrimPrefix(data, bom)

	if len(bytes.TrimSpace(data)) == 0 {
		t := NewTable(name, []Record{})
		t.BOM = hasBOM
		return t, nil
	}

	var p fastjson.Parser
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	rows, err := v.Array()
	if err != nil {
		return nil, fmt.Errorf("expected a JSON array: %w", err)
	}

	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		if row.Type() != fastjson.TypeObject {
			return nil, fmt.Errorf("row %d: expected an object, got %s", i, row.Type())
		}
		id, err := decodeID(row.Get("id"))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}

		r := NewRecord(id, string(row.GetStringBytes("Key")))
		for _, c := range locale.All() {
			r.Set(c, string(row.GetStringBytes(string(c))))
		}
		records = append(records, r)
	}

	t := NewTable(name, records)
	t.BOM = hasBOM
	return t, nil
}

func decodeID(v *fastjson.Value) (int, error) {
	if v == nil {
		return 0, fmt.Errorf("missing id")
	}
	switch v.Type() {
	case fastjson.TypeNumber:
		if id, err := v.Int(); err == nil {
			return id, nil
		}
		f, err := v.Float64()
		if err != nil {
			return 0, err
		}
		return int(f), nil
	default:
		return 0, fmt.Errorf("id has type %s, want number", v.Type())
	}
}

// Encode serializes the table with 2-space indentation, keeping markup
// characters unescaped and restoring the byte order mark if it had one.
func Encode(t *Table) ([]byte, error) {
	records := t.Records
	if records == nil {
		records = []Record{}
	}

	var buf bytes.Buffer
	if t.BOM {
		buf.Write(bom)
	}
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("error encoding %s: %w", t.Name, err)
	}

	return buf.Bytes(), nil
}
