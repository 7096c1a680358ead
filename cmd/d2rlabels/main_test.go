package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/hectorgimenez/d2rlabels/internal/compiler"
)

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	printResult(&buf, &compiler.Result{
		RunID: "run-1",
		Files: []compiler.FileResult{
			{Name: "item-names.json", Records: 120, Updates: 4, Bytes: 4096},
			{Name: "item-runes.json", Records: 33, Updates: 33, Bytes: 2048, Created: true},
		},
		Skipped:    []string{"item-modifiers.json"},
		Highlights: make([]string, 33),
		Backup:     "/tmp/backup/20240301-123005",
		Duration:   1500 * time.Millisecond,
	})

	out := buf.String()
	for _, want := range []string{"item-runes.json (new)", "Skipped item-modifiers.json", "2.0 kB", "33 rune definitions", "run-1", "1.5s", "20240301-123005"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestPrintResultMarksOnlyCreatedFiles(t *testing.T) {
	var buf bytes.Buffer
	printResult(&buf, &compiler.Result{
		RunID: "run-2",
		Files: []compiler.FileResult{{Name: "item-names.json", Records: 1, Updates: 1, Bytes: 10}},
	})
	if out := buf.String(); strings.Contains(out, "(new)") || strings.Contains(out, "Skipped") {
		t.Errorf("unexpected markers:\n%s", out)
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		args  []string
		table bool
		load  bool
	}{
		{args: nil},
		{args: []string{"-t"}, table: true},
		{args: []string{"--table", "-l"}, table: true, load: true},
	}
	for _, tc := range tests {
		o, err := parseFlags(tc.args)
		if err != nil {
			t.Fatalf("parseFlags(%q) = %v", tc.args, err)
		}
		if o.table != tc.table || o.load != tc.load {
			t.Errorf("parseFlags(%q) table = %v, load = %v, want %v, %v", tc.args, o.table, o.load, tc.table, tc.load)
		}
	}

	o, err := parseFlags([]string{"-L", "enUS,de-DE"})
	if err != nil || len(o.locales) != 2 || o.locales[1] != "de-DE" {
		t.Errorf("locales = %v, %v", o.locales, err)
	}
}
