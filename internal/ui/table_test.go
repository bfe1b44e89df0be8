package ui

import (
	"strings"
	"testing"
)

func TestFormatTable_AlignsColumns(t *testing.T) {
	out := FormatTable(
		[]string{"ID", "STATE"},
		[][]string{
			{"short", "awaiting_action"},
			{"a-much-longer-id", "done"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "ID") {
		t.Errorf("expected header first: %q", lines[0])
	}
	stateCol := strings.Index(lines[1], "awaiting_action")
	doneCol := strings.Index(lines[2], "done")
	if stateCol != doneCol {
		t.Errorf("state column misaligned: %d != %d\n%s", stateCol, doneCol, out)
	}
}

func TestFormatTable_TruncatesLongCells(t *testing.T) {
	long := strings.Repeat("x", 200)
	out := FormatTable([]string{"VALUE"}, [][]string{{long}})
	if strings.Contains(out, long) {
		t.Error("expected long cell truncated")
	}
	if !strings.Contains(out, "...") {
		t.Errorf("expected ellipsis: %q", out)
	}
}

func TestFormatKeyValues(t *testing.T) {
	out := FormatKeyValues([][2]string{
		{"Session", "abc"},
		{"", ""},
		{"State", "awaiting_action"},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), out)
	}
	if lines[1] != "" {
		t.Errorf("expected blank separator line, got %q", lines[1])
	}
	valueCol := strings.Index(lines[0], "abc")
	stateCol := strings.Index(lines[2], "awaiting_action")
	if valueCol != stateCol {
		t.Errorf("values misaligned: %d != %d\n%s", valueCol, stateCol, out)
	}
}

func TestPanel_Plain(t *testing.T) {
	out := Panel("Title", "body line", ToneInfo, false)
	if !strings.Contains(out, "Title") || !strings.Contains(out, "body line") {
		t.Errorf("panel missing content: %q", out)
	}
	if !strings.Contains(out, "+") || !strings.Contains(out, "|") {
		t.Errorf("expected ascii border: %q", out)
	}
}

func TestPanel_NoBody(t *testing.T) {
	out := Panel("Only title", "", ToneSuccess, false)
	if !strings.Contains(out, "Only title") {
		t.Errorf("panel missing title: %q", out)
	}
	if strings.Contains(out, "\n\n\n") {
		t.Errorf("unexpected blank body block: %q", out)
	}
}
