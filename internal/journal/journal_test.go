package journal

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"vrcwatch/internal/event"
)

func TestNewWriter_Validation(t *testing.T) {
	if _, err := NewWriter(t.TempDir(), "  "); err == nil {
		t.Fatal("NewWriter with empty prefix returned nil error")
	}
}

func TestAppend_WritesDatedFileInArrivalOrder(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir, "parsed_log_")
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	defer w.Close()

	day := time.Date(2026, 8, 25, 18, 30, 0, 0, time.Local)
	events := []event.Event{
		{Time: day, Line: "OnPlayerJoined(Alice)", Keyword: "OnPlayerJoined"},
		{Time: day.Add(time.Second), Line: "OnPlayerLeft(Bob)", Keyword: "OnPlayerLeft"},
		{Time: day.Add(2 * time.Second), Line: "OnPlayerJoined(Carol)", Keyword: "OnPlayerJoined"},
	}
	for _, evt := range events {
		if err := w.Append(evt); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	path := filepath.Join(dir, "parsed_log_2026-08-25.txt")
	if path != w.PathFor(events[0]) {
		t.Fatalf("PathFor = %q, want %q", w.PathFor(events[0]), path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := []string{
		"2026-08-25 18:30:00 - OnPlayerJoined(Alice)",
		"2026-08-25 18:30:01 - OnPlayerLeft(Bob)",
		"2026-08-25 18:30:02 - OnPlayerJoined(Carol)",
	}
	got := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("journal lines = %v, want %v", got, want)
	}
}

func TestAppend_RollsOverAtDateChange(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir, "parsed_log_")
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	defer w.Close()

	beforeMidnight := time.Date(2026, 8, 25, 23, 59, 59, 0, time.Local)
	afterMidnight := time.Date(2026, 8, 26, 0, 0, 1, 0, time.Local)

	if err := w.Append(event.Event{Time: beforeMidnight, Line: "late join"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := w.Append(event.Event{Time: afterMidnight, Line: "early join"}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	day1, err := os.ReadFile(filepath.Join(dir, "parsed_log_2026-08-25.txt"))
	if err != nil {
		t.Fatalf("ReadFile day1: %v", err)
	}
	day2, err := os.ReadFile(filepath.Join(dir, "parsed_log_2026-08-26.txt"))
	if err != nil {
		t.Fatalf("ReadFile day2: %v", err)
	}
	if !strings.Contains(string(day1), "late join") || strings.Contains(string(day1), "early join") {
		t.Fatalf("day1 content = %q", day1)
	}
	if !strings.Contains(string(day2), "early join") {
		t.Fatalf("day2 content = %q", day2)
	}
}

func TestAppend_NeverTruncatesAcrossWriters(t *testing.T) {
	dir := t.TempDir()
	ts := time.Date(2026, 8, 25, 12, 0, 0, 0, time.Local)

	w1, err := NewWriter(dir, "parsed_log_")
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := w1.Append(event.Event{Time: ts, Line: "first run"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := w1.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// A restart mid-day appends to the same file.
	w2, err := NewWriter(dir, "parsed_log_")
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	defer w2.Close()
	if err := w2.Append(event.Event{Time: ts.Add(time.Hour), Line: "second run"}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "parsed_log_2026-08-25.txt"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "first run") || !strings.Contains(string(data), "second run") {
		t.Fatalf("journal = %q, want both runs preserved", data)
	}
}

func TestTail(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "parsed_log_2026-08-25.txt")

	var content strings.Builder
	var all []string
	for i := 1; i <= 10; i++ {
		line := strings.Repeat("x", i)
		content.WriteString(line + "\n")
		all = append(all, line)
	}
	if err := os.WriteFile(path, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		want     []string
	}{
		{"zero", 0, nil},
		{"negative", -1, nil},
		{"partial", 4, all[6:]},
		{"exact", 10, all},
		{"more than exists", 50, all},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tail(path, tt.maxLines)
			if err != nil {
				t.Fatalf("Tail returned error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Tail = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTail_MissingFile(t *testing.T) {
	got, err := Tail(filepath.Join(t.TempDir(), "nope.txt"), 10)
	if err != nil {
		t.Fatalf("Tail returned error: %v", err)
	}
	if got != nil {
		t.Fatalf("Tail = %v, want nil for missing file", got)
	}
}
