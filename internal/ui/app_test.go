package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"vrcwatch/internal/event"
	"vrcwatch/internal/state"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	rules, err := event.NewRuleset([]event.Rule{
		{Keyword: "OnPlayerJoined", Color: "#2ecc71"},
	})
	if err != nil {
		t.Fatalf("NewRuleset: %v", err)
	}
	return New(Options{
		Store:     &state.Store{},
		Rules:     rules,
		PollTick:  250 * time.Millisecond,
		ThemeName: "Nightfox",
		Follow:    true,
		PrefsPath: t.TempDir() + "/prefs.toml",
	})
}

func TestNewClampsTick(t *testing.T) {
	m := newTestModel(t)
	if m.tick < 500*time.Millisecond {
		t.Errorf("tick %v should be clamped to at least 500ms", m.tick)
	}
}

func TestNewDefaultsTheme(t *testing.T) {
	m := New(Options{})
	if m.theme.Name != themeOrder[0] {
		t.Errorf("empty theme name should default to %q, got %q", themeOrder[0], m.theme.Name)
	}
}

func TestWindowSizeReadiesModel(t *testing.T) {
	m := newTestModel(t)
	if m.ready {
		t.Fatal("model should not be ready before first resize")
	}

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	if !m.ready {
		t.Error("model should be ready after window size message")
	}
	if m.viewport.Width != 118 {
		t.Errorf("viewport width = %d, want 118", m.viewport.Width)
	}
}

func TestSnapshotRendersEvents(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	snap := state.Snapshot{
		Events: []event.Event{{
			Time:    time.Date(2026, 8, 25, 18, 30, 0, 0, time.Local),
			Line:    "OnPlayerJoined alice",
			Keyword: "OnPlayerJoined",
			Color:   "#2ecc71",
		}},
		TotalMatched: 1,
		Attached:     true,
	}
	updated, _ = m.Update(snapshotMsg(snap))
	m = updated.(Model)

	view := m.viewport.View()
	if !strings.Contains(view, "OnPlayerJoined alice") {
		t.Errorf("viewport should contain the event line, got:\n%s", view)
	}
	if !strings.Contains(view, "18:30:00") {
		t.Errorf("viewport should contain the event clock, got:\n%s", view)
	}
}

func TestEmptyFeedPlaceholder(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	if !strings.Contains(m.viewport.View(), "Waiting for events") {
		t.Error("empty feed should show the waiting placeholder")
	}
}

func TestFormatEventText(t *testing.T) {
	evt := event.Event{Line: "  OnPlayerLeft bob  "}
	if got := formatEventText(evt, 40); got != "OnPlayerLeft bob" {
		t.Errorf("formatEventText = %q", got)
	}
	if got := formatEventText(evt, 10); got != "OnPlaye..." {
		t.Errorf("formatEventText truncated = %q", got)
	}
}
