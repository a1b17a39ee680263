package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"vrcwatch/internal/event"
)

// initViewport initializes the event feed viewport.
func (m *Model) initViewport() {
	m.viewport = viewport.New(m.feedWidth(), m.feedHeight())
}

// resizeViewport updates the viewport dimensions after a window resize.
func (m *Model) resizeViewport() {
	m.viewport.Width = m.feedWidth()
	m.viewport.Height = m.feedHeight()
}

// feedWidth returns the inner width of the feed box.
func (m Model) feedWidth() int {
	w := m.width - 2 // box borders
	if w < 10 {
		w = 10
	}
	return w
}

// feedHeight returns the inner height of the feed box.
func (m Model) feedHeight() int {
	h := m.height - 4 // header, footer, box borders
	if h < 3 {
		h = 3
	}
	return h
}

// renderFeed rebuilds the viewport content. Content only changes when a new
// event arrives, so idle ticks skip the rebuild unless forced (resize, theme
// change).
func (m *Model) renderFeed(force bool) {
	total := len(m.backlog) + m.snapshot.TotalMatched
	if !force && total == m.lastRendered {
		if m.follow {
			m.viewport.GotoBottom()
		}
		return
	}
	m.lastRendered = total

	styles := m.theme.Styles()
	lines := make([]string, 0, len(m.backlog)+len(m.snapshot.Events)+1)

	for _, old := range m.backlog {
		lines = append(lines, styles.FaintText.Render(truncate(old, m.viewport.Width)))
	}
	for _, evt := range m.snapshot.Events {
		lines = append(lines, m.renderEventLine(evt))
	}
	if len(lines) == 0 {
		lines = append(lines, styles.MutedText.Render("Waiting for events..."))
	}

	m.viewport.SetContent(strings.Join(lines, "\n"))
	if m.follow {
		m.viewport.GotoBottom()
	}
}

// renderEventLine renders one event: muted clock, raw line in the rule color.
func (m Model) renderEventLine(evt event.Event) string {
	styles := m.theme.Styles()
	clock := styles.FaintText.Render(evt.Time.Format("15:04:05"))
	text := formatEventText(evt, m.viewport.Width-10)
	colored := lipgloss.NewStyle().
		Foreground(lipgloss.Color(evt.Color)).
		Render(text)
	return clock + "  " + colored
}

// formatEventText trims and truncates the raw line for display.
func formatEventText(evt event.Event, limit int) string {
	return truncate(strings.TrimSpace(evt.Line), limit)
}

// renderFeedBox wraps the viewport in a border. The border highlights while
// the feed is following new events.
func (m Model) renderFeedBox() string {
	borderColor := m.theme.Border
	if m.follow {
		borderColor = m.theme.BorderFocus
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Width(m.feedWidth()).
		Render(m.viewport.View())
}

// renderFooter renders the bottom status bar.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	followLabel := "FOLLOW"
	followStyle := styles.SuccessText
	if !m.follow {
		followLabel = "PAUSED"
		followStyle = styles.WarningText
	}

	parts := []string{
		bg.Render(followLabel, followStyle),
		bg.Render(fmt.Sprintf("%d events", m.snapshot.TotalMatched), styles.MutedText),
		bg.Render(fmt.Sprintf("%3.0f%%", m.viewport.ScrollPercent()*100), styles.FaintText),
	}
	if m.snapshot.NotifyFailures > 0 {
		parts = append(parts, bg.Render(fmt.Sprintf("%d notify errors", m.snapshot.NotifyFailures), styles.WarningText))
	}
	parts = append(parts, bg.Render("h help", styles.FaintText), bg.Render("q quit", styles.FaintText))

	return styles.Footer.Width(m.width).Render(bg.Join(parts, sep))
}
