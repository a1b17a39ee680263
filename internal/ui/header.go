package ui

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the top status bar: attach state, tailed file, and
// per-keyword match counts in their configured colors.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)
	compact := m.width < 100

	var parts []string
	parts = append(parts, bg.Render("vrcwatch", styles.Logo))

	if m.snapshot.Attached {
		parts = append(parts, bg.Render("● ON", styles.SuccessText))
		name := filepath.Base(m.snapshot.TailPath)
		limit := 40
		if compact {
			limit = 24
		}
		parts = append(parts, bg.Render(truncateMiddle(name, limit), styles.MutedText))
	} else {
		parts = append(parts, bg.Render("● OFF", styles.DangerText))
		parts = append(parts, bg.Render("waiting for log file", styles.WarningText))
	}

	if m.rules != nil && !compact {
		for _, rule := range m.rules.Rules() {
			count := m.snapshot.Counts[rule.Keyword]
			label := fmt.Sprintf("%s:%d", rule.Keyword, count)
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(rule.Color))
			if count == 0 {
				style = styles.FaintText
			}
			parts = append(parts, bg.Render(label, style))
		}
	} else {
		parts = append(parts, bg.Render(fmt.Sprintf("Matched: %d", m.snapshot.TotalMatched), styles.MutedText))
	}

	if !m.lastUpdated.IsZero() {
		parts = append(parts, bg.Render(m.lastUpdated.Format("15:04:05"), styles.FaintText))
	}

	if m.snapshot.IsStalled() && m.snapshot.LastError != nil {
		errText := truncate(m.snapshot.LastError.Error(), ternaryInt(compact, 30, 60))
		parts = append(parts, bg.Render("ERROR", styles.DangerText)+bg.Space()+bg.Render(errText, styles.DangerText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
}

func ternaryInt(cond bool, a, b int) int {
	if cond {
		return a
	}
	return b
}
