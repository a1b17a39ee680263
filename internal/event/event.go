// Package event matches raw log lines against configured keyword rules.
package event

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultColor is used when a rule does not specify one.
const DefaultColor = "#ffffff"

// Rule pairs a log keyword with the color used to render its matches.
// Rules are loaded once from configuration and immutable afterwards.
type Rule struct {
	Keyword string
	Color   string
}

// EmbedColor returns the rule color as the integer form Discord embeds use.
func (r Rule) EmbedColor() int {
	hex := strings.TrimPrefix(r.Color, "#")
	value, err := strconv.ParseInt(hex, 16, 64)
	if err != nil {
		return 0
	}
	return int(value)
}

// Event is a single matched log line.
type Event struct {
	Time    time.Time
	Line    string
	Keyword string
	Color   string
}

// Ruleset is an ordered list of rules. Order matters: when several keywords
// occur in the same line, the first configured rule wins.
type Ruleset struct {
	rules []Rule
}

// NewRuleset validates and normalizes the rules, preserving their order.
func NewRuleset(rules []Rule) (*Ruleset, error) {
	normalized := make([]Rule, 0, len(rules))
	for i, rule := range rules {
		keyword := strings.TrimSpace(rule.Keyword)
		if keyword == "" {
			return nil, fmt.Errorf("rule %d: keyword is empty", i+1)
		}
		color, err := ParseColor(rule.Color)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", keyword, err)
		}
		normalized = append(normalized, Rule{Keyword: keyword, Color: color})
	}
	return &Ruleset{rules: normalized}, nil
}

// Rules returns a copy of the rules in configuration order.
func (rs *Ruleset) Rules() []Rule {
	dup := make([]Rule, len(rs.rules))
	copy(dup, rs.rules)
	return dup
}

// Len reports the number of rules.
func (rs *Ruleset) Len() int {
	return len(rs.rules)
}

// Match returns the first rule whose keyword is a substring of line.
func (rs *Ruleset) Match(line string) (Rule, bool) {
	for _, rule := range rs.rules {
		if strings.Contains(line, rule.Keyword) {
			return rule, true
		}
	}
	return Rule{}, false
}

// ParseColor normalizes a hex color such as "#2ECC71" to lowercase #rrggbb
// form. An empty value falls back to DefaultColor.
func ParseColor(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return DefaultColor, nil
	}
	if !strings.HasPrefix(trimmed, "#") {
		trimmed = "#" + trimmed
	}
	parsed, err := colorful.Hex(trimmed)
	if err != nil {
		return "", fmt.Errorf("parse color %q: %w", value, err)
	}
	return parsed.Hex(), nil
}
