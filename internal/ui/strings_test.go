package ui

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		limit int
		want  string
	}{
		{"short string unchanged", "hello", 10, "hello"},
		{"exact limit unchanged", "hello", 5, "hello"},
		{"long string gets ellipsis", "hello world", 8, "hello..."},
		{"zero limit returns trimmed", "  hello  ", 0, "hello"},
		{"tiny limit hard cuts", "hello", 3, "hel"},
		{"trims whitespace first", "  hi  ", 10, "hi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.value, tt.limit)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.value, tt.limit, got, tt.want)
			}
		})
	}
}

func TestTruncateMiddle(t *testing.T) {
	tests := []struct {
		name  string
		value string
		limit int
		want  string
	}{
		{"short string unchanged", "log.txt", 20, "log.txt"},
		{"keeps prefix and extension", "output_log_2026-08-25_18-00-00.txt", 24, "output_log_…18-00-00.txt"},
		{"empty string", "", 10, ""},
		{"zero limit unchanged", "abcdef", 0, "abcdef"},
		{"tiny limit hard cuts", "abcdef", 3, "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateMiddle(tt.value, tt.limit)
			if got != tt.want {
				t.Errorf("truncateMiddle(%q, %d) = %q, want %q", tt.value, tt.limit, got, tt.want)
			}
			if tt.limit > 3 && len([]rune(got)) > tt.limit {
				t.Errorf("result %q exceeds limit %d", got, tt.limit)
			}
		})
	}
}
