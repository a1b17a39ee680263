// Package journal persists matched events to dated, append-only text files.
package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"vrcwatch/internal/event"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "2006-01-02 15:04:05"
)

// Writer appends events to <dir>/<prefix><date>.txt. The file for a given
// date is created on first use and only ever appended to; when the event date
// changes the writer rolls to the next day's file.
type Writer struct {
	dir    string
	prefix string

	file *os.File
	date string
}

// NewWriter creates the output directory if needed and returns a Writer.
func NewWriter(dir, prefix string) (*Writer, error) {
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	if strings.TrimSpace(prefix) == "" {
		return nil, fmt.Errorf("output prefix is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &Writer{dir: dir, prefix: prefix}, nil
}

// PathFor returns the journal file path for the given event.
func (w *Writer) PathFor(evt event.Event) string {
	return w.PathForDate(evt.Time)
}

// PathForDate returns the journal file path for the given day.
func (w *Writer) PathForDate(t time.Time) string {
	return filepath.Join(w.dir, w.prefix+t.Format(dateLayout)+".txt")
}

// Append writes one formatted line for the event. The date is taken from the
// event timestamp, so an event recorded just before midnight lands in that
// day's file even if the write happens after the rollover.
func (w *Writer) Append(evt event.Event) error {
	date := evt.Time.Format(dateLayout)
	if w.file == nil || date != w.date {
		if err := w.reopen(date); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w.file, "%s - %s\n", evt.Time.Format(timeLayout), evt.Line); err != nil {
		return fmt.Errorf("append journal: %w", err)
	}
	return nil
}

// Close releases the current journal file handle.
func (w *Writer) Close() error {
	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	w.date = ""
	return err
}

func (w *Writer) reopen(date string) error {
	if w.file != nil {
		_ = w.file.Close()
		w.file = nil
	}
	path := filepath.Join(w.dir, w.prefix+date+".txt")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	w.file = file
	w.date = date
	return nil
}
