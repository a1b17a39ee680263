package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Session tails the newest file matching a glob pattern in a directory. The
// current target path, byte offset, and partial-line carry all live here so a
// rotation or restart re-initializes one value instead of scattered globals.
type Session struct {
	dir       string
	pattern   string
	fromStart bool

	path     string
	offset   int64
	carry    []byte
	attached bool
	started  bool
}

// NewSession prepares a tail session for dir/pattern. When fromStart is false
// the first attached file is read from its end, skipping history written
// before vrcwatch started. Rotated-in files are always read from offset zero.
func NewSession(dir, pattern string, fromStart bool) (*Session, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("log dir is empty")
	}
	if strings.TrimSpace(pattern) == "" {
		return nil, fmt.Errorf("log pattern is empty")
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("log pattern %q: %w", pattern, err)
	}
	return &Session{dir: dir, pattern: pattern, fromStart: fromStart}, nil
}

// Path returns the file currently being tailed, empty before first attach.
func (s *Session) Path() string {
	return s.path
}

// Offset returns the byte offset already consumed from the current file.
func (s *Session) Offset() int64 {
	return s.offset
}

// Attached reports whether a log file has been found and is being tailed.
func (s *Session) Attached() bool {
	return s.attached
}

// Poll checks for rotation and reads any bytes appended since the last call,
// returning the complete new lines. A missing log file is not an error: the
// session stays detached and the next poll retries.
func (s *Session) Poll() ([]string, error) {
	latest, err := s.latest()
	if err != nil {
		return nil, err
	}
	if latest == "" {
		s.detach()
		return nil, nil
	}

	if latest != s.path {
		// Rotation: the monitored application started a new log file. Switch
		// to it and read from the beginning.
		first := !s.started
		s.path = latest
		s.offset = 0
		s.carry = nil
		s.attached = true
		s.started = true
		if first && !s.fromStart {
			size, err := fileSize(latest)
			if err != nil {
				s.detach()
				return nil, err
			}
			s.offset = size
			return nil, nil
		}
	}

	return s.read()
}

func (s *Session) read() ([]string, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.detach()
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat log: %w", err)
	}
	size := info.Size()
	if size < s.offset {
		// Truncated in place. Start over from the top.
		s.offset = 0
		s.carry = nil
	}
	if size == s.offset {
		return nil, nil
	}

	chunk := make([]byte, size-s.offset)
	n, err := file.ReadAt(chunk, s.offset)
	if err != nil && n == 0 {
		return nil, fmt.Errorf("read log: %w", err)
	}
	s.offset += int64(n)

	return s.splitLines(chunk[:n]), nil
}

// splitLines appends the chunk to the carry buffer and extracts complete
// lines. A trailing partial line stays in the carry until its newline arrives.
func (s *Session) splitLines(chunk []byte) []string {
	buf := append(s.carry, chunk...)
	var lines []string
	start := 0
	for i, b := range buf {
		if b != '\n' {
			continue
		}
		line := strings.TrimRight(string(buf[start:i]), "\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
		start = i + 1
	}
	if start < len(buf) {
		s.carry = append([]byte(nil), buf[start:]...)
	} else {
		s.carry = nil
	}
	return lines
}

// latest returns the most recently modified file matching the pattern, or
// empty when none exists yet.
func (s *Session) latest() (string, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, s.pattern))
	if err != nil {
		return "", fmt.Errorf("glob logs: %w", err)
	}
	if len(matches) == 0 {
		return "", nil
	}

	type candidate struct {
		path string
		info os.FileInfo
	}
	candidates := make([]candidate, 0, len(matches))
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil {
			continue
		}
		if info.IsDir() {
			continue
		}
		candidates = append(candidates, candidate{path: match, info: info})
	}
	if len(candidates) == 0 {
		return "", nil
	}
	sort.Slice(candidates, func(i, j int) bool {
		mi, mj := candidates[i].info.ModTime(), candidates[j].info.ModTime()
		if mi.Equal(mj) {
			return candidates[i].path < candidates[j].path
		}
		return mi.After(mj)
	})
	return candidates[0].path, nil
}

func (s *Session) detach() {
	s.path = ""
	s.offset = 0
	s.carry = nil
	s.attached = false
}

func fileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat log: %w", err)
	}
	return info.Size(), nil
}
