package state

import (
	"fmt"
	"sync"
	"time"

	"vrcwatch/internal/event"
)

// maxEvents bounds the in-memory event ring handed to the UI. The journal on
// disk keeps the full record.
const maxEvents = 500

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Events              []event.Event
	Counts              map[string]int
	TotalMatched        int
	TailPath            string
	TailOffset          int64
	Attached            bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
	NotifyFailures      int
}

// IsStalled returns true when polling has failed repeatedly.
func (s Snapshot) IsStalled() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates between the poller and the UI.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// AddEvent appends a matched event, trimming the ring to maxEvents.
func (s *Store) AddEvent(evt event.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Events = append(s.snapshot.Events, evt)
	if len(s.snapshot.Events) > maxEvents {
		s.snapshot.Events = append([]event.Event(nil), s.snapshot.Events[len(s.snapshot.Events)-maxEvents:]...)
	}
	if s.snapshot.Counts == nil {
		s.snapshot.Counts = make(map[string]int)
	}
	s.snapshot.Counts[evt.Keyword]++
	s.snapshot.TotalMatched++
}

// SetTail records the file and offset the session is currently tailing and
// marks the poll cycle successful.
func (s *Store) SetTail(path string, offset int64, attached bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.TailPath = path
	s.snapshot.TailOffset = offset
	s.snapshot.Attached = attached
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
	s.snapshot.LastUpdated = time.Now()
}

// RecordError notes a failed poll cycle. Previous data is kept for display.
func (s *Store) RecordError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastError = err
	s.snapshot.ConsecutiveFailures++
	s.snapshot.LastUpdated = time.Now()
}

// NoteNotifyFailure counts a failed webhook send. Notification failures are
// cosmetic: they never stall the tail, so they don't touch the poll error
// state.
func (s *Store) NoteNotifyFailure() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.NotifyFailures++
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Events = cloneEvents(s.snapshot.Events)
	snap.Counts = cloneCounts(s.snapshot.Counts)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneEvents(events []event.Event) []event.Event {
	if len(events) == 0 {
		return nil
	}
	dup := make([]event.Event, len(events))
	copy(dup, events)
	return dup
}

func cloneCounts(counts map[string]int) map[string]int {
	if len(counts) == 0 {
		return nil
	}
	dup := make(map[string]int, len(counts))
	for k, v := range counts {
		dup[k] = v
	}
	return dup
}
