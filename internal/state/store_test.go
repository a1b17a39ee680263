package state

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"vrcwatch/internal/event"
)

func TestStore_AddEventAndSnapshotClone(t *testing.T) {
	var s Store

	evt := event.Event{Time: time.Now(), Line: "OnPlayerJoined(Alice)", Keyword: "OnPlayerJoined", Color: "#2ecc71"}
	s.AddEvent(evt)
	s.AddEvent(event.Event{Time: time.Now(), Line: "OnPlayerLeft(Bob)", Keyword: "OnPlayerLeft", Color: "#e74c3c"})

	snap := s.Snapshot()
	if len(snap.Events) != 2 || snap.Events[0].Line != "OnPlayerJoined(Alice)" {
		t.Fatalf("snapshot events = %#v, want 2 events in arrival order", snap.Events)
	}
	if snap.TotalMatched != 2 {
		t.Fatalf("TotalMatched = %d, want 2", snap.TotalMatched)
	}
	if snap.Counts["OnPlayerJoined"] != 1 || snap.Counts["OnPlayerLeft"] != 1 {
		t.Fatalf("Counts = %#v", snap.Counts)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Events[0].Line = "mutated"
	snap.Counts["OnPlayerJoined"] = 99
	snap2 := s.Snapshot()
	if snap2.Events[0].Line != "OnPlayerJoined(Alice)" {
		t.Fatalf("Snapshot should clone events; got %q", snap2.Events[0].Line)
	}
	if snap2.Counts["OnPlayerJoined"] != 1 {
		t.Fatalf("Snapshot should clone counts; got %d", snap2.Counts["OnPlayerJoined"])
	}
}

func TestStore_EventRingIsBounded(t *testing.T) {
	var s Store
	for i := 0; i < maxEvents+25; i++ {
		s.AddEvent(event.Event{Line: fmt.Sprintf("line %d", i), Keyword: "k"})
	}
	snap := s.Snapshot()
	if len(snap.Events) != maxEvents {
		t.Fatalf("events = %d, want capped at %d", len(snap.Events), maxEvents)
	}
	if snap.Events[0].Line != "line 25" {
		t.Fatalf("oldest retained = %q, want line 25", snap.Events[0].Line)
	}
	if snap.TotalMatched != maxEvents+25 {
		t.Fatalf("TotalMatched = %d, want %d", snap.TotalMatched, maxEvents+25)
	}
}

func TestStore_SetTailClearsError(t *testing.T) {
	var s Store

	s.RecordError(errors.New("glob failed"))
	s.RecordError(errors.New("glob failed again"))
	snap := s.Snapshot()
	if snap.ConsecutiveFailures != 2 || !snap.IsStalled() {
		t.Fatalf("failures = %d stalled = %v, want 2/true", snap.ConsecutiveFailures, snap.IsStalled())
	}
	if snap.LastError == nil {
		t.Fatal("LastError = nil after RecordError")
	}

	before := time.Now()
	s.SetTail("/logs/output_log_01.txt", 4096, true)
	snap = s.Snapshot()
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil after successful cycle", snap.LastError)
	}
	if snap.ConsecutiveFailures != 0 || snap.IsStalled() {
		t.Fatalf("failures = %d, want reset", snap.ConsecutiveFailures)
	}
	if snap.TailPath != "/logs/output_log_01.txt" || snap.TailOffset != 4096 || !snap.Attached {
		t.Fatalf("tail state = %q/%d/%v", snap.TailPath, snap.TailOffset, snap.Attached)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
}

func TestStore_ErrorKeepsEvents(t *testing.T) {
	var s Store
	s.AddEvent(event.Event{Line: "kept", Keyword: "k"})

	origErr := errors.New("boom")
	s.RecordError(origErr)

	snap := s.Snapshot()
	if len(snap.Events) != 1 || snap.Events[0].Line != "kept" {
		t.Fatalf("events lost on error: %#v", snap.Events)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatal("Snapshot should clone error instance")
	}
}

func TestStore_NotifyFailuresAreSeparate(t *testing.T) {
	var s Store
	s.NoteNotifyFailure()
	s.NoteNotifyFailure()

	snap := s.Snapshot()
	if snap.NotifyFailures != 2 {
		t.Fatalf("NotifyFailures = %d, want 2", snap.NotifyFailures)
	}
	if snap.ConsecutiveFailures != 0 || snap.LastError != nil {
		t.Fatal("notify failures must not mark the tail unhealthy")
	}
}
