package session

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *EventStore {
	t.Helper()
	return NewEventStore(t.TempDir())
}

func TestAppendEvent_CreatesLog(t *testing.T) {
	store := newTestStore(t)

	event := NewEvent("abc", EventSessionStarted, map[string]any{"problem_id": "lru_cache"})
	if err := store.AppendEvent(event); err != nil {
		t.Fatalf("append: %v", err)
	}

	logPath := filepath.Join(store.Root(), SessionsDir, "abc.jsonl")
	if _, err := os.Stat(logPath); err != nil {
		t.Fatalf("expected log file at %s: %v", logPath, err)
	}
}

func TestAppendEvent_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	event := NewEvent("abc", EventCodeSubmitted, map[string]any{
		"attempt": float64(1),
		"file":    "solution.go",
		"nested":  map[string]any{"key": "value"},
	})
	if err := store.AppendEvent(event); err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := store.LoadEvents("abc")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	loaded := events[0]
	if loaded.SessionID != event.SessionID {
		t.Errorf("session id: expected %s, got %s", event.SessionID, loaded.SessionID)
	}
	if loaded.Type != event.Type {
		t.Errorf("type: expected %s, got %s", event.Type, loaded.Type)
	}
	if !reflect.DeepEqual(loaded.Payload, event.Payload) {
		t.Errorf("payload: expected %v, got %v", event.Payload, loaded.Payload)
	}
	if !loaded.Timestamp.Truncate(time.Second).Equal(event.Timestamp.Truncate(time.Second)) {
		t.Errorf("timestamp: expected %v, got %v", event.Timestamp, loaded.Timestamp)
	}
}

func TestLoadEvents_PreservesAppendOrder(t *testing.T) {
	store := newTestStore(t)

	types := []EventType{EventSessionStarted, EventCodeSubmitted, EventEvalResult, EventSessionEnded}
	for _, eventType := range types {
		if err := store.AppendEvent(NewEvent("abc", eventType, nil)); err != nil {
			t.Fatalf("append %s: %v", eventType, err)
		}
	}

	events, err := store.LoadEvents("abc")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(events) != len(types) {
		t.Fatalf("expected %d events, got %d", len(types), len(events))
	}
	for i, eventType := range types {
		if events[i].Type != eventType {
			t.Errorf("position %d: expected %s, got %s", i, eventType, events[i].Type)
		}
	}
}

func TestLoadEvents_MissingSessionReturnsEmpty(t *testing.T) {
	store := newTestStore(t)

	events, err := store.LoadEvents("nope")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected no events, got %d", len(events))
	}
}

func TestLoadEvents_SkipsBlankLines(t *testing.T) {
	store := newTestStore(t)

	if err := store.AppendEvent(NewEvent("abc", EventSessionStarted, nil)); err != nil {
		t.Fatalf("append: %v", err)
	}

	logPath := filepath.Join(store.Root(), SessionsDir, "abc.jsonl")
	file, err := os.OpenFile(logPath, os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	if _, err := file.WriteString("\n\n   \n"); err != nil {
		t.Fatalf("write blanks: %v", err)
	}
	file.Close()

	if err := store.AppendEvent(NewEvent("abc", EventSessionEnded, nil)); err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := store.LoadEvents("abc")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("expected 2 events, got %d", len(events))
	}
}

func TestLoadEvents_CorruptLineFailsLoad(t *testing.T) {
	store := newTestStore(t)

	if err := store.AppendEvent(NewEvent("abc", EventSessionStarted, nil)); err != nil {
		t.Fatalf("append: %v", err)
	}

	logPath := filepath.Join(store.Root(), SessionsDir, "abc.jsonl")
	file, err := os.OpenFile(logPath, os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	if _, err := file.WriteString("{not json\n"); err != nil {
		t.Fatalf("write corrupt line: %v", err)
	}
	file.Close()

	_, err = store.LoadEvents("abc")
	if !errors.Is(err, ErrCorruptLog) {
		t.Errorf("expected ErrCorruptLog, got %v", err)
	}
}

func TestLoadEvents_UnknownEventTypeFailsLoad(t *testing.T) {
	store := newTestStore(t)

	logPath := filepath.Join(store.Root(), SessionsDir, "abc.jsonl")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	line := `{"session_id":"abc","timestamp":"2026-01-06T12:00:00Z","event_type":"NOT_A_THING","payload":{}}` + "\n"
	if err := os.WriteFile(logPath, []byte(line), 0644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	_, err := store.LoadEvents("abc")
	if !errors.Is(err, ErrCorruptLog) {
		t.Errorf("expected ErrCorruptLog, got %v", err)
	}
}

func TestSessionExists(t *testing.T) {
	store := newTestStore(t)

	if store.SessionExists("abc") {
		t.Error("session should not exist yet")
	}

	if err := store.AppendEvent(NewEvent("abc", EventSessionStarted, nil)); err != nil {
		t.Fatalf("append: %v", err)
	}

	if !store.SessionExists("abc") {
		t.Error("session should exist after append")
	}
}

func TestSessionIDs(t *testing.T) {
	store := newTestStore(t)

	ids, err := store.SessionIDs()
	if err != nil {
		t.Fatalf("ids: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("expected no ids, got %v", ids)
	}

	for _, id := range []string{"one", "two", "three"} {
		if err := store.AppendEvent(NewEvent(id, EventSessionStarted, nil)); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	ids, err = store.SessionIDs()
	if err != nil {
		t.Fatalf("ids: %v", err)
	}
	sort.Strings(ids)
	expected := []string{"one", "three", "two"}
	if !reflect.DeepEqual(ids, expected) {
		t.Errorf("expected %v, got %v", expected, ids)
	}
}

func TestDeleteSession(t *testing.T) {
	store := newTestStore(t)

	if err := store.AppendEvent(NewEvent("abc", EventSessionStarted, nil)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := store.DeleteSession("abc"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if store.SessionExists("abc") {
		t.Error("session should be gone after delete")
	}
}

func TestDeleteSession_MissingIsNotAnError(t *testing.T) {
	store := newTestStore(t)

	if err := store.DeleteSession("nope"); err != nil {
		t.Errorf("delete of missing session: %v", err)
	}

	ids, err := store.SessionIDs()
	if err != nil {
		t.Fatalf("ids: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("expected store unchanged, got %v", ids)
	}
}

func TestEventCount(t *testing.T) {
	store := newTestStore(t)

	count, err := store.EventCount("abc")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0, got %d", count)
	}

	for i := 0; i < 3; i++ {
		if err := store.AppendEvent(NewEvent("abc", EventAgentResponse, nil)); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	count, err = store.EventCount("abc")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3, got %d", count)
	}
}
