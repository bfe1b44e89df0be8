package session

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SessionsDir is the directory under the storage root holding event logs.
const SessionsDir = "sessions"

const maxEventLineBytes = 1024 * 1024

// EventStore persists session events as append-only JSONL files, one file
// per session id under <root>/sessions/. It has no notion of which session
// is active; it persists events for any id presented to it.
type EventStore struct {
	root string
}

// NewEventStore returns a store rooted at the given base directory. The
// directory is created lazily on first append.
func NewEventStore(root string) *EventStore {
	return &EventStore{root: root}
}

// Root returns the store's base directory.
func (s *EventStore) Root() string {
	return s.root
}

// AppendEvent serializes the event and appends it to the log for
// event.SessionID, creating the log if absent. The record is written as a
// single complete line and flushed to stable storage before returning.
func (s *EventStore) AppendEvent(event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if err := os.MkdirAll(s.sessionsDir(), 0755); err != nil {
		return fmt.Errorf("create sessions dir: %w", err)
	}

	file, err := os.OpenFile(s.sessionFile(event.SessionID), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open session log: %w", err)
	}

	_, err = file.Write(append(data, '\n'))
	if err == nil {
		err = file.Sync()
	}
	if err1 := file.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	return nil
}

// LoadEvents returns all events for the session in append order. A missing
// log yields an empty slice, not an error. Blank lines are expected noise
// and skipped; a non-blank line that fails to decode into a valid event
// fails the whole load with ErrCorruptLog rather than silently dropping
// data.
func (s *EventStore) LoadEvents(sessionID string) ([]Event, error) {
	file, err := os.Open(s.sessionFile(sessionID))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open session log: %w", err)
	}
	defer file.Close()

	var events []Event
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEventLineBytes)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var event Event
		if err := json.Unmarshal(line, &event); err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %v", ErrCorruptLog, sessionID, lineNum, err)
		}
		if event.SessionID == "" || !event.Type.IsValid() {
			return nil, fmt.Errorf("%w: %s line %d: not a valid event", ErrCorruptLog, sessionID, lineNum)
		}
		events = append(events, event)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan session log: %w", err)
	}

	return events, nil
}

// SessionExists reports whether a log exists for the session id, without
// reading it.
func (s *EventStore) SessionExists(sessionID string) bool {
	_, err := os.Stat(s.sessionFile(sessionID))
	return err == nil
}

// SessionIDs returns the ids of all sessions with a persisted log.
func (s *EventStore) SessionIDs() ([]string, error) {
	entries, err := os.ReadDir(s.sessionsDir())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read sessions dir: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".jsonl") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".jsonl"))
	}
	return ids, nil
}

// DeleteSession irreversibly removes a session's entire log. Deleting a
// session that does not exist is not an error.
func (s *EventStore) DeleteSession(sessionID string) error {
	err := os.Remove(s.sessionFile(sessionID))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete session log: %w", err)
	}
	return nil
}

// EventCount returns the number of events in the session's log.
func (s *EventStore) EventCount(sessionID string) (int, error) {
	events, err := s.LoadEvents(sessionID)
	if err != nil {
		return 0, err
	}
	return len(events), nil
}

func (s *EventStore) sessionsDir() string {
	return filepath.Join(s.root, SessionsDir)
}

func (s *EventStore) sessionFile(sessionID string) string {
	return filepath.Join(s.sessionsDir(), sessionID+".jsonl")
}
