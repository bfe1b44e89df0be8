package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/vosim/vosim/internal/paths"
)

// PointerFile is the file under the storage root recording the active
// session id. Absence means no active session.
const PointerFile = "current_session.txt"

// DefaultProblemID is the problem recorded on session start when none is
// configured.
const DefaultProblemID = "lru_cache"

// Options configures a manager.
type Options struct {
	// BaseDir is the storage root. Defaults to ~/.vo_sim.
	BaseDir string
	// ProblemID is recorded in the SESSION_STARTED payload. Defaults to
	// DefaultProblemID.
	ProblemID string
}

// Manager is the single entry point for session operations. It enforces
// at-most-one-active-session, owns the active-session pointer, and binds
// the state machine to the event store.
type Manager struct {
	baseDir     string
	pointerPath string
	problemID   string
	store       *EventStore

	activeID string
	machine  *StateMachine
}

// Open constructs a manager bound to the storage root in opts. If a
// persisted active-session pointer references a session whose log exists,
// the manager reconstructs that session's state machine by replaying its
// events through the transition table. A pointer to a missing log is
// treated as no active session.
func Open(opts Options) (*Manager, error) {
	baseDir := opts.BaseDir
	if baseDir == "" {
		resolved, err := paths.DefaultBaseDir()
		if err != nil {
			return nil, err
		}
		baseDir = resolved
	}

	problemID := opts.ProblemID
	if problemID == "" {
		problemID = DefaultProblemID
	}

	manager := &Manager{
		baseDir:     baseDir,
		pointerPath: filepath.Join(baseDir, PointerFile),
		problemID:   problemID,
		store:       NewEventStore(baseDir),
	}

	activeID, err := manager.loadPointer()
	if err != nil {
		return nil, err
	}
	if activeID != "" {
		events, err := manager.store.LoadEvents(activeID)
		if err != nil {
			return nil, err
		}
		manager.activeID = activeID
		manager.machine = NewStateMachineAt(replayState(events))
	}

	return manager, nil
}

// Store returns the underlying event store.
func (m *Manager) Store() *EventStore {
	return m.store
}

// CreateSession starts a new session: it generates a fresh id, logs a
// SESSION_STARTED event, moves the machine to problem_presented, and
// persists the new id as the active-session pointer. It fails with
// ErrSessionAlreadyActive, wrapped with the active id, if a session is
// already in progress.
func (m *Manager) CreateSession() (string, error) {
	if m.HasActiveSession() {
		return "", fmt.Errorf("%w: %s (end it first)", ErrSessionAlreadyActive, m.activeID)
	}

	sessionID := uuid.NewString()
	machine := NewStateMachine()

	event := NewEvent(sessionID, EventSessionStarted, map[string]any{"problem_id": m.problemID})
	if err := m.store.AppendEvent(event); err != nil {
		return "", err
	}

	if err := machine.TransitionTo(StateProblemPresented); err != nil {
		return "", err
	}

	if err := m.savePointer(sessionID); err != nil {
		return "", err
	}

	m.activeID = sessionID
	m.machine = machine
	return sessionID, nil
}

// EndSession terminates the active session: it logs a SESSION_ENDED event
// carrying the final state, moves the machine to done, and clears the
// active-session pointer.
func (m *Manager) EndSession() error {
	if !m.HasActiveSession() {
		return fmt.Errorf("%w: nothing to end", ErrNoActiveSession)
	}

	event := NewEvent(m.activeID, EventSessionEnded, map[string]any{
		"final_state": string(m.machine.Current()),
	})
	if err := m.store.AppendEvent(event); err != nil {
		return err
	}

	if err := m.machine.TransitionTo(StateDone); err != nil {
		return err
	}

	if err := m.clearPointer(); err != nil {
		return err
	}

	m.activeID = ""
	m.machine = nil
	return nil
}

// HasActiveSession reports whether a session is in progress.
func (m *Manager) HasActiveSession() bool {
	return m.activeID != ""
}

// ActiveSessionID returns the id of the active session.
func (m *Manager) ActiveSessionID() (string, error) {
	if !m.HasActiveSession() {
		return "", ErrNoActiveSession
	}
	return m.activeID, nil
}

// CurrentState returns the active session's state.
func (m *Manager) CurrentState() (State, error) {
	if !m.HasActiveSession() {
		return "", ErrNoActiveSession
	}
	return m.machine.Current(), nil
}

// TransitionTo moves the active session's machine to next, surfacing
// ErrInvalidTransition from the machine.
func (m *Manager) TransitionTo(next State) error {
	if !m.HasActiveSession() {
		return ErrNoActiveSession
	}
	return m.machine.TransitionTo(next)
}

// EmitEvent appends an event of the given type to the active session's log,
// stamping the session id and current time.
func (m *Manager) EmitEvent(eventType EventType, payload map[string]any) error {
	if !m.HasActiveSession() {
		return ErrNoActiveSession
	}
	return m.store.AppendEvent(NewEvent(m.activeID, eventType, payload))
}

// SessionEvents returns the active session's full event history in append
// order.
func (m *Manager) SessionEvents() ([]Event, error) {
	if !m.HasActiveSession() {
		return nil, ErrNoActiveSession
	}
	return m.store.LoadEvents(m.activeID)
}

// StateMachine returns the live machine for the active session, for callers
// needing CanSubmitCode/CanRequestHint checks before acting.
func (m *Manager) StateMachine() (*StateMachine, error) {
	if !m.HasActiveSession() {
		return nil, ErrNoActiveSession
	}
	return m.machine, nil
}

// replayTargets maps event types to the state they imply during replay.
// AGENT_RESPONSE carries no state change.
var replayTargets = map[EventType]State{
	EventSessionStarted: StateProblemPresented,
	EventCodeSubmitted:  StateEvaluating,
	EventEvalResult:     StateAwaitingAction,
	EventHintRequested:  StateAwaitingAction,
	EventHintGiven:      StateAwaitingAction,
	EventSessionEnded:   StateDone,
}

// replayState recovers a session's true state by running its event history
// through the transition table from idle. Transitions the table does not
// allow at that point in the replay are skipped.
func replayState(events []Event) State {
	machine := NewStateMachine()
	for _, event := range events {
		next, ok := replayTargets[event.Type]
		if !ok {
			continue
		}
		if machine.CanTransitionTo(next) {
			_ = machine.TransitionTo(next)
		}
	}
	return machine.Current()
}

func (m *Manager) loadPointer() (string, error) {
	data, err := os.ReadFile(m.pointerPath)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read session pointer: %w", err)
	}

	sessionID := strings.TrimSpace(string(data))
	if sessionID == "" || !m.store.SessionExists(sessionID) {
		// Dangling pointer; treat as no active session.
		return "", nil
	}
	return sessionID, nil
}

func (m *Manager) savePointer(sessionID string) error {
	if err := os.MkdirAll(m.baseDir, 0755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}
	if err := os.WriteFile(m.pointerPath, []byte(sessionID), 0644); err != nil {
		return fmt.Errorf("write session pointer: %w", err)
	}
	return nil
}

func (m *Manager) clearPointer() error {
	err := os.Remove(m.pointerPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear session pointer: %w", err)
	}
	return nil
}
