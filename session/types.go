// Package session implements the interview session lifecycle: a state
// machine governing session progress, an append-only JSONL event log that is
// the durable source of truth, and a manager binding the two together with
// at-most-one-active-session semantics.
//
// The package assumes a single caller at a time per storage root. Event
// appends are single complete-line writes, but there is no cross-process
// file locking; concurrent invocations against the same root are the
// deployment's responsibility to avoid.
package session

import "time"

// State represents a position in the session state machine. The string
// value is also the serialized form.
type State string

const (
	// StateIdle indicates no problem has been presented yet.
	StateIdle State = "idle"
	// StateProblemPresented indicates the problem is shown and code can be submitted.
	StateProblemPresented State = "problem_presented"
	// StateEvaluating indicates submitted code is being evaluated.
	StateEvaluating State = "evaluating"
	// StateAwaitingAction indicates evaluation finished and the next command is awaited.
	StateAwaitingAction State = "awaiting_action"
	// StateDone indicates the session has ended. Terminal.
	StateDone State = "done"
)

// ValidStates returns all valid session state values.
func ValidStates() []State {
	return []State{StateIdle, StateProblemPresented, StateEvaluating, StateAwaitingAction, StateDone}
}

// IsValid returns true if the state is a known value.
func (s State) IsValid() bool {
	for _, valid := range ValidStates() {
		if s == valid {
			return true
		}
	}
	return false
}

// IsTerminal returns true if the state has no outgoing transitions.
func (s State) IsTerminal() bool {
	return s == StateDone
}

// EventType identifies the kind of a logged event.
type EventType string

const (
	// EventSessionStarted records session creation.
	EventSessionStarted EventType = "SESSION_STARTED"
	// EventCodeSubmitted records a code submission.
	EventCodeSubmitted EventType = "CODE_SUBMITTED"
	// EventEvalResult records the outcome of an evaluation.
	EventEvalResult EventType = "EVAL_RESULT"
	// EventHintRequested records a hint request.
	EventHintRequested EventType = "HINT_REQUESTED"
	// EventHintGiven records a hint being shown.
	EventHintGiven EventType = "HINT_GIVEN"
	// EventAgentResponse records freeform agent feedback.
	EventAgentResponse EventType = "AGENT_RESPONSE"
	// EventSessionEnded records session termination.
	EventSessionEnded EventType = "SESSION_ENDED"
)

// ValidEventTypes returns all valid event type values.
func ValidEventTypes() []EventType {
	return []EventType{
		EventSessionStarted,
		EventCodeSubmitted,
		EventEvalResult,
		EventHintRequested,
		EventHintGiven,
		EventAgentResponse,
		EventSessionEnded,
	}
}

// IsValid returns true if the event type is a known value.
func (t EventType) IsValid() bool {
	for _, valid := range ValidEventTypes() {
		if t == valid {
			return true
		}
	}
	return false
}

// Event is one immutable record in a session's log. Events are appended and
// never mutated or deleted; the ordered sequence of events for a session is
// its complete replayable history.
//
// The payload is an open mapping whose shape varies by event type. The core
// does not validate it.
type Event struct {
	SessionID string         `json:"session_id"`
	Timestamp time.Time      `json:"timestamp"`
	Type      EventType      `json:"event_type"`
	Payload   map[string]any `json:"payload"`
}

// NewEvent builds an event stamped with the current UTC time.
func NewEvent(sessionID string, eventType EventType, payload map[string]any) Event {
	if payload == nil {
		payload = map[string]any{}
	}
	return Event{
		SessionID: sessionID,
		Timestamp: time.Now().UTC(),
		Type:      eventType,
		Payload:   payload,
	}
}
