package session

import "fmt"

// transitions maps each state to the set of states it may move to. Done has
// an empty allowed set, which is what makes it terminal; no special casing
// elsewhere. The awaiting_action self-loop represents "hint requested, no
// state change", and every non-terminal state may move to done so a session
// can always be abandoned.
var transitions = map[State][]State{
	StateIdle:             {StateProblemPresented, StateDone},
	StateProblemPresented: {StateEvaluating, StateDone},
	StateEvaluating:       {StateAwaitingAction, StateDone},
	StateAwaitingAction:   {StateEvaluating, StateAwaitingAction, StateDone},
	StateDone:             {},
}

// StateMachine holds the current state for one session and enforces the
// transition table. It has no side effects beyond the state field.
type StateMachine struct {
	current State
}

// NewStateMachine returns a machine in the idle state.
func NewStateMachine() *StateMachine {
	return &StateMachine{current: StateIdle}
}

// NewStateMachineAt returns a machine starting from the given state. The
// manager uses this when reconstructing a machine from a replayed log.
func NewStateMachineAt(initial State) *StateMachine {
	return &StateMachine{current: initial}
}

// Current returns the current state.
func (m *StateMachine) Current() State {
	return m.current
}

// CanTransitionTo reports whether moving to next is allowed from the
// current state.
func (m *StateMachine) CanTransitionTo(next State) bool {
	for _, allowed := range transitions[m.current] {
		if next == allowed {
			return true
		}
	}
	return false
}

// TransitionTo moves the machine to next. It returns ErrInvalidTransition,
// wrapped with both states, if the transition table does not allow the move;
// the current state is left unchanged on failure.
func (m *StateMachine) TransitionTo(next State) error {
	if !m.CanTransitionTo(next) {
		return fmt.Errorf("%w: cannot move from %s to %s", ErrInvalidTransition, m.current, next)
	}
	m.current = next
	return nil
}

// Reset unconditionally returns the machine to idle. Escape hatch; not used
// during normal flow.
func (m *StateMachine) Reset() {
	m.current = StateIdle
}

// IsDone returns true if the machine is in the terminal state.
func (m *StateMachine) IsDone() bool {
	return m.current == StateDone
}

// CanSubmitCode reports whether a code submission is allowed right now.
func (m *StateMachine) CanSubmitCode() bool {
	return m.current == StateProblemPresented || m.current == StateAwaitingAction
}

// CanRequestHint reports whether a hint request is allowed right now.
func (m *StateMachine) CanRequestHint() bool {
	return m.current == StateAwaitingAction
}
