// Package agent makes deterministic observe/decide choices from a session's
// event history: which hint level to give next and how the session summary
// reads at the end. There is no model call anywhere; every decision is a
// pure function of the log.
package agent

import (
	"encoding/json"

	"github.com/vosim/vosim/eval"
	"github.com/vosim/vosim/problem"
	"github.com/vosim/vosim/session"
)

// Context is what the agent observes before deciding: submission and hint
// counts, the failure history, and the most recent evaluation.
type Context struct {
	AttemptCount   int
	FailureHistory []eval.FailureType
	LastEvalResult *eval.Result
	HintsGiven     int
	CurrentState   session.State
}

// BuildContext derives the observation context by replaying the event log.
// EVAL_RESULT payloads that do not decode as results are ignored; the
// payload is an open map and its shape is not guaranteed.
func BuildContext(events []session.Event, state session.State) Context {
	ctx := Context{CurrentState: state}
	for _, event := range events {
		switch event.Type {
		case session.EventCodeSubmitted:
			ctx.AttemptCount++
		case session.EventHintGiven:
			ctx.HintsGiven++
		case session.EventEvalResult:
			result, ok := decodeResult(event.Payload)
			if !ok {
				continue
			}
			ctx.LastEvalResult = &result
			ctx.FailureHistory = append(ctx.FailureHistory, result.FailureType)
		}
	}
	return ctx
}

// Actions the agent can decide on.
const (
	ActionGiveHint     = "give_hint"
	ActionGiveFeedback = "give_feedback"
	ActionEndSession   = "end_session"
)

// Decision is the outcome of the decide phase.
type Decision struct {
	Action    string
	HintLevel int
}

// Decide picks the next action for a hint request. Hints escalate one level
// per request up to the maximum; past that the agent falls back to feedback.
func Decide(ctx Context) Decision {
	if ctx.HintsGiven >= problem.MaxHintLevel {
		return Decision{Action: ActionGiveFeedback}
	}
	return Decision{Action: ActionGiveHint, HintLevel: ctx.HintsGiven + 1}
}

func decodeResult(payload map[string]any) (eval.Result, bool) {
	data, err := json.Marshal(payload)
	if err != nil {
		return eval.Result{}, false
	}
	var result eval.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return eval.Result{}, false
	}
	if !result.FailureType.IsValid() {
		return eval.Result{}, false
	}
	return result, true
}

// ResultPayload converts an evaluation result into an event payload for
// EVAL_RESULT.
func ResultPayload(result eval.Result) map[string]any {
	data, err := json.Marshal(result)
	if err != nil {
		return map[string]any{}
	}
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return map[string]any{}
	}
	return payload
}
