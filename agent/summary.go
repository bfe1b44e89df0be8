package agent

import (
	"time"

	"github.com/vosim/vosim/eval"
	"github.com/vosim/vosim/session"
)

// Session outcomes.
const (
	OutcomeSuccess        = "success"
	OutcomePartialSuccess = "partial_success"
	OutcomeGaveUp         = "gave_up"
)

// Summary is the end-of-session rollup shown by the end command.
type Summary struct {
	SessionID        string `json:"session_id"`
	Outcome          string `json:"outcome"`
	TotalAttempts    int    `json:"total_attempts"`
	FinalTestsPassed int    `json:"final_tests_passed"`
	FinalTestsFailed int    `json:"final_tests_failed"`
	HintsUsed        int    `json:"hints_used"`
	DurationSeconds  int    `json:"duration_seconds"`
}

// Summarize rolls a session's event history up into a summary. Duration is
// measured from the first to the last event timestamp.
func Summarize(events []session.Event) Summary {
	var summary Summary
	if len(events) == 0 {
		summary.Outcome = OutcomeGaveUp
		return summary
	}

	summary.SessionID = events[0].SessionID

	var last *eval.Result
	for _, event := range events {
		switch event.Type {
		case session.EventCodeSubmitted:
			summary.TotalAttempts++
		case session.EventHintRequested:
			summary.HintsUsed++
		case session.EventEvalResult:
			if result, ok := decodeResult(event.Payload); ok {
				last = &result
			}
		}
	}

	if last != nil {
		summary.FinalTestsPassed = last.TestsPassed
		summary.FinalTestsFailed = last.TestsFailed
	}
	summary.Outcome = outcome(last)

	first := events[0].Timestamp
	final := events[len(events)-1].Timestamp
	if final.After(first) {
		summary.DurationSeconds = int(final.Sub(first) / time.Second)
	}

	return summary
}

func outcome(last *eval.Result) string {
	if last == nil {
		return OutcomeGaveUp
	}
	switch last.FailureType {
	case eval.Pass:
		return OutcomeSuccess
	case eval.PartialPass:
		return OutcomePartialSuccess
	default:
		return OutcomeGaveUp
	}
}
