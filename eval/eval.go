// Package eval classifies code evaluation outcomes and provides the mock
// runner used by the CLI. No submitted code is ever executed; the runner
// produces a deterministic canned progression.
package eval

// FailureType classifies an evaluation outcome, from best to worst.
type FailureType string

const (
	// Pass indicates all tests passed.
	Pass FailureType = "pass"
	// PartialPass indicates 50-99% of tests passed.
	PartialPass FailureType = "partial_pass"
	// WrongAnswer indicates under 50% of tests passed, with no exception.
	WrongAnswer FailureType = "wrong_answer"
	// Exception indicates a runtime error during test execution.
	Exception FailureType = "exception"
	// WrongSignature indicates missing or incorrect required methods.
	WrongSignature FailureType = "wrong_signature"
	// ImportError indicates the submission could not be loaded at all.
	ImportError FailureType = "import_error"
)

// ValidFailureTypes returns all valid failure type values.
func ValidFailureTypes() []FailureType {
	return []FailureType{Pass, PartialPass, WrongAnswer, Exception, WrongSignature, ImportError}
}

// IsValid returns true if the failure type is a known value.
func (f FailureType) IsValid() bool {
	for _, valid := range ValidFailureTypes() {
		if f == valid {
			return true
		}
	}
	return false
}

// Result captures one evaluation of a submission against the test suite.
type Result struct {
	AttemptNumber int         `json:"attempt_number"`
	Passed        bool        `json:"passed"`
	FailureType   FailureType `json:"failure_type"`
	TestsPassed   int         `json:"tests_passed"`
	TestsFailed   int         `json:"tests_failed"`
	FailingTests  []string    `json:"failing_tests"`
	Exception     string      `json:"exception,omitempty"`
	RuntimeMS     int         `json:"runtime_ms"`
}

// TotalTests returns the size of the suite the result was measured against.
func (r Result) TotalTests() int {
	return r.TestsPassed + r.TestsFailed
}

// Classify maps raw test counts to a failure type. An exception outranks
// the pass-rate buckets.
func Classify(testsPassed, testsFailed int, hasException bool) FailureType {
	if hasException {
		return Exception
	}

	total := testsPassed + testsFailed
	if total == 0 {
		return WrongAnswer
	}
	switch {
	case testsPassed == total:
		return Pass
	case testsPassed*2 >= total:
		return PartialPass
	default:
		return WrongAnswer
	}
}
