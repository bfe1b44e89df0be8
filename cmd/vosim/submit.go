package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vosim/vosim/agent"
	"github.com/vosim/vosim/eval"
	"github.com/vosim/vosim/internal/ui"
	"github.com/vosim/vosim/session"
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit code for evaluation",
	Args:  cobra.NoArgs,
	RunE:  runSubmit,
}

var submitFile string

func init() {
	rootCmd.AddCommand(submitCmd)
	submitCmd.Flags().StringVarP(&submitFile, "file", "f", "", "Path to your solution file")
	_ = submitCmd.MarkFlagRequired("file")
	addFileFlagAliases(submitCmd)
}

func runSubmit(cmd *cobra.Command, args []string) error {
	manager, err := openManager()
	if err != nil {
		return err
	}

	machine, err := manager.StateMachine()
	if errors.Is(err, session.ErrNoActiveSession) {
		return fmt.Errorf("no active session; start one with 'vosim start'")
	}
	if err != nil {
		return err
	}
	if !machine.CanSubmitCode() {
		return fmt.Errorf("cannot submit code while the session is %s", machine.Current())
	}

	source, err := os.ReadFile(submitFile)
	if err != nil {
		return fmt.Errorf("read solution file: %w", err)
	}

	events, err := manager.SessionEvents()
	if err != nil {
		return err
	}
	ctx := agent.BuildContext(events, machine.Current())
	attempt := ctx.AttemptCount + 1

	if err := manager.TransitionTo(session.StateEvaluating); err != nil {
		return err
	}
	if err := manager.EmitEvent(session.EventCodeSubmitted, map[string]any{
		"attempt": attempt,
		"file":    submitFile,
	}); err != nil {
		return err
	}

	fmt.Printf("Submitting code from: %s\n", submitFile)
	fmt.Println("Running evaluation...")
	fmt.Println()

	result := eval.NewRunner().Evaluate(string(source), attempt)
	if err := manager.EmitEvent(session.EventEvalResult, agent.ResultPayload(result)); err != nil {
		return err
	}
	if err := manager.TransitionTo(session.StateAwaitingAction); err != nil {
		return err
	}

	printResult(result)

	feedback := feedbackFor(result)
	if err := manager.EmitEvent(session.EventAgentResponse, map[string]any{"text": feedback}); err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("Feedback:")
	fmt.Println(feedback)
	if !result.Passed {
		fmt.Println()
		fmt.Println("Try again, or run 'vosim hint' for guidance.")
	}
	return nil
}

func printResult(result eval.Result) {
	status := "FAILED"
	if result.Passed {
		status = "PASSED"
	}
	fmt.Print(ui.FormatKeyValues([][2]string{
		{"Status", status},
		{"Tests Passed", fmt.Sprintf("%d/%d", result.TestsPassed, result.TotalTests())},
		{"Tests Failed", fmt.Sprintf("%d/%d", result.TestsFailed, result.TotalTests())},
		{"Result Type", string(result.FailureType)},
		{"Runtime", fmt.Sprintf("%dms", result.RuntimeMS)},
	}))

	if len(result.FailingTests) > 0 {
		fmt.Println()
		fmt.Println("Failing tests:")
		for _, name := range result.FailingTests {
			fmt.Printf("  - %s\n", name)
		}
	}
}

func feedbackFor(result eval.Result) string {
	switch result.FailureType {
	case eval.Pass:
		return "All tests passed. Solid work; consider walking through the complexity of each operation."
	case eval.PartialPass:
		return "Most tests pass now. The remaining failures cluster around eviction under repeated access; trace which entry your code evicts when the cache is full."
	case eval.Exception:
		return "Your solution raised an error during the tests. Check the failure output and guard the edge cases before optimizing."
	case eval.WrongSignature:
		return "The expected constructor, get, and put entry points were not all found. Match the required signatures before resubmitting."
	case eval.ImportError:
		return "Your solution failed to load at all. Make sure the file is self-contained and compiles on its own."
	default:
		return "Your solution has issues with eviction logic. When the cache reaches capacity, it should remove the least recently used item."
	}
}
