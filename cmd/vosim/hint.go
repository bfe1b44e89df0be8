package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vosim/vosim/agent"
	"github.com/vosim/vosim/internal/ui"
	"github.com/vosim/vosim/session"
)

var hintCmd = &cobra.Command{
	Use:   "hint",
	Short: "Request a hint for the current problem",
	Args:  cobra.NoArgs,
	RunE:  runHint,
}

func init() {
	rootCmd.AddCommand(hintCmd)
}

func runHint(cmd *cobra.Command, args []string) error {
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
	if !machine.CanRequestHint() {
		return fmt.Errorf("hints are available after an evaluation, not while the session is %s", machine.Current())
	}

	prob, err := currentProblem()
	if err != nil {
		return err
	}

	events, err := manager.SessionEvents()
	if err != nil {
		return err
	}
	decision := agent.Decide(agent.BuildContext(events, machine.Current()))

	// A hint leaves the session awaiting the next action.
	if err := manager.TransitionTo(session.StateAwaitingAction); err != nil {
		return err
	}

	if decision.Action != agent.ActionGiveHint {
		if err := manager.EmitEvent(session.EventHintRequested, map[string]any{"exhausted": true}); err != nil {
			return err
		}
		text := "No more hints available; review the feedback from your last submission."
		if err := manager.EmitEvent(session.EventAgentResponse, map[string]any{"text": text}); err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	}

	hint := prob.Hint(decision.HintLevel)
	if err := manager.EmitEvent(session.EventHintRequested, map[string]any{"level": decision.HintLevel}); err != nil {
		return err
	}
	if err := manager.EmitEvent(session.EventHintGiven, map[string]any{
		"level": decision.HintLevel,
		"hint":  hint,
	}); err != nil {
		return err
	}

	printPanel(fmt.Sprintf("Hint (Level %d)", decision.HintLevel), hint, ui.ToneWarn)
	return nil
}
