package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vosim/vosim/agent"
	"github.com/vosim/vosim/internal/ui"
	"github.com/vosim/vosim/session"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current session status",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	manager, err := openManager()
	if err != nil {
		return err
	}

	sessionID, err := manager.ActiveSessionID()
	if errors.Is(err, session.ErrNoActiveSession) {
		return fmt.Errorf("no active session; start one with 'vosim start'")
	}
	if err != nil {
		return err
	}

	state, err := manager.CurrentState()
	if err != nil {
		return err
	}
	events, err := manager.SessionEvents()
	if err != nil {
		return err
	}

	prob, err := currentProblem()
	if err != nil {
		return err
	}

	ctx := agent.BuildContext(events, state)

	pairs := [][2]string{
		{"Session ID", sessionID},
		{"Problem", prob.Title},
		{"State", string(state)},
	}
	if len(events) > 0 {
		started := events[0].Timestamp
		pairs = append(pairs,
			[2]string{"Started", started.Local().Format("2006-01-02 15:04:05")},
			[2]string{"Duration", formatDuration(time.Since(started))},
		)
	}
	pairs = append(pairs,
		[2]string{"", ""},
		[2]string{"Attempts", fmt.Sprintf("%d", ctx.AttemptCount)},
		[2]string{"Hints Used", fmt.Sprintf("%d", ctx.HintsGiven)},
	)
	if ctx.LastEvalResult != nil {
		last := ctx.LastEvalResult
		pairs = append(pairs, [2]string{
			"Last Result",
			fmt.Sprintf("%d/%d tests passed (%s)", last.TestsPassed, last.TotalTests(), last.FailureType),
		})
	}

	printPanel("Session Status", ui.FormatKeyValues(pairs), ui.ToneInfo)
	return nil
}
