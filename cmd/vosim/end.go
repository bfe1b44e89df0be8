package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/vosim/vosim/agent"
	"github.com/vosim/vosim/internal/ui"
	"github.com/vosim/vosim/session"
)

var endCmd = &cobra.Command{
	Use:   "end",
	Short: "End the current interview session",
	Args:  cobra.NoArgs,
	RunE:  runEnd,
}

func init() {
	rootCmd.AddCommand(endCmd)
}

func runEnd(cmd *cobra.Command, args []string) error {
	manager, err := openManager()
	if err != nil {
		return err
	}

	sessionID, err := manager.ActiveSessionID()
	if errors.Is(err, session.ErrNoActiveSession) {
		return fmt.Errorf("no active session to end")
	}
	if err != nil {
		return err
	}

	if err := manager.EndSession(); err != nil {
		return err
	}

	events, err := manager.Store().LoadEvents(sessionID)
	if err != nil {
		return err
	}
	summary := agent.Summarize(events)

	tone := ui.ToneSuccess
	if summary.Outcome != agent.OutcomeSuccess {
		tone = ui.ToneInfo
	}

	logPath := filepath.Join(manager.Store().Root(), session.SessionsDir, sessionID+".jsonl")
	body := ui.FormatKeyValues([][2]string{
		{"Session ID", summary.SessionID},
		{"Outcome", summary.Outcome},
		{"Duration", formatDuration(time.Duration(summary.DurationSeconds) * time.Second)},
		{"", ""},
		{"Total Attempts", fmt.Sprintf("%d", summary.TotalAttempts)},
		{"Final Result", fmt.Sprintf("%d/%d tests passed", summary.FinalTestsPassed, summary.FinalTestsPassed+summary.FinalTestsFailed)},
		{"Hints Used", fmt.Sprintf("%d", summary.HintsUsed)},
	}) + "\nSession log saved to " + logPath

	printPanel("Interview Summary", body, tone)
	return nil
}
