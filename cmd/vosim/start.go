package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vosim/vosim/internal/markdown"
	"github.com/vosim/vosim/internal/ui"
	"github.com/vosim/vosim/session"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a new interview session",
	Args:  cobra.NoArgs,
	RunE:  runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	manager, err := openManager()
	if err != nil {
		return err
	}

	prob, err := currentProblem()
	if err != nil {
		return err
	}

	sessionID, err := manager.CreateSession()
	if errors.Is(err, session.ErrSessionAlreadyActive) {
		active, _ := manager.ActiveSessionID()
		return fmt.Errorf("session %s is already active; end it with 'vosim end' first", active)
	}
	if err != nil {
		return err
	}

	printPanel(
		fmt.Sprintf("%s Interview Session Started", prob.Title),
		fmt.Sprintf("Session ID: %s", sessionID),
		ui.ToneInfo,
	)
	fmt.Println()
	fmt.Println(markdown.Render(renderWidth(), prob.Statement))
	fmt.Println()
	fmt.Println("When ready, submit your solution:")
	fmt.Println("  vosim submit --file your_solution.go")
	return nil
}
