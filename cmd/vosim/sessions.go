package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vosim/vosim/internal/ui"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Inspect recorded sessions",
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all recorded sessions",
	Args:  cobra.NoArgs,
	RunE:  runSessionsList,
}

var sessionsDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a session's event log",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsDelete,
}

var sessionsListJSON bool

func init() {
	rootCmd.AddCommand(sessionsCmd)
	sessionsCmd.AddCommand(sessionsListCmd, sessionsDeleteCmd)

	sessionsListCmd.Flags().BoolVar(&sessionsListJSON, "json", false, "Output as JSON")
}

type sessionInfo struct {
	ID        string    `json:"id"`
	Active    bool      `json:"active"`
	Events    int       `json:"events"`
	StartedAt time.Time `json:"started_at,omitempty"`
}

func runSessionsList(cmd *cobra.Command, args []string) error {
	manager, err := openManager()
	if err != nil {
		return err
	}

	store := manager.Store()
	ids, err := store.SessionIDs()
	if err != nil {
		return err
	}
	activeID := ""
	if manager.HasActiveSession() {
		activeID, _ = manager.ActiveSessionID()
	}

	infos := make([]sessionInfo, 0, len(ids))
	for _, id := range ids {
		events, err := store.LoadEvents(id)
		if err != nil {
			return err
		}
		info := sessionInfo{ID: id, Active: id == activeID, Events: len(events)}
		if len(events) > 0 {
			info.StartedAt = events[0].Timestamp
		}
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].StartedAt.After(infos[j].StartedAt)
	})

	if sessionsListJSON {
		return encodeJSONToStdout(infos)
	}

	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		active := ""
		if info.Active {
			active = "*"
		}
		started := "-"
		if !info.StartedAt.IsZero() {
			started = info.StartedAt.Local().Format("2006-01-02 15:04:05")
		}
		rows = append(rows, []string{info.ID, active, fmt.Sprintf("%d", info.Events), started})
	}
	fmt.Print(ui.FormatTable([]string{"ID", "ACTIVE", "EVENTS", "STARTED"}, rows))
	return nil
}

func runSessionsDelete(cmd *cobra.Command, args []string) error {
	manager, err := openManager()
	if err != nil {
		return err
	}

	sessionID := args[0]
	if manager.HasActiveSession() {
		if activeID, _ := manager.ActiveSessionID(); activeID == sessionID {
			return fmt.Errorf("session %s is active; end it before deleting", sessionID)
		}
	}

	if !manager.Store().SessionExists(sessionID) {
		fmt.Printf("session %s not found; nothing to delete\n", sessionID)
		return nil
	}
	if err := manager.Store().DeleteSession(sessionID); err != nil {
		return err
	}
	fmt.Printf("deleted session %s\n", sessionID)
	return nil
}
