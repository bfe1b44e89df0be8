package main

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vosim/vosim/internal/config"
	"github.com/vosim/vosim/internal/ui"
	"github.com/vosim/vosim/problem"
	"github.com/vosim/vosim/session"
)

// openManager binds a session manager to the configured storage root.
func openManager() (*session.Manager, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	baseDir, err := cfg.BaseDir()
	if err != nil {
		return nil, err
	}
	return session.Open(session.Options{BaseDir: baseDir, ProblemID: cfg.Problem.ID})
}

// currentProblem resolves the configured problem, defaulting to LRU cache.
func currentProblem() (problem.Problem, error) {
	cfg, err := config.Load()
	if err != nil {
		return problem.Problem{}, err
	}
	if cfg.Problem.ID == "" {
		return problem.LRUCache(), nil
	}
	return problem.ByID(cfg.Problem.ID)
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func renderWidth() int {
	if stdoutIsTerminal() {
		if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
			if width > 100 {
				return 100
			}
			return width
		}
	}
	return 80
}

func printPanel(title, body string, tone ui.Tone) {
	body = ui.WrapParagraphs(body, renderWidth()-4)
	fmt.Println(ui.Panel(title, body, tone, stdoutIsTerminal()))
}

func encodeJSONToStdout(value any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
