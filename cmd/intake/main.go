package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/veloria/warranty-portal/internal/tui"
)

func main() {
	var (
		serverURL  = flag.String("server", envOr("PORTAL_URL", "http://localhost:9000"), "base URL of the portal server")
		statusOnly = flag.Bool("status", false, "open the status viewer instead of the intake form")
		caseID     = flag.String("id", "", "case id to look up (implies -status)")
	)
	flag.Parse()

	client := tui.NewClient(*serverURL)

	var model tui.Model
	if *statusOnly || *caseID != "" {
		model = tui.NewStatusModel(client, *caseID)
	} else {
		model = tui.NewModel(client)
	}

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
