package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"linux-monitor/internal/agent"
	"linux-monitor/internal/config"
	"linux-monitor/internal/display"
)

func main() {
	cfg := config.Load()

	m := display.New(agent.NewClient(cfg), cfg.PollInterval)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "display: %v\n", err)
		os.Exit(1)
	}
}
