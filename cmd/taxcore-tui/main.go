package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/receiptmate/taxcore/internal/tui"
)

func main() {
	asOf := time.Now().UTC()
	if len(os.Args) > 1 {
		parsed, err := time.Parse("2006-01-02", os.Args[1])
		if err != nil {
			fmt.Printf("Usage: taxcore-tui [as-of-date YYYY-MM-DD]\n")
			os.Exit(1)
		}
		asOf = parsed
	}

	p := tea.NewProgram(tui.NewModel(asOf), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
