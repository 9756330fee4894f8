package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"filmcheck/internal/config"
	"filmcheck/internal/library"
	"filmcheck/internal/tmdb"
	"filmcheck/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if cfg.Debug {
		f, err := tea.LogToFile(cfg.LogFile, "debug")
		if err != nil {
			fmt.Fprintln(os.Stderr, "could not open log file:", err)
			os.Exit(1)
		}
		defer f.Close()
		slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	} else {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	}

	client := tmdb.NewClient(cfg.APIKey)
	lib := library.New()

	p := tea.NewProgram(ui.NewModel(client, lib), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error running program:", err)
		os.Exit(1)
	}
}
