package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"speccle/internal/collector"
	"speccle/internal/config"
	"speccle/internal/logger"
	"speccle/internal/render"
	"speccle/internal/ui"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg)

	col := collector.New(log, cfg.CollectTimeout)

	// Piped or explicitly plain output skips the interactive view and
	// prints the same text block the clipboard action would copy.
	if cfg.Plain || !isatty.IsTerminal(os.Stdout.Fd()) {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		fmt.Print(render.Text(col.Collect(ctx)))
		return
	}

	p := tea.NewProgram(ui.New(col, log), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error("ui failed", "error", err)
		os.Exit(1)
	}
}
