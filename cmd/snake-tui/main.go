package main

import (
	"flag"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"snake/internal/app"
	"snake/internal/snake"
	"snake/internal/tui"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	// The terminal belongs to the UI, so logs only go to -log-file.
	logger, closeLog, err := app.OpenLogger(cfg, io.Discard)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()

	engine, err := snake.New(cfg.Engine())
	if err != nil {
		log.WithError(err).Fatal("start game")
	}

	model := tui.New(app.NewSession(engine, logger), cfg.Tick)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		log.WithError(err).Fatal("run game")
	}
}
