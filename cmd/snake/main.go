//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"snake/internal/app"
	"snake/internal/snake"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, closeLog, err := app.OpenLogger(cfg, os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()

	engine, err := snake.New(cfg.Engine())
	if err != nil {
		logger.WithError(err).Fatal("start game")
	}
	board := engine.Board()
	logger.WithFields(log.Fields{
		"width":    board.Width,
		"height":   board.Height,
		"cellSize": board.CellSize,
		"numCells": board.NumCells,
		"tick":     cfg.Tick,
	}).Info("starting")

	game := app.New(app.NewSession(engine, logger), cfg.Tick)

	ebiten.SetWindowTitle("Snake")
	ebiten.SetWindowSize(board.Width, board.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.WithError(err).Fatal("run game")
	}
}
