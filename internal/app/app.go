//go:build ebiten

package app

import (
	"time"

	"snake/internal/core"
	"snake/internal/render"
	"snake/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyBindings = []struct {
	key   ebiten.Key
	input core.Input
}{
	{ebiten.KeyArrowUp, core.InputUp},
	{ebiten.KeyW, core.InputUp},
	{ebiten.KeyArrowDown, core.InputDown},
	{ebiten.KeyS, core.InputDown},
	{ebiten.KeyArrowLeft, core.InputLeft},
	{ebiten.KeyA, core.InputLeft},
	{ebiten.KeyArrowRight, core.InputRight},
	{ebiten.KeyD, core.InputRight},
	{ebiten.KeySpace, core.InputReset},
}

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	step    *core.FixedStep
	painter *render.BoardPainter
	overlay *ui.Overlay
}

// New constructs a Game that advances the session every tick.
func New(session *Session, tick time.Duration) *Game {
	return &Game{
		session: session,
		step:    core.NewFixedStep(tick),
		painter: render.NewBoardPainter(),
		overlay: ui.NewOverlay(),
	}
}

// Update handles per-frame input and advances the simulation on the timer.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, b := range keyBindings {
		if !inpututil.IsKeyJustPressed(b.key) {
			continue
		}
		if g.session.Input(b.input) {
			g.step.Start()
		}
	}

	if g.step.ShouldStep() && !g.session.Tick() {
		g.step.Stop()
	}
	g.overlay.Update(g.session.Engine().State())
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	f := g.session.Engine().Frame()
	g.painter.Draw(screen, f)
	g.overlay.Draw(screen, f)
}

// Layout returns the board size in pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Engine().Board().Size()
	return s.W, s.H
}
