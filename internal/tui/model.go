// Package tui provides a Bubble Tea host for the game: a fixed-interval
// tick command drives the session and key messages become engine inputs.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"snake/internal/app"
	"snake/internal/core"
	"snake/internal/snake"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

var keyInputs = map[string]core.Input{
	"up":    core.InputUp,
	"w":     core.InputUp,
	"down":  core.InputDown,
	"s":     core.InputDown,
	"left":  core.InputLeft,
	"a":     core.InputLeft,
	"right": core.InputRight,
	"d":     core.InputRight,
	" ":     core.InputReset,
}

var (
	boardStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	scoreStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff"))
	gameOverStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff0000"))
)

const (
	cellGlyph  = "██"
	emptyGlyph = "  "
)

// Model is the Bubble Tea model wrapping a Session.
type Model struct {
	session  *app.Session
	interval time.Duration
	ticking  bool
}

// New returns a model ticking the session every interval.
func New(session *app.Session, interval time.Duration) Model {
	if interval <= 0 {
		interval = core.DefaultTickInterval
	}
	return Model{session: session, interval: interval, ticking: true}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles key presses and ticks. A tick is only re-armed while the
// game runs; a reset re-arms it.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
		in, ok := keyInputs[msg.String()]
		if !ok {
			return m, nil
		}
		if m.session.Input(in) && !m.ticking {
			m.ticking = true
			return m, tickCmd(m.interval)
		}
		return m, nil
	case TickMsg:
		if m.session.Tick() {
			m.ticking = true
			return m, tickCmd(m.interval)
		}
		m.ticking = false
		return m, nil
	}
	return m, nil
}

// View draws the board and the status lines.
func (m Model) View() string {
	f := m.session.Engine().Frame()
	return Render(f)
}

// Render draws a frame as terminal text, two columns per cell.
func Render(f snake.Frame) string {
	n := f.Board.NumCells
	grid := make([]string, n*n)
	put := func(c core.Cell, s string) {
		if c.X < 0 || c.Y < 0 || c.X >= n || c.Y >= n {
			return
		}
		grid[c.Y*n+c.X] = s
	}
	put(f.Food, fgStyle(snake.FoodColor.R, snake.FoodColor.G, snake.FoodColor.B).Render(cellGlyph))
	for _, seg := range f.Snake {
		put(seg.Cell, fgStyle(seg.Color.R, seg.Color.G, seg.Color.B).Render(cellGlyph))
	}

	var b strings.Builder
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if s := grid[y*n+x]; s != "" {
				b.WriteString(s)
				continue
			}
			b.WriteString(emptyGlyph)
		}
		if y < n-1 {
			b.WriteByte('\n')
		}
	}
	board := boardStyle.Render(b.String())

	style := scoreStyle
	if f.State == core.GameOver {
		style = gameOverStyle
	}
	width := lipgloss.Width(board)
	lines := make([]string, 0, 3)
	lines = append(lines, board)
	for _, l := range f.Lines() {
		lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(l)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func fgStyle(r, g, b uint8) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b)))
}
