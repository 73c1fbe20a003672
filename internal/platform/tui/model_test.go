package tui

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// A 100x30 terminal keeps 8 unit wide cells; rows grow to 656/29 units so
// the ball's home clears the wall: an 800x656 surface.
func newTestModel(t *testing.T, logger *log.Logger) Model {
	t.Helper()
	return NewModel(Options{
		Config:  config.DefaultBreakoutConfig(),
		Runtime: core.DefaultConfig(),
		Logger:  logger,
	})
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok, "Update should return a Model")
	return nm, cmd
}

// clock hands out tick messages one nominal frame apart.
type clock struct{ now time.Time }

func (c *clock) tick() TickMsg {
	c.now = c.now.Add(time.Second / 60)
	return TickMsg(c.now)
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelLayout(t *testing.T) {
	m := newTestModel(t, nil)

	assert.Equal(t, 800.0, m.view.Width)
	assert.InDelta(t, 656.0, m.view.Height, 1e-9)
	assert.Equal(t, m.view.Height, m.game.ScreenHeight())
	assert.Equal(t, 29, m.screen.Height())
	assert.InDelta(t, 506.0, m.game.Paddle().Pos.Y, 1e-9)
	assert.False(t, m.tooSmall)
}

func TestFitCellGrowsForNarrowTerminals(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()

	cellW, cellH := fitCell(cfg, 80, 20)
	assert.InDelta(t, 794.0/80, cellW, 1e-9, "arena and border must fit 80 columns")
	assert.InDelta(t, 656.0/20, cellH, 1e-9, "wall, ball home and paddle line must fit 20 rows")

	cellW, cellH = fitCell(cfg, 200, 60)
	assert.Equal(t, 8.0, cellW)
	assert.Equal(t, 21.0, cellH)
}

func TestModelClickStartsPlay(t *testing.T) {
	var buf bytes.Buffer
	m := newTestModel(t, log.New(&buf))
	var c clock

	m, _ = send(t, m, press(10, 10))
	m, cmd := send(t, m, c.tick())

	assert.Equal(t, breakout.StatePlaying, m.game.State())
	assert.NotNil(t, cmd, "tick loop should continue")
	assert.False(t, isQuit(cmd))
	assert.Contains(t, buf.String(), "to=playing")

	// The click edge is consumed by one frame
	m, _ = send(t, m, c.tick())
	assert.Equal(t, breakout.StatePlaying, m.game.State())
}

func TestModelPauseFreezesFrame(t *testing.T) {
	m := newTestModel(t, nil)
	var c clock

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = send(t, m, c.tick())
	require.Equal(t, breakout.StatePlaying, m.game.State())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = send(t, m, c.tick())
	require.Equal(t, breakout.StatePaused, m.game.State())

	ball, paddle := m.game.Ball(), m.game.Paddle()
	m, _ = send(t, m, tea.MouseMsg{X: 90, Y: 5, Action: tea.MouseActionMotion})
	for i := 0; i < 10; i++ {
		m, _ = send(t, m, c.tick())
	}
	assert.Equal(t, ball, m.game.Ball())
	assert.Equal(t, paddle, m.game.Paddle())
	assert.Contains(t, m.View(), breakout.TextPaused)

	m, _ = send(t, m, runeKey('p'))
	m, _ = send(t, m, c.tick())
	assert.Equal(t, breakout.StatePlaying, m.game.State())
}

func TestModelExitButton(t *testing.T) {
	var buf bytes.Buffer
	m := newTestModel(t, log.New(&buf))
	var c clock

	// Exit Game spans x 364..436, y 556..578.6: column 47, row 25
	m, _ = send(t, m, press(47, 25))
	m, cmd := send(t, m, c.tick())

	assert.True(t, isQuit(cmd))
	assert.True(t, m.Exited())
	assert.Equal(t, "", m.View())
	assert.Contains(t, buf.String(), "exit")
}

func TestModelExitButtonInactiveInPlay(t *testing.T) {
	m := newTestModel(t, nil)
	var c clock

	m, _ = send(t, m, press(10, 10))
	m, _ = send(t, m, c.tick())
	require.Equal(t, breakout.StatePlaying, m.game.State())

	m, _ = send(t, m, press(47, 25))
	m, cmd := send(t, m, c.tick())
	assert.False(t, isQuit(cmd))
	assert.False(t, m.Exited())
}

func TestModelBallStartsBelowWall(t *testing.T) {
	for _, size := range [][2]int{{80, 24}, {100, 30}, {120, 40}, {60, 14}} {
		t.Run(fmt.Sprintf("%dx%d", size[0], size[1]), func(t *testing.T) {
			opts := Options{
				Config:  config.DefaultBreakoutConfig(),
				Runtime: core.RuntimeConfig{ScreenW: size[0], ScreenH: size[1], TickRate: 60},
			}
			m := NewModel(opts)
			l := m.game.Layout()
			require.Greater(t, m.game.Ball().Pos.Y, l.WallBottom(), "ball home must sit below the wall")

			// Attract mode keeps the wall whole and the ball moving below it
			var c clock
			lowest := m.game.Ball().Pos.Y
			for i := 0; i < 120; i++ {
				m, _ = send(t, m, c.tick())
				lowest = max(lowest, m.game.Ball().Pos.Y)
			}
			assert.Equal(t, breakout.StateNewGame, m.game.State())
			assert.Equal(t, 112, m.game.BricksRemaining())
			assert.Greater(t, lowest, m.game.Paddle().Pos.Y-2*l.BallSize.Y)

			// A fresh serve heads for the paddle line, not into the wall
			m = NewModel(opts)
			m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
			for i := 0; i < 30; i++ {
				m, _ = send(t, m, c.tick())
			}
			assert.Equal(t, 112, m.game.BricksRemaining())
			assert.Equal(t, 0, m.game.Score())
		})
	}
}

func TestModelKeyboardPointer(t *testing.T) {
	m := newTestModel(t, nil)
	start := m.input.Pointer.X

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, start+24, m.input.Pointer.X)

	m, _ = send(t, m, runeKey('h'))
	m, _ = send(t, m, runeKey('h'))
	assert.Equal(t, start-24, m.input.Pointer.X)

	for i := 0; i < 100; i++ {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	}
	assert.Equal(t, 0.0, m.input.Pointer.X, "pointer stays on the surface")
}

func TestModelPaddleFollowsMouse(t *testing.T) {
	m := newTestModel(t, nil)
	var c clock

	m, _ = send(t, m, tea.MouseMsg{X: 50, Y: 20, Action: tea.MouseActionMotion})
	m, _ = send(t, m, c.tick())
	x := m.game.Paddle().Pos.X

	m, _ = send(t, m, tea.MouseMsg{X: 55, Y: 20, Action: tea.MouseActionMotion})
	m, _ = send(t, m, c.tick())
	assert.Equal(t, x+40, m.game.Paddle().Pos.X, "five columns are 40 units")
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 960.0, m.view.Width)
	assert.Equal(t, 819.0, m.view.Height)
	assert.Equal(t, 669.0, m.game.Paddle().Pos.Y)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	assert.True(t, m.tooSmall)
	assert.Contains(t, m.View(), "Terminal too small")
}

func TestModelQuitKey(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := send(t, m, runeKey('q'))
	assert.True(t, isQuit(cmd))
	assert.False(t, m.Exited())
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, nil)

	view := m.View()
	assert.Contains(t, view, breakout.TextPlay)
	assert.Contains(t, view, breakout.TextExit)
	assert.Contains(t, view, "000")
	assert.Equal(t, 30, strings.Count(view, "\n")+1, "arena plus help line")

	m, _ = send(t, m, runeKey('?'))
	assert.True(t, m.help.ShowAll)
	assert.Equal(t, 30, strings.Count(m.View(), "\n")+1, "full help keeps the frame height")
}
