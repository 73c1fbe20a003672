package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// Terminal layout constants
const (
	minCols  = 40 // Below this the wall is unreadable
	minRows  = 12 // Including the help line
	helpRows = 1  // Rows reserved for the short help
)

// Options configures a terminal session.
type Options struct {
	Config  config.BreakoutConfig
	Runtime core.RuntimeConfig // Initial terminal size and tick rate
	Logger  *log.Logger        // Nil discards logs
}

// Model is the Bubble Tea model running one Breakout session.
type Model struct {
	game    *breakout.Game
	cfg     config.BreakoutConfig
	runtime core.RuntimeConfig
	screen  *core.Screen
	raster  *Rasterizer
	view    breakout.View
	keys    KeyMap
	mapper  *KeyMapper
	help    help.Model
	logger  *log.Logger

	input    core.InputFrame
	lastTick time.Time
	tooSmall bool
	quitting bool
	exited   bool // Left through the exit button
}

// NewModel creates a model for the given options.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rt := opts.Runtime
	if rt.TickRate <= 0 {
		rt.TickRate = opts.Config.Terminal.TickRate
	}

	keys := DefaultKeyMap()
	m := Model{
		cfg:     opts.Config,
		runtime: rt,
		screen:  core.NewScreen(rt.ScreenW, rt.ScreenH),
		keys:    keys,
		mapper:  NewKeyMapper(keys),
		help:    help.New(),
		logger:  logger,
		input:   core.NewInputFrame(),
	}
	m.raster = NewRasterizer(m.screen, opts.Config.Terminal.CellWidth, opts.Config.Terminal.CellHeight)
	m.layout(rt.ScreenW, rt.ScreenH)

	m.game = breakout.New(opts.Config, m.view.Height)
	m.input.Pointer = core.V2(m.view.Width/2, m.view.Height/2)
	return m
}

// fitCell returns the logical cell size for a terminal of cols x rows game
// cells. Cells grow past the configured size until the arena fits.
func fitCell(cfg config.BreakoutConfig, cols, rows int) (float64, float64) {
	l := breakout.LayoutFrom(cfg)
	cellW, cellH := cfg.Terminal.CellWidth, cfg.Terminal.CellHeight
	if cols > 0 {
		cellW = max(cellW, (l.Width+cfg.HUD.BorderThickness)/float64(cols))
	}
	if rows > 0 {
		cellH = max(cellH, l.MinHeight()/float64(rows))
	}
	return cellW, cellH
}

// layout sizes the grid and the logical view for a terminal of cols x rows.
func (m *Model) layout(cols, rows int) {
	m.runtime.ScreenW, m.runtime.ScreenH = cols, rows
	m.tooSmall = cols < minCols || rows < minRows

	gameRows := max(rows-helpRows, 1)
	cellW, cellH := fitCell(m.cfg, cols, gameRows)
	m.screen.Resize(cols, gameRows)
	m.raster.SetCellSize(cellW, cellH)
	m.view = breakout.View{
		Width:  float64(cols) * cellW,
		Height: float64(gameRows) * cellH,
		Skin:   core.DefaultSkin(m.cfg.HUD.FontSize*cellH/m.cfg.Terminal.CellHeight, cellW),
	}
	m.help.Width = cols
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started",
		"cols", m.runtime.ScreenW, "rows", m.runtime.ScreenH, "fps", m.runtime.TickRate,
		"lives", m.game.Lives(), "bricks", m.game.BricksRemaining())
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Edges are queued for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	step := m.cfg.Terminal.PointerStep
	switch m.mapper.MapKey(msg) {
	case core.ActionQuit:
		m.logger.Info("quit", "state", m.game.State(), "score", m.game.Score())
		m.quitting = true
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case core.ActionPointerLeft:
		m.movePointer(m.input.Pointer.X - step)
	case core.ActionPointerRight:
		m.movePointer(m.input.Pointer.X + step)
	case core.ActionClick:
		m.input.Set(core.ActionClick)
		m.input.ClickAt = m.input.Pointer
	case core.ActionPause:
		m.input.Set(core.ActionPause)
	}
	return m, nil
}

// movePointer sets the virtual pointer x, kept on the surface.
func (m *Model) movePointer(x float64) {
	m.input.Pointer.X = core.ClampF(x, 0, m.view.Width)
}

// handleMouse tracks the pointer and queues left-button clicks.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	pos := m.raster.Logical(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionMotion:
		m.input.Pointer = pos
	case tea.MouseActionPress:
		m.input.Pointer = pos
		if msg.Button == tea.MouseButtonLeft {
			m.input.Set(core.ActionClick)
			m.input.ClickAt = pos
		}
	}
	return m, nil
}

// handleResize processes window resize events. The session carries on.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.layout(msg.Width, msg.Height)
	m.game.Resize(m.view.Height)
	m.movePointer(m.input.Pointer.X)
	m.logger.Debug("resize",
		"cols", msg.Width, "rows", msg.Height,
		"width", m.view.Width, "height", m.view.Height, "too_small", m.tooSmall)
	return m, nil
}

// handleTick runs one frame: simulate, then apply the queued edges.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := frameSeconds(m.lastTick, now, m.runtime.TickRate)
	m.lastTick = now

	if m.tooSmall {
		m.input.Clear()
		return m, tickCmd(m.runtime.TickRate)
	}

	before := m.game.State()
	if before != breakout.StatePaused {
		m.game.Update(breakout.Input{PointerX: m.input.Pointer.X, Elapsed: elapsed})
	}

	if m.input.Has(core.ActionClick) {
		if m.game.ExitHit(m.view, m.input.ClickAt) {
			m.logger.Info("exit", "state", m.game.State(), "score", m.game.Score())
			m.quitting = true
			m.exited = true
			return m, tea.Quit
		}
		m.game.Click()
	}
	if m.input.Has(core.ActionPause) {
		m.game.TogglePause()
	}
	m.logTransition(before)

	// Clear input for next frame
	m.input.Clear()

	return m, tickCmd(m.runtime.TickRate)
}

// logTransition records a state change since before.
func (m Model) logTransition(before breakout.State) {
	after := m.game.State()
	if after == before {
		return
	}
	if before.Finished() && after.Playing() {
		m.logger.Info("restart", "restarts", m.game.Restarts())
	}
	m.logger.Info("state",
		"from", before, "to", after,
		"score", m.game.Score(), "lives", m.game.Lives(), "bricks", m.game.BricksRemaining())
}

// Exited reports whether the session ended through the exit button.
func (m Model) Exited() bool {
	return m.exited
}

// draw renders the current frame into the grid.
func (m Model) draw() {
	m.game.Draw(m.raster, m.view)
	if !m.game.State().Playing() {
		m.raster.Pointer(m.input.Pointer, core.ColorGray)
	}
}

// saveScreenshot saves the current frame as plain text.
func (m Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Error("screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Error("screenshot", "err", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("breakout_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Error("screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot", "path", path)
}

// sizeHint describes the required terminal size.
func sizeHint(width, height, needW, needH int) string {
	return fmt.Sprintf("need %dx%d, have %dx%d", needW, needH, width, height)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.tooSmall {
		return renderTooSmall(m.runtime.ScreenW, m.runtime.ScreenH, minCols, minRows)
	}

	m.draw()
	body := RenderScreen(m.screen)

	// Full help covers the bottom of the arena
	helpView := m.help.View(m.keys)
	if extra := lipgloss.Height(helpView) - helpRows; extra > 0 {
		lines := strings.Split(body, "\n")
		body = strings.Join(lines[:max(len(lines)-extra, 0)], "\n")
	}
	return body + "\n" + helpView
}

// Run starts the Bubble Tea program and blocks until the player leaves.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Paddle follows the pointer without a button held
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
