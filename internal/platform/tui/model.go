package tui

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"orbitarium/internal/core"
	"orbitarium/internal/physics"
	"orbitarium/internal/scenario"
	"orbitarium/internal/storage"
)

const (
	// maxFrameSeconds caps the real-time delta fed into one advance so a
	// suspended terminal does not turn into a single giant step on resume.
	maxFrameSeconds = 0.25
	// trailCap bounds the number of remembered positions per body.
	trailCap = 2000
	// panStepCells is how far one arrow key press moves the camera.
	panStepCells = 4
)

// Model is the Bubble Tea model for viewing a running simulation.
type Model struct {
	scn       *scenario.Scenario
	uni       *physics.Universe
	screen    *core.Screen
	camera    *Camera
	store     *storage.Store
	config    core.RuntimeConfig
	keys      SimKeyMap
	help      help.Model
	colors    map[int64]core.Color
	trails    map[int64][]physics.Vec2
	trailsOn  bool
	paused    bool
	speedIdx  int
	targetIdx int
	lastTick  time.Time
	startWall time.Time
	energy0   float64
	quitting  bool
}

// NewModel creates a viewer model for the given scenario. The universe is
// built fresh from the scenario's initial conditions.
func NewModel(scn *scenario.Scenario, store *storage.Store, cfg core.RuntimeConfig) (Model, error) {
	uni, err := scn.Build()
	if err != nil {
		return Model{}, err
	}

	viewH := cfg.ScreenH - 1 // Bottom row is the help bar
	if viewH < 1 {
		viewH = 1
	}

	colors := make(map[int64]core.Color, len(scn.Bodies))
	bodies := uni.Bodies()
	for i, spec := range scn.Bodies {
		if i < len(bodies) {
			colors[bodies[i].ID] = core.ParseColor(spec.Color)
		}
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		scn:       scn,
		uni:       uni,
		screen:    core.NewScreen(cfg.ScreenW, viewH),
		camera:    FitCamera(bodies, cfg.ScreenW, viewH),
		store:     store,
		config:    cfg,
		keys:      DefaultSimKeyMap(),
		help:      h,
		colors:    colors,
		trails:    make(map[int64][]physics.Vec2),
		trailsOn:  true,
		speedIdx:  nearestSpeed(uni.TimeScale()),
		targetIdx: -1,
		startWall: time.Now(),
		energy0:   uni.TotalEnergy(),
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.recordRun()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused

	case key.Matches(msg, m.keys.SpeedUp):
		if m.speedIdx < len(Speeds)-1 {
			m.speedIdx++
			m.uni.SetTimeScale(Speeds[m.speedIdx].Scale)
		}

	case key.Matches(msg, m.keys.SpeedDown):
		if m.speedIdx > 0 {
			m.speedIdx--
			m.uni.SetTimeScale(Speeds[m.speedIdx].Scale)
		}

	case key.Matches(msg, m.keys.ZoomIn):
		m.camera.ZoomIn()

	case key.Matches(msg, m.keys.ZoomOut):
		m.camera.ZoomOut()

	case key.Matches(msg, m.keys.PanUp):
		m.camera.Pan(0, -panStepCells)
	case key.Matches(msg, m.keys.PanDown):
		m.camera.Pan(0, panStepCells)
	case key.Matches(msg, m.keys.PanLeft):
		m.camera.Pan(-panStepCells, 0)
	case key.Matches(msg, m.keys.PanRight):
		m.camera.Pan(panStepCells, 0)

	case key.Matches(msg, m.keys.NextTarget):
		bodies := m.uni.Bodies()
		if len(bodies) > 0 {
			m.targetIdx = (m.targetIdx + 1) % len(bodies)
			m.camera.Follow(bodies[m.targetIdx])
		}

	case key.Matches(msg, m.keys.FreeCamera):
		m.targetIdx = -1
		m.camera.Follow(nil)

	case key.Matches(msg, m.keys.Trails):
		m.trailsOn = !m.trailsOn
		if !m.trailsOn {
			m.trails = make(map[int64][]physics.Vec2)
		}

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	viewH := msg.Height - 1
	if viewH < 1 {
		viewH = 1
	}
	m.screen.Resize(msg.Width, viewH)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by the real time that passed since
// the previous frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := 1.0 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	if elapsed > maxFrameSeconds {
		elapsed = maxFrameSeconds
	}

	if !m.paused && elapsed > 0 {
		//nolint:errcheck // Advance only fails for negative elapsed
		m.uni.Advance(elapsed)
		if m.trailsOn {
			m.appendTrails()
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// appendTrails records the current position of every body.
func (m *Model) appendTrails() {
	for _, b := range m.uni.Bodies() {
		trail := append(m.trails[b.ID], b.Pos)
		if len(trail) > trailCap {
			trail = trail[len(trail)-trailCap:]
		}
		m.trails[b.ID] = trail
	}
}

// recordRun logs the finished viewing session, best effort.
func (m *Model) recordRun() {
	if m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort log, quitting regardless
	m.store.RecordRun(m.scn.ID, m.uni.SimTime(), time.Since(m.startWall).Seconds())
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".orbitarium", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.scn.ID, timestamp))

	m.renderFrame()
	//nolint:errcheck // Best-effort save, viewing continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// renderFrame draws the universe and HUD into the screen buffer.
func (m *Model) renderFrame() {
	m.screen.Clear()
	drawUniverse(m.screen, m.uni, m.camera, m.trails, m.colors)
	m.screen.DrawTextColored(0, 0, m.hudLine(), core.ColorBrightWhite)
}

// hudLine formats the status row shown at the top of the frame.
func (m *Model) hudLine() string {
	target := "free"
	if t := m.camera.Target(); t != nil {
		target = t.Name
	}

	state := ""
	if m.paused {
		state = "  PAUSED"
	}

	drift := 0.0
	if m.energy0 != 0 {
		drift = math.Abs((m.uni.TotalEnergy() - m.energy0) / m.energy0)
	}

	return fmt.Sprintf(" %s  t+%s/s  [%s]  %s  dE %.1e%s",
		fmtSimDuration(m.uni.SimTime()),
		Speeds[m.speedIdx].Label,
		target,
		fmtScale(m.camera.MetersPerCell()),
		drift,
		state,
	)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderFrame()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given scenario.
func Run(scn *scenario.Scenario, store *storage.Store, cfg core.RuntimeConfig) error {
	model, err := NewModel(scn, store, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
