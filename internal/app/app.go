package app

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"sweep-radar.klederson.com/internal/audio"
	"sweep-radar.klederson.com/internal/config"
	"sweep-radar.klederson.com/internal/feed"
	"sweep-radar.klederson.com/internal/radar"
	"sweep-radar.klederson.com/internal/term"
	"sweep-radar.klederson.com/internal/ui"
)

const (
	menuH   = 1
	statusH = 1
	// The radar canvas starts inside the panel border, below the menu bar.
	canvasCol = 1
	canvasRow = menuH + 1

	frameWindow = 60
)

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	ctrl     *radar.Controller
	canvas   *term.Canvas
	clock    *radar.Clock
	sound    *audio.Switch
	speaker  *audio.Speaker
	demo     *feed.DemoFeed
	frames   *FrameRing
	lastTick time.Time
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	width  int
	height int

	settings config.Settings
	cursor   int

	shared *shared

	// Cached snapshot
	targets []radar.Target
	now     time.Duration
}

// New creates a new AppModel from validated settings.
func New(settings config.Settings) AppModel {
	spk := audio.NewSpeaker()
	sound := audio.NewSwitch(spk, settings.Mute)
	return AppModel{
		settings: settings,
		shared: &shared{
			ctrl:    radar.NewController(radar.OptionsFrom(settings), sound),
			canvas:  term.NewCanvas(1, 1),
			clock:   radar.NewClock(),
			sound:   sound,
			speaker: spk,
			frames:  NewFrameRing(frameWindow),
		},
	}
}

func (m AppModel) Init() tea.Cmd {
	return tickCmd(m.settings.FPS)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cols, rows := m.canvasDims()
		m.shared.canvas.Resize(cols, rows)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case TickMsg:
		m.tick(time.Time(msg))
		return m, tickCmd(m.settings.FPS)

	case feed.PlaceTargetMsg:
		if t, ok := m.shared.ctrl.AddTarget(msg.X, msg.Y); ok {
			log.Printf("demo placed target %s at (%.0f, %.0f)", t.Callsign(), t.X, t.Y)
			m.targets = m.shared.ctrl.Targets()
		}
		return m, nil
	}

	return m, nil
}

// tick runs one update+draw cycle unless paused.
func (m *AppModel) tick(at time.Time) {
	sh := m.shared
	if !sh.lastTick.IsZero() {
		sh.frames.Push(at.Sub(sh.lastTick))
	}
	sh.lastTick = at

	if sh.clock.Paused() {
		return
	}

	now := sh.clock.Now()
	expiredBefore := sh.ctrl.Stats().Expired
	sh.ctrl.Tick(now, sh.canvas)
	if n := sh.ctrl.Stats().Expired - expiredBefore; n > 0 {
		log.Printf("expired %d target(s)", n)
	}

	m.now = now
	m.targets = sh.ctrl.Targets()
	m.clampCursor()
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		m.stopServices()
		return m, tea.Quit

	case " ", "space":
		if m.shared.clock.Paused() {
			m.shared.clock.Resume()
		} else {
			m.shared.clock.Pause()
		}

	case "m", "M":
		muted := m.shared.sound.Toggle()
		log.Printf("sound muted=%t", muted)

	case "c", "C":
		if m.shared.ctrl.ClearTargets() {
			m.targets = nil
			m.cursor = 0
		}

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.targets)-1 {
			m.cursor++
		}

	case "home":
		m.cursor = 0

	case "end":
		if len(m.targets) > 0 {
			m.cursor = len(m.targets) - 1
		}
	}

	return m, nil
}

// handleMouse places a target where the radar canvas was clicked.
func (m AppModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	col := msg.X - canvasCol
	row := msg.Y - canvasRow
	cols, rows := m.shared.canvas.Dims()
	if col < 0 || col >= cols || row < 0 || row >= rows {
		return m, nil
	}

	x, y := m.shared.canvas.CellToCanvas(col, row)
	if t, ok := m.shared.ctrl.Place(x, y, 0, 0, m.shared.canvas.Size()); ok {
		log.Printf("placed target %s at (%.0f, %.0f)", t.Callsign(), t.X, t.Y)
		m.targets = m.shared.ctrl.Targets()
	}
	return m, nil
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing radar..."
	}

	bodyH, radarW, listW := m.layout()
	paused := m.shared.clock.Paused()

	menuBar := ui.RenderMenuBar(m.width, m.settings.Mode, paused, m.shared.sound.Muted())

	cols, _ := m.shared.canvas.Dims()
	legend := ui.RenderLegend(cols, m.settings.Interactive())
	radarPanel := ui.RenderRadarPanel(radarW, bodyH, m.shared.canvas.Render(), legend)

	targetList := ui.RenderTargetList(ui.TargetListView{
		Targets:     m.targets,
		Sweep:       m.shared.ctrl.Sweep(),
		Now:         m.now,
		FadeOut:     m.shared.ctrl.FadeOut(),
		MaxBlips:    m.settings.MaxBlips,
		Interactive: m.settings.Interactive(),
	}, listW, bodyH, m.cursor)

	statusBar := ui.RenderStatusBar(m.width, paused, m.shared.ctrl.Stats(), m.shared.frames.FPS())

	return ui.ComposeLayout(menuBar, radarPanel, targetList, statusBar)
}

// layout splits the screen between the radar panel and the target list.
func (m AppModel) layout() (bodyH, radarW, listW int) {
	bodyH = m.height - menuH - statusH
	if bodyH < 5 {
		bodyH = 5
	}

	radarW = m.width * 3 / 4
	if radarW < 30 {
		radarW = 30
	}
	listW = m.width - radarW
	if listW < 15 {
		listW = 15
		radarW = m.width - listW
	}
	return bodyH, radarW, listW
}

// canvasDims returns the radar canvas size inside the panel border,
// leaving one row for the legend.
func (m AppModel) canvasDims() (cols, rows int) {
	bodyH, radarW, _ := m.layout()
	cols = radarW - 4
	rows = bodyH - 3
	if cols < 5 {
		cols = 5
	}
	if rows < 3 {
		rows = 3
	}
	return cols, rows
}

func (m *AppModel) clampCursor() {
	if m.cursor >= len(m.targets) {
		m.cursor = len(m.targets) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// StartServices opens the audio device and, in demo mode, starts the target
// feed. Must be called before p.Run(). Audio failure is logged, not fatal.
func (m *AppModel) StartServices(p *tea.Program) error {
	if err := m.shared.speaker.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	}

	if m.settings.Demo {
		m.shared.demo = feed.NewDemoFeed(config.DemoInterval, config.CanvasDiameter/2)
		return m.shared.demo.Start(p)
	}
	return nil
}

func (m *AppModel) stopServices() {
	if m.shared.demo != nil {
		m.shared.demo.Stop()
	}
	m.shared.speaker.Close()
}

func tickCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
