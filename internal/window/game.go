package window

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"sweep-radar.klederson.com/internal/config"
	"sweep-radar.klederson.com/internal/radar"
)

// Game runs the radar in a desktop window.
type Game struct {
	ctrl   *radar.Controller
	clock  *radar.Clock
	canvas *Canvas
	muted  func() bool
	toggle func() bool
}

// Sound is the mute-able blip player the window controls.
type Sound interface {
	radar.SoundPlayer
	Muted() bool
	Toggle() bool
}

// NewGame creates a game driving a controller built from settings.
func NewGame(settings config.Settings, sound Sound) *Game {
	return &Game{
		ctrl:   radar.NewController(radar.OptionsFrom(settings), sound),
		clock:  radar.NewClock(),
		canvas: NewCanvas(int(config.CanvasDiameter)),
		muted:  sound.Muted,
		toggle: sound.Toggle,
	}
}

// Update handles input and advances the radar by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.clock.Paused() {
			g.clock.Resume()
		} else {
			g.clock.Pause()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		log.Printf("sound muted=%t", g.toggle())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.ctrl.ClearTargets()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if t, ok := g.ctrl.Place(float64(x), float64(y), 0, 0, g.canvas.Size()); ok {
			log.Printf("placed target %s at (%.0f, %.0f)", t.Callsign(), t.X, t.Y)
		}
	}

	if g.clock.Paused() {
		return nil
	}
	now := g.clock.Now()
	g.ctrl.Update(now)
	g.ctrl.Draw(now, g.canvas)
	return nil
}

// Draw presents the offscreen radar and a status line.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas.Image(), nil)

	st := g.ctrl.Stats()
	status := "SWEEPING"
	if g.clock.Paused() {
		status = "PAUSED"
	}
	if g.muted() {
		status += " MUTED"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s v%s  %s\nsweep %03d  targets %d  blips %d  fps %.0f",
		config.AppName, config.AppVersion, status, int(st.SweepDeg), st.Targets, st.Hits, ebiten.ActualFPS()))
}

// Layout keeps the logical screen at the canvas size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := int(g.canvas.Size())
	return size, size
}

// Run opens the window and blocks until it is closed.
func Run(settings config.Settings, sound Sound) error {
	ebiten.SetWindowSize(config.WindowSize, config.WindowSize)
	ebiten.SetWindowTitle(fmt.Sprintf("%s v%s", config.AppName, config.AppVersion))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(settings.FPS)

	if err := ebiten.RunGame(NewGame(settings, sound)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
