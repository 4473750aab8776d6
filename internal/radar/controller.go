package radar

import (
	"time"

	"sweep-radar.klederson.com/internal/config"
)

// Options configures a Controller.
type Options struct {
	Interactive bool
	StartAngle  float64
	SweepSpeed  float64
	PreTrigger  float64
	MaxBlips    int
	FadeOut     time.Duration
}

// DefaultOptions returns options for the given variant using the package
// constants.
func DefaultOptions(interactive bool) Options {
	return Options{
		Interactive: interactive,
		StartAngle:  config.SweepStartDeg,
		SweepSpeed:  config.SweepSpeedDeg,
		PreTrigger:  config.PreTriggerDeg,
		MaxBlips:    config.MaxBlips,
		FadeOut:     config.FadeOutTime,
	}
}

// Stats is a read-only summary for status displays.
type Stats struct {
	SweepDeg float64
	Targets  int
	Hits     int
	Triggers int
	Expired  int
}

// Controller owns the animation state and drives it one tick at a time.
type Controller struct {
	opts    Options
	sweep   *Sweep
	tracker *Tracker
}

// NewController creates a controller. The fixed variant starts with the
// built-in target list; the interactive variant starts empty.
func NewController(opts Options, sound SoundPlayer) *Controller {
	c := &Controller{
		opts:  opts,
		sweep: NewSweep(opts.StartAngle, opts.SweepSpeed),
		tracker: NewTracker(TrackerOptions{
			Interactive: opts.Interactive,
			MaxBlips:    opts.MaxBlips,
			FadeOut:     opts.FadeOut,
		}, sound),
	}
	if !opts.Interactive {
		for _, p := range config.FixedTargets {
			c.tracker.Add(p[0], p[1])
		}
	}
	return c
}

// Tick runs Update then Draw and returns the number of hits this tick.
func (c *Controller) Tick(now time.Duration, canvas Canvas) int {
	hits := c.Update(now)
	c.Draw(now, canvas)
	return hits
}

// Update tests targets against the current sweep window, then advances the
// sweep. It may trigger the sound player.
func (c *Controller) Update(now time.Duration) int {
	window := c.sweep.Window()
	ahead := c.sweep.WindowAhead(c.opts.PreTrigger)
	hits := c.tracker.Update(now, window, ahead)
	c.sweep.Advance()
	return hits
}

// Draw renders the current state onto the canvas. It does not mutate state.
func (c *Controller) Draw(now time.Duration, canvas Canvas) {
	Render(canvas, now, c.sweep, c.tracker.targets, c.opts.FadeOut)
}

// Place adds a target from a pointer position. screenX/screenY are in canvas
// units and originX/originY locate the canvas's top-left corner in the same
// space. Positions outside the radar are accepted as-is. Returns false in
// the fixed variant.
func (c *Controller) Place(screenX, screenY, originX, originY, size float64) (Target, bool) {
	radius := size / 2
	return c.AddTarget(screenX-originX-radius, screenY-originY-radius)
}

// AddTarget adds a target at canvas-centred coordinates. Returns false in
// the fixed variant.
func (c *Controller) AddTarget(x, y float64) (Target, bool) {
	if !c.opts.Interactive {
		return Target{}, false
	}
	return c.tracker.Add(x, y), true
}

// ClearTargets removes every target in the interactive variant.
func (c *Controller) ClearTargets() bool {
	if !c.opts.Interactive {
		return false
	}
	c.tracker.Clear()
	return true
}

// Interactive reports whether targets are user-placed.
func (c *Controller) Interactive() bool {
	return c.opts.Interactive
}

// Targets returns a snapshot of the tracked targets.
func (c *Controller) Targets() []Target {
	return c.tracker.Targets()
}

// FadeOut returns the configured blip fade-out duration.
func (c *Controller) FadeOut() time.Duration {
	return c.opts.FadeOut
}

// Sweep returns a copy of the sweep state.
func (c *Controller) Sweep() Sweep {
	return *c.sweep
}

// Stats returns counters for status displays.
func (c *Controller) Stats() Stats {
	return Stats{
		SweepDeg: c.sweep.Angle,
		Targets:  c.tracker.Len(),
		Hits:     c.tracker.Hits(),
		Triggers: c.tracker.Triggers(),
		Expired:  c.tracker.Expired(),
	}
}

// OptionsFrom builds controller options from validated settings.
func OptionsFrom(s config.Settings) Options {
	return Options{
		Interactive: s.Interactive(),
		StartAngle:  config.SweepStartDeg,
		SweepSpeed:  s.SweepSpeed,
		PreTrigger:  s.PreTrigger,
		MaxBlips:    s.MaxBlips,
		FadeOut:     s.FadeOut,
	}
}
