package radar

import "time"

// SoundPlayer plays the blip sound. Calls are fire-and-forget.
type SoundPlayer interface {
	PlayBlip()
}

// TrackerOptions configures hit handling and expiry.
type TrackerOptions struct {
	// Interactive enables the audio pre-trigger and target expiry.
	Interactive bool
	MaxBlips    int
	FadeOut     time.Duration
}

// Tracker holds the targets and tests them against the sweep every tick.
// It is not safe for concurrent use; the frame loop owns it.
type Tracker struct {
	opts    TrackerOptions
	sound   SoundPlayer
	targets []Target

	lastNow  time.Duration
	hits     int
	triggers int
	expired  int
}

// NewTracker creates an empty tracker. A nil sound player is allowed.
func NewTracker(opts TrackerOptions, sound SoundPlayer) *Tracker {
	return &Tracker{
		opts:  opts,
		sound: sound,
	}
}

// Add appends a never-hit target at canvas-centred (x, y).
func (t *Tracker) Add(x, y float64) Target {
	tg := NewTarget(x, y)
	t.targets = append(t.targets, tg)
	return tg
}

// Update tests every target against the sweep window of this tick and
// returns the number of genuine hits. In interactive mode the ahead window
// triggers the sound early without recording a hit, and spent targets are
// removed afterwards.
func (t *Tracker) Update(now time.Duration, window, ahead Interval) int {
	// Keep LastBlip monotonic even if the caller's clock steps back.
	if now < t.lastNow {
		now = t.lastNow
	}
	t.lastNow = now

	hits := 0
	for i := range t.targets {
		tg := &t.targets[i]
		bearing := tg.ShiftedBearing()

		if t.opts.Interactive && ahead.Contains(bearing) {
			t.playBlip()
		}

		if window.Contains(bearing) {
			tg.LastBlip = now
			tg.Blips++
			hits++
			t.playBlip()
		}
	}
	t.hits += hits

	if t.opts.Interactive {
		t.expire(now)
	}
	return hits
}

// expire drops spent targets, preserving the order of the survivors.
func (t *Tracker) expire(now time.Duration) {
	kept := t.targets[:0]
	for _, tg := range t.targets {
		if tg.Expired(now, t.opts.MaxBlips, t.opts.FadeOut) {
			t.expired++
			continue
		}
		kept = append(kept, tg)
	}
	// Zero the tail so dropped targets don't linger in the backing array.
	for i := len(kept); i < len(t.targets); i++ {
		t.targets[i] = Target{}
	}
	t.targets = kept
}

func (t *Tracker) playBlip() {
	t.triggers++
	if t.sound != nil {
		t.sound.PlayBlip()
	}
}

// Targets returns a copy of the current targets in insertion order.
func (t *Tracker) Targets() []Target {
	out := make([]Target, len(t.targets))
	copy(out, t.targets)
	return out
}

// Len returns the number of tracked targets.
func (t *Tracker) Len() int {
	return len(t.targets)
}

// Clear removes every target.
func (t *Tracker) Clear() {
	t.targets = nil
}

// Hits returns the total number of genuine hits.
func (t *Tracker) Hits() int {
	return t.hits
}

// Triggers returns the total number of sound triggers, pre-warnings included.
func (t *Tracker) Triggers() int {
	return t.triggers
}

// Expired returns the total number of targets removed by expiry.
func (t *Tracker) Expired() int {
	return t.expired
}
