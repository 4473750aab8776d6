package radar

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Target is a point monitored for sweep crossings, in canvas-centred
// coordinates (origin at the radar centre, y growing downwards).
type Target struct {
	ID       string
	X        float64
	Y        float64
	LastBlip time.Duration // Clock time of the latest crossing, 0 = never hit
	Blips    int
}

// NewTarget creates a target that has never been hit.
func NewTarget(x, y float64) Target {
	return Target{
		ID: uuid.NewString(),
		X:  x,
		Y:  y,
	}
}

// Bearing returns the target's angle from the centre in degrees, (-180, 180].
func (t Target) Bearing() float64 {
	return Bearing(t.X, t.Y)
}

// ShiftedBearing returns the bearing in the sweep window's frame.
func (t Target) ShiftedBearing() float64 {
	return ShiftedBearing(t.X, t.Y)
}

// Hit reports whether the sweep has crossed the target at least once.
func (t Target) Hit() bool {
	return t.LastBlip != 0
}

// Fade returns the blip's fade factor: 1 at the moment of the hit, falling
// linearly to 0 over fadeOut and clamped there. Never-hit targets return 0.
func (t Target) Fade(now, fadeOut time.Duration) float64 {
	if !t.Hit() || fadeOut <= 0 {
		return 0
	}
	elapsed := now - t.LastBlip
	return Clamp(1-float64(elapsed)/float64(fadeOut), 0, 1)
}

// Expired reports whether the target has blipped more than maxBlips times
// and its last fade-out has completed.
func (t Target) Expired(now time.Duration, maxBlips int, fadeOut time.Duration) bool {
	return t.Blips > maxBlips && now-t.LastBlip > fadeOut
}

// Callsign returns a short label derived from the target ID.
func (t Target) Callsign() string {
	id := strings.ReplaceAll(t.ID, "-", "")
	if len(id) > 4 {
		id = id[:4]
	}
	return "#" + strings.ToUpper(id)
}
