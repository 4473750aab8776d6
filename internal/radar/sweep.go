package radar

import (
	"math"

	"sweep-radar.klederson.com/internal/config"
)

// Interval is the arc covered by one sweep tick, in seam-shifted degrees.
type Interval struct {
	Start float64
	End   float64
}

// Contains reports whether deg lies strictly inside the interval. An interval
// whose end wrapped below its start contains nothing.
func (iv Interval) Contains(deg float64) bool {
	return deg > iv.Start && deg < iv.End
}

// Wraps reports whether the interval straddles the 0/360 seam.
func (iv Interval) Wraps() bool {
	return iv.End < iv.Start
}

// Sweep manages the rotating sweep line state.
type Sweep struct {
	Angle float64 // Current angle in degrees [0, 360), 0=east, clockwise
	Speed float64 // Degrees advanced per tick
}

// NewSweep creates a sweep at the given angle.
func NewSweep(start, speed float64) *Sweep {
	return &Sweep{
		Angle: NormalizeDeg(start),
		Speed: speed,
	}
}

// Window returns the arc the sweep covers during the current tick.
func (s *Sweep) Window() Interval {
	return s.WindowAhead(0)
}

// WindowAhead returns the current tick's arc rotated forward by offset degrees.
func (s *Sweep) WindowAhead(offset float64) Interval {
	return Interval{
		Start: math.Mod(s.Angle+offset+config.SeamShiftDeg, 360),
		End:   math.Mod(s.Angle+offset+s.Speed+config.SeamShiftDeg, 360),
	}
}

// Advance rotates the sweep by one tick.
func (s *Sweep) Advance() {
	s.Angle = NormalizeDeg(s.Angle + s.Speed)
}

// Intensity returns the glow intensity [0, 1] for a screen angle in degrees.
// The sweep has a trailing glow of SweepTrailDeg degrees.
// Returns 0 if the angle is outside the sweep trail.
func (s *Sweep) Intensity(deg float64) float64 {
	// How far behind the sweep head this angle is
	diff := NormalizeDeg(s.Angle - deg)
	if diff > config.SweepTrailDeg {
		return 0
	}

	// Linear falloff: 1.0 at sweep head → 0.0 at trail end
	return 1.0 - diff/config.SweepTrailDeg
}
