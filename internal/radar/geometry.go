package radar

import "math"

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// NormalizeDeg wraps an angle to [0, 360).
func NormalizeDeg(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// Bearing returns the angle of (x, y) from the origin in degrees, range
// (-180, 180]. With y growing downwards this is measured clockwise from east,
// the same convention the sweep rotates in.
func Bearing(x, y float64) float64 {
	return RadToDeg(math.Atan2(y, x))
}

// ShiftedBearing returns Bearing shifted into [0, 360] for comparison with
// sweep windows.
func ShiftedBearing(x, y float64) float64 {
	return Bearing(x, y) + 180
}

// AngleDiffDeg returns the shortest angular distance between two angles.
// Result is in [0, 180].
func AngleDiffDeg(a, b float64) float64 {
	d := math.Abs(NormalizeDeg(a) - NormalizeDeg(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v <= lo {
		return lo
	}
	if v >= hi {
		return hi
	}
	return v
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
