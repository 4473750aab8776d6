package radar

import "github.com/lucasb-eyer/go-colorful"

// Blend selects how a draw call combines with what is already on the surface.
type Blend int

const (
	// BlendOver paints source over destination.
	BlendOver Blend = iota
	// BlendLighter adds source to destination.
	BlendLighter
)

// Paint is a colour with alpha and a blend mode.
type Paint struct {
	Color colorful.Color
	Alpha float64
	Blend Blend
}

// HSLA builds a source-over paint. Saturation and lightness are in [0, 1].
func HSLA(h, s, l, a float64) Paint {
	return Paint{
		Color: colorful.Hsl(h, s, l),
		Alpha: a,
	}
}

// Lighter returns the paint with additive blending.
func (p Paint) Lighter() Paint {
	p.Blend = BlendLighter
	return p
}

// Mix interpolates colour and alpha between p and q. The blend mode of p is kept.
func (p Paint) Mix(q Paint, t float64) Paint {
	return Paint{
		Color: p.Color.BlendRgb(q.Color, t),
		Alpha: Lerp(p.Alpha, q.Alpha, t),
		Blend: p.Blend,
	}
}

// Canvas is the 2D drawing surface the radar renders onto. Coordinates are
// in canvas units with the origin at the top-left of a square of side Size().
// Angles are in degrees, 0=east, clockwise.
type Canvas interface {
	Size() float64
	// Fade erases alpha from the whole surface, leaving a trail of earlier frames.
	Fade(alpha float64)
	StrokeCircle(cx, cy, r, width float64, p Paint)
	FillCircle(cx, cy, r float64, p Paint)
	StrokeLine(x0, y0, x1, y1, width float64, p Paint)
	// FillWedge fills a circular sector with a radial gradient from inner at
	// the centre to outer at the rim.
	FillWedge(cx, cy, r, fromDeg, toDeg float64, inner, outer Paint)
}
