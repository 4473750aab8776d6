package window

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"sweep-radar.klederson.com/internal/radar"
)

// wedgeBands is the number of radial steps used to approximate the sweep
// gradient.
const wedgeBands = 24

// Canvas draws radar frames onto an offscreen ebiten image that persists
// between frames, so Fade leaves a trail.
type Canvas struct {
	img   *ebiten.Image
	pixel *ebiten.Image
	size  float64
}

// NewCanvas creates a square canvas of side size pixels.
func NewCanvas(size int) *Canvas {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &Canvas{
		img:   ebiten.NewImage(size, size),
		pixel: pixel,
		size:  float64(size),
	}
}

// Image returns the offscreen surface.
func (c *Canvas) Image() *ebiten.Image {
	return c.img
}

func (c *Canvas) Size() float64 {
	return c.size
}

// Fade erases alpha from the whole surface with destination-out blending.
func (c *Canvas) Fade(alpha float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(c.size, c.size)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Blend = ebiten.BlendDestinationOut
	c.img.DrawImage(c.pixel, op)
}

func (c *Canvas) StrokeCircle(cx, cy, r, width float64, p radar.Paint) {
	vector.StrokeCircle(c.img, float32(cx), float32(cy), float32(r), float32(width), toNRGBA(p), true)
}

func (c *Canvas) FillCircle(cx, cy, r float64, p radar.Paint) {
	vector.DrawFilledCircle(c.img, float32(cx), float32(cy), float32(r), toNRGBA(p), true)
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, p radar.Paint) {
	vector.StrokeLine(c.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), toNRGBA(p), true)
}

// FillWedge approximates the sector with radial strokes in bands, each band
// coloured at its mid-radius.
func (c *Canvas) FillWedge(cx, cy, r, fromDeg, toDeg float64, inner, outer radar.Paint) {
	step := r / wedgeBands
	for b := 0; b < wedgeBands; b++ {
		r0 := step * float64(b)
		r1 := r0 + step
		p := inner.Mix(outer, (r0+r1)/2/r)
		clr := toNRGBA(p)

		// One stroke per pixel of arc length at the band's outer edge.
		arc := radar.DegToRad(toDeg-fromDeg) * r1
		strokes := int(math.Max(1, math.Ceil(arc)))
		for s := 0; s <= strokes; s++ {
			a := radar.DegToRad(radar.Lerp(fromDeg, toDeg, float64(s)/float64(strokes)))
			cos, sin := math.Cos(a), math.Sin(a)
			vector.StrokeLine(c.img,
				float32(cx+r0*cos), float32(cy+r0*sin),
				float32(cx+r1*cos), float32(cy+r1*sin),
				1.5, clr, true)
		}
	}
}

// toNRGBA converts a paint to a non-premultiplied colour. ebiten's vector
// helpers always draw source-over, so BlendLighter is approximated.
func toNRGBA(p radar.Paint) color.NRGBA {
	r, g, b := p.Color.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(radar.Clamp(p.Alpha, 0, 1) * 255))}
}
