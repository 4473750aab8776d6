package term

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"sweep-radar.klederson.com/internal/config"
	"sweep-radar.klederson.com/internal/radar"
)

// Glyph ramp from empty to brightest.
const ramp = " .:-=+*#%@"

// pixel holds premultiplied colour and coverage for one terminal cell.
type pixel struct {
	r, g, b, a float64
}

// Canvas rasterises radar draw calls onto a grid of terminal cells. The
// square logical surface is centred in the grid and corrected for the
// terminal's cell aspect ratio.
type Canvas struct {
	cols, rows int
	size       float64 // logical side in canvas units
	scale      float64 // cell columns per canvas unit
	offX, offY float64 // centring offsets in column units
	pixels     []pixel
	styles     map[string]lipgloss.Style
}

// NewCanvas creates a canvas covering cols×rows cells.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{
		size:   config.CanvasDiameter,
		styles: make(map[string]lipgloss.Style),
	}
	c.Resize(cols, rows)
	return c
}

// Resize changes the grid size. The surface is cleared when the size changes.
func (c *Canvas) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if cols == c.cols && rows == c.rows {
		return
	}
	c.cols, c.rows = cols, rows
	c.pixels = make([]pixel, cols*rows)

	height := float64(rows) / config.AspectRatio
	side := math.Min(float64(cols), height)
	c.scale = side / c.size
	c.offX = (float64(cols) - side) / 2
	c.offY = (height - side) / 2
}

// Dims returns the grid size in cells.
func (c *Canvas) Dims() (cols, rows int) {
	return c.cols, c.rows
}

// Size returns the side of the logical surface.
func (c *Canvas) Size() float64 {
	return c.size
}

// CellToCanvas returns the canvas coordinates of a cell's centre.
func (c *Canvas) CellToCanvas(col, row int) (x, y float64) {
	x = (float64(col) + 0.5 - c.offX) / c.scale
	y = ((float64(row)+0.5)/config.AspectRatio - c.offY) / c.scale
	return x, y
}

// At returns the displayed colour and coverage of a cell.
func (c *Canvas) At(col, row int) (colorful.Color, float64) {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return colorful.Color{}, 0
	}
	p := c.pixels[row*c.cols+col]
	return colorful.Color{R: p.r, G: p.g, B: p.b}, p.a
}

// Fade erases alpha from every cell.
func (c *Canvas) Fade(alpha float64) {
	k := 1 - radar.Clamp(alpha, 0, 1)
	for i := range c.pixels {
		p := &c.pixels[i]
		p.r *= k
		p.g *= k
		p.b *= k
		p.a *= k
	}
}

// StrokeCircle draws a ring.
func (c *Canvas) StrokeCircle(cx, cy, r, width float64, p radar.Paint) {
	half := math.Max(width/2, c.minHalf())
	c.each(cx-r-half, cy-r-half, cx+r+half, cy+r+half, func(i int, x, y float64) {
		if math.Abs(math.Hypot(x-cx, y-cy)-r) <= half {
			c.blend(i, p.Color, p.Alpha, p.Blend)
		}
	})
}

// FillCircle draws a disc.
func (c *Canvas) FillCircle(cx, cy, r float64, p radar.Paint) {
	r = math.Max(r, c.minHalf())
	c.each(cx-r, cy-r, cx+r, cy+r, func(i int, x, y float64) {
		if math.Hypot(x-cx, y-cy) <= r {
			c.blend(i, p.Color, p.Alpha, p.Blend)
		}
	})
}

// StrokeLine draws a straight segment. Source-over hairlines thinner than a
// cell are spread across it by coverage, so stacked texture lines darken a
// row once rather than once per line.
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, p radar.Paint) {
	half := math.Max(width/2, c.minHalf())
	if p.Blend == radar.BlendOver {
		p.Alpha *= radar.Clamp(width/(2*c.minHalf()), 0, 1)
	}
	c.each(math.Min(x0, x1)-half, math.Min(y0, y1)-half, math.Max(x0, x1)+half, math.Max(y0, y1)+half,
		func(i int, x, y float64) {
			if segmentDistance(x, y, x0, y0, x1, y1) <= half {
				c.blend(i, p.Color, p.Alpha, p.Blend)
			}
		})
}

// FillWedge fills a sector. Near the centre the wedge is widened to at least
// one cell so the sweep stays continuous.
func (c *Canvas) FillWedge(cx, cy, r, fromDeg, toDeg float64, inner, outer radar.Paint) {
	mid := (fromDeg + toDeg) / 2
	span := math.Abs(toDeg-fromDeg) / 2
	minHalf := c.minHalf()
	c.each(cx-r, cy-r, cx+r, cy+r, func(i int, x, y float64) {
		d := math.Hypot(x-cx, y-cy)
		if d > r {
			return
		}
		allow := span
		if d > 0 {
			allow += radar.RadToDeg(minHalf / d)
		}
		if radar.AngleDiffDeg(radar.Bearing(x-cx, y-cy), mid) > allow {
			return
		}
		p := inner.Mix(outer, d/r)
		c.blend(i, p.Color, p.Alpha, p.Blend)
	})
}

// Render returns the surface as styled text, one line per row.
func (c *Canvas) Render() string {
	var sb strings.Builder
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			sb.WriteString(c.renderPixel(c.pixels[row*c.cols+col]))
		}
		if row < c.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (c *Canvas) renderPixel(p pixel) string {
	lum := math.Max(p.r, math.Max(p.g, p.b))
	idx := int(math.Round(radar.Clamp(lum, 0, 1) * float64(len(ramp)-1)))
	if idx == 0 {
		return " "
	}

	// Hue from the pixel, brightness partly from the glyph.
	k := (0.35 + 0.65*lum) / lum
	col := colorful.Color{R: quantize(p.r * k), G: quantize(p.g * k), B: quantize(p.b * k)}
	hex := col.Clamped().Hex()

	sty, ok := c.styles[hex]
	if !ok {
		sty = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
		c.styles[hex] = sty
	}
	return sty.Render(string(ramp[idx]))
}

// minHalf is half a cell row in canvas units; thinner shapes would fall
// between cell centres.
func (c *Canvas) minHalf() float64 {
	return 0.5 / config.AspectRatio / c.scale
}

// each calls fn for every cell whose centre lies in the canvas-space box.
func (c *Canvas) each(x0, y0, x1, y1 float64, fn func(i int, x, y float64)) {
	c0 := int(math.Floor(x0*c.scale + c.offX))
	c1 := int(math.Ceil(x1*c.scale + c.offX))
	r0 := int(math.Floor((y0*c.scale + c.offY) * config.AspectRatio))
	r1 := int(math.Ceil((y1*c.scale + c.offY) * config.AspectRatio))
	c0, c1 = max(c0, 0), min(c1, c.cols-1)
	r0, r1 = max(r0, 0), min(r1, c.rows-1)

	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			x, y := c.CellToCanvas(col, row)
			fn(row*c.cols+col, x, y)
		}
	}
}

func (c *Canvas) blend(i int, col colorful.Color, alpha float64, mode radar.Blend) {
	alpha = radar.Clamp(alpha, 0, 1)
	if alpha == 0 {
		return
	}
	p := &c.pixels[i]
	switch mode {
	case radar.BlendLighter:
		p.r = math.Min(p.r+col.R*alpha, 1)
		p.g = math.Min(p.g+col.G*alpha, 1)
		p.b = math.Min(p.b+col.B*alpha, 1)
		p.a = math.Min(p.a+alpha, 1)
	default:
		p.r = col.R*alpha + p.r*(1-alpha)
		p.g = col.G*alpha + p.g*(1-alpha)
		p.b = col.B*alpha + p.b*(1-alpha)
		p.a = alpha + p.a*(1-alpha)
	}
}

func segmentDistance(px, py, x0, y0, x1, y1 float64) float64 {
	dx, dy := x1-x0, y1-y0
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(px-x0, py-y0)
	}
	t := radar.Clamp(((px-x0)*dx+(py-y0)*dy)/lenSq, 0, 1)
	return math.Hypot(px-(x0+t*dx), py-(y0+t*dy))
}

// quantize rounds a channel to 16 levels to keep the style cache small.
func quantize(v float64) float64 {
	return math.Round(radar.Clamp(v, 0, 1)*15) / 15
}
