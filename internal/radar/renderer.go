package radar

import (
	"math"
	"time"

	"sweep-radar.klederson.com/internal/config"
)

var (
	hueDiff = math.Abs(config.HueEnd - config.HueStart)

	gridPaint = HSLA((config.HueStart+config.HueEnd)/2, config.Saturation, config.Lightness, config.GridAlpha).Lighter()
	scanPaint = HSLA(0, 0, 0, config.ScanAlpha)

	// The sweep gradient is brightest at the rim.
	sweepInner = HSLA(config.HueEnd, config.Saturation, config.Lightness, 0.1).Lighter()
	sweepOuter = HSLA(config.HueStart, config.Saturation, config.Lightness, 1).Lighter()
)

// Render draws one frame: trail fade, rings, grid, sweep wedge, target
// blips and scanlines, in that order.
func Render(c Canvas, now time.Duration, sweep *Sweep, targets []Target, fadeOut time.Duration) {
	c.Fade(config.TrailFade)
	renderRings(c)
	renderGrid(c)
	renderSweep(c, sweep)
	renderTargets(c, now, targets, fadeOut)
	renderScanLines(c)
}

func renderRings(c Canvas) {
	radius := c.Size() / 2
	step := (radius - config.LineWidth/2) / config.RingCount
	for i := 0; i < config.RingCount; i++ {
		hue := config.HueEnd - float64(i)*(hueDiff/config.RingCount)
		p := HSLA(hue, config.Saturation, config.Lightness, config.RingAlpha).Lighter()
		c.StrokeCircle(radius, radius, step*float64(i+1), config.LineWidth, p)
	}
}

func renderGrid(c Canvas) {
	size := c.Size()
	mid := size/2 - config.LineWidth/2
	c.StrokeLine(mid, config.LineWidth, mid, size-config.LineWidth, config.LineWidth, gridPaint)
	c.StrokeLine(config.LineWidth, mid, size-config.LineWidth, mid, config.LineWidth, gridPaint)
}

func renderSweep(c Canvas, sweep *Sweep) {
	radius := c.Size() / 2
	c.FillWedge(radius, radius, radius,
		sweep.Angle-config.SweepSizeDeg, sweep.Angle+config.SweepSizeDeg,
		sweepInner, sweepOuter)
}

func renderTargets(c Canvas, now time.Duration, targets []Target, fadeOut time.Duration) {
	radius := c.Size() / 2
	blipRadius := config.TargetRadiusFrac * radius
	for _, t := range targets {
		if !t.Hit() {
			continue
		}
		fade := t.Fade(now, fadeOut)
		if fade <= 0 {
			continue
		}
		p := HSLA(config.TargetHue, config.TargetSaturation, config.TargetLightness, fade*config.TargetAlpha)
		x := radius + t.X
		y := radius + t.Y
		c.FillCircle(x, y, blipRadius, p)
		c.StrokeCircle(x, y, blipRadius, config.TargetStrokeWidth, p)
	}
}

func renderScanLines(c Canvas) {
	size := c.Size()
	for y := 0.0; y < size; y += config.ScanlineStep {
		c.StrokeLine(0, y+0.5, size, y+0.5, 1, scanPaint)
	}
}
