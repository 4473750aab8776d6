package config

import "time"

const (
	// Sweep
	SweepStartDeg = 270.0 // Initial sweep angle in degrees (screen convention, 0=east, clockwise)
	SweepSpeedDeg = 1.2   // Degrees advanced per tick
	SweepSizeDeg  = 2.0   // Half-width of the sweep wedge
	SweepTrailDeg = 60.0  // Trail glow behind the sweep head
	PreTriggerDeg = 35.0  // Audio starts this far ahead of the visual hit
	SeamShiftDeg  = 180.0 // Keeps the hit window away from the 0/360 boundary

	// Radar display
	CanvasDiameter = 600.0 // Side of the logical drawing surface in canvas units
	RingCount    = 4
	HueStart     = 120.0
	HueEnd       = 170.0
	Saturation   = 0.50
	Lightness    = 0.40
	LineWidth    = 2.0
	TrailFade    = 0.1 // Alpha removed from the whole surface every frame
	ScanlineStep = 2.0
	GridAlpha    = 0.03
	RingAlpha    = 0.1
	ScanAlpha    = 0.02
	AspectRatio  = 0.5 // Terminal char aspect correction (chars are ~2:1 tall)

	// Targets
	TargetHue         = 127.0
	TargetSaturation  = 1.00
	TargetLightness   = 0.69
	TargetRadiusFrac  = 0.04
	TargetAlpha       = 0.2
	TargetStrokeWidth = 5.0
	MaxBlips          = 2
	FadeOutTime       = 600 * time.Millisecond

	// Loop
	TargetFPS = 60
	MinFPS    = 1
	MaxFPS    = 240

	// Demo mode
	DemoInterval = 1500 * time.Millisecond

	// Window mode
	WindowSize = 720

	// App
	AppName    = "SWEEP-RADAR"
	AppVersion = "1.0"
)

// FixedTargets is the target list of the fixed variant, in canvas-centred
// coordinates.
var FixedTargets = [][2]float64{
	{-145, -164},
	{156, 100},
	{123, 144},
	{-123, 144},
	{230, -184},
}
