package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidSettings is wrapped by every Validate failure.
var ErrInvalidSettings = errors.New("invalid settings")

// Mode selects the target variant.
type Mode string

const (
	ModeFixed       Mode = "fixed"
	ModeInteractive Mode = "interactive"
)

// Settings holds the runtime options filled from CLI flags.
type Settings struct {
	Mode       Mode
	SweepSpeed float64 // degrees per tick
	MaxBlips   int
	FadeOut    time.Duration
	PreTrigger float64 // degrees
	FPS        int
	Mute       bool
	Window     bool
	Demo       bool
	LogFile    string
}

// DefaultSettings returns the settings matching the package constants.
func DefaultSettings() Settings {
	return Settings{
		Mode:       ModeFixed,
		SweepSpeed: SweepSpeedDeg,
		MaxBlips:   MaxBlips,
		FadeOut:    FadeOutTime,
		PreTrigger: PreTriggerDeg,
		FPS:        TargetFPS,
	}
}

// Interactive reports whether targets are placed by the user.
func (s Settings) Interactive() bool {
	return s.Mode == ModeInteractive
}

// Validate checks ranges and returns an error wrapping ErrInvalidSettings.
func (s Settings) Validate() error {
	switch s.Mode {
	case ModeFixed, ModeInteractive:
	default:
		return fmt.Errorf("%w: unknown mode %q (want %q or %q)", ErrInvalidSettings, s.Mode, ModeFixed, ModeInteractive)
	}
	// A window wider than the seam shift would compare against the wrong half-turn.
	if s.SweepSpeed <= 0 || s.SweepSpeed >= SeamShiftDeg {
		return fmt.Errorf("%w: sweep speed %.2f must be in (0, %.0f)", ErrInvalidSettings, s.SweepSpeed, SeamShiftDeg)
	}
	if s.MaxBlips < 0 {
		return fmt.Errorf("%w: max blips %d is negative", ErrInvalidSettings, s.MaxBlips)
	}
	if s.FadeOut <= 0 {
		return fmt.Errorf("%w: fade-out %s must be positive", ErrInvalidSettings, s.FadeOut)
	}
	if s.PreTrigger < 0 || s.PreTrigger >= 360 {
		return fmt.Errorf("%w: pre-trigger %.2f must be in [0, 360)", ErrInvalidSettings, s.PreTrigger)
	}
	if s.FPS < MinFPS || s.FPS > MaxFPS {
		return fmt.Errorf("%w: fps %d must be in [%d, %d]", ErrInvalidSettings, s.FPS, MinFPS, MaxFPS)
	}
	if s.Demo && !s.Interactive() {
		return fmt.Errorf("%w: --demo requires --mode %s", ErrInvalidSettings, ModeInteractive)
	}
	if s.Demo && s.Window {
		return fmt.Errorf("%w: --demo is not available with --window", ErrInvalidSettings)
	}
	return nil
}
