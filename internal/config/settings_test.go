package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettingsValid(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, s.Validate())
	assert.False(t, s.Interactive())
	assert.Equal(t, FadeOutTime, s.FadeOut)
	assert.Equal(t, MaxBlips, s.MaxBlips)
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"unknown mode", func(s *Settings) { s.Mode = "orbit" }},
		{"zero speed", func(s *Settings) { s.SweepSpeed = 0 }},
		{"speed past seam shift", func(s *Settings) { s.SweepSpeed = 180 }},
		{"negative max blips", func(s *Settings) { s.MaxBlips = -1 }},
		{"zero fade-out", func(s *Settings) { s.FadeOut = 0 }},
		{"pre-trigger full turn", func(s *Settings) { s.PreTrigger = 360 }},
		{"fps too low", func(s *Settings) { s.FPS = 0 }},
		{"fps too high", func(s *Settings) { s.FPS = MaxFPS + 1 }},
		{"demo in fixed mode", func(s *Settings) { s.Demo = true }},
		{"demo in window", func(s *Settings) { s.Mode, s.Demo, s.Window = ModeInteractive, true, true }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			err := s.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSettings)
		})
	}
}

func TestSettingsInteractiveDemo(t *testing.T) {
	s := DefaultSettings()
	s.Mode = ModeInteractive
	s.Demo = true
	require.NoError(t, s.Validate())
	assert.True(t, s.Interactive())
}
