package radar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTargetNeverHit(t *testing.T) {
	tg := NewTarget(-145, -164)
	assert.NotEmpty(t, tg.ID)
	assert.False(t, tg.Hit())
	assert.Zero(t, tg.Blips)
	assert.Equal(t, 0.0, tg.Fade(time.Second, 600*time.Millisecond))
	assert.Len(t, tg.Callsign(), 5)
	assert.NotEqual(t, tg.ID, NewTarget(-145, -164).ID)
}

func TestTargetFade(t *testing.T) {
	fadeOut := 600 * time.Millisecond
	tg := Target{LastBlip: time.Second}

	assert.InDelta(t, 1.0, tg.Fade(time.Second, fadeOut), 1e-9)
	assert.InDelta(t, 0.5, tg.Fade(time.Second+300*time.Millisecond, fadeOut), 1e-9)
	assert.InDelta(t, 0.0, tg.Fade(time.Second+fadeOut, fadeOut), 1e-9)
	assert.Equal(t, 0.0, tg.Fade(5*time.Second, fadeOut))

	prev := 1.0
	for now := time.Second; now <= 2*time.Second; now += 50 * time.Millisecond {
		f := tg.Fade(now, fadeOut)
		assert.LessOrEqual(t, f, prev)
		prev = f
	}
}

func TestTargetExpired(t *testing.T) {
	fadeOut := 600 * time.Millisecond
	tg := Target{LastBlip: 2 * time.Second, Blips: 3}

	assert.False(t, tg.Expired(2600*time.Millisecond, 2, fadeOut))
	assert.True(t, tg.Expired(2601*time.Millisecond, 2, fadeOut))

	tg.Blips = 2
	assert.False(t, tg.Expired(10*time.Second, 2, fadeOut))
}
