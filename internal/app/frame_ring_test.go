package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameRingOrderAndWrap(t *testing.T) {
	r := NewFrameRing(3)
	assert.Nil(t, r.Values())
	assert.Zero(t, r.FPS())

	r.Push(1 * time.Millisecond)
	r.Push(2 * time.Millisecond)
	assert.Equal(t, []time.Duration{1 * time.Millisecond, 2 * time.Millisecond}, r.Values())

	r.Push(3 * time.Millisecond)
	r.Push(4 * time.Millisecond)
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []time.Duration{2 * time.Millisecond, 3 * time.Millisecond, 4 * time.Millisecond}, r.Values())
}

func TestFrameRingFPS(t *testing.T) {
	r := NewFrameRing(10)
	for i := 0; i < 10; i++ {
		r.Push(20 * time.Millisecond)
	}
	assert.InDelta(t, 50, r.FPS(), 1e-9)
}
