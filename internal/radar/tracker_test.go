package radar

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingPlayer struct {
	n int
}

func (p *countingPlayer) PlayBlip() { p.n++ }

func fixedOpts() TrackerOptions {
	return TrackerOptions{MaxBlips: 2, FadeOut: 600 * time.Millisecond}
}

func interactiveOpts() TrackerOptions {
	return TrackerOptions{Interactive: true, MaxBlips: 2, FadeOut: 600 * time.Millisecond}
}

var emptyWindow = Interval{Start: 0, End: 0}

func TestTrackerHitInsideWindow(t *testing.T) {
	snd := &countingPlayer{}
	tr := NewTracker(fixedOpts(), snd)
	tr.Add(0, -100) // bearing -90, shifted 90

	sweep := NewSweep(269.5, 1.2) // window [89.5, 90.7]
	hits := tr.Update(time.Second, sweep.Window(), sweep.WindowAhead(35))

	require.Equal(t, 1, hits)
	got := tr.Targets()[0]
	assert.Equal(t, time.Second, got.LastBlip)
	assert.Equal(t, 1, got.Blips)
	assert.Equal(t, 1, snd.n)
	assert.Equal(t, 1, tr.Hits())
}

func TestTrackerMissOutsideWindow(t *testing.T) {
	tests := []struct {
		name   string
		window Interval
	}{
		{"entirely below", Interval{Start: 88, End: 89.2}},
		{"entirely above", Interval{Start: 91.2, End: 92.4}},
		{"wrapped at seam", Interval{Start: 359.5, End: 0.7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snd := &countingPlayer{}
			tr := NewTracker(fixedOpts(), snd)
			tr.Add(0, -100)

			assert.Zero(t, tr.Update(time.Second, tt.window, emptyWindow))
			assert.False(t, tr.Targets()[0].Hit())
			assert.Zero(t, snd.n)
		})
	}
}

func TestTrackerWindowStartIsExclusive(t *testing.T) {
	tr := NewTracker(fixedOpts(), nil)
	tr.Add(100, 0) // shifted bearing exactly 180

	assert.Zero(t, tr.Update(time.Second, NewSweep(0, 1.2).Window(), emptyWindow))
	assert.Equal(t, 1, tr.Update(time.Second, NewSweep(359.5, 1.2).Window(), emptyWindow))
}

func TestTrackerPreTriggerPlaysWithoutHit(t *testing.T) {
	snd := &countingPlayer{}
	tr := NewTracker(interactiveOpts(), snd)
	tr.Add(0, -100)

	// Sweep 35 degrees short of the target: only the ahead window covers it.
	sweep := NewSweep(234.5, 1.2)
	hits := tr.Update(time.Second, sweep.Window(), sweep.WindowAhead(35))

	assert.Zero(t, hits)
	assert.Equal(t, 1, snd.n)
	got := tr.Targets()[0]
	assert.False(t, got.Hit())
	assert.Zero(t, got.Blips)
	assert.Equal(t, 1, tr.Triggers())
	assert.Zero(t, tr.Hits())
}

func TestTrackerFixedVariantIgnoresAheadWindow(t *testing.T) {
	snd := &countingPlayer{}
	tr := NewTracker(fixedOpts(), snd)
	tr.Add(0, -100)

	sweep := NewSweep(234.5, 1.2)
	tr.Update(time.Second, sweep.Window(), sweep.WindowAhead(35))
	assert.Zero(t, snd.n)
}

func TestTrackerOneRevolution(t *testing.T) {
	for _, interactive := range []bool{false, true} {
		name := "fixed"
		if interactive {
			name = "interactive"
		}
		t.Run(name, func(t *testing.T) {
			snd := &countingPlayer{}
			opts := fixedOpts()
			opts.Interactive = interactive
			opts.MaxBlips = 10
			tr := NewTracker(opts, snd)
			tr.Add(-145, -164)
			tr.Add(156, 100)
			tr.Add(230, -184)

			sweep := NewSweep(270, 1.2)
			now := time.Duration(0)
			for i := 0; i < 300; i++ {
				now += 16 * time.Millisecond
				tr.Update(now, sweep.Window(), sweep.WindowAhead(35))
				sweep.Advance()
			}

			for _, tg := range tr.Targets() {
				assert.Equal(t, 1, tg.Blips, "target %s", tg.Callsign())
			}
			assert.Equal(t, 3, tr.Hits())
			if interactive {
				// Pre-warning plus genuine hit for every target.
				assert.Equal(t, 6, snd.n)
			} else {
				assert.Equal(t, 3, snd.n)
			}
		})
	}
}

func TestTrackerLastBlipMonotonic(t *testing.T) {
	tr := NewTracker(fixedOpts(), nil)
	tr.Add(0, -100)
	hit := Interval{Start: 89, End: 91}

	tr.Update(2*time.Second, hit, emptyWindow)
	tr.Update(time.Second, hit, emptyWindow)

	got := tr.Targets()[0]
	assert.Equal(t, 2*time.Second, got.LastBlip)
	assert.Equal(t, 2, got.Blips)
}

func TestTrackerExpiry(t *testing.T) {
	snd := &countingPlayer{}
	tr := NewTracker(interactiveOpts(), snd)
	tr.Add(0, -100)
	hit := Interval{Start: 89, End: 91}

	// Three hits, one second apart.
	for _, at := range []time.Duration{time.Second, 2 * time.Second, 3 * time.Second} {
		require.Equal(t, 1, tr.Update(at, hit, emptyWindow))
	}
	require.Equal(t, 3, tr.Targets()[0].Blips)

	tr.Update(3600*time.Millisecond, emptyWindow, emptyWindow)
	assert.Equal(t, 1, tr.Len(), "removed before fade-out completed")

	tr.Update(3601*time.Millisecond, emptyWindow, emptyWindow)
	assert.Zero(t, tr.Len())
	assert.Equal(t, 1, tr.Expired())
}

func TestTrackerExpiryNeedsMoreThanMaxBlips(t *testing.T) {
	tr := NewTracker(interactiveOpts(), nil)
	tr.Add(0, -100)
	hit := Interval{Start: 89, End: 91}

	tr.Update(time.Second, hit, emptyWindow)
	tr.Update(2*time.Second, hit, emptyWindow)
	tr.Update(time.Minute, emptyWindow, emptyWindow)

	assert.Equal(t, 1, tr.Len())
}

func TestTrackerExpiryPreservesOrder(t *testing.T) {
	tr := NewTracker(interactiveOpts(), nil)
	first := tr.Add(100, 0)
	spent := tr.Add(0, -100)
	last := tr.Add(-100, 0)

	tr.targets[1].Blips = 3
	tr.targets[1].LastBlip = time.Second

	tr.Update(2*time.Second, emptyWindow, emptyWindow)

	got := tr.Targets()
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, last.ID, got[1].ID)
	for _, tg := range got {
		assert.NotEqual(t, spent.ID, tg.ID)
	}
}

func TestTrackerFixedVariantNeverExpires(t *testing.T) {
	tr := NewTracker(fixedOpts(), nil)
	tr.Add(0, -100)
	tr.targets[0].Blips = 10
	tr.targets[0].LastBlip = time.Second

	tr.Update(time.Hour, emptyWindow, emptyWindow)
	assert.Equal(t, 1, tr.Len())
}

func TestTrackerSeamTargetIsMissed(t *testing.T) {
	// Shifted bearing 0.2 only falls inside the tick whose window wraps
	// [359.5, 0.7], which contains nothing.
	rad := DegToRad(-179.8)
	tr := NewTracker(fixedOpts(), nil)
	tr.Add(100*math.Cos(rad), 100*math.Sin(rad))

	sweep := NewSweep(178.3, 1.2)
	for i := 0; i < 3; i++ {
		tr.Update(time.Duration(i+1)*time.Millisecond, sweep.Window(), emptyWindow)
		sweep.Advance()
	}
	assert.Zero(t, tr.Hits())
}

func TestTrackerClear(t *testing.T) {
	tr := NewTracker(interactiveOpts(), nil)
	tr.Add(1, 1)
	tr.Add(2, 2)
	tr.Clear()
	assert.Zero(t, tr.Len())
	assert.Empty(t, tr.Targets())
}
