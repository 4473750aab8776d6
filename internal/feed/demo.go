package feed

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// PlaceTargetMsg asks the app to place a target at canvas-centred (X, Y).
type PlaceTargetMsg struct {
	X float64
	Y float64
}

// Sender delivers messages to the running program. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// DemoFeed places targets at random positions inside the radar, standing in
// for a user clicking.
type DemoFeed struct {
	interval time.Duration
	radius   float64

	mu     sync.Mutex
	rng    *rand.Rand
	cancel context.CancelFunc
	done   chan struct{}
}

// NewDemoFeed creates a feed that emits one target per interval within
// radius of the centre.
func NewDemoFeed(interval time.Duration, radius float64) *DemoFeed {
	return &DemoFeed{
		interval: interval,
		radius:   radius,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Start begins emitting to s. Calling Start on a running feed is a no-op.
func (f *DemoFeed) Start(s Sender) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cancel != nil {
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	f.cancel = cancel
	f.done = make(chan struct{})

	go f.loop(ctx, s, f.done)
	return nil
}

func (f *DemoFeed) loop(ctx context.Context, s Sender, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Send(f.Next())
		}
	}
}

// Next returns a uniformly distributed position inside 90% of the radius.
func (f *DemoFeed) Next() PlaceTargetMsg {
	f.mu.Lock()
	u, a := f.rng.Float64(), f.rng.Float64()*2*math.Pi
	f.mu.Unlock()

	r := 0.9 * f.radius * math.Sqrt(u)
	return PlaceTargetMsg{
		X: r * math.Cos(a),
		Y: r * math.Sin(a),
	}
}

// Stop halts the feed and waits for the loop to exit.
func (f *DemoFeed) Stop() {
	f.mu.Lock()
	cancel, done := f.cancel, f.done
	f.cancel, f.done = nil, nil
	f.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
