package feed

import (
	"math"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type collector struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (c *collector) Send(msg tea.Msg) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, msg)
}

func (c *collector) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.msgs)
}

func TestDemoFeedNextInsideRadius(t *testing.T) {
	f := NewDemoFeed(time.Second, 300)
	for i := 0; i < 1000; i++ {
		m := f.Next()
		assert.LessOrEqual(t, math.Hypot(m.X, m.Y), 270.0+1e-9)
	}
}

func TestDemoFeedStartStop(t *testing.T) {
	f := NewDemoFeed(5*time.Millisecond, 300)
	c := &collector{}

	require.NoError(t, f.Start(c))
	require.NoError(t, f.Start(c))
	require.Eventually(t, func() bool { return c.len() >= 3 }, 2*time.Second, 5*time.Millisecond)

	f.Stop()
	n := c.len()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, n, c.len())

	c.mu.Lock()
	_, ok := c.msgs[0].(PlaceTargetMsg)
	c.mu.Unlock()
	assert.True(t, ok)

	// Stopping twice is harmless.
	f.Stop()
}
