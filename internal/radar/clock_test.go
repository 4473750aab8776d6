package radar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeTime struct {
	t time.Time
}

func (f *fakeTime) now() time.Time { return f.t }

func TestClockNeverZero(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := newClockWith(ft.now)
	assert.Equal(t, time.Duration(1), c.Now())

	ft.t = ft.t.Add(time.Second)
	assert.Equal(t, time.Second, c.Now())
}

func TestClockPause(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := newClockWith(ft.now)

	ft.t = ft.t.Add(time.Second)
	c.Pause()
	assert.True(t, c.Paused())

	ft.t = ft.t.Add(5 * time.Second)
	assert.Equal(t, time.Second, c.Now())

	c.Resume()
	assert.False(t, c.Paused())
	ft.t = ft.t.Add(time.Second)
	assert.Equal(t, 2*time.Second, c.Now())
}
