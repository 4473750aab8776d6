package audio

import "sync/atomic"

// Player is anything that can play the blip sound.
type Player interface {
	PlayBlip()
}

// Mute discards every blip.
type Mute struct{}

func (Mute) PlayBlip() {}

// Switch forwards blips to a player unless muted.
type Switch struct {
	player Player
	muted  atomic.Bool
}

// NewSwitch wraps player. A nil player behaves like Mute.
func NewSwitch(player Player, muted bool) *Switch {
	if player == nil {
		player = Mute{}
	}
	s := &Switch{player: player}
	s.muted.Store(muted)
	return s
}

// PlayBlip forwards to the wrapped player when not muted.
func (s *Switch) PlayBlip() {
	if s.muted.Load() {
		return
	}
	s.player.PlayBlip()
}

// Toggle flips the mute state and returns the new state.
func (s *Switch) Toggle() bool {
	for {
		old := s.muted.Load()
		if s.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Muted reports whether blips are discarded.
func (s *Switch) Muted() bool {
	return s.muted.Load()
}
