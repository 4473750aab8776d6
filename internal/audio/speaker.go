package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	blipFreq     = 1320.0 // Hz
	blipDuration = 120 * time.Millisecond
	blipDecay    = 30.0 // Envelope decay rate per second
	blipVolume   = 0.25
)

// Speaker plays blips through the system audio device.
type Speaker struct {
	mu          sync.Mutex
	initialized bool
}

// NewSpeaker creates an uninitialised speaker. PlayBlip is a no-op until
// Initialize succeeds.
func NewSpeaker() *Speaker {
	return &Speaker{}
}

// Initialize opens the audio device.
func (s *Speaker) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return fmt.Errorf("init audio device: %w", err)
	}
	s.initialized = true
	return nil
}

// PlayBlip queues a short blip and returns immediately.
func (s *Speaker) PlayBlip() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(blipDuration), NewBlipGenerator(sampleRate, blipFreq)))
}

// Close stops all sounds and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.initialized = false
}

// BlipGenerator generates a sine ping with an exponential decay.
type BlipGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBlipGenerator creates a blip generator.
func NewBlipGenerator(sr beep.SampleRate, freq float64) *BlipGenerator {
	return &BlipGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BlipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := blipVolume * math.Exp(-t*blipDecay) * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlipGenerator) Err() error {
	return nil
}
