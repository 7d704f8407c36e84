// Package audio plays short synthesized cues for simulation events
package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/labsim/event"
	"github.com/lixenwraith/labsim/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager turns collision and bounce events into clicks
// At most one click and one bounce are played per frame; all methods are safe before
// Initialize and after Cleanup, in which case they do nothing
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	logger      *zap.Logger

	// play hands a finished streamer to the output; replaced in tests
	play func(s beep.Streamer)

	clickFrame  uint64
	clicked     bool
	bounceFrame uint64
	bounced     bool
}

// NewSoundManager creates a sound manager with the given master volume
func NewSoundManager(volume float64, logger *zap.Logger) *SoundManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	sm := &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
	}
	sm.play = sm.addToMixer
	return sm
}

// Initialize opens the speaker; returns an error when no device is available
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Info("audio initialized", zap.Int("sample_rate", int(sampleRate)), zap.Float64("volume", sm.volume))
	return nil
}

// Cleanup silences pending sounds
// beep offers no speaker close, clearing the mixer is enough to stop output
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetVolume changes the master volume for subsequent sounds
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	sm.volume = v
	sm.mu.Unlock()
}

// HandleEvent is an event.Handler for engine.OnEvent
func (sm *SoundManager) HandleEvent(ev event.SimEvent) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	switch ev.Type {
	case event.EventCollision, event.EventPinCollision:
		if sm.clicked && sm.clickFrame == ev.Frame {
			return
		}
		sm.clicked, sm.clickFrame = true, ev.Frame
		var impulse float64
		if p, ok := ev.Payload.(event.CollisionPayload); ok {
			impulse = p.Impulse
		}
		sm.play(CreateClickSound(impulse, sm.volume, sampleRate))

	case event.EventBoundaryBounce:
		if sm.bounced && sm.bounceFrame == ev.Frame {
			return
		}
		sm.bounced, sm.bounceFrame = true, ev.Frame
		sm.play(CreateBounceSound(sm.volume, sampleRate))

	case event.EventWorldReset:
		sm.clicked, sm.bounced = false, false
	}
}

func (sm *SoundManager) addToMixer(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
