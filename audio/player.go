package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-snake/constants"
)

// Player plays the game's sound effects
// Calls never block the game loop
type Player interface {
	PlayEat()
	PlayCrash()
	PlayStart()
	Close()
}

// Silent is the Player used when audio is muted or unavailable
type Silent struct{}

func (Silent) PlayEat() {}
func (Silent) PlayCrash() {}
func (Silent) PlayStart() {}
func (Silent) Close() {}

// SoundManager plays effects through the beep speaker
// All effects share one mixer that plays for the speaker's lifetime
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager, Initialize opens the audio device
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play adds an effect to the mixer, a no-op before Initialize
func (sm *SoundManager) Play(s SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := GetSoundEffect(s, sm.cfg)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

func (sm *SoundManager) PlayEat() { sm.Play(SoundEat) }
func (sm *SoundManager) PlayCrash() { sm.Play(SoundCrash) }
func (sm *SoundManager) PlayStart() { sm.Play(SoundStart) }

// Close lets a playing crash finish, then stops the speaker
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	deadline := time.Now().Add(constants.CrashSoundDuration)
	for time.Now().Before(deadline) {
		speaker.Lock()
		n := sm.mixer.Len()
		speaker.Unlock()
		if n == 0 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// Open returns a speaker-backed player, or Silent with the error when the device cannot be opened
func Open(cfg *AudioConfig) (Player, error) {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if !cfg.Enabled {
		return Silent{}, nil
	}

	sm := NewSoundManager(cfg)
	if err := sm.Initialize(); err != nil {
		return Silent{}, err
	}
	return sm, nil
}
