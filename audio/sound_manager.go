package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SoundManager mixes one-shot effects onto the speaker
// Play never blocks on audio output; it is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a sound manager; a nil config uses the defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		config: cfg,
		mixer:  &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.config.Enabled {
		return ErrDisabled
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(rate, rate.N(sm.config.BufferSize)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and releases the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	sm.initialized = false
}

// Play queues a sound on the mixer
func (sm *SoundManager) Play(sound SoundType) {
	if err := sm.TryPlay(sound); err != nil && err != ErrNotInitialized {
		log.Printf("audio: %v", err)
	}
}

// TryPlay queues a sound and reports why it was not played
// A muted manager swallows the request without error
func (sm *SoundManager) TryPlay(sound SoundType) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.muted {
		return nil
	}
	if !sm.initialized {
		return ErrNotInitialized
	}

	streamer := GetSoundEffect(sound, sm.config)
	if streamer == nil {
		return fmt.Errorf("no recipe for %v", sound)
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return nil
}

// SetMuted suppresses or re-enables playback
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// Muted reports whether playback is suppressed
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}
