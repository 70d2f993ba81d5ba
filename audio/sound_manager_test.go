package audio

import (
	"errors"
	"testing"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	for st := SoundPop; st < soundTypeCount; st++ {
		sm.Play(st)
	}
	if err := sm.TryPlay(SoundPop); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
	sm.Cleanup()
}

// TestSoundManagerMuted verifies muted requests are swallowed without error
func TestSoundManagerMuted(t *testing.T) {
	sm := NewSoundManager(nil)
	sm.SetMuted(true)
	if !sm.Muted() {
		t.Fatal("Expected muted")
	}
	if err := sm.TryPlay(SoundWin); err != nil {
		t.Errorf("Expected muted play to be a silent no-op, got %v", err)
	}
	sm.SetMuted(false)
	if sm.Muted() {
		t.Error("Expected unmuted")
	}
}

// TestSoundManagerDisabled verifies a disabled config never opens the speaker
func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); !errors.Is(err, ErrDisabled) {
		t.Errorf("Expected ErrDisabled, got %v", err)
	}
	if sm.Initialized() {
		t.Error("Disabled manager must not report initialized")
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil)

	// Speaker initialization may fail in CI/test environments without audio devices
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	// Second initialization is a no-op
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	if err := sm.TryPlay(SoundClick); err != nil {
		t.Errorf("Expected click to queue, got %v", err)
	}
	sm.Cleanup()

	if sm.Initialized() {
		t.Error("Expected cleanup to reset state")
	}
}

// TestSoundManagerCleanupWithoutInit verifies cleanup without initialization is safe
func TestSoundManagerCleanupWithoutInit(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Cleanup panicked without initialization: %v", r)
		}
	}()

	sm.Cleanup()
	sm.Cleanup()
}

var _ Player = (*SoundManager)(nil)
