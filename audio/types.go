package audio

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// SoundType represents the notification sounds of the game
type SoundType int

const (
	SoundPop     SoundType = iota // Balloon popped
	SoundCorrect                  // Answer matched a balloon
	SoundWrong                    // Penalty: wrong answer, bomb or miss
	SoundClick                    // Navigation
	SoundWin                      // Level complete or final trophy
	SoundLose                     // Game over
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"pop", "correct", "wrong", "click", "win", "lose"}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return fmt.Sprintf("SoundType(%d)", int(s))
	}
	return soundNames[s]
}

// ParseSoundType resolves a sound by its lowercase name
func ParseSoundType(name string) (SoundType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown sound %q", name)
}

// Player is the fire-and-forget notification sink
type Player interface {
	Play(sound SoundType)
}

// AudioConfig holds output and volume settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 - 1.0
	EffectVolumes map[SoundType]float64
	SampleRate    int
	BufferSize    time.Duration
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio output not initialized")
	ErrDisabled       = errors.New("audio disabled by configuration")
)
