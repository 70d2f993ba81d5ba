package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/balloon-math/constants"
)

// Environment variables read by LoadAudioConfig
const (
	EnvAudioEnabled = "BALLOON_MATH_AUDIO_ENABLED"
	EnvMasterVolume = "BALLOON_MATH_MASTER_VOLUME"
	EnvSFXVolumes   = "BALLOON_MATH_SFX_VOLUMES"
	EnvSampleRate   = "BALLOON_MATH_SAMPLE_RATE"
)

// DefaultAudioConfig returns the built-in mix
// Effect volumes at master 0.5 reproduce the relative loudness of each recipe
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[SoundType]float64{
			SoundPop:     0.6,
			SoundCorrect: 0.3,
			SoundWrong:   0.2,
			SoundClick:   0.1,
			SoundWin:     0.2,
			SoundLose:    0.4,
		},
		SampleRate: constants.AudioSampleRate,
		BufferSize: constants.AudioBufferDuration,
	}
}

// LoadAudioConfig loads audio configuration from environment variables
// Malformed values are ignored and the default kept
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume 0-100 converted to 0.0-1.0
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	// Effect volumes from JSON keyed by sound name
	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for name, v := range volumes {
				st, err := ParseSoundType(name)
				if err != nil {
					continue
				}
				cfg.EffectVolumes[st] = max(v, 0)
			}
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

// volume returns the effective gain for a sound
func (c *AudioConfig) volume(st SoundType) float64 {
	v, ok := c.EffectVolumes[st]
	if !ok {
		v = 1
	}
	return v * c.MasterVolume
}
