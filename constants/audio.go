package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the default speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Pop Sound Timing
const (
	PopSoundDuration = 100 * time.Millisecond
	PopSoundAttack   = 2 * time.Millisecond
	PopSoundRelease  = 90 * time.Millisecond
)

// Correct Sound Timing
const (
	CorrectSoundDuration = 200 * time.Millisecond
	CorrectSoundSweep    = 150 * time.Millisecond
	CorrectSoundAttack   = 5 * time.Millisecond
	CorrectSoundRelease  = 150 * time.Millisecond
)

// Wrong Sound Timing
const (
	WrongSoundDuration = 300 * time.Millisecond
	WrongSoundAttack   = 5 * time.Millisecond
	WrongSoundRelease  = 280 * time.Millisecond
)

// Click Sound Timing
const (
	ClickSoundDuration = 50 * time.Millisecond
	ClickSoundAttack   = 1 * time.Millisecond
	ClickSoundRelease  = 45 * time.Millisecond
)

// Win Sound Timing (four-note arpeggio)
const (
	WinSoundNoteDuration = 100 * time.Millisecond
	WinSoundNoteTail     = 200 * time.Millisecond
	WinSoundAttack       = 5 * time.Millisecond
	WinSoundRelease      = 180 * time.Millisecond
)

// Lose Sound Timing
const (
	LoseSoundDuration = 500 * time.Millisecond
	LoseSoundAttack   = 10 * time.Millisecond
	LoseSoundRelease  = 480 * time.Millisecond
)
