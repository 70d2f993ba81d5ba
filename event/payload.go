package event

import "github.com/lixenwraith/balloon-math/audio"

// AnswerPayload contains the option value chosen by the player
type AnswerPayload struct {
	Value int
}

// MissPayload contains the number of unpopped, non-bomb balloons missed in one tick
type MissPayload struct {
	Count int
}

// SoundRequestPayload contains the sound type to play
type SoundRequestPayload struct {
	SoundType audio.SoundType
}
