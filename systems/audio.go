package systems

import (
	"github.com/lixenwraith/balloon-math/audio"
	"github.com/lixenwraith/balloon-math/engine"
	"github.com/lixenwraith/balloon-math/event"
)

// AudioSystem consumes sound request events and plays audio
// Decouples game logic from the audio backend
type AudioSystem struct {
	player audio.Player
}

// NewAudioSystem creates an audio system with the given player
// player may be nil if audio is disabled
func NewAudioSystem(player audio.Player) *AudioSystem {
	return &AudioSystem{player: player}
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSoundRequest}
}

// HandleEvent plays the requested sound
func (s *AudioSystem) HandleEvent(_ *engine.Game, ev event.GameEvent) {
	if s.player == nil {
		return
	}
	if payload, ok := ev.Payload.(*event.SoundRequestPayload); ok {
		s.player.Play(payload.SoundType)
	}
}
