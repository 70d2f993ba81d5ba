package event

// EventType represents the type of game event
// Zero is reserved for the state machine's per-tick evaluation ("Tick")
type EventType int

const (
	EventNone EventType = iota

	// EventStart dismisses the splash screen
	// Trigger: input confirm on SPLASH | Payload: nil
	EventStart

	// EventPlay opens the level map from HOME
	// Trigger: input | Payload: nil
	EventPlay

	// EventSelectLevel starts the pending level from the map
	// Trigger: input | Payload: nil
	EventSelectLevel

	// EventPause suspends the simulation
	// Trigger: input | Payload: nil
	EventPause

	// EventResume continues a paused session
	// Trigger: input | Payload: nil
	EventResume

	// EventQuitHome abandons any session and returns to HOME
	// Trigger: input | Payload: nil
	EventQuitHome

	// EventOpenMap returns to the level map
	// Trigger: input on PAUSED or LEVEL_COMPLETE | Payload: nil
	EventOpenMap

	// EventNextLevel starts the level after the one just completed
	// Trigger: input on LEVEL_COMPLETE | Payload: nil
	EventNextLevel

	// EventRetry restarts the current level
	// Trigger: input on GAME_OVER | Payload: nil
	EventRetry

	// EventAnswerSelected carries a tapped option value
	// Trigger: input while PLAYING
	// Consumer: ScoreSystem | Payload: *AnswerPayload
	EventAnswerSelected

	// EventBalloonMissed signals balloons crossing the bottom bound in one tick
	// Trigger: MotionSystem, at most once per tick
	// Consumer: ScoreSystem | Payload: *MissPayload
	EventBalloonMissed

	// EventLevelCleared signals the score threshold or time limit was reached
	// Trigger: EffectSystem (after settle delay), ClockSystem
	// Consumer: FSM | Payload: nil
	EventLevelCleared

	// EventLivesDepleted signals lives reached zero
	// Trigger: ScoreSystem penalty path
	// Consumer: FSM | Payload: nil
	EventLivesDepleted

	// EventSoundRequest asks the audio sink for a sound
	// Trigger: ScoreSystem, FSM actions, navigation
	// Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest
)

// GameEvent is a typed event with an optional payload
type GameEvent struct {
	Type    EventType
	Payload any
}

func (t EventType) String() string {
	if name := GetEventName(t); name != "" {
		return name
	}
	return "EventUnknown"
}
