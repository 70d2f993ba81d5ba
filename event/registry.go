package event

import (
	"strings"
	"sync"
)

var (
	nameToType   = make(map[string]EventType)
	typeToName   = make(map[EventType]string)
	registryOnce sync.Once
)

// RegisterType maps a string name, as used by state graph files, to an EventType
func RegisterType(name string, et EventType) {
	nameToType[name] = et
	typeToName[et] = name
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	InitRegistry()
	// Special case for FSM "Tick"
	if strings.EqualFold(name, "Tick") {
		return EventNone, true
	}
	et, ok := nameToType[name]
	return et, ok
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	InitRegistry()
	if et == EventNone {
		return "Tick"
	}
	return typeToName[et]
}

// InitRegistry populates the registry with all game events, idempotent
func InitRegistry() {
	registryOnce.Do(func() {
		RegisterType("EventStart", EventStart)
		RegisterType("EventPlay", EventPlay)
		RegisterType("EventSelectLevel", EventSelectLevel)
		RegisterType("EventPause", EventPause)
		RegisterType("EventResume", EventResume)
		RegisterType("EventQuitHome", EventQuitHome)
		RegisterType("EventOpenMap", EventOpenMap)
		RegisterType("EventNextLevel", EventNextLevel)
		RegisterType("EventRetry", EventRetry)
		RegisterType("EventAnswerSelected", EventAnswerSelected)
		RegisterType("EventBalloonMissed", EventBalloonMissed)
		RegisterType("EventLevelCleared", EventLevelCleared)
		RegisterType("EventLivesDepleted", EventLivesDepleted)
		RegisterType("EventSoundRequest", EventSoundRequest)
	})
}
