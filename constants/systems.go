package constants

// System Priorities (lower runs first within a tick)
const (
	PriorityEffects   = 10
	PriorityClock     = 20
	PrioritySpawn     = 30
	PriorityMotion    = 40
	PriorityParticles = 50
	PriorityUI        = 100
)
