package constants

import "time"

// Session Constants
const (
	// StartingLives is the life count of a fresh level attempt
	StartingLives = 3

	// BaseScore is the score of one pop before multiplier and bonuses
	BaseScore = 10

	// GoldenBonus is the flat bonus for popping a golden balloon
	GoldenBonus = 50

	// ComboWeight scales the combo bonus (combo * ComboWeight)
	ComboWeight = 2

	// ScoreThreshold clears a level once cumulative score reaches it
	ScoreThreshold = 200

	// LevelStarBonus is awarded for every completed level
	LevelStarBonus = 3
)

// Status Effects
const (
	// FreezeFactor scales balloon motion while freeze is active
	FreezeFactor = 0.4

	// FreezeDuration is the slow-motion window of a freeze balloon
	FreezeDuration = 5 * time.Second

	// StarMultiplier is the score multiplier granted by a star balloon
	StarMultiplier = 2

	// MultiplierDuration is the window of the star multiplier
	MultiplierDuration = 8 * time.Second

	// SettleDelay is the pop animation window before a balloon is removed
	SettleDelay = 300 * time.Millisecond
)

// Spawn Constants
const (
	// BaseSpawnInterval is divided by level speed to get the spawn interval
	BaseSpawnInterval = 800 * time.Millisecond

	// SpeedJitter is the upper bound of the random speed added per balloon
	SpeedJitter = 0.1

	// Category roll thresholds, checked from rarest to most common
	// The golden band is kept strictly narrowest
	CategoryGoldenRoll = 0.97
	CategoryBombRoll   = 0.93
	CategoryFreezeRoll = 0.89
	CategoryStarRoll   = 0.85

	// PaletteSize is the number of balloon color tags
	PaletteSize = 7
)

// Option Set Constants
const (
	// OptionCount is the number of answer buttons
	OptionCount = 6

	// OptionRetryCap bounds decoy draws when padding the option set
	OptionRetryCap = 100

	// DecoySlack widens the decoy range beyond twice the level's upper bound
	DecoySlack = 5
)
