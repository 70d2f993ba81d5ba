package constants

// Terminal layout, in cells
const (
	// HUDHeight is the number of terminal rows used by the status line
	HUDHeight = 1

	// OptionButtonHeight is the terminal height of the answer button row
	OptionButtonHeight = 3

	// LevelMapColumns is the number of level tiles per row on the level map
	LevelMapColumns = 5
)

// Screen Text
const (
	TitleText   = "BALLOON MATH"
	TaglineText = "Pop the balloons by solving their sums"
)
