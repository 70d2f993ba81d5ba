package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Ctrl+C
	IntentToggleMute // m
	IntentResize     // Terminal resize event

	// Navigation
	IntentConfirm     // Enter: primary action of the current screen
	IntentHome        // Esc, q
	IntentTogglePause // Space, p
	IntentOpenMap     // l
	IntentRetry       // r
	IntentCursor      // Arrows on the level map

	// Play
	IntentOption // 1-6

	// Mouse
	IntentMouseClick
)

// Intent is a decoded input event
type Intent struct {
	Type IntentType

	// Index is the option slot for IntentOption
	Index int

	// DX, DY move the level map cursor for IntentCursor
	DX, DY int

	// X, Y are screen cells for IntentMouseClick and the new size for IntentResize
	X, Y int
}
