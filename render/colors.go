package render

import "github.com/lixenwraith/balloon-math/components"

// Palette holds the balloon colors, indexed by Balloon.Color
var Palette = [...]RGB{
	ParseHex("#f87171"), // Red
	ParseHex("#60a5fa"), // Blue
	ParseHex("#4ade80"), // Green
	ParseHex("#fbbf24"), // Yellow
	ParseHex("#a78bfa"), // Purple
	ParseHex("#f472b6"), // Pink
	ParseHex("#2dd4bf"), // Teal
}

// UI colors
var (
	RgbBackground = RGB{26, 27, 38} // Tokyo Night background
	RgbText       = RGB{226, 232, 240}
	RgbTextDim    = RGB{148, 163, 184}
	RgbHUDBg      = RGB{15, 23, 42}
	RgbButtonBg   = RGB{51, 65, 85}
	RgbButtonText = RGB{255, 255, 255}
	RgbHighlight  = RGB{250, 204, 21}
	RgbLocked     = RGB{71, 85, 105}
	RgbLife       = RGB{239, 68, 68}
	RgbFreeze     = RGB{125, 211, 252}
	RgbOverlayBg  = RGB{2, 6, 23}

	RgbGolden = RGB{234, 179, 8}
	RgbBomb   = RGB{31, 41, 55}
	RgbBombFg = RGB{248, 113, 113}
	RgbIce    = RGB{186, 230, 253}
	RgbStar   = RGB{192, 132, 252}
)

// BalloonColor returns the body color of a balloon; special categories override the palette
func BalloonColor(cat components.Category, color int) RGB {
	switch cat {
	case components.CategoryGolden:
		return RgbGolden
	case components.CategoryBomb:
		return RgbBomb
	case components.CategoryFreeze:
		return RgbIce
	case components.CategoryStar:
		return RgbStar
	}
	return PaletteColor(color)
}

// PaletteColor wraps out-of-range indices
func PaletteColor(color int) RGB {
	n := len(Palette)
	return Palette[((color%n)+n)%n]
}

// CategoryGlyph marks special balloons; normal balloons have none
func CategoryGlyph(cat components.Category) rune {
	switch cat {
	case components.CategoryGolden:
		return '◆'
	case components.CategoryBomb:
		return '✖'
	case components.CategoryFreeze:
		return '❄'
	case components.CategoryStar:
		return '★'
	}
	return 0
}
