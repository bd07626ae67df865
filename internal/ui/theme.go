package ui

import "image/color"

// Colors: neutral dark theme so the posters carry the colour
var (
	ColorBackground    = color.RGBA{R: 0x12, G: 0x12, B: 0x16, A: 0xFF}
	ColorPrimary       = color.RGBA{R: 0xF2, G: 0x8C, B: 0x28, A: 0xFF}
	ColorText          = color.RGBA{R: 0xE6, G: 0xE6, B: 0xE6, A: 0xFF}
	ColorTextSecondary = color.RGBA{R: 0x98, G: 0x98, B: 0xA4, A: 0xFF}
	ColorTextMuted     = color.RGBA{R: 0x64, G: 0x64, B: 0x70, A: 0xFF}
	ColorFocusBorder   = color.RGBA{R: 0xF2, G: 0x8C, B: 0x28, A: 0xFF}
	ColorOverlay       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
)

// Layout constants
const (
	GridPadding   = 40
	GridTitleH    = 48
	CellFocusPad  = 6
	CellLabelGap  = 8
	CellLabelH    = FontSizeCaption + CellLabelGap + 6

	FontSizeTitle   = 26
	FontSizeBody    = 16
	FontSizeSmall   = 13
	FontSizeCaption = 11

	ScrollAnimSpeed = 0.18

	// ScrollWheelSpeed is pixels per mouse wheel scroll unit.
	ScrollWheelSpeed = 60

	// ToastFrames is how long a toast stays up (~2 seconds at 60fps).
	ToastFrames = 120
)
