package render

import "github.com/gdamore/tcell/v2"

// Scene palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbCeiling    = tcell.NewRGBColor(60, 60, 80)    // Dim slate
	RgbOcean      = tcell.NewRGBColor(40, 90, 200)   // Deep blue
	RgbOceanFoam  = tcell.NewRGBColor(140, 190, 255) // Bright blue crest
	RgbPlatform   = tcell.NewRGBColor(160, 120, 70)  // Wood brown
	RgbSpike      = tcell.NewRGBColor(255, 80, 80)   // Red
	RgbAerial     = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbAir        = tcell.NewRGBColor(255, 255, 0)   // Yellow
	RgbCharacter  = tcell.NewRGBColor(50, 255, 50)   // Bright green
	RgbSubmerged  = tcell.NewRGBColor(0, 139, 139)   // Dark cyan
)

// HUD palette
var (
	RgbStatusBar   = tcell.NewRGBColor(255, 255, 255) // White
	RgbVolumeOn    = tcell.NewRGBColor(0, 200, 0)     // Above threshold
	RgbVolumeOff   = tcell.NewRGBColor(180, 180, 180) // Below threshold
	RgbVolumeEmpty = tcell.NewRGBColor(50, 50, 50)
	RgbThreshold   = tcell.NewRGBColor(255, 165, 0)
	RgbNotice      = tcell.NewRGBColor(255, 255, 0)
	RgbMuted       = tcell.NewRGBColor(255, 80, 80)
)
