package parameter

// World units are abstract pixels; the renderer scales them to terminal cells

// View
const (
	ViewWidth  = 960.0
	ViewHeight = 540.0
)

// Flight model
const (
	// Gravity is downward acceleration in units/s²
	Gravity = 1400.0

	// LiftPerPoint is upward acceleration per loudness point above threshold
	LiftPerPoint = 60.0

	// LoudnessThreshold gates scrolling (inclusive) and lift (exclusive)
	LoudnessThreshold = 50.0

	// WalkSpeed is world scroll speed in units/s while loud
	WalkSpeed = 180.0
)

// Vertical bounds
const (
	// CeilingY is the minimum character Y
	CeilingY = 20.0

	// OceanY is the water baseline
	OceanY = 480.0

	// SplashTolerance is how far below OceanY the character bottom may dip before splashing
	SplashTolerance = 8.0
)
