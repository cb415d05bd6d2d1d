package parameter

// PlatformVariantParams holds one platform size class
type PlatformVariantParams struct {
	Name     string
	WidthMin float64
	WidthMax float64
	GapMin   float64
	GapMax   float64
	Weight   float64
}

// PlatformVariantTable lists size classes; weights sum to 1
var PlatformVariantTable = []PlatformVariantParams{
	{Name: "very-thin", WidthMin: 60, WidthMax: 100, GapMin: 60, GapMax: 110, Weight: 0.15},
	{Name: "thin", WidthMin: 100, WidthMax: 180, GapMin: 70, GapMax: 140, Weight: 0.30},
	{Name: "medium", WidthMin: 180, WidthMax: 300, GapMin: 80, GapMax: 170, Weight: 0.35},
	{Name: "big", WidthMin: 300, WidthMax: 460, GapMin: 90, GapMax: 200, Weight: 0.20},
}

// Platform layout
const (
	PlatformHeight   = 24.0
	PlatformMinY     = 220.0
	PlatformMaxY     = 420.0
	PlatformMaxStep  = 80.0 // max vertical change between neighbours
	LookAheadScreens = 3.0
	GracePlatforms   = 1 // first generated platforms without obstacles
)

// Ground obstacles
const (
	ObstacleWidth      = 24.0
	ObstacleHeight     = 24.0
	ObstacleMargin     = 12.0
	ObstacleBaseChance = 0.35
	ObstacleForceCap   = 0.85 // never 100%, keeps some bare platforms late in the round
	ObstacleTwoWidth   = 140.0
	ObstacleThreeWidth = 260.0
)

// Aerial obstacles, unlocked by score
const (
	AerialScoreThreshold = 8
	AerialChance         = 0.35
	AerialMinWidth       = 200.0
	AerialWidth          = 28.0
	AerialHeight         = 20.0
	AerialMinClearance   = 70.0 // platform top to aerial bottom
	AerialMaxClearance   = 160.0
)

// Free-floating gap obstacles
const (
	AirGapMin = 130.0
	AirChance = 0.30
	AirWidth  = 26.0
	AirHeight = 26.0
	AirJitter = 0.15 // fraction of gap width
	AirMinY   = 100.0
	AirMaxY   = 360.0
)
