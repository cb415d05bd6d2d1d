package parameter

import "time"

// Frame pacing for both ticks
const (
	FrameUpdateInterval  = time.Second / 60
	SampleUpdateInterval = time.Second / 60
)

// HUD layout in terminal cells
const (
	HUDRow          = 0
	VolumeBarWidth  = 30
	StatusRowOffset = 1 // rows from bottom
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "shoutwalk.log"
)

// BestScoreFile is the default persisted best score path
const BestScoreFile = "shoutwalk_best.toml"
