// Package config assembles runtime tunables from parameter defaults and an optional file
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/shoutwalk/parameter"
)

// ErrInvalid marks a configuration that would break generator or physics invariants
var ErrInvalid = errors.New("invalid configuration")

// Config is the full set of tunables for one game session
type Config struct {
	Round     RoundConfig     `toml:"round" yaml:"round"`
	Physics   PhysicsConfig   `toml:"physics" yaml:"physics"`
	Character CharacterConfig `toml:"character" yaml:"character"`
	Level     LevelConfig     `toml:"level" yaml:"level"`
	Audio     AudioConfig     `toml:"audio" yaml:"audio"`
}

type RoundConfig struct {
	Duration      Duration `toml:"duration" yaml:"duration"`
	MinObstacles  int      `toml:"min_obstacles" yaml:"min_obstacles"`
	BonusCap      int      `toml:"bonus_cap" yaml:"bonus_cap"`
	MaxFrameDelta Duration `toml:"max_frame_delta" yaml:"max_frame_delta"`
}

type PhysicsConfig struct {
	Gravity         float64 `toml:"gravity" yaml:"gravity"`
	LiftPerPoint    float64 `toml:"lift_per_point" yaml:"lift_per_point"`
	Threshold       float64 `toml:"threshold" yaml:"threshold"`
	WalkSpeed       float64 `toml:"walk_speed" yaml:"walk_speed"`
	CeilingY        float64 `toml:"ceiling_y" yaml:"ceiling_y"`
	OceanY          float64 `toml:"ocean_y" yaml:"ocean_y"`
	SplashTolerance float64 `toml:"splash_tolerance" yaml:"splash_tolerance"`
	ViewWidth       float64 `toml:"view_width" yaml:"view_width"`
	ViewHeight      float64 `toml:"view_height" yaml:"view_height"`
}

type CharacterConfig struct {
	X      float64 `toml:"x" yaml:"x"`
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`
}

// Variant is one weighted platform size class
type Variant struct {
	Name     string  `toml:"name" yaml:"name"`
	WidthMin float64 `toml:"width_min" yaml:"width_min"`
	WidthMax float64 `toml:"width_max" yaml:"width_max"`
	GapMin   float64 `toml:"gap_min" yaml:"gap_min"`
	GapMax   float64 `toml:"gap_max" yaml:"gap_max"`
	Weight   float64 `toml:"weight" yaml:"weight"`
}

type LevelConfig struct {
	Variants []Variant `toml:"variants" yaml:"variants"`

	PlatformHeight   float64 `toml:"platform_height" yaml:"platform_height"`
	PlatformMinY     float64 `toml:"platform_min_y" yaml:"platform_min_y"`
	PlatformMaxY     float64 `toml:"platform_max_y" yaml:"platform_max_y"`
	PlatformMaxStep  float64 `toml:"platform_max_step" yaml:"platform_max_step"`
	LookAheadScreens float64 `toml:"look_ahead_screens" yaml:"look_ahead_screens"`
	GracePlatforms   int     `toml:"grace_platforms" yaml:"grace_platforms"`

	StartLead  float64 `toml:"start_lead" yaml:"start_lead"`
	StartWidth float64 `toml:"start_width" yaml:"start_width"`
	StartY     float64 `toml:"start_y" yaml:"start_y"`

	ObstacleWidth      float64 `toml:"obstacle_width" yaml:"obstacle_width"`
	ObstacleHeight     float64 `toml:"obstacle_height" yaml:"obstacle_height"`
	ObstacleMargin     float64 `toml:"obstacle_margin" yaml:"obstacle_margin"`
	ObstacleBaseChance float64 `toml:"obstacle_base_chance" yaml:"obstacle_base_chance"`
	ObstacleForceCap   float64 `toml:"obstacle_force_cap" yaml:"obstacle_force_cap"`
	ObstacleTwoWidth   float64 `toml:"obstacle_two_width" yaml:"obstacle_two_width"`
	ObstacleThreeWidth float64 `toml:"obstacle_three_width" yaml:"obstacle_three_width"`

	AerialScoreThreshold int     `toml:"aerial_score_threshold" yaml:"aerial_score_threshold"`
	AerialChance         float64 `toml:"aerial_chance" yaml:"aerial_chance"`
	AerialMinWidth       float64 `toml:"aerial_min_width" yaml:"aerial_min_width"`
	AerialWidth          float64 `toml:"aerial_width" yaml:"aerial_width"`
	AerialHeight         float64 `toml:"aerial_height" yaml:"aerial_height"`
	AerialMinClearance   float64 `toml:"aerial_min_clearance" yaml:"aerial_min_clearance"`
	AerialMaxClearance   float64 `toml:"aerial_max_clearance" yaml:"aerial_max_clearance"`

	AirGapMin float64 `toml:"air_gap_min" yaml:"air_gap_min"`
	AirChance float64 `toml:"air_chance" yaml:"air_chance"`
	AirWidth  float64 `toml:"air_width" yaml:"air_width"`
	AirHeight float64 `toml:"air_height" yaml:"air_height"`
	AirJitter float64 `toml:"air_jitter" yaml:"air_jitter"`
	AirMinY   float64 `toml:"air_min_y" yaml:"air_min_y"`
	AirMaxY   float64 `toml:"air_max_y" yaml:"air_max_y"`
}

type AudioConfig struct {
	BufferSize int     `toml:"buffer_size" yaml:"buffer_size"`
	SampleRate int     `toml:"sample_rate" yaml:"sample_rate"`
	DBOffset   float64 `toml:"db_offset" yaml:"db_offset"`
	Epsilon    float64 `toml:"epsilon" yaml:"epsilon"`
	Effects    bool    `toml:"effects" yaml:"effects"`
}

// Default returns the built-in tuning
func Default() *Config {
	variants := make([]Variant, len(parameter.PlatformVariantTable))
	for i, v := range parameter.PlatformVariantTable {
		variants[i] = Variant{
			Name:     v.Name,
			WidthMin: v.WidthMin,
			WidthMax: v.WidthMax,
			GapMin:   v.GapMin,
			GapMax:   v.GapMax,
			Weight:   v.Weight,
		}
	}

	return &Config{
		Round: RoundConfig{
			Duration:      Duration(parameter.RoundDuration),
			MinObstacles:  parameter.MinObstacles,
			BonusCap:      parameter.ScoreBonusCap,
			MaxFrameDelta: Duration(parameter.MaxFrameDelta),
		},
		Physics: PhysicsConfig{
			Gravity:         parameter.Gravity,
			LiftPerPoint:    parameter.LiftPerPoint,
			Threshold:       parameter.LoudnessThreshold,
			WalkSpeed:       parameter.WalkSpeed,
			CeilingY:        parameter.CeilingY,
			OceanY:          parameter.OceanY,
			SplashTolerance: parameter.SplashTolerance,
			ViewWidth:       parameter.ViewWidth,
			ViewHeight:      parameter.ViewHeight,
		},
		Character: CharacterConfig{
			X:      parameter.CharacterX,
			Width:  parameter.CharacterWidth,
			Height: parameter.CharacterHeight,
		},
		Level: LevelConfig{
			Variants:             variants,
			PlatformHeight:       parameter.PlatformHeight,
			PlatformMinY:         parameter.PlatformMinY,
			PlatformMaxY:         parameter.PlatformMaxY,
			PlatformMaxStep:      parameter.PlatformMaxStep,
			LookAheadScreens:     parameter.LookAheadScreens,
			GracePlatforms:       parameter.GracePlatforms,
			StartLead:            parameter.StartPlatformLead,
			StartWidth:           parameter.StartPlatformWidth,
			StartY:               parameter.StartPlatformY,
			ObstacleWidth:        parameter.ObstacleWidth,
			ObstacleHeight:       parameter.ObstacleHeight,
			ObstacleMargin:       parameter.ObstacleMargin,
			ObstacleBaseChance:   parameter.ObstacleBaseChance,
			ObstacleForceCap:     parameter.ObstacleForceCap,
			ObstacleTwoWidth:     parameter.ObstacleTwoWidth,
			ObstacleThreeWidth:   parameter.ObstacleThreeWidth,
			AerialScoreThreshold: parameter.AerialScoreThreshold,
			AerialChance:         parameter.AerialChance,
			AerialMinWidth:       parameter.AerialMinWidth,
			AerialWidth:          parameter.AerialWidth,
			AerialHeight:         parameter.AerialHeight,
			AerialMinClearance:   parameter.AerialMinClearance,
			AerialMaxClearance:   parameter.AerialMaxClearance,
			AirGapMin:            parameter.AirGapMin,
			AirChance:            parameter.AirChance,
			AirWidth:             parameter.AirWidth,
			AirHeight:            parameter.AirHeight,
			AirJitter:            parameter.AirJitter,
			AirMinY:              parameter.AirMinY,
			AirMaxY:              parameter.AirMaxY,
		},
		Audio: AudioConfig{
			BufferSize: parameter.SampleBufferSize,
			SampleRate: parameter.SampleRate,
			DBOffset:   parameter.LoudnessDBOffset,
			Epsilon:    parameter.LoudnessEpsilon,
			Effects:    true,
		},
	}
}

// Load overlays the file at path onto defaults. Empty path returns defaults.
// Format is chosen by extension: .toml, .yaml or .yml
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse toml config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse yaml config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("config %s: unsupported extension", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects degenerate ranges so the generator never needs runtime recovery
func (c *Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Round.Duration <= 0 {
		fail("round duration must be positive")
	}
	if c.Round.MinObstacles < 0 {
		fail("min obstacles must not be negative")
	}
	if c.Round.MaxFrameDelta <= 0 {
		fail("max frame delta must be positive")
	}
	if c.Physics.WalkSpeed <= 0 {
		fail("walk speed must be positive")
	}
	if c.Physics.Gravity <= 0 {
		fail("gravity must be positive")
	}
	if c.Physics.CeilingY >= c.Physics.OceanY {
		fail("ceiling %.1f must be above ocean %.1f", c.Physics.CeilingY, c.Physics.OceanY)
	}
	if c.Character.Width <= 0 || c.Character.Height <= 0 {
		fail("character dimensions must be positive")
	}

	l := &c.Level
	if len(l.Variants) == 0 {
		fail("at least one platform variant required")
	}
	minWidth := 2*l.ObstacleMargin + l.ObstacleWidth
	weightSum := 0.0
	for _, v := range l.Variants {
		if v.WidthMin <= 0 || v.WidthMax <= v.WidthMin {
			fail("variant %q: width range [%.1f, %.1f] is degenerate", v.Name, v.WidthMin, v.WidthMax)
		}
		if v.WidthMin < minWidth {
			fail("variant %q: min width %.1f cannot hold an obstacle (needs %.1f)", v.Name, v.WidthMin, minWidth)
		}
		if v.GapMin < 0 || v.GapMax <= v.GapMin {
			fail("variant %q: gap range [%.1f, %.1f] is degenerate", v.Name, v.GapMin, v.GapMax)
		}
		if v.Weight <= 0 {
			fail("variant %q: weight must be positive", v.Name)
		}
		weightSum += v.Weight
	}
	if len(l.Variants) > 0 && math.Abs(weightSum-1) > 1e-6 {
		fail("variant weights sum to %.4f, expected 1", weightSum)
	}
	if l.PlatformMaxY <= l.PlatformMinY {
		fail("platform y range is degenerate")
	}
	if l.PlatformMaxY+l.PlatformHeight > c.Physics.OceanY {
		fail("platforms must sit above the ocean")
	}
	if l.LookAheadScreens < 1 {
		fail("look-ahead must cover at least one screen")
	}
	if l.StartWidth < c.Character.Width || l.StartLead < 0 || l.StartLead+c.Character.Width > l.StartWidth {
		fail("start platform must hold the character")
	}
	if l.ObstacleForceCap <= 0 || l.ObstacleForceCap >= 1 {
		fail("obstacle force cap must be in (0, 1)")
	}
	if l.ObstacleBaseChance < 0 || l.ObstacleBaseChance > l.ObstacleForceCap {
		fail("obstacle base chance must be in [0, force cap]")
	}
	if l.AerialMaxClearance < l.AerialMinClearance {
		fail("aerial clearance range is degenerate")
	}
	if l.AirMaxY < l.AirMinY || l.AirMinY < c.Physics.CeilingY {
		fail("air obstacle band must be below the ceiling and non-empty")
	}
	if l.AirGapMin < l.AirWidth {
		fail("air gap minimum must fit an air obstacle")
	}

	a := &c.Audio
	if a.BufferSize <= 0 {
		fail("audio buffer size must be positive")
	}
	if a.Epsilon <= 0 {
		fail("audio epsilon must be positive")
	}

	return errors.Join(errs...)
}

// RoundSeconds is the round duration in float seconds
func (c *Config) RoundSeconds() float64 {
	return time.Duration(c.Round.Duration).Seconds()
}

// MaxDeltaSeconds is the physics step cap in float seconds
func (c *Config) MaxDeltaSeconds() float64 {
	return time.Duration(c.Round.MaxFrameDelta).Seconds()
}
