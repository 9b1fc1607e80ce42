package config

import (
	"image/color"
	"time"

	"github.com/automoto/laneduel/shared/duel"
)

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	TPS    int // ebiten ticks per second
}

// FrameDuration is the simulated time covered by one Update call.
func (c *Config) FrameDuration() time.Duration {
	return time.Second / time.Duration(c.TPS)
}

// LaneConfig contains the geometry of the lane viewport. Lane units map 1:1
// to pixels inside the viewport.
type LaneConfig struct {
	ViewX, ViewY  float64 // top-left of the viewport on screen
	ViewW, ViewH  float64
	GroundOffset  float64 // fighters stand this far above the viewport bottom
	FighterWidth  float64
	FighterHeight float64
	StripeWidth   float64 // width of one repeating backdrop tile
	ProjectileY   float64 // projectile height above the viewport bottom
	ProjectileLen float64
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	HeaderBarWidth  float64
	HeaderBarHeight float64
	MiniBarWidth    float64
	MiniBarHeight   float64
	Margin          float64

	BarBgColor     color.RGBA
	BarColorA      color.RGBA
	BarColorB      color.RGBA
	FighterColorA  color.RGBA
	FighterColorB  color.RGBA
	SkyColor       color.RGBA
	StripeColor    color.RGBA
	GroundColor    color.RGBA
	ProjectileTint map[string]color.RGBA // keyed by skill name
	ReadoutColor   color.RGBA
}

// EffectsConfig contains hit feedback tuning
type EffectsConfig struct {
	HitFlashFrames       int
	HitShakeIntensity    float64
	HitShakeDuration     int
	ProjectileFadeFrames int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay   bool // Draw raw controller state
	LogEvents bool // Log resolved hits
}

// WindowScale is a selectable window size multiplier
type WindowScale struct {
	Factor float64
	Label  string
}

// Global configuration instances
var C *Config
var Duel duel.Rules
var Lane LaneConfig
var UI UIConfig
var Effects EffectsConfig
var Debug DebugConfig
var WindowScales []WindowScale

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Pink         = color.RGBA{R: 236, G: 72, B: 153, A: 255}
	Teal         = color.RGBA{R: 49, G: 151, B: 149, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		TPS:    60,
	}

	Duel = duel.DefaultRules()

	Lane = LaneConfig{
		ViewX:         40,
		ViewY:         150,
		ViewW:         1200,
		ViewH:         400,
		GroundOffset:  70,
		FighterWidth:  100,
		FighterHeight: 140,
		StripeWidth:   200,
		ProjectileY:   100,
		ProjectileLen: 60,
	}

	UI = UIConfig{
		HeaderBarWidth:  200,
		HeaderBarHeight: 12,
		MiniBarWidth:    90,
		MiniBarHeight:   8,
		Margin:          16,

		BarBgColor:    color.RGBA{40, 40, 40, 255},
		BarColorA:     color.RGBA{66, 153, 225, 255},
		BarColorB:     Pink,
		FighterColorA: color.RGBA{90, 170, 240, 255},
		FighterColorB: color.RGBA{240, 110, 170, 255},
		SkyColor:      color.RGBA{112, 197, 206, 255},
		StripeColor:   color.RGBA{98, 180, 190, 255},
		GroundColor:   color.RGBA{222, 216, 149, 255},
		ProjectileTint: map[string]color.RGBA{
			"Knife":  color.RGBA{200, 200, 210, 255},
			"Hammer": color.RGBA{150, 100, 60, 255},
		},
		ReadoutColor: White,
	}

	Effects = EffectsConfig{
		HitFlashFrames:       10,
		HitShakeIntensity:    4.0,
		HitShakeDuration:     8,
		ProjectileFadeFrames: 12,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Overlay:   false,
		LogEvents: false,
	}

	WindowScales = []WindowScale{
		{Factor: 1.0, Label: "1280 x 720"},
		{Factor: 0.75, Label: "960 x 540"},
		{Factor: 1.5, Label: "1920 x 1080"},
	}
}
