package components

import "github.com/yohamta/donburi"

// ScreenShakeData tracks active screen shake effect on the lane viewport
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// FlashData tracks sprite flash effect (hit flash, damage flash)
type FlashData struct {
	Duration int     // frames remaining
	R, G, B  float32 // flash tint
}

var Flash = donburi.NewComponentType[FlashData]()
