package systems

import (
	"math"

	"github.com/automoto/laneduel/components"
	cfg "github.com/automoto/laneduel/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects processes visual effect components (flash, screen shake)
func UpdateEffects(ecs *ecs.ECS) {
	updateFlashEffects(ecs)
	updateScreenShake(ecs)
}

// updateFlashEffects decrements flash timers
func updateFlashEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

func updateScreenShake(ecs *ecs.ECS) {
	entry, ok := components.ScreenShake.First(ecs.World)
	if !ok {
		return
	}
	shake := components.ScreenShake.Get(entry)
	if shake.Duration > 0 {
		shake.Duration--
		shake.Elapsed++
	}
}

// TriggerDamageFlash tints an entity red for a few frames
func TriggerDamageFlash(e *donburi.Entry) {
	if !e.HasComponent(components.Flash) {
		return
	}
	flash := components.Flash.Get(e)
	flash.Duration = cfg.Effects.HitFlashFrames
	flash.R, flash.G, flash.B = 1, 0.4, 0.4
}

// TriggerScreenShake starts (or strengthens) the lane shake
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	entry, ok := components.ScreenShake.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.ScreenShake))
	}
	shake := components.ScreenShake.Get(entry)
	if intensity >= shake.Intensity || shake.Duration == 0 {
		shake.Intensity = intensity
	}
	if duration > shake.Duration {
		shake.Duration = duration
	}
	shake.Elapsed = 0
}

// shakeOffset returns the current horizontal/vertical shake displacement
func shakeOffset(ecs *ecs.ECS) (float64, float64) {
	entry, ok := components.ScreenShake.First(ecs.World)
	if !ok {
		return 0, 0
	}
	shake := components.ScreenShake.Get(entry)
	if shake.Duration <= 0 {
		return 0, 0
	}
	t := float64(shake.Elapsed)
	return math.Sin(t*2.1) * shake.Intensity, math.Cos(t*1.7) * shake.Intensity * 0.5
}

// flashState returns how strongly an entity is flashing (0..1) and the tint
func flashState(e *donburi.Entry) (float32, [3]float32) {
	if !e.HasComponent(components.Flash) {
		return 0, [3]float32{}
	}
	flash := components.Flash.Get(e)
	if flash.Duration <= 0 || cfg.Effects.HitFlashFrames <= 0 {
		return 0, [3]float32{}
	}
	amount := float32(flash.Duration) / float32(cfg.Effects.HitFlashFrames)
	if amount > 1 {
		amount = 1
	}
	return amount, [3]float32{flash.R, flash.G, flash.B}
}
