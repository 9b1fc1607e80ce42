package systems

import (
	"github.com/automoto/laneduel/components"
	cfg "github.com/automoto/laneduel/config"
	"github.com/automoto/laneduel/shared/prefs"
	"github.com/yohamta/donburi/ecs"
)

// displayPrefs outlives scenes so a restart keeps the player's toggles.
var displayPrefs prefs.Tracker

var settingsToggles = []struct {
	action cfg.ActionID
	toggle prefs.Toggle
}{
	{cfg.ActionFullscreen, prefs.ToggleFullscreen},
	{cfg.ActionWindowScale, prefs.CycleWindowScale},
	{cfg.ActionDebug, prefs.ToggleDebug},
}

// UpdateSettings handles the display toggles and persists every change.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	input := getOrCreateInput(ecs)

	d := settings.Display
	for _, t := range settingsToggles {
		if GetAction(input, t.action).JustPressed {
			d = d.Apply(t.toggle, len(cfg.WindowScales))
		}
	}
	if d == settings.Display {
		return
	}

	if d.Fullscreen != settings.Fullscreen || d.WindowScaleIndex != settings.WindowScaleIndex {
		applyDisplay(d.Fullscreen, d.WindowScaleIndex)
	}
	settings.Display = d
	SaveCurrentSettings(settings)
}

// GetOrCreateSettings returns the singleton settings component, seeded from
// the live preferences.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		d := displayPrefs.Seed(nil, cfg.Debug.Overlay, len(cfg.WindowScales))
		components.Settings.SetValue(entry, components.SettingsData{Display: d})
	}
	return components.Settings.Get(entry)
}
