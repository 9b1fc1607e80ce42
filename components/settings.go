package components

import (
	"github.com/automoto/laneduel/shared/prefs"
	"github.com/yohamta/donburi"
)

// SettingsData stores the user's display preferences for the scene
type SettingsData struct {
	prefs.Display
}

// Settings is the component type for settings state
var Settings = donburi.NewComponentType[SettingsData]()
