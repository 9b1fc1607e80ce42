package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/laneduel/components"
	cfg "github.com/automoto/laneduel/config"
	"github.com/automoto/laneduel/shared/prefs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "laneduel",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*prefs.Display, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings prefs.Display
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *prefs.Display) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings records the scene's settings as the live preferences
// and saves them
func SaveCurrentSettings(s *components.SettingsData) {
	displayPrefs.Set(s.Display)
	_ = SaveSettings(&s.Display)
}

// ApplySavedSettingsGlobal seeds the live preferences from what was saved
// (nil when nothing was) and the command line, then applies the display mode.
// Used during startup before the first scene is created.
func ApplySavedSettingsGlobal(saved *prefs.Display) {
	d := displayPrefs.Seed(saved, cfg.Debug.Overlay, len(cfg.WindowScales))
	if saved != nil {
		applyDisplay(d.Fullscreen, d.WindowScaleIndex)
	}
}

func applyDisplay(fullscreen bool, scaleIndex int) {
	ebiten.SetFullscreen(fullscreen)

	// Apply window size (only if not fullscreen)
	if !fullscreen && scaleIndex >= 0 && scaleIndex < len(cfg.WindowScales) {
		f := cfg.WindowScales[scaleIndex].Factor
		ebiten.SetWindowSize(int(float64(cfg.C.Width)*f), int(float64(cfg.C.Height)*f))
	}
}
