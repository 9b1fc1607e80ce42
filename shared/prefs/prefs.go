// Package prefs holds the player's display preferences independently of any
// scene, so a restarted scene picks up what the player last chose.
package prefs

// Display is the persisted set of display preferences.
type Display struct {
	Fullscreen       bool `json:"fullscreen"`
	Debug            bool `json:"debug"`
	WindowScaleIndex int  `json:"windowScaleIndex"`
}

// Toggle is a single change requested by a hotkey.
type Toggle int

const (
	ToggleFullscreen Toggle = iota
	ToggleDebug
	CycleWindowScale
)

// Apply returns d with t applied. scales is the number of window sizes.
func (d Display) Apply(t Toggle, scales int) Display {
	switch t {
	case ToggleFullscreen:
		d.Fullscreen = !d.Fullscreen
	case ToggleDebug:
		d.Debug = !d.Debug
	case CycleWindowScale:
		if scales > 0 {
			d.WindowScaleIndex = (d.WindowScaleIndex + 1) % scales
		}
	}
	return d
}

// Clamp resets an out-of-range window scale index to the default size.
func (d Display) Clamp(scales int) Display {
	if d.WindowScaleIndex < 0 || d.WindowScaleIndex >= scales {
		d.WindowScaleIndex = 0
	}
	return d
}

// Tracker keeps the live preferences for the whole process.
type Tracker struct {
	current Display
	seeded  bool
}

// Seed sets the starting preferences from what was saved (nil when nothing
// was) and the debug command-line flag. Later calls are ignored.
func (t *Tracker) Seed(saved *Display, debugFlag bool, scales int) Display {
	if t.seeded {
		return t.current
	}
	var d Display
	if saved != nil {
		d = *saved
	}
	d.Debug = d.Debug || debugFlag
	t.current = d.Clamp(scales)
	t.seeded = true
	return t.current
}

// Current returns the live preferences.
func (t *Tracker) Current() Display {
	return t.current
}

// Set records d as the live preferences.
func (t *Tracker) Set(d Display) {
	t.current = d
	t.seeded = true
}
