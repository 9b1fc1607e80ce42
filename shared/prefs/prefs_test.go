package prefs

import "testing"

func TestSeed(t *testing.T) {
	tests := []struct {
		name  string
		saved *Display
		flag  bool
		want  Display
	}{
		{"nothing saved", nil, false, Display{}},
		{"debug flag", nil, true, Display{Debug: true}},
		{"saved kept", &Display{Fullscreen: true, WindowScaleIndex: 2}, false, Display{Fullscreen: true, WindowScaleIndex: 2}},
		{"flag ORs saved debug", &Display{Debug: false}, true, Display{Debug: true}},
		{"saved debug without flag", &Display{Debug: true}, false, Display{Debug: true}},
		{"bad scale index", &Display{WindowScaleIndex: 7}, false, Display{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tr Tracker
			if got := tr.Seed(tt.saved, tt.flag, 3); got != tt.want {
				t.Fatalf("Seed = %+v, want %+v", got, tt.want)
			}
			if tr.Current() != tt.want {
				t.Fatalf("Current = %+v", tr.Current())
			}
		})
	}
}

func TestLiveChangesSurviveReseed(t *testing.T) {
	var tr Tracker
	tr.Seed(nil, false, 3)

	// F11 then F3 in one scene
	d := tr.Current().Apply(ToggleFullscreen, 3).Apply(ToggleDebug, 3)
	tr.Set(d)

	// A restarted scene seeds again and must see the toggles.
	got := tr.Seed(nil, false, 3)
	if !got.Fullscreen || !got.Debug {
		t.Fatalf("after restart = %+v, want fullscreen and debug on", got)
	}

	// The next F11 turns fullscreen off rather than on again.
	if tr.Current().Apply(ToggleFullscreen, 3).Fullscreen {
		t.Fatal("second fullscreen toggle should turn it off")
	}
}

func TestApplyCyclesWindowScale(t *testing.T) {
	d := Display{}
	for _, want := range []int{1, 2, 0} {
		d = d.Apply(CycleWindowScale, 3)
		if d.WindowScaleIndex != want {
			t.Fatalf("index = %d, want %d", d.WindowScaleIndex, want)
		}
	}
	if got := (Display{WindowScaleIndex: 1}).Apply(CycleWindowScale, 0); got.WindowScaleIndex != 1 {
		t.Fatalf("no scales should leave index alone, got %d", got.WindowScaleIndex)
	}
}
