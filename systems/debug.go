package systems

import (
	"fmt"

	cfg "github.com/automoto/laneduel/config"
	"github.com/automoto/laneduel/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug overlays the raw controller state when debug is enabled.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}
	d, ok := GetDuel(ecs)
	if !ok {
		return
	}
	m := d.Match
	lane := m.Lane()

	lines := []string{
		fmt.Sprintf("clock %v  tps %.0f", m.Clock(), ebiten.ActualTPS()),
		fmt.Sprintf("A=%d B=%d bg=%d facing=%s", lane.A, lane.B, lane.Background, m.Facing()),
		fmt.Sprintf("move armed=%v skill armed=%v stopped=%v", m.MoveCooldown().Armed(), m.SkillCooldown().Armed(), m.Stopped()),
		fmt.Sprintf("window %s fullscreen=%v", windowScaleLabel(settings.WindowScaleIndex), settings.Fullscreen),
	}
	if atk := m.Attack(); atk != nil {
		lines = append(lines, fmt.Sprintf("attack %s %s %.0f%%", atk.ID[:8], atk.Skill.Name, atk.Progress()*100))
	} else {
		lines = append(lines, "attack idle")
	}

	face := fonts.Small.Get()
	x := float32(cfg.C.Width) - 330
	y := float32(cfg.Lane.ViewY) + 8
	vector.FillRect(screen, x-6, y-4, 320, float32(len(lines))*16+8, cfg.BlackOverlay, false)
	for i, line := range lines {
		text.Draw(screen, line, face, int(x), int(y)+12+i*16, cfg.Yellow)
	}

	// Threshold markers
	for _, t := range []int{m.Rules().BackwardThreshold, m.Rules().ForwardThreshold} {
		mx := float32(cfg.Lane.ViewX) + float32(t)
		vector.FillRect(screen, mx, float32(cfg.Lane.ViewY), 1, float32(cfg.Lane.ViewH), cfg.LightRed, false)
	}
}

func windowScaleLabel(i int) string {
	if i < 0 || i >= len(cfg.WindowScales) {
		return "?"
	}
	return cfg.WindowScales[i].Label
}
