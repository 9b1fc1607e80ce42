package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/laneduel/config"
	"github.com/automoto/laneduel/fonts"
	"github.com/automoto/laneduel/shared/duel"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the header health bars, the distance readout and the
// cooldown readouts around the lane viewport.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	d, ok := GetDuel(ecs)
	if !ok {
		return
	}
	m := d.Match
	width := float64(cfg.C.Width)
	margin := cfg.UI.Margin
	face := fonts.Header.Get()
	maxHealth := m.Rules().StartHealth

	a := m.Combatant(duel.SideA)
	b := m.Combatant(duel.SideB)

	// Header bars, A on the left and B on the right
	text.Draw(screen, a.Name, face, int(margin), int(margin)+14, cfg.UI.ReadoutColor)
	drawHealthBar(screen, margin, margin+22, cfg.UI.HeaderBarWidth, cfg.UI.HeaderBarHeight, a.Health, maxHealth, cfg.UI.BarColorA)

	bx := width - margin - cfg.UI.HeaderBarWidth
	text.Draw(screen, b.Name, face, int(bx), int(margin)+14, cfg.UI.ReadoutColor)
	drawHealthBar(screen, bx, margin+22, cfg.UI.HeaderBarWidth, cfg.UI.HeaderBarHeight, b.Health, maxHealth, cfg.UI.BarColorB)

	distance := fmt.Sprintf("DISTANCE: %s", formatDistance(m.DisplayDistance()))
	textWidth := len(distance) * 10
	text.Draw(screen, distance, face, int(width/2)-textWidth/2, int(cfg.Lane.ViewY)-16, cfg.UI.ReadoutColor)

	readoutY := int(cfg.Lane.ViewY + cfg.Lane.ViewH + 28)
	text.Draw(screen, fmt.Sprintf("Move cooldown: %d", m.MoveCooldown().Remaining().Milliseconds()),
		face, int(cfg.Lane.ViewX), readoutY, readoutColor(m.MoveCooldown()))
	text.Draw(screen, fmt.Sprintf("Skill cooldown: %d", m.SkillCooldown().Remaining().Milliseconds()),
		face, int(cfg.Lane.ViewX), readoutY+22, readoutColor(m.SkillCooldown()))
}

// readoutColor highlights a cooldown once it is ready
func readoutColor(c duel.Cooldown) color.RGBA {
	if c.Ready() {
		return cfg.BrightGreen
	}
	return cfg.UI.ReadoutColor
}

// formatDistance prints whole distances without a fraction
func formatDistance(d float64) string {
	if d == float64(int(d)) {
		return fmt.Sprintf("%d", int(d))
	}
	return fmt.Sprintf("%.1f", d)
}
