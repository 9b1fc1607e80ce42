package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/automoto/laneduel/assets"
	"github.com/automoto/laneduel/components"
	cfg "github.com/automoto/laneduel/config"
	"github.com/automoto/laneduel/shared/duel"
	"github.com/automoto/laneduel/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	renderDrawOp   = &ebiten.DrawImageOptions{}
	renderShaderOp = &ebiten.DrawRectShaderOptions{}
)

// DrawLane renders the scrolling backdrop, both fighters and the projectile
// clipped to the lane viewport.
func DrawLane(ecs *ecs.ECS, screen *ebiten.Image) {
	d, ok := GetDuel(ecs)
	if !ok {
		return
	}
	m := d.Match
	lane := m.Lane()

	view := screen.SubImage(image.Rect(
		int(cfg.Lane.ViewX), int(cfg.Lane.ViewY),
		int(cfg.Lane.ViewX+cfg.Lane.ViewW), int(cfg.Lane.ViewY+cfg.Lane.ViewH),
	)).(*ebiten.Image)

	sx, sy := shakeOffset(ecs)
	originX := cfg.Lane.ViewX + sx
	originY := cfg.Lane.ViewY + sy

	drawBackdrop(view, lane.Background, originX, originY)

	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		drawFighter(view, e, m, originX, originY)
	})

	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		drawProjectile(view, components.Projectile.Get(e), m, originX, originY)
	})
}

// drawBackdrop tiles alternating stripes offset by -background.
func drawBackdrop(view *ebiten.Image, background int, originX, originY float64) {
	w := cfg.Lane.StripeWidth
	vector.FillRect(view, float32(cfg.Lane.ViewX), float32(cfg.Lane.ViewY),
		float32(cfg.Lane.ViewW), float32(cfg.Lane.ViewH), cfg.UI.SkyColor, false)

	first := int(math.Floor(float64(background) / w))
	offset := float64(background) - float64(first)*w
	tiles := int(cfg.Lane.ViewW/w) + 2
	for i := 0; i < tiles; i++ {
		if (first+i)%2 == 0 {
			continue
		}
		x := originX - offset + float64(i)*w
		vector.FillRect(view, float32(x), float32(originY),
			float32(w), float32(cfg.Lane.ViewH-cfg.Lane.GroundOffset), cfg.UI.StripeColor, false)
	}

	groundY := originY + cfg.Lane.ViewH - cfg.Lane.GroundOffset
	vector.FillRect(view, float32(cfg.Lane.ViewX), float32(groundY),
		float32(cfg.Lane.ViewW), float32(cfg.Lane.GroundOffset), cfg.UI.GroundColor, false)
}

func drawFighter(view *ebiten.Image, e *donburi.Entry, m *duel.Match, originX, originY float64) {
	side := components.Fighter.Get(e).Side
	lane := m.Lane()

	pos := lane.A
	mirrored := m.Facing() == duel.Left
	if side == duel.SideB {
		pos = lane.B
		// B faces A; it turns around once it has passed A.
		mirrored = lane.B-lane.A < 0
	}

	img := assets.GetFighterSprite(side)
	x := originX + float64(pos)
	y := originY + cfg.Lane.ViewH - cfg.Lane.GroundOffset - cfg.Lane.FighterHeight

	var geo ebiten.GeoM
	if mirrored {
		geo.Scale(-1, 1)
		geo.Translate(cfg.Lane.FighterWidth, 0)
	}
	geo.Translate(x, y)
	drawFlashing(view, img, geo, e)

	// Mini health bar above the fighter
	c := m.Combatant(side)
	barColor := cfg.UI.BarColorA
	if side == duel.SideB {
		barColor = cfg.UI.BarColorB
	}
	barX := x + (cfg.Lane.FighterWidth-cfg.UI.MiniBarWidth)/2
	barY := y - cfg.UI.MiniBarHeight - 6
	drawHealthBar(view, barX, barY, cfg.UI.MiniBarWidth, cfg.UI.MiniBarHeight, c.Health, m.Rules().StartHealth, barColor)
}

func drawProjectile(view *ebiten.Image, p *components.ProjectileData, m *duel.Match, originX, originY float64) {
	atk := m.Attack()
	if atk == nil || atk.ID != p.AttackID {
		return
	}
	img := assets.GetAttackSprite(atk.Skill.AttackImage)
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	alpha := float32(1)
	if fade := cfg.Effects.ProjectileFadeFrames; fade > 0 && p.Age < fade {
		alpha = float32(p.Age) / float32(fade)
	}

	tint, ok := cfg.UI.ProjectileTint[atk.Skill.Name]
	if !ok {
		tint = cfg.White
	}

	renderDrawOp.GeoM.Reset()
	renderDrawOp.ColorScale.Reset()
	renderDrawOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	renderDrawOp.GeoM.Rotate(atk.Skill.Transform.For(atk.Facing))
	renderDrawOp.GeoM.Translate(originX+atk.X(), originY+cfg.Lane.ViewH-cfg.Lane.ProjectileY)
	renderDrawOp.ColorScale.ScaleWithColor(tint)
	renderDrawOp.ColorScale.ScaleAlpha(alpha)
	view.DrawImage(img, renderDrawOp)
}

// drawHealthBar draws a 0..maxHealth bar with a dark background
func drawHealthBar(dst *ebiten.Image, x, y, w, h float64, current, maxHealth int, fg color.RGBA) {
	vector.FillRect(dst, float32(x), float32(y), float32(w), float32(h), cfg.UI.BarBgColor, false)
	if maxHealth <= 0 {
		return
	}
	ratio := float64(current) / float64(maxHealth)
	if ratio < 0 {
		ratio = 0
	}
	vector.FillRect(dst, float32(x), float32(y), float32(w*ratio), float32(h), fg, false)
}

// drawFlashing draws a sprite, blending it toward its flash tint while a hit
// flash is active. Without the shader the tint is applied as a color scale.
func drawFlashing(dst, img *ebiten.Image, geo ebiten.GeoM, e *donburi.Entry) {
	amount, tint := flashState(e)
	if amount > 0 && assets.FlashShader != nil {
		b := img.Bounds()
		renderShaderOp.GeoM = geo
		renderShaderOp.Images[0] = img
		renderShaderOp.Uniforms = map[string]any{
			"Flash": float32(amount),
			"Tint":  []float32{tint[0], tint[1], tint[2]},
		}
		dst.DrawRectShader(b.Dx(), b.Dy(), assets.FlashShader, renderShaderOp)
		return
	}

	renderDrawOp.GeoM = geo
	renderDrawOp.ColorScale.Reset()
	if amount > 0 {
		renderDrawOp.ColorScale.Scale(tint[0], tint[1], tint[2], 1)
	}
	dst.DrawImage(img, renderDrawOp)
}
