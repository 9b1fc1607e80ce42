package assets

import (
	"image/color"

	cfg "github.com/automoto/laneduel/config"
	"github.com/automoto/laneduel/shared/duel"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	fighterSprites = map[duel.Side]*ebiten.Image{}
	attackSprites  = map[string]*ebiten.Image{}
)

// GetFighterSprite returns a simple figure facing right, built on first use.
func GetFighterSprite(side duel.Side) *ebiten.Image {
	if img, ok := fighterSprites[side]; ok {
		return img
	}
	w, h := float32(cfg.Lane.FighterWidth), float32(cfg.Lane.FighterHeight)
	body := cfg.UI.FighterColorA
	if side == duel.SideB {
		body = cfg.UI.FighterColorB
	}

	img := ebiten.NewImage(int(w), int(h))
	vector.FillRect(img, w*0.3, h*0.25, w*0.4, h*0.5, body, false)                           // torso
	vector.FillRect(img, w*0.35, 0, w*0.3, h*0.22, body, false)                              // head
	vector.FillRect(img, w*0.55, h*0.06, w*0.06, h*0.04, color.RGBA{20, 20, 20, 255}, false) // eye
	vector.FillRect(img, w*0.7, h*0.35, w*0.25, h*0.06, body, false)                         // arm
	vector.FillRect(img, w*0.32, h*0.75, w*0.12, h*0.25, body, false)
	vector.FillRect(img, w*0.56, h*0.75, w*0.12, h*0.25, body, false)
	fighterSprites[side] = img
	return img
}

// GetAttackSprite returns the projectile image for a skill's attack image
// name. Unknown names fall back to a plain bolt.
func GetAttackSprite(name string) *ebiten.Image {
	if img, ok := attackSprites[name]; ok {
		return img
	}
	l := float32(cfg.Lane.ProjectileLen)
	var img *ebiten.Image
	switch name {
	case "knife.png":
		img = ebiten.NewImage(int(l), 12)
		vector.FillRect(img, 0, 4, l*0.35, 4, color.RGBA{120, 80, 40, 255}, false) // handle
		vector.FillRect(img, l*0.35, 2, l*0.65, 8, cfg.White, false)               // blade
	case "hammer.png":
		img = ebiten.NewImage(int(l), 24)
		vector.FillRect(img, 0, 10, l*0.7, 4, color.RGBA{120, 80, 40, 255}, false) // shaft
		vector.FillRect(img, l*0.7, 0, l*0.3, 24, cfg.White, false)                // head
	default:
		img = ebiten.NewImage(int(l), 12)
		vector.FillRect(img, 0, 4, l*0.6, 4, cfg.White, false)
		vector.FillRect(img, l*0.6, 0, l*0.4, 12, cfg.White, false)
	}
	attackSprites[name] = img
	return img
}
