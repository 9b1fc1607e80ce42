package components

import (
	"github.com/automoto/laneduel/shared/duel"
	"github.com/yohamta/donburi"
)

// FighterData links a rendered entity to its side of the duel.
type FighterData struct {
	Side duel.Side
}

var Fighter = donburi.NewComponentType[FighterData]()

// ProjectileData tracks the visual of the attack in flight.
type ProjectileData struct {
	AttackID string
	Age      int // frames since spawn, drives the fade-in
}

var Projectile = donburi.NewComponentType[ProjectileData]()
