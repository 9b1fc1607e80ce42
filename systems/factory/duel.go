package factory

import (
	"github.com/automoto/laneduel/archetypes"
	"github.com/automoto/laneduel/components"
	"github.com/automoto/laneduel/shared/duel"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDuel spawns the singleton duel entity holding a fresh match.
func CreateDuel(ecs *ecs.ECS, rules duel.Rules) *donburi.Entry {
	d := archetypes.Duel.Spawn(ecs)
	components.Duel.SetValue(d, components.DuelData{
		Match:  duel.NewMatch(rules),
		Skills: duel.Catalog(),
	})
	return d
}

// CreateFighter spawns the rendered entity for one side of the duel.
func CreateFighter(ecs *ecs.ECS, side duel.Side) *donburi.Entry {
	f := archetypes.Fighter.Spawn(ecs)
	components.Fighter.SetValue(f, components.FighterData{Side: side})
	components.Flash.SetValue(f, components.FlashData{R: 1, G: 1, B: 1})
	return f
}

// CreateProjectile spawns the visual for the attack with the given id.
func CreateProjectile(ecs *ecs.ECS, attackID string) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)
	components.Projectile.SetValue(p, components.ProjectileData{AttackID: attackID})
	return p
}
