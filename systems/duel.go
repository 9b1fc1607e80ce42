package systems

import (
	"log"

	"github.com/automoto/laneduel/components"
	cfg "github.com/automoto/laneduel/config"
	"github.com/automoto/laneduel/shared/duel"
	"github.com/automoto/laneduel/systems/factory"
	"github.com/automoto/laneduel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDuel feeds bound keys into the match, advances its clock by one frame
// and turns resolved hits into visual feedback.
func UpdateDuel(ecs *ecs.ECS) {
	d, ok := GetDuel(ecs)
	if !ok {
		return
	}
	m := d.Match
	input := getOrCreateInput(ecs)

	// Arrow bindings only act while movement is ready.
	if GetAction(input, cfg.ActionMoveRight).JustReleased {
		m.TryMove(duel.Right)
	} else if GetAction(input, cfg.ActionMoveLeft).JustReleased {
		m.TryMove(duel.Left)
	}

	for i, action := range cfg.SkillActions {
		if GetAction(input, action).JustReleased {
			m.TrySkill(d.Skills, i)
		}
	}

	m.Update(cfg.C.FrameDuration())

	for _, hit := range m.DrainHits() {
		onHit(ecs, hit)
	}
	syncProjectile(ecs, m)
}

// GetDuel returns the singleton duel, if the scene has one.
func GetDuel(ecs *ecs.ECS) (*components.DuelData, bool) {
	entry, ok := components.Duel.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Duel.Get(entry), true
}

// RestartRequested reports whether the restart key was pressed this frame.
func RestartRequested(ecs *ecs.ECS) bool {
	return GetAction(getOrCreateInput(ecs), cfg.ActionRestart).JustPressed
}

// StopDuel ends the match lifetime so no timer outlives the scene.
func StopDuel(ecs *ecs.ECS) {
	if d, ok := GetDuel(ecs); ok && d.Match != nil {
		d.Match.Stop()
	}
}

func onHit(ecs *ecs.ECS, hit duel.Hit) {
	if cfg.Debug.LogEvents || GetOrCreateSettings(ecs).Debug {
		log.Printf("hit %s: %s dealt %d to %s, health now %d",
			hit.AttackID, hit.Skill.Name, hit.Damage, hit.Target, hit.HealthAfter)
	}

	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		if components.Fighter.Get(e).Side == hit.Target {
			TriggerDamageFlash(e)
		}
	})
	TriggerScreenShake(ecs, cfg.Effects.HitShakeIntensity, cfg.Effects.HitShakeDuration)
}

// syncProjectile keeps exactly one projectile entity per attack in flight.
func syncProjectile(ecs *ecs.ECS, m *duel.Match) {
	atk := m.Attack()

	var toRemove []*donburi.Entry
	found := false
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		if atk != nil && p.AttackID == atk.ID {
			p.Age++
			found = true
			return
		}
		toRemove = append(toRemove, e)
	})

	for _, e := range toRemove {
		ecs.World.Remove(e.Entity())
	}

	if atk != nil && !found {
		factory.CreateProjectile(ecs, atk.ID)
	}
}
