package duel

import "time"

// Match is the duel state controller. It is not safe for concurrent use;
// callers drive it from a single loop.
type Match struct {
	rules Rules

	a, b   Combatant
	lane   Lane
	facing Direction

	moveCooldown  Cooldown
	skillCooldown Cooldown

	attack  *Attack
	pending []Hit

	clock   time.Duration
	stopped bool
}

// NewMatch creates a match at the starting positions with full health.
func NewMatch(r Rules) *Match {
	return &Match{
		rules: r,
		a:     Combatant{ID: "1", Name: "A", Health: r.StartHealth},
		b:     Combatant{ID: "2", Name: "B", Health: r.StartHealth},
		lane: Lane{
			A:          r.StartA,
			B:          r.StartB,
			Background: r.StartBackground,
		},
		facing: Right,
	}
}

func (m *Match) Rules() Rules { return m.rules }

func (m *Match) Combatant(s Side) Combatant {
	if s == SideB {
		return m.b
	}
	return m.a
}

func (m *Match) Lane() Lane              { return m.lane }
func (m *Match) Facing() Direction       { return m.facing }
func (m *Match) Clock() time.Duration    { return m.clock }
func (m *Match) Stopped() bool           { return m.stopped }
func (m *Match) MoveCooldown() Cooldown  { return m.moveCooldown }
func (m *Match) SkillCooldown() Cooldown { return m.skillCooldown }

// Attack returns the attack in flight, or nil when idle.
func (m *Match) Attack() *Attack {
	return m.attack
}

// Distance is the unsigned gap between the combatants.
func (m *Match) Distance() int {
	return m.lane.Distance()
}

// DisplayDistance is the signed readout shown to the player.
func (m *Match) DisplayDistance() float64 {
	return float64(m.lane.B-m.lane.A) / float64(m.rules.MoveStep)
}

// CanMove reports whether movement controls should be enabled.
func (m *Match) CanMove() bool {
	return !m.stopped && m.moveCooldown.Ready()
}

// CanUseSkill reports whether the control for s should be enabled.
func (m *Match) CanUseSkill(s Skill) bool {
	return !m.stopped && m.skillCooldown.Ready() && m.Distance() <= s.Range
}

// Move records the facing intent and, when movement is ready, steps the lane
// and starts the movement reload. It reports whether the lane changed.
func (m *Match) Move(dir Direction) bool {
	if m.stopped {
		return false
	}
	m.facing = dir
	if !m.moveCooldown.Ready() {
		return false
	}
	m.moveCooldown.Set(m.rules.MoveReload, m.clock, m.rules.CooldownInterval)
	m.lane.Step(dir, m.rules)
	return true
}

func (m *Match) MoveLeft() bool  { return m.Move(Left) }
func (m *Match) MoveRight() bool { return m.Move(Right) }

// TryMove is the bound-input form of Move: while movement is reloading the
// input is ignored outright and facing does not change.
func (m *Match) TryMove(dir Direction) bool {
	if !m.CanMove() {
		return false
	}
	return m.Move(dir)
}

// TrySkill activates skills[i] if that control is enabled. Indexes outside
// the catalog are ignored.
func (m *Match) TrySkill(skills []Skill, i int) *Attack {
	if i < 0 || i >= len(skills) || !m.CanUseSkill(skills[i]) {
		return nil
	}
	return m.UseSkill(skills[i])
}

// UseSkill starts an attack with s. Range and cooldown are the caller's to
// check through CanUseSkill. Damage lands when the attack resolves.
func (m *Match) UseSkill(s Skill) *Attack {
	if m.stopped {
		return nil
	}
	// An outstanding attack still owes its damage. Gated callers never get
	// here since the skill reload outlasts the travel, so only a caller that
	// skipped CanUseSkill sees damage land at activation time.
	if m.attack != nil {
		m.ResolveAttack()
	}
	from := float64(m.lane.A + m.rules.AttackOffsetA)
	to := float64(m.lane.B - m.rules.AttackOffsetB)
	m.attack = newAttack(s, m.facing, from, to, m.rules.AttackTravel, m.clock)
	m.skillCooldown.Set(s.Cooldown, m.clock, m.rules.CooldownInterval)
	return m.attack
}

// ResolveAttack applies the in-flight skill's damage to B and clears the
// attack. Health is read at resolution time. It returns false when no attack
// is in flight, so a repeated completion signal is harmless.
func (m *Match) ResolveAttack() (Hit, bool) {
	if m.attack == nil {
		return Hit{}, false
	}
	atk := m.attack
	m.attack = nil

	m.b.Damage(atk.Skill.Damage)
	hit := Hit{
		AttackID:    atk.ID,
		Skill:       atk.Skill,
		Target:      SideB,
		Damage:      atk.Skill.Damage,
		HealthAfter: m.b.Health,
		At:          m.clock,
	}
	m.pending = append(m.pending, hit)
	return hit, true
}

// Update advances the match clock by dt: cooldown ticks first, then the
// projectile, resolving it when its travel completes.
func (m *Match) Update(dt time.Duration) {
	if m.stopped || dt <= 0 {
		return
	}
	m.clock += dt
	m.moveCooldown.Advance(m.clock, m.rules.CooldownStep, m.rules.CooldownInterval)
	m.skillCooldown.Advance(m.clock, m.rules.CooldownStep, m.rules.CooldownInterval)

	if m.attack != nil && m.attack.advance(dt) {
		m.ResolveAttack()
	}
}

// DrainHits returns and clears the hits resolved since the last call.
func (m *Match) DrainHits() []Hit {
	if len(m.pending) == 0 {
		return nil
	}
	hits := m.pending
	m.pending = nil
	return hits
}

// Stop ends the match's lifetime: timers are released and an unresolved
// attack is dropped. Further input and updates are ignored.
func (m *Match) Stop() {
	if m.stopped {
		return
	}
	m.stopped = true
	m.moveCooldown.Stop()
	m.skillCooldown.Stop()
	m.attack = nil
}
