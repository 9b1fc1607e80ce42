package duel

import (
	"math/rand"
	"testing"
	"time"
)

func skillNamed(t *testing.T, name string) Skill {
	t.Helper()
	for _, s := range Catalog() {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("no skill %q", name)
	return Skill{}
}

// tick advances the match in whole cooldown intervals.
func tick(m *Match, n int) {
	for i := 0; i < n; i++ {
		m.Update(m.Rules().CooldownInterval)
	}
}

func TestNewMatchStartingState(t *testing.T) {
	m := NewMatch(DefaultRules())
	if l := m.Lane(); l != (Lane{A: 300, B: 800}) {
		t.Fatalf("lane = %+v", l)
	}
	for _, s := range []Side{SideA, SideB} {
		if h := m.Combatant(s).Health; h != 100 {
			t.Fatalf("%s health = %d", s, h)
		}
	}
	if !m.CanMove() || m.Attack() != nil || m.Facing() != Right {
		t.Fatal("match should start idle, ready and facing right")
	}
}

func TestMoveScrollsPastForwardThreshold(t *testing.T) {
	m := NewMatch(DefaultRules())

	for i := 0; i < 2; i++ {
		if !m.MoveRight() {
			t.Fatalf("move %d rejected", i)
		}
		tick(m, 2)
	}
	if l := m.Lane(); l.A != 500 || l.B != 800 || l.Background != 0 {
		t.Fatalf("lane = %+v, want A at 500", l)
	}

	m.MoveRight()
	if l := m.Lane(); l.A != 500 || l.B != 700 || l.Background != 100 {
		t.Fatalf("lane = %+v, want scroll", l)
	}
}

func TestMoveDuringCooldownOnlyTurns(t *testing.T) {
	m := NewMatch(DefaultRules())
	m.MoveRight()
	before := m.Lane()
	cd := m.MoveCooldown().Remaining()

	if m.MoveLeft() {
		t.Fatal("move accepted during cooldown")
	}
	if m.Lane() != before || m.MoveCooldown().Remaining() != cd {
		t.Fatal("rejected move changed state")
	}
	if m.Facing() != Left {
		t.Fatal("facing should follow the last request")
	}
}

func TestMoveReloadIsTwoTicks(t *testing.T) {
	m := NewMatch(DefaultRules())
	m.MoveRight()
	if m.MoveCooldown().Remaining() != 2*time.Second {
		t.Fatalf("reload = %v", m.MoveCooldown().Remaining())
	}
	tick(m, 1)
	if m.CanMove() {
		t.Fatal("movable after one tick")
	}
	tick(m, 1)
	if !m.CanMove() {
		t.Fatal("not movable after two ticks")
	}
}

func TestAStaysInsideWindow(t *testing.T) {
	r := DefaultRules()
	rng := rand.New(rand.NewSource(7))
	m := NewMatch(r)

	for i := 0; i < 500; i++ {
		if rng.Intn(2) == 0 {
			m.MoveLeft()
		} else {
			m.MoveRight()
		}
		tick(m, 2)
		if a := m.Lane().A; a < r.BackwardThreshold || a > r.ForwardThreshold {
			t.Fatalf("step %d: A = %d outside [%d,%d]", i, a, r.BackwardThreshold, r.ForwardThreshold)
		}
	}
}

func TestSkillsOutOfRangeAtStart(t *testing.T) {
	m := NewMatch(DefaultRules())
	for _, name := range []string{"Knife", "Hammer"} {
		if m.CanUseSkill(skillNamed(t, name)) {
			t.Errorf("%s usable at distance %d", name, m.Distance())
		}
	}
}

func TestKnifeInRangeAfterClosing(t *testing.T) {
	m := NewMatch(DefaultRules())
	m.MoveRight()
	tick(m, 2)
	if m.Distance() != 400 {
		t.Fatalf("distance = %d", m.Distance())
	}
	if !m.CanUseSkill(skillNamed(t, "Knife")) {
		t.Fatal("knife should be in range at 400")
	}
	if m.CanUseSkill(skillNamed(t, "Hammer")) {
		t.Fatal("hammer should be out of range at 400")
	}
}

func TestUseSkillDefersDamage(t *testing.T) {
	m := NewMatch(DefaultRules())
	knife := skillNamed(t, "Knife")

	atk := m.UseSkill(knife)
	if atk == nil || m.Attack() != atk {
		t.Fatal("attack not in flight")
	}
	if m.SkillCooldown().Remaining() != knife.Cooldown {
		t.Fatalf("skill cooldown = %v, want %v", m.SkillCooldown().Remaining(), knife.Cooldown)
	}
	if m.Combatant(SideB).Health != 100 {
		t.Fatal("damage applied at activation")
	}
	if m.CanUseSkill(knife) {
		t.Fatal("skill usable during cooldown")
	}
}

func TestAttackResolvesOnceAfterTravel(t *testing.T) {
	m := NewMatch(DefaultRules())
	knife := skillNamed(t, "Knife")
	m.UseSkill(knife)

	for i := 0; i < 3; i++ {
		m.Update(250 * time.Millisecond)
	}
	if m.Attack() == nil || m.Combatant(SideB).Health != 100 {
		t.Fatal("attack resolved before travel completed")
	}
	m.Update(250 * time.Millisecond)

	if m.Attack() != nil {
		t.Fatal("attack still in flight after travel")
	}
	if h := m.Combatant(SideB).Health; h != 70 {
		t.Fatalf("B health = %d, want 70", h)
	}
	hits := m.DrainHits()
	if len(hits) != 1 || hits[0].Damage != 30 || hits[0].HealthAfter != 70 {
		t.Fatalf("hits = %+v", hits)
	}

	// A late completion signal must not land a second time.
	if _, ok := m.ResolveAttack(); ok {
		t.Fatal("second resolution accepted")
	}
	m.Update(time.Second)
	if m.Combatant(SideB).Health != 70 || len(m.DrainHits()) != 0 {
		t.Fatal("damage applied twice")
	}
}

func TestKnifeCooldownReenablesAfterFourTicks(t *testing.T) {
	m := NewMatch(DefaultRules())
	m.MoveRight()
	tick(m, 2)
	knife := skillNamed(t, "Knife")
	m.UseSkill(knife)

	tick(m, 3)
	if m.CanUseSkill(knife) {
		t.Fatal("knife ready after three ticks")
	}
	tick(m, 1)
	if m.SkillCooldown().Remaining() != 0 || !m.CanUseSkill(knife) {
		t.Fatalf("cooldown = %v, want 0 and enabled", m.SkillCooldown().Remaining())
	}
}

func TestHealthClampsAtZero(t *testing.T) {
	tests := []struct {
		health, damage, want int
	}{
		{100, 30, 70},
		{20, 30, 0},
		{30, 30, 0},
		{0, 15, 0},
	}
	for _, tt := range tests {
		c := Combatant{Health: tt.health}
		c.Damage(tt.damage)
		if c.Health != tt.want {
			t.Errorf("max(%d-%d,0) = %d, got %d", tt.health, tt.damage, tt.want, c.Health)
		}
	}
}

func TestRepeatedKnivesEmptyHealth(t *testing.T) {
	m := NewMatch(DefaultRules())
	knife := skillNamed(t, "Knife")
	for i := 0; i < 5; i++ {
		m.UseSkill(knife)
		tick(m, 4)
	}
	if h := m.Combatant(SideB).Health; h != 0 {
		t.Fatalf("B health = %d", h)
	}
	if n := len(m.DrainHits()); n != 5 {
		t.Fatalf("hits = %d, want 5", n)
	}
}

func TestOverlappingActivationStillLandsEach(t *testing.T) {
	m := NewMatch(DefaultRules())
	hammer := skillNamed(t, "Hammer")

	first := m.UseSkill(hammer)
	second := m.UseSkill(hammer)
	if first.ID == second.ID {
		t.Fatal("attack ids should be unique")
	}
	if h := m.Combatant(SideB).Health; h != 85 {
		t.Fatalf("superseded attack did not land: health %d", h)
	}
	tick(m, 1)
	if h := m.Combatant(SideB).Health; h != 70 {
		t.Fatalf("health = %d, want 70", h)
	}
	if n := len(m.DrainHits()); n != 2 {
		t.Fatalf("hits = %d, want 2", n)
	}
}

func TestProjectileTravelsTowardB(t *testing.T) {
	m := NewMatch(DefaultRules())
	atk := m.UseSkill(skillNamed(t, "Knife"))
	if atk.From != 350 || atk.To != 750 {
		t.Fatalf("travel %v -> %v", atk.From, atk.To)
	}
	m.Update(500 * time.Millisecond)
	if atk.Progress() != 0.5 || atk.X() != 550 {
		t.Fatalf("halfway x = %v progress = %v", atk.X(), atk.Progress())
	}
}

func TestStopReleasesEverything(t *testing.T) {
	m := NewMatch(DefaultRules())
	m.MoveRight()
	m.UseSkill(skillNamed(t, "Knife"))
	m.Stop()

	if m.MoveCooldown().Armed() || m.SkillCooldown().Armed() {
		t.Fatal("cooldowns still armed after stop")
	}
	if m.Attack() != nil {
		t.Fatal("attack survived stop")
	}
	clock := m.Clock()
	m.Update(5 * time.Second)
	if m.Clock() != clock || m.Combatant(SideB).Health != 100 {
		t.Fatal("stopped match kept updating")
	}
	if m.Move(Left) || m.UseSkill(skillNamed(t, "Hammer")) != nil {
		t.Fatal("stopped match accepted input")
	}
}

func TestDisplayDistanceIsSigned(t *testing.T) {
	m := NewMatch(DefaultRules())
	if d := m.DisplayDistance(); d != 5 {
		t.Fatalf("distance readout = %v", d)
	}
}

func TestTryMoveIgnoredDuringReload(t *testing.T) {
	m := NewMatch(DefaultRules())
	if !m.TryMove(Right) {
		t.Fatal("first move rejected")
	}
	before := m.Lane()

	if m.TryMove(Left) {
		t.Fatal("move accepted during reload")
	}
	if m.Facing() != Right {
		t.Fatalf("facing = %s, ignored input must not turn", m.Facing())
	}
	if m.Lane() != before {
		t.Fatalf("lane changed to %+v", m.Lane())
	}

	tick(m, 2)
	if !m.TryMove(Left) || m.Facing() != Left {
		t.Fatal("move after reload should step and turn")
	}
}

func TestTrySkillGating(t *testing.T) {
	skills := Catalog()

	tests := []struct {
		name     string
		setup    func(m *Match)
		index    int
		wantFire bool
	}{
		{"out of range at start", func(m *Match) {}, 0, false},
		{"knife in range", func(m *Match) { m.MoveRight() }, 0, true},
		{"hammer still out of range", func(m *Match) { m.MoveRight() }, 1, false},
		{"index past catalog", func(m *Match) { m.MoveRight() }, len(skills), false},
		{"negative index", func(m *Match) { m.MoveRight() }, -1, false},
		{"during skill reload", func(m *Match) {
			m.MoveRight()
			m.UseSkill(skills[0])
			tick(m, 1)
		}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatch(DefaultRules())
			tt.setup(m)
			prev := m.Attack()
			got := m.TrySkill(skills, tt.index)
			if (got != nil) != tt.wantFire {
				t.Fatalf("fired = %v, want %v", got != nil, tt.wantFire)
			}
			if !tt.wantFire && m.Attack() != prev {
				t.Fatal("rejected skill changed the attack in flight")
			}
		})
	}
}
