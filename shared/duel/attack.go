package duel

import (
	"time"

	"github.com/google/uuid"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Attack is the single attack in flight between activation and resolution.
type Attack struct {
	ID        string
	Skill     Skill
	Facing    Direction
	StartedAt time.Duration
	From, To  float64

	tween    *gween.Tween
	x        float64
	finished bool
}

func newAttack(s Skill, facing Direction, from, to float64, travel, now time.Duration) *Attack {
	return &Attack{
		ID:        uuid.NewString(),
		Skill:     s,
		Facing:    facing,
		StartedAt: now,
		From:      from,
		To:        to,
		tween:     gween.New(float32(from), float32(to), float32(travel.Seconds()), ease.Linear),
		x:         from,
	}
}

// advance moves the projectile and reports whether travel just completed.
func (a *Attack) advance(dt time.Duration) bool {
	if a.finished {
		return false
	}
	x, done := a.tween.Update(float32(dt.Seconds()))
	a.x = float64(x)
	if done {
		a.finished = true
		return true
	}
	return false
}

// X is the projectile's current lane position.
func (a *Attack) X() float64 {
	return a.x
}

// Progress is how far along the travel the projectile is, in [0,1].
func (a *Attack) Progress() float64 {
	span := a.To - a.From
	if span == 0 {
		if a.finished {
			return 1
		}
		return 0
	}
	p := (a.x - a.From) / span
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Hit records one resolved attack.
type Hit struct {
	AttackID    string
	Skill       Skill
	Target      Side
	Damage      int
	HealthAfter int
	At          time.Duration
}
