package duel

import "time"

// Rules holds the fixed tuning values of a lane duel.
type Rules struct {
	StartA          int
	StartB          int
	StartBackground int
	StartHealth     int

	MoveStep          int
	ForwardThreshold  int // A at or past this scrolls the lane instead of moving
	BackwardThreshold int
	MoveReload        time.Duration

	CooldownStep     time.Duration // amount removed per tick
	CooldownInterval time.Duration // time between ticks

	AttackTravel  time.Duration
	AttackOffsetA int // projectile spawns this far in front of A
	AttackOffsetB int // and lands this far short of B
}

// DefaultRules returns the stock duel tuning.
func DefaultRules() Rules {
	return Rules{
		StartA:          300,
		StartB:          800,
		StartBackground: 0,
		StartHealth:     100,

		MoveStep:          100,
		ForwardThreshold:  500,
		BackwardThreshold: 200,
		MoveReload:        2000 * time.Millisecond,

		CooldownStep:     1000 * time.Millisecond,
		CooldownInterval: 1000 * time.Millisecond,

		AttackTravel:  time.Second,
		AttackOffsetA: 50,
		AttackOffsetB: 50,
	}
}
