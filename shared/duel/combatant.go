package duel

// Side identifies one of the two combatants.
type Side int

const (
	SideA Side = iota
	SideB
)

func (s Side) String() string {
	if s == SideB {
		return "B"
	}
	return "A"
}

// Combatant is one of the two duelists.
type Combatant struct {
	ID     string
	Name   string
	Health int
}

// Damage subtracts amount from health, never going below zero.
func (c *Combatant) Damage(amount int) {
	c.Health -= amount
	if c.Health < 0 {
		c.Health = 0
	}
}
