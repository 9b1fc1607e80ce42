package duel

// Direction is a lane heading.
type Direction int

const (
	Right Direction = iota
	Left
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Lane holds the three scrolling positions, all in lane units.
type Lane struct {
	A          int
	B          int
	Background int
}

// Distance is the unsigned gap between A and B.
func (l Lane) Distance() int {
	d := l.B - l.A
	if d < 0 {
		return -d
	}
	return d
}

// Step applies one accepted move. Past the threshold A stays put and the
// background and B scroll instead.
func (l *Lane) Step(dir Direction, r Rules) {
	switch dir {
	case Right:
		if l.A >= r.ForwardThreshold {
			l.Background += r.MoveStep
			l.B -= r.MoveStep
			return
		}
		l.A += r.MoveStep
	case Left:
		if l.A <= r.BackwardThreshold {
			l.Background -= r.MoveStep
			l.B += r.MoveStep
			return
		}
		l.A -= r.MoveStep
	}
}
