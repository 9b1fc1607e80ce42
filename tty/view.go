package tty

import (
	"fmt"
	"strings"

	"github.com/automoto/laneduel/shared/duel"
)

// UnitsPerCell is how many lane units one terminal column covers.
const UnitsPerCell = 25

// LaneRow draws the lane as a single line of width cells: the scrolling
// backdrop, both fighters and the projectile in flight.
func LaneRow(m *duel.Match, width int) string {
	if width <= 0 {
		return ""
	}
	lane := m.Lane()
	row := make([]rune, width)

	// Backdrop posts every eight cells, shifted by the background offset.
	shift := floorDiv(lane.Background, UnitsPerCell)
	for i := range row {
		if mod(i+shift, 8) == 0 {
			row[i] = '|'
		} else {
			row[i] = '.'
		}
	}

	if atk := m.Attack(); atk != nil {
		put(row, int(atk.X())/UnitsPerCell, '*')
	}

	a := 'A'
	if m.Facing() == duel.Left {
		a = 'a'
	}
	put(row, lane.B/UnitsPerCell, 'B')
	put(row, lane.A/UnitsPerCell, a)
	return string(row)
}

// HealthBar renders health as a fixed-width bar, e.g. "[#####-----]".
func HealthBar(health, maxHealth, width int) string {
	if width <= 0 {
		return "[]"
	}
	filled := 0
	if maxHealth > 0 && health > 0 {
		filled = health * width / maxHealth
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// StatusLines returns the readouts shown under the lane.
func StatusLines(m *duel.Match, skills []duel.Skill) []string {
	a := m.Combatant(duel.SideA)
	b := m.Combatant(duel.SideB)
	maxHealth := m.Rules().StartHealth

	lines := []string{
		fmt.Sprintf("%s %s %3d   %s %s %3d", a.Name, HealthBar(a.Health, maxHealth, 20), a.Health,
			b.Name, HealthBar(b.Health, maxHealth, 20), b.Health),
		fmt.Sprintf("DISTANCE: %g", m.DisplayDistance()),
		fmt.Sprintf("Move cooldown: %d", m.MoveCooldown().Remaining().Milliseconds()),
		fmt.Sprintf("Skill cooldown: %d", m.SkillCooldown().Remaining().Milliseconds()),
	}

	var sb strings.Builder
	for i, s := range skills {
		if i > 0 {
			sb.WriteString("  ")
		}
		state := "ready"
		if !m.CanUseSkill(s) {
			state = "off"
		}
		fmt.Fprintf(&sb, "[%d] %s (%s)", i+1, s.Name, state)
	}
	lines = append(lines, sb.String())
	return lines
}

func put(row []rune, i int, r rune) {
	if i >= 0 && i < len(row) {
		row[i] = r
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func mod(a, b int) int {
	return ((a % b) + b) % b
}
