package duel

import (
	"testing"
	"time"
)

func TestCatalogIsFixedAndOrdered(t *testing.T) {
	skills := Catalog()
	if len(skills) != 2 {
		t.Fatalf("catalog size = %d, want 2", len(skills))
	}

	want := []struct {
		name     string
		damage   int
		cooldown time.Duration
		rng      int
	}{
		{"Knife", 30, 4000 * time.Millisecond, 400},
		{"Hammer", 15, 2000 * time.Millisecond, 100},
	}
	for i, w := range want {
		s := skills[i]
		if s.Name != w.name || s.Damage != w.damage || s.Cooldown != w.cooldown || s.Range != w.rng {
			t.Errorf("skill %d = %+v, want %+v", i, s, w)
		}
	}

	// Callers get a copy.
	skills[0].Damage = 999
	if Catalog()[0].Damage != 30 {
		t.Error("Catalog returned shared backing array")
	}
}

func TestParseSkillsRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", "skills: []"},
		{"missing name", "skills:\n  - id: \"1\"\n"},
		{"duplicate id", "skills:\n  - {id: \"1\", name: A}\n  - {id: \"1\", name: B}\n"},
		{"negative damage", "skills:\n  - {id: \"1\", name: A, damage: -1}\n"},
		{"not yaml", "skills: [[["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSkills([]byte(tt.yaml)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestTransformMirrorsWhenFacingLeft(t *testing.T) {
	s := Catalog()[0]
	if s.Transform.For(Right) == s.Transform.For(Left) {
		t.Fatal("left and right transforms should differ")
	}
}
