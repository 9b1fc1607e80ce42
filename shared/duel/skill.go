package duel

import (
	_ "embed"
	"fmt"
	"math"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed skills.yaml
var skillsYAML []byte

// Transform is the projectile orientation for each facing.
type Transform struct {
	Left  float64 // radians
	Right float64
}

// For returns the rotation used when the attacker faces dir.
func (t Transform) For(dir Direction) float64 {
	if dir == Left {
		return t.Left
	}
	return t.Right
}

// Skill is an immutable catalog entry.
type Skill struct {
	ID          string
	Name        string
	Damage      int
	Cooldown    time.Duration
	Range       int
	AttackImage string
	Transform   Transform
}

type skillsFile struct {
	Skills []skillEntry `yaml:"skills"`
}

type skillEntry struct {
	ID         string  `yaml:"id"`
	Name       string  `yaml:"name"`
	Damage     int     `yaml:"damage"`
	CooldownMS int     `yaml:"cooldown_ms"`
	Range      int     `yaml:"range"`
	Image      string  `yaml:"image"`
	RotateDeg  float64 `yaml:"rotate_deg"`
}

var catalog []Skill

func init() {
	skills, err := ParseSkills(skillsYAML)
	if err != nil {
		panic("embedded skill catalog: " + err.Error())
	}
	catalog = skills
}

// Catalog returns the fixed, ordered skill list.
func Catalog() []Skill {
	out := make([]Skill, len(catalog))
	copy(out, catalog)
	return out
}

// ParseSkills decodes a YAML skill list.
func ParseSkills(b []byte) ([]Skill, error) {
	var f skillsFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse skills: %w", err)
	}
	if len(f.Skills) == 0 {
		return nil, fmt.Errorf("parse skills: empty catalog")
	}

	seen := make(map[string]bool, len(f.Skills))
	skills := make([]Skill, 0, len(f.Skills))
	for i, e := range f.Skills {
		if e.ID == "" || e.Name == "" {
			return nil, fmt.Errorf("parse skills: entry %d missing id or name", i)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("parse skills: duplicate id %q", e.ID)
		}
		if e.Damage < 0 || e.CooldownMS < 0 || e.Range < 0 {
			return nil, fmt.Errorf("parse skills: %s has negative stats", e.Name)
		}
		seen[e.ID] = true

		rot := e.RotateDeg * math.Pi / 180
		skills = append(skills, Skill{
			ID:          e.ID,
			Name:        e.Name,
			Damage:      e.Damage,
			Cooldown:    time.Duration(e.CooldownMS) * time.Millisecond,
			Range:       e.Range,
			AttackImage: e.Image,
			// Facing left mirrors the throw.
			Transform: Transform{Left: math.Pi - rot, Right: rot},
		})
	}
	return skills, nil
}
