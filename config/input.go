package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionSkill1
	ActionSkill2
	ActionSkill3
	ActionSkill4
	ActionFullscreen
	ActionDebug
	ActionWindowScale
	ActionRestart
	ActionCount // Must be last - used for array sizing
)

// SkillActions maps catalog order to the skill hotkey actions.
var SkillActions = []ActionID{ActionSkill1, ActionSkill2, ActionSkill3, ActionSkill4}

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft:    {Keys: []ebiten.Key{ebiten.KeyArrowLeft}},
			ActionMoveRight:   {Keys: []ebiten.Key{ebiten.KeyArrowRight}},
			ActionSkill1:      {Keys: []ebiten.Key{ebiten.KeyDigit1}},
			ActionSkill2:      {Keys: []ebiten.Key{ebiten.KeyDigit2}},
			ActionSkill3:      {Keys: []ebiten.Key{ebiten.KeyDigit3}},
			ActionSkill4:      {Keys: []ebiten.Key{ebiten.KeyDigit4}},
			ActionFullscreen:  {Keys: []ebiten.Key{ebiten.KeyF11}},
			ActionDebug:       {Keys: []ebiten.Key{ebiten.KeyF3}},
			ActionWindowScale: {Keys: []ebiten.Key{ebiten.KeyF10}},
			ActionRestart:     {Keys: []ebiten.Key{ebiten.KeyR}},
		},
	}
}
