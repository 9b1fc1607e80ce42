package components

import (
	"github.com/automoto/laneduel/shared/duel"
	"github.com/yohamta/donburi"
)

// DuelData holds the match controller for the scene.
// This is a singleton component - only one duel exists at a time.
type DuelData struct {
	Match  *duel.Match
	Skills []duel.Skill // Catalog order, drives the skill controls
}

var Duel = donburi.NewComponentType[DuelData]()
