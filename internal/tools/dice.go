package tools

import (
	"github.com/spellwright/wizard-forge/internal/dice"
)

// DiceTools exposes dice rolling to the orchestrator for ability score
// generation and table-talk rolls.
type DiceTools struct {
	roller dice.Roller
}

// NewDiceTools creates the dice tool surface. A nil roller falls back to
// the standard random roller.
func NewDiceTools(roller dice.Roller) *DiceTools {
	if roller == nil {
		roller = dice.NewRandomRoller()
	}
	return &DiceTools{roller: roller}
}

// RollDice rolls standard dice notation like "2d6+3" or "d20"
func (t *DiceTools) RollDice(notation string) (Response[*dice.RollResult], error) {
	return From(dice.RollNotation(t.roller, notation))
}

// RollAbilityScore rolls 4d6 drop lowest for one ability score
func (t *DiceTools) RollAbilityScore() (Response[int], error) {
	return From(dice.RollAbilityScore(t.roller))
}
