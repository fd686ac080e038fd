package dice

import (
	"math/rand"

	"github.com/spellwright/wizard-forge/internal/errors"
)

// randomRoller implements Roller with math/rand
type randomRoller struct{}

// NewRandomRoller creates a new random dice roller
func NewRandomRoller() Roller {
	return &randomRoller{}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.InvalidArgument("dice count must be at least 1")
	}
	if sides < 1 {
		return nil, errors.InvalidArgument("dice sides must be at least 1")
	}

	rolls := make([]int, count)
	total := 0
	highest, lowest := 0, 0
	for i := 0; i < count; i++ {
		roll := rand.Intn(sides) + 1
		rolls[i] = roll
		total += roll
		if i == 0 || roll > highest {
			highest = roll
		}
		if i == 0 || roll < lowest {
			lowest = roll
		}
	}

	return &RollResult{
		Total:   total + bonus,
		Rolls:   rolls,
		Bonus:   bonus,
		Count:   count,
		Sides:   sides,
		Highest: highest,
		Lowest:  lowest,
	}, nil
}
