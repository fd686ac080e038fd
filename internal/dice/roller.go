// Package dice rolls dice for the ability-score conversation and the
// roll_dice tool.
package dice

// Roller provides an interface for rolling dice
// This allows us to inject different implementations for testing
type Roller interface {
	// Roll rolls a number of dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)
}

// RollResult holds the outcome of a single roll
type RollResult struct {
	Total   int   `json:"total"`
	Rolls   []int `json:"rolls"`
	Bonus   int   `json:"bonus"`
	Count   int   `json:"count"`
	Sides   int   `json:"sides"`
	Highest int   `json:"highest"`
	Lowest  int   `json:"lowest"`
}
