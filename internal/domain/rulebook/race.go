package rulebook

import "strings"

// Size is a race size category. Only small and medium races are playable here.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
)

// Sizes returns every legal size
func Sizes() []Size {
	return []Size{SizeSmall, SizeMedium}
}

// Valid reports whether s is a legal size
func (s Size) Valid() bool {
	return s == SizeSmall || s == SizeMedium
}

// Ability names one of the six ability scores. AbilityAny is only legal on
// race bonus entries and filters, never on a character sheet.
type Ability string

const (
	AbilityStrength     Ability = "strength"
	AbilityDexterity    Ability = "dexterity"
	AbilityConstitution Ability = "constitution"
	AbilityIntelligence Ability = "intelligence"
	AbilityWisdom       Ability = "wisdom"
	AbilityCharisma     Ability = "charisma"
	AbilityAny          Ability = "any"
)

// Abilities returns the six sheet abilities, in the conventional order
func Abilities() []Ability {
	return []Ability{
		AbilityStrength,
		AbilityDexterity,
		AbilityConstitution,
		AbilityIntelligence,
		AbilityWisdom,
		AbilityCharisma,
	}
}

// Valid reports whether a is one of the six sheet abilities
func (a Ability) Valid() bool {
	for _, ability := range Abilities() {
		if a == ability {
			return true
		}
	}
	return false
}

// ValidBonusAbility reports whether a is legal on a race bonus entry or a
// race filter, which additionally allow "any"
func (a Ability) ValidBonusAbility() bool {
	return a == AbilityAny || a.Valid()
}

// AbilityBonus is one racial ability score increase
type AbilityBonus struct {
	Ability Ability `json:"ability"`
	Bonus   int     `json:"bonus"`
	Count   int     `json:"count,omitempty"`
}

// Race is one race record from the bundled reference data
type Race struct {
	Name          string         `json:"name"`
	AbilityScores []AbilityBonus `json:"abilityScores"`
	Darkvision    *int           `json:"darkvision"`
	Size          Size           `json:"size"`
	Source        string         `json:"source"`
}

// HasDarkvision reports whether the race sees in the dark at all
func (r *Race) HasDarkvision() bool {
	return r.Darkvision != nil
}

// GrantsBonusTo reports whether any of the race's bonuses applies to the
// given ability
func (r *Race) GrantsBonusTo(ability Ability) bool {
	for _, score := range r.AbilityScores {
		if score.Ability == ability {
			return true
		}
	}
	return false
}

// JoinSizes renders the size list for error messages
func JoinSizes() string {
	sizes := Sizes()
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

// JoinBonusAbilities renders the ability filter list for error messages,
// including "any"
func JoinBonusAbilities() string {
	abilities := Abilities()
	parts := make([]string, 0, len(abilities)+1)
	for _, a := range abilities {
		parts = append(parts, string(a))
	}
	parts = append(parts, string(AbilityAny))
	return strings.Join(parts, ", ")
}
