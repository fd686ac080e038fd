// Package rulebook holds the immutable reference records and closed
// enumerations of the ruleset: spells, races, backgrounds, and the wizard
// class constants. Records are loaded once at startup and never mutated.
package rulebook

import "strings"

// School is a school of magic
type School string

const (
	SchoolAbjuration    School = "abjuration"
	SchoolConjuration   School = "conjuration"
	SchoolDivination    School = "divination"
	SchoolEnchantment   School = "enchantment"
	SchoolEvocation     School = "evocation"
	SchoolIllusion      School = "illusion"
	SchoolNecromancy    School = "necromancy"
	SchoolTransmutation School = "transmutation"
)

// Schools returns every legal school, in declaration order
func Schools() []School {
	return []School{
		SchoolAbjuration,
		SchoolConjuration,
		SchoolDivination,
		SchoolEnchantment,
		SchoolEvocation,
		SchoolIllusion,
		SchoolNecromancy,
		SchoolTransmutation,
	}
}

// Valid reports whether s is a legal school
func (s School) Valid() bool {
	for _, school := range Schools() {
		if s == school {
			return true
		}
	}
	return false
}

// SpellClass is a character class that can appear on a spell's class list
type SpellClass string

const (
	ClassBard     SpellClass = "bard"
	ClassCleric   SpellClass = "cleric"
	ClassDruid    SpellClass = "druid"
	ClassPaladin  SpellClass = "paladin"
	ClassRanger   SpellClass = "ranger"
	ClassSorcerer SpellClass = "sorcerer"
	ClassWarlock  SpellClass = "warlock"
	ClassWizard   SpellClass = "wizard"
)

// SpellClasses returns every legal spell class, in declaration order
func SpellClasses() []SpellClass {
	return []SpellClass{
		ClassBard,
		ClassCleric,
		ClassDruid,
		ClassPaladin,
		ClassRanger,
		ClassSorcerer,
		ClassWarlock,
		ClassWizard,
	}
}

// Valid reports whether c is a legal spell class
func (c SpellClass) Valid() bool {
	for _, class := range SpellClasses() {
		if c == class {
			return true
		}
	}
	return false
}

// Spell is one spell record from the bundled reference data
type Spell struct {
	Name           string       `json:"name"`
	Level          int          `json:"level"`
	School         School       `json:"school"`
	Classes        []SpellClass `json:"classes"`
	ActionType     string       `json:"actionType"`
	Concentration  bool         `json:"concentration"`
	Ritual         bool         `json:"ritual"`
	Range          string       `json:"range"`
	Components     []string     `json:"components"`
	Material       string       `json:"material,omitempty"`
	Duration       string       `json:"duration"`
	Description    string       `json:"description"`
	CantripUpgrade string       `json:"cantripUpgrade,omitempty"`
}

// HasClass reports whether the spell is on the given class's spell list
func (s *Spell) HasClass(class SpellClass) bool {
	for _, c := range s.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// IsCantrip reports whether the spell is a level-0 spell
func (s *Spell) IsCantrip() bool {
	return s.Level == 0
}

// JoinSchools renders the school list for error messages
func JoinSchools() string {
	schools := Schools()
	parts := make([]string, len(schools))
	for i, s := range schools {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

// JoinSpellClasses renders the spell class list for error messages
func JoinSpellClasses() string {
	classes := SpellClasses()
	parts := make([]string, len(classes))
	for i, c := range classes {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}
