// Package character owns the mutable character sheet aggregate and the pure
// rules logic over it: ability math, derived stats, the step sequencer, and
// the final validator.
package character

import (
	"github.com/spellwright/wizard-forge/internal/domain/rulebook"
)

// DefaultAbilityScore is the starting value of every ability
const DefaultAbilityScore = 10

// BaseSpeed is the walking speed before a race is chosen
const BaseSpeed = 30

// Level1ProficiencyBonus is the proficiency bonus at character level 1
const Level1ProficiencyBonus = 2

// AbilityScores holds the six base ability scores
type AbilityScores struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// NewAbilityScores returns the six abilities at their default of 10
func NewAbilityScores() AbilityScores {
	return AbilityScores{
		Strength:     DefaultAbilityScore,
		Dexterity:    DefaultAbilityScore,
		Constitution: DefaultAbilityScore,
		Intelligence: DefaultAbilityScore,
		Wisdom:       DefaultAbilityScore,
		Charisma:     DefaultAbilityScore,
	}
}

// Score returns the base score for the given ability
func (a AbilityScores) Score(ability rulebook.Ability) int {
	switch ability {
	case rulebook.AbilityStrength:
		return a.Strength
	case rulebook.AbilityDexterity:
		return a.Dexterity
	case rulebook.AbilityConstitution:
		return a.Constitution
	case rulebook.AbilityIntelligence:
		return a.Intelligence
	case rulebook.AbilityWisdom:
		return a.Wisdom
	case rulebook.AbilityCharisma:
		return a.Charisma
	}
	return 0
}

// AllDefault reports whether every ability still sits at the default of 10.
// The sequencer uses this as its "scores not set yet" heuristic; a player who
// deliberately assigns all 10s is indistinguishable from an untouched block.
func (a AbilityScores) AllDefault() bool {
	for _, ability := range rulebook.Abilities() {
		if a.Score(ability) != DefaultAbilityScore {
			return false
		}
	}
	return true
}

// Modifier computes the ability modifier floor((score-10)/2), rounding
// toward negative infinity so a score of 7 yields -2, not -1
func Modifier(score int) int {
	diff := score - DefaultAbilityScore
	if diff < 0 {
		return (diff - 1) / 2
	}
	return diff / 2
}

// Sheet is the character-creation document for a level-1 wizard. One sheet
// is owned by one creation session; every field that can be "unset" is
// either a pointer or an empty string so the stored document round-trips.
type Sheet struct {
	// CompletedSteps is free-form progress bookkeeping for the orchestrator.
	// It is never consulted by the sequencer, which derives progress from
	// the field values below.
	CompletedSteps []string `json:"completed_steps"`

	Name         string        `json:"name,omitempty"`
	Race         string        `json:"race,omitempty"`
	Size         rulebook.Size `json:"size,omitempty"`
	Speed        int           `json:"speed"`
	Darkvision   *int          `json:"darkvision,omitempty"`
	RacialTraits []string      `json:"racial_traits"`

	AbilityScores            AbilityScores            `json:"ability_scores"`
	BackgroundAbilityBonuses map[rulebook.Ability]int `json:"background_ability_bonuses"`

	CharacterClass string `json:"character_class,omitempty"`
	Level          int    `json:"level"`
	HitDie         string `json:"hit_die,omitempty"`
	MaxHP          *int   `json:"max_hp,omitempty"`

	SavingThrowProficiencies []string `json:"saving_throw_proficiencies"`
	SkillProficiencies       []string `json:"skill_proficiencies"`
	WeaponProficiencies      []string `json:"weapon_proficiencies"`
	ArmorProficiencies       []string `json:"armor_proficiencies"`
	ToolProficiencies        []string `json:"tool_proficiencies"`
	Languages                []string `json:"languages"`

	Background string `json:"background,omitempty"`
	OriginFeat string `json:"origin_feat,omitempty"`

	SpellcastingAbility string      `json:"spellcasting_ability,omitempty"`
	SpellSaveDC         *int        `json:"spell_save_dc,omitempty"`
	SpellAttackBonus    *int        `json:"spell_attack_bonus,omitempty"`
	SpellSlots          map[int]int `json:"spell_slots"`

	CantripsKnown     []string `json:"cantrips_known"`
	Spellbook         []string `json:"spellbook"`
	PreparedSpells    []string `json:"prepared_spells"`
	MaxPreparedSpells *int     `json:"max_prepared_spells,omitempty"`

	ProficiencyBonus  int  `json:"proficiency_bonus"`
	ArmorClass        *int `json:"armor_class,omitempty"`
	Initiative        *int `json:"initiative,omitempty"`
	PassivePerception *int `json:"passive_perception,omitempty"`
}

// NewSheet creates an empty sheet with the ruleset defaults
func NewSheet() *Sheet {
	return &Sheet{
		CompletedSteps:           []string{},
		Speed:                    BaseSpeed,
		RacialTraits:             []string{},
		AbilityScores:            NewAbilityScores(),
		BackgroundAbilityBonuses: map[rulebook.Ability]int{},
		Level:                    1,
		SavingThrowProficiencies: []string{},
		SkillProficiencies:       []string{},
		WeaponProficiencies:      []string{},
		ArmorProficiencies:       []string{},
		ToolProficiencies:        []string{},
		Languages:                []string{"Common"},
		SpellSlots:               map[int]int{},
		CantripsKnown:            []string{},
		Spellbook:                []string{},
		PreparedSpells:           []string{},
		ProficiencyBonus:         Level1ProficiencyBonus,
	}
}

// TotalScore returns base score plus background bonus for the ability
func (s *Sheet) TotalScore(ability rulebook.Ability) int {
	return s.AbilityScores.Score(ability) + s.BackgroundAbilityBonuses[ability]
}

// TotalModifier returns the modifier of the total score for the ability
func (s *Sheet) TotalModifier(ability rulebook.Ability) int {
	return Modifier(s.TotalScore(ability))
}

// TotalAbilityScores returns all six totals keyed by ability
func (s *Sheet) TotalAbilityScores() map[rulebook.Ability]int {
	totals := make(map[rulebook.Ability]int, 6)
	for _, ability := range rulebook.Abilities() {
		totals[ability] = s.TotalScore(ability)
	}
	return totals
}

// HasSkill reports whether the sheet is proficient in the skill
func (s *Sheet) HasSkill(skill string) bool {
	return contains(s.SkillProficiencies, skill)
}

// HasCantrip reports whether the cantrip is already known
func (s *Sheet) HasCantrip(name string) bool {
	return contains(s.CantripsKnown, name)
}

// InSpellbook reports whether the spell is already in the spellbook
func (s *Sheet) InSpellbook(name string) bool {
	return contains(s.Spellbook, name)
}

// IsPrepared reports whether the spell is already prepared
func (s *Sheet) IsPrepared(name string) bool {
	return contains(s.PreparedSpells, name)
}

// MergeSkillProficiencies appends the given skills, suppressing duplicates
// while preserving insertion order
func (s *Sheet) MergeSkillProficiencies(skills []string) {
	for _, skill := range skills {
		if !contains(s.SkillProficiencies, skill) {
			s.SkillProficiencies = append(s.SkillProficiencies, skill)
		}
	}
}

// AddToolProficiency appends the tool proficiency if it is new and non-empty
func (s *Sheet) AddToolProficiency(tool string) {
	if tool == "" || contains(s.ToolProficiencies, tool) {
		return
	}
	s.ToolProficiencies = append(s.ToolProficiencies, tool)
}

// WizardMaxHP computes max HP from the current total Constitution:
// hit die plus CON modifier, never below 1
func (s *Sheet) WizardMaxHP() int {
	hp := rulebook.WizardHitDieSides + s.TotalModifier(rulebook.AbilityConstitution)
	if hp < 1 {
		hp = 1
	}
	return hp
}

// DerivedStats holds the computed combat statistics
type DerivedStats struct {
	ArmorClass        int  `json:"armor_class"`
	Initiative        int  `json:"initiative"`
	PassivePerception int  `json:"passive_perception"`
	MaxHP             *int `json:"max_hp"`
}

// RecalculateDerivedStats (re)computes AC, initiative, passive perception,
// and, for a wizard, max HP, all from the current total ability scores.
// Idempotent: safe to call again whenever an input changes.
func (s *Sheet) RecalculateDerivedStats() DerivedStats {
	dexMod := s.TotalModifier(rulebook.AbilityDexterity)

	// Unarmored AC
	ac := 10 + dexMod
	s.ArmorClass = &ac

	initiative := dexMod
	s.Initiative = &initiative

	perception := s.TotalModifier(rulebook.AbilityWisdom)
	if s.HasSkill("Perception") {
		perception += s.ProficiencyBonus
	}
	passive := 10 + perception
	s.PassivePerception = &passive

	if s.CharacterClass == rulebook.WizardClassName {
		hp := s.WizardMaxHP()
		s.MaxHP = &hp
	}

	return DerivedStats{
		ArmorClass:        ac,
		Initiative:        initiative,
		PassivePerception: passive,
		MaxHP:             s.MaxHP,
	}
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
