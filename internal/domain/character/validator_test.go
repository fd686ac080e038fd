package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spellwright/wizard-forge/internal/domain/character"
	"github.com/spellwright/wizard-forge/internal/domain/rulebook"
)

func completeSheet() *character.Sheet {
	sheet := character.NewSheet()
	sheet.Name = "Fizban"
	sheet.Race = "Gnome"
	sheet.Size = rulebook.SizeSmall
	sheet.AbilityScores = character.AbilityScores{
		Strength:     8,
		Dexterity:    14,
		Constitution: 13,
		Intelligence: 15,
		Wisdom:       12,
		Charisma:     10,
	}
	sheet.CharacterClass = rulebook.WizardClassName
	sheet.HitDie = rulebook.WizardHitDie
	sheet.Background = "Sage"
	sheet.BackgroundAbilityBonuses = map[rulebook.Ability]int{
		rulebook.AbilityIntelligence: 2,
		rulebook.AbilityConstitution: 1,
	}
	sheet.SpellcastingAbility = "Intelligence"
	maxPrepared := 4
	sheet.MaxPreparedSpells = &maxPrepared
	sheet.CantripsKnown = []string{"Fire Bolt", "Mage Hand", "Prestidigitation"}
	sheet.Spellbook = []string{
		"Magic Missile", "Shield", "Mage Armor", "Detect Magic", "Sleep", "Thunderwave",
	}
	sheet.PreparedSpells = []string{"Magic Missile", "Shield"}
	sheet.RecalculateDerivedStats()
	return sheet
}

func TestValidate_EmptySheetCollectsAllViolations(t *testing.T) {
	report := character.Validate(character.NewSheet())

	require.False(t, report.Valid)
	assert.Nil(t, report.Summary)

	fields := make([]string, 0, len(report.Errors))
	for _, violation := range report.Errors {
		fields = append(fields, violation.Field)
	}
	// One pass reports at least race, class, background, cantrips,
	// spellbook, AC and HP together
	assert.Contains(t, fields, "race")
	assert.Contains(t, fields, "character_class")
	assert.Contains(t, fields, "background")
	assert.Contains(t, fields, "cantrips_known")
	assert.Contains(t, fields, "spellbook")
	assert.Contains(t, fields, "armor_class")
	assert.Contains(t, fields, "max_hp")
	assert.GreaterOrEqual(t, len(report.Errors), 4)
}

func TestValidate_CompleteSheet(t *testing.T) {
	report := character.Validate(completeSheet())

	require.True(t, report.Valid)
	assert.Empty(t, report.Errors)
	require.NotNil(t, report.Summary)
	assert.Equal(t, "Fizban", report.Summary.Name)
	assert.Equal(t, "Wizard 1", report.Summary.Class)
	assert.Equal(t, 17, report.Summary.Abilities[rulebook.AbilityIntelligence])
	require.NotNil(t, report.Summary.HP)
	assert.Equal(t, 8, *report.Summary.HP) // 6 + floor((14-10)/2)
}

func TestValidate_AbilityScoreOutOfRange(t *testing.T) {
	sheet := completeSheet()
	sheet.AbilityScores.Strength = 0
	sheet.BackgroundAbilityBonuses[rulebook.AbilityStrength] = 0

	report := character.Validate(sheet)

	require.False(t, report.Valid)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "ability_scores.strength", report.Errors[0].Field)
	assert.Contains(t, report.Errors[0].Message, "out of range")
}

func TestValidate_TooManyPreparedSpells(t *testing.T) {
	sheet := completeSheet()
	maxPrepared := 1
	sheet.MaxPreparedSpells = &maxPrepared

	report := character.Validate(sheet)

	require.False(t, report.Valid)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "prepared_spells", report.Errors[0].Field)
}

func TestValidate_UnnamedWizardFallback(t *testing.T) {
	sheet := completeSheet()
	sheet.Name = ""

	report := character.Validate(sheet)

	require.True(t, report.Valid)
	assert.Equal(t, "Unnamed Wizard", report.Summary.Name)
}

func TestValidate_WrongSpellCounts(t *testing.T) {
	sheet := completeSheet()
	sheet.CantripsKnown = sheet.CantripsKnown[:2]
	sheet.Spellbook = sheet.Spellbook[:5]

	report := character.Validate(sheet)

	require.False(t, report.Valid)
	assert.Len(t, report.Errors, 2)
}
