package character

import (
	"fmt"

	"github.com/spellwright/wizard-forge/internal/domain/rulebook"
)

// StepID identifies one of the ten ordered creation phases. The values are
// the sub-flow identifiers the orchestrator dispatches on.
type StepID string

const (
	StepRace           StepID = "race_agent"
	StepAbilityScores  StepID = "ability_score_agent"
	StepClass          StepID = "class_agent"
	StepBackground     StepID = "background_agent"
	StepSpellcasting   StepID = "spellcasting_agent"
	StepSpellbook      StepID = "spellbook_agent"
	StepCantrips       StepID = "cantrip_agent"
	StepPreparedSpells StepID = "prepared_spells_agent"
	StepDerivedStats   StepID = "derived_stats_agent"
	StepValidation     StepID = "validation_agent"

	// StepComplete is the terminal value reported once validation passes
	StepComplete StepID = "complete"
)

// Step is the sequencer's answer to "what next"
type Step struct {
	ID     StepID `json:"next_step_id"`
	Label  string `json:"human_label"`
	Reason string `json:"reason"`
}

// NextStep derives the single next incomplete creation step from the
// sheet's current field values. It is stateless: CompletedSteps is never
// consulted, and re-evaluating an unchanged sheet returns the same step.
// The ten outcomes form a fixed precedence; the first unmet condition wins.
func NextStep(sheet *Sheet) Step {
	if sheet.Name == "" || sheet.Race == "" {
		return Step{
			ID:     StepRace,
			Label:  "Name & Race Selection",
			Reason: "Character needs a name and race",
		}
	}

	// An all-default ability block is treated as unset. A deliberate
	// all-10s spread is indistinguishable from untouched scores; that
	// ambiguity is accepted, not resolved here.
	if sheet.AbilityScores.AllDefault() {
		return Step{
			ID:     StepAbilityScores,
			Label:  "Ability Scores",
			Reason: "Ability scores haven't been set yet",
		}
	}

	if sheet.CharacterClass == "" {
		return Step{
			ID:     StepClass,
			Label:  "Class Setup",
			Reason: "Need to set up the Wizard class and choose skills",
		}
	}

	if sheet.Background == "" {
		return Step{
			ID:     StepBackground,
			Label:  "Background Selection",
			Reason: "Need to choose a background",
		}
	}

	if sheet.SpellcastingAbility == "" {
		return Step{
			ID:     StepSpellcasting,
			Label:  "Spellcasting Setup",
			Reason: "Need to configure spellcasting stats",
		}
	}

	if len(sheet.Spellbook) < rulebook.WizardSpellbookSize {
		return Step{
			ID:    StepSpellbook,
			Label: "Spellbook Selection",
			Reason: fmt.Sprintf("Need to choose %d level-1 spells for the spellbook",
				rulebook.WizardSpellbookSize),
		}
	}

	if len(sheet.CantripsKnown) < rulebook.WizardCantripsKnown {
		return Step{
			ID:     StepCantrips,
			Label:  "Cantrip Selection",
			Reason: fmt.Sprintf("Need to choose %d cantrips", rulebook.WizardCantripsKnown),
		}
	}

	if len(sheet.PreparedSpells) == 0 {
		return Step{
			ID:     StepPreparedSpells,
			Label:  "Prepared Spells",
			Reason: "Need to choose which spells to prepare",
		}
	}

	if sheet.ArmorClass == nil {
		return Step{
			ID:     StepDerivedStats,
			Label:  "Final Stats Calculation",
			Reason: "Need to calculate derived stats (AC, initiative, etc.)",
		}
	}

	return Step{
		ID:     StepValidation,
		Label:  "Final Validation & Summary",
		Reason: "All steps complete, ready for final validation",
	}
}
