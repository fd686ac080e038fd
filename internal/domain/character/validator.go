package character

import (
	"fmt"
	"strings"

	"github.com/spellwright/wizard-forge/internal/domain/rulebook"
)

const (
	minAbilityScore = 1
	maxAbilityScore = 30
)

// ValidationError is one violation found by Validate
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Summary is the readable digest of a completed sheet
type Summary struct {
	Name           string                   `json:"name"`
	Race           string                   `json:"race"`
	Class          string                   `json:"class"`
	Background     string                   `json:"background"`
	HP             *int                     `json:"hp"`
	AC             *int                     `json:"ac"`
	Abilities      map[rulebook.Ability]int `json:"abilities"`
	Cantrips       []string                 `json:"cantrips"`
	Spellbook      []string                 `json:"spellbook"`
	PreparedSpells []string                 `json:"prepared_spells"`
}

// Report is the outcome of the final cross-field check
type Report struct {
	Valid   bool              `json:"valid"`
	Errors  []ValidationError `json:"errors,omitempty"`
	Summary *Summary          `json:"summary,omitempty"`
}

// Validate runs the full completeness and legality check over the sheet.
// It never short-circuits: every violation is collected so the caller can
// present one complete punch-list.
func Validate(sheet *Sheet) *Report {
	var errs []ValidationError

	if sheet.Race == "" {
		errs = append(errs, ValidationError{Field: "race", Message: "Race not set"})
	}
	if sheet.CharacterClass == "" {
		errs = append(errs, ValidationError{Field: "character_class", Message: "Class not set"})
	}
	if sheet.Background == "" {
		errs = append(errs, ValidationError{Field: "background", Message: "Background not set"})
	}

	for _, ability := range rulebook.Abilities() {
		total := sheet.TotalScore(ability)
		if total < minAbilityScore || total > maxAbilityScore {
			errs = append(errs, ValidationError{
				Field: fmt.Sprintf("ability_scores.%s", ability),
				Message: fmt.Sprintf("%s score %d is out of range (%d-%d)",
					capitalize(string(ability)), total, minAbilityScore, maxAbilityScore),
			})
		}
	}

	if len(sheet.CantripsKnown) != rulebook.WizardCantripsKnown {
		errs = append(errs, ValidationError{
			Field: "cantrips_known",
			Message: fmt.Sprintf("Expected %d cantrips, found %d",
				rulebook.WizardCantripsKnown, len(sheet.CantripsKnown)),
		})
	}

	if len(sheet.Spellbook) != rulebook.WizardSpellbookSize {
		errs = append(errs, ValidationError{
			Field: "spellbook",
			Message: fmt.Sprintf("Expected %d spells in spellbook, found %d",
				rulebook.WizardSpellbookSize, len(sheet.Spellbook)),
		})
	}

	if sheet.MaxPreparedSpells != nil && len(sheet.PreparedSpells) > *sheet.MaxPreparedSpells {
		errs = append(errs, ValidationError{
			Field: "prepared_spells",
			Message: fmt.Sprintf("Too many prepared spells (%d/%d)",
				len(sheet.PreparedSpells), *sheet.MaxPreparedSpells),
		})
	}

	if sheet.ArmorClass == nil {
		errs = append(errs, ValidationError{Field: "armor_class", Message: "AC not computed"})
	}
	if sheet.MaxHP == nil {
		errs = append(errs, ValidationError{Field: "max_hp", Message: "HP not computed"})
	}

	if len(errs) > 0 {
		return &Report{Valid: false, Errors: errs}
	}

	name := sheet.Name
	if name == "" {
		name = "Unnamed Wizard"
	}

	return &Report{
		Valid: true,
		Summary: &Summary{
			Name:           name,
			Race:           sheet.Race,
			Class:          fmt.Sprintf("%s %d", sheet.CharacterClass, sheet.Level),
			Background:     sheet.Background,
			HP:             sheet.MaxHP,
			AC:             sheet.ArmorClass,
			Abilities:      sheet.TotalAbilityScores(),
			Cantrips:       sheet.CantripsKnown,
			Spellbook:      sheet.Spellbook,
			PreparedSpells: sheet.PreparedSpells,
		},
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
