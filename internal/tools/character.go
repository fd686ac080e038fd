package tools

import (
	"context"
	"fmt"

	"github.com/spellwright/wizard-forge/internal/domain/character"
	"github.com/spellwright/wizard-forge/internal/services/creation"
)

// CharacterTools exposes the sheet mutators and checks to the
// orchestrator, translating service errors into envelopes.
type CharacterTools struct {
	creation creation.Service
}

// NewCharacterTools creates the character tool surface
func NewCharacterTools(svc creation.Service) *CharacterTools {
	return &CharacterTools{creation: svc}
}

// ValidateOutput is the validation report plus the step the orchestrator
// should dispatch next: "complete" once the sheet passes.
type ValidateOutput struct {
	character.Report
	NextStepID character.StepID `json:"next_step_id"`
}

// GetCharacterSheet returns the session's current sheet
func (t *CharacterTools) GetCharacterSheet(ctx context.Context, sessionID string) (Response[*character.Sheet], error) {
	return From(t.creation.GetSheet(ctx, sessionID))
}

// CheckNextStep reports the next incomplete creation step
func (t *CharacterTools) CheckNextStep(ctx context.Context, sessionID string) (Response[*character.Step], error) {
	return From(t.creation.NextStep(ctx, sessionID))
}

// SetCharacterName sets the character's name
func (t *CharacterTools) SetCharacterName(ctx context.Context, sessionID string, input *creation.SetNameInput) (Response[string], error) {
	return fromMutation(t.creation.SetName(ctx, sessionID, input))
}

// SetRace records the chosen race
func (t *CharacterTools) SetRace(ctx context.Context, sessionID string, input *creation.SetRaceInput) (Response[string], error) {
	return fromMutation(t.creation.SetRace(ctx, sessionID, input))
}

// SetAbilityScores sets the six base ability scores
func (t *CharacterTools) SetAbilityScores(ctx context.Context, sessionID string, input *creation.SetAbilityScoresInput) (Response[string], error) {
	return fromMutation(t.creation.SetAbilityScores(ctx, sessionID, input))
}

// SetClassWizard sets the class to Wizard with the chosen skills
func (t *CharacterTools) SetClassWizard(ctx context.Context, sessionID string, input *creation.SetClassWizardInput) (Response[string], error) {
	return fromMutation(t.creation.SetClassWizard(ctx, sessionID, input))
}

// SetBackground records the chosen background
func (t *CharacterTools) SetBackground(ctx context.Context, sessionID string, input *creation.SetBackgroundInput) (Response[string], error) {
	return fromMutation(t.creation.SetBackground(ctx, sessionID, input))
}

// ConfigureSpellcasting computes the wizard spellcasting statistics
func (t *CharacterTools) ConfigureSpellcasting(ctx context.Context, sessionID string) (Response[string], error) {
	return fromMutation(t.creation.ConfigureSpellcasting(ctx, sessionID))
}

// AddCantrip adds a cantrip to the known list
func (t *CharacterTools) AddCantrip(ctx context.Context, sessionID string, input *creation.AddSpellInput) (Response[string], error) {
	return fromMutation(t.creation.AddCantrip(ctx, sessionID, input))
}

// AddSpellbookSpell adds a level-1 spell to the spellbook
func (t *CharacterTools) AddSpellbookSpell(ctx context.Context, sessionID string, input *creation.AddSpellInput) (Response[string], error) {
	return fromMutation(t.creation.AddSpellbookSpell(ctx, sessionID, input))
}

// PrepareSpell prepares a spell already in the spellbook
func (t *CharacterTools) PrepareSpell(ctx context.Context, sessionID string, input *creation.AddSpellInput) (Response[string], error) {
	return fromMutation(t.creation.PrepareSpell(ctx, sessionID, input))
}

// ComputeDerivedStats recomputes the derived combat statistics
func (t *CharacterTools) ComputeDerivedStats(ctx context.Context, sessionID string) (Response[character.DerivedStats], error) {
	out, err := t.creation.ComputeDerivedStats(ctx, sessionID)
	if err != nil {
		return From(character.DerivedStats{}, err)
	}
	return Success(out.Stats), nil
}

// ValidateCharacterSheet runs the final completeness check. A failing
// sheet still gets its full error list in the result so the orchestrator
// can present a complete punch-list.
func (t *CharacterTools) ValidateCharacterSheet(ctx context.Context, sessionID string) (Response[ValidateOutput], error) {
	report, err := t.creation.Validate(ctx, sessionID)
	if err != nil {
		return From(ValidateOutput{}, err)
	}

	if !report.Valid {
		return Response[ValidateOutput]{
			Status:  StatusFailure,
			Message: fmt.Sprintf("Validation failed with %d error(s)", len(report.Errors)),
			Result: ValidateOutput{
				Report:     *report,
				NextStepID: character.StepValidation,
			},
		}, nil
	}

	return Success(ValidateOutput{
		Report:     *report,
		NextStepID: character.StepComplete,
	}), nil
}

// fromMutation reduces a mutation result to its confirmation line
func fromMutation(result *creation.MutationResult, err error) (Response[string], error) {
	if err != nil {
		return From("", err)
	}
	return Success(result.Message), nil
}
