// Package creation owns the character-sheet mutation engine: every
// operation loads the session's sheet, validates the change against the
// level-1 wizard rules, applies it, and persists the full replacement.
// Nothing is written on a failed validation.
package creation

import (
	"context"

	"github.com/spellwright/wizard-forge/internal/domain/character"
	forgeerr "github.com/spellwright/wizard-forge/internal/errors"
	"github.com/spellwright/wizard-forge/internal/repositories/sheets"
	"github.com/spellwright/wizard-forge/internal/services/lookup"
)

// Service defines the character creation operations. Every operation is
// scoped to one session's sheet.
type Service interface {
	// GetSheet returns the session's current sheet
	GetSheet(ctx context.Context, sessionID string) (*character.Sheet, error)

	// NextStep derives the next incomplete creation step for the session
	NextStep(ctx context.Context, sessionID string) (*character.Step, error)

	// SetName sets the character's name
	SetName(ctx context.Context, sessionID string, input *SetNameInput) (*MutationResult, error)

	// SetRace records the chosen race and its traits
	SetRace(ctx context.Context, sessionID string, input *SetRaceInput) (*MutationResult, error)

	// SetAbilityScores sets the six base ability scores
	SetAbilityScores(ctx context.Context, sessionID string, input *SetAbilityScoresInput) (*MutationResult, error)

	// SetClassWizard sets the class to Wizard with the chosen skills
	SetClassWizard(ctx context.Context, sessionID string, input *SetClassWizardInput) (*MutationResult, error)

	// SetBackground records the chosen background and its grants
	SetBackground(ctx context.Context, sessionID string, input *SetBackgroundInput) (*MutationResult, error)

	// ConfigureSpellcasting computes the wizard spellcasting statistics
	ConfigureSpellcasting(ctx context.Context, sessionID string) (*MutationResult, error)

	// AddCantrip adds a cantrip to the known list
	AddCantrip(ctx context.Context, sessionID string, input *AddSpellInput) (*MutationResult, error)

	// AddSpellbookSpell adds a level-1 spell to the spellbook
	AddSpellbookSpell(ctx context.Context, sessionID string, input *AddSpellInput) (*MutationResult, error)

	// PrepareSpell prepares a spell already in the spellbook
	PrepareSpell(ctx context.Context, sessionID string, input *AddSpellInput) (*MutationResult, error)

	// ComputeDerivedStats (re)computes AC, initiative, passive perception
	// and max HP from the current ability totals
	ComputeDerivedStats(ctx context.Context, sessionID string) (*ComputeDerivedStatsOutput, error)

	// Validate runs the final cross-field completeness check
	Validate(ctx context.Context, sessionID string) (*character.Report, error)
}

// MutationResult is the shared success payload of every mutator: the
// updated sheet and a human confirmation line.
type MutationResult struct {
	Sheet   *character.Sheet
	Message string
}

// ComputeDerivedStatsOutput holds the recomputed combat statistics
type ComputeDerivedStatsOutput struct {
	Sheet *character.Sheet
	Stats character.DerivedStats
}

type service struct {
	repo   sheets.Repository
	lookup lookup.Service
}

// ServiceConfig holds configuration for the creation service
type ServiceConfig struct {
	Repository sheets.Repository
	Lookup     lookup.Service
}

// NewService creates a new creation service
func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil {
		return nil, forgeerr.InvalidArgument("config cannot be nil")
	}
	if cfg.Repository == nil {
		return nil, forgeerr.InvalidArgument("sheet repository is required")
	}
	if cfg.Lookup == nil {
		return nil, forgeerr.InvalidArgument("lookup service is required")
	}

	return &service{
		repo:   cfg.Repository,
		lookup: cfg.Lookup,
	}, nil
}

func (s *service) GetSheet(ctx context.Context, sessionID string) (*character.Sheet, error) {
	return s.repo.Get(ctx, sessionID)
}

func (s *service) NextStep(ctx context.Context, sessionID string) (*character.Step, error) {
	sheet, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	step := character.NextStep(sheet)
	return &step, nil
}

func (s *service) Validate(ctx context.Context, sessionID string) (*character.Report, error) {
	sheet, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return character.Validate(sheet), nil
}
