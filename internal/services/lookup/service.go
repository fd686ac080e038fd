// Package lookup answers reference questions about spells, races and
// backgrounds. Free-text names are resolved fuzzily; filters are validated
// eagerly so a bad filter value is reported with the legal values instead
// of silently matching nothing.
package lookup

import (
	"github.com/spellwright/wizard-forge/internal/data"
	"github.com/spellwright/wizard-forge/internal/domain/rulebook"
	forgeerr "github.com/spellwright/wizard-forge/internal/errors"
)

// Service defines the reference lookup operations
type Service interface {
	// FindSpell resolves a free-text spell name to its full record
	FindSpell(input *FindSpellInput) (*FindSpellOutput, error)

	// ListSpells returns spells matching every provided filter
	ListSpells(input *ListSpellsInput) (*ListSpellsOutput, error)

	// CompareSpells resolves several spell names side by side
	CompareSpells(input *CompareSpellsInput) (*CompareSpellsOutput, error)

	// ListWizardCantrips returns all wizard cantrips
	ListWizardCantrips() *ListSpellsOutput

	// ListWizardFirstLevelSpells returns all level-1 wizard spells
	ListWizardFirstLevelSpells() *ListSpellsOutput

	// FindRace resolves a free-text race name to its full record
	FindRace(input *FindRaceInput) (*FindRaceOutput, error)

	// ListRaces returns races matching every provided filter
	ListRaces(input *ListRacesInput) (*ListRacesOutput, error)

	// RaceAbilityBonuses returns the ability bonuses a race grants
	RaceAbilityBonuses(input *FindRaceInput) (*RaceAbilityBonusesOutput, error)

	// ListRacesByAbility returns races granting a bonus to the ability
	ListRacesByAbility(input *ListRacesByAbilityInput) (*ListRacesOutput, error)

	// FindBackground resolves a free-text background name to its record
	FindBackground(input *FindBackgroundInput) (*FindBackgroundOutput, error)

	// ListBackgrounds returns all backgrounds
	ListBackgrounds() *ListBackgroundsOutput

	// Schools returns the legal spell school names
	Schools() []string

	// SpellClasses returns the legal spellcasting class names
	SpellClasses() []string

	// Sizes returns the legal creature size names
	Sizes() []string
}

type service struct {
	store *data.Store
}

// ServiceConfig holds configuration for the lookup service
type ServiceConfig struct {
	Store *data.Store
}

// NewService creates a new lookup service
func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil || cfg.Store == nil {
		return nil, forgeerr.InvalidArgument("reference data store is required")
	}

	return &service{store: cfg.Store}, nil
}

func (s *service) Schools() []string {
	schools := rulebook.Schools()
	out := make([]string, len(schools))
	for i, school := range schools {
		out[i] = string(school)
	}
	return out
}

func (s *service) SpellClasses() []string {
	classes := rulebook.SpellClasses()
	out := make([]string, len(classes))
	for i, class := range classes {
		out[i] = string(class)
	}
	return out
}

func (s *service) Sizes() []string {
	sizes := rulebook.Sizes()
	out := make([]string, len(sizes))
	for i, size := range sizes {
		out[i] = string(size)
	}
	return out
}
