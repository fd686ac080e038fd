package tools

import (
	"github.com/spellwright/wizard-forge/internal/domain/rulebook"
	"github.com/spellwright/wizard-forge/internal/services/lookup"
)

// LookupTools exposes the reference lookups to the orchestrator
type LookupTools struct {
	lookup lookup.Service
}

// NewLookupTools creates the lookup tool surface
func NewLookupTools(svc lookup.Service) *LookupTools {
	return &LookupTools{lookup: svc}
}

// FindSpell resolves a free-text spell name
func (t *LookupTools) FindSpell(name string) (Response[*rulebook.Spell], error) {
	out, err := t.lookup.FindSpell(&lookup.FindSpellInput{Name: name})
	if err != nil {
		return From[*rulebook.Spell](nil, err)
	}
	return Success(out.Spell), nil
}

// ListSpells returns spells matching every provided filter
func (t *LookupTools) ListSpells(input *lookup.ListSpellsInput) (Response[[]rulebook.Spell], error) {
	out, err := t.lookup.ListSpells(input)
	if err != nil {
		return From[[]rulebook.Spell](nil, err)
	}
	return Success(out.Spells), nil
}

// CompareSpells resolves several spell names side by side, failing on
// the first name that does not resolve
func (t *LookupTools) CompareSpells(names []string) (Response[[]*rulebook.Spell], error) {
	out, err := t.lookup.CompareSpells(&lookup.CompareSpellsInput{Names: names})
	if err != nil {
		return From[[]*rulebook.Spell](nil, err)
	}
	return Success(out.Spells), nil
}

// ListWizardCantrips returns the names of all wizard cantrips
func (t *LookupTools) ListWizardCantrips() (Response[[]string], error) {
	return Success(spellNames(t.lookup.ListWizardCantrips())), nil
}

// ListWizardFirstLevelSpells returns the names of all level-1 wizard spells
func (t *LookupTools) ListWizardFirstLevelSpells() (Response[[]string], error) {
	return Success(spellNames(t.lookup.ListWizardFirstLevelSpells())), nil
}

// FindRace resolves a free-text race name
func (t *LookupTools) FindRace(name string) (Response[*rulebook.Race], error) {
	out, err := t.lookup.FindRace(&lookup.FindRaceInput{Name: name})
	if err != nil {
		return From[*rulebook.Race](nil, err)
	}
	return Success(out.Race), nil
}

// ListRaces returns races matching every provided filter
func (t *LookupTools) ListRaces(input *lookup.ListRacesInput) (Response[[]rulebook.Race], error) {
	out, err := t.lookup.ListRaces(input)
	if err != nil {
		return From[[]rulebook.Race](nil, err)
	}
	return Success(out.Races), nil
}

// RaceAbilityBonuses returns the ability bonuses a race grants
func (t *LookupTools) RaceAbilityBonuses(name string) (Response[*lookup.RaceAbilityBonusesOutput], error) {
	return From(t.lookup.RaceAbilityBonuses(&lookup.FindRaceInput{Name: name}))
}

// ListRacesByAbility returns races granting a bonus to the ability
func (t *LookupTools) ListRacesByAbility(ability string) (Response[[]rulebook.Race], error) {
	out, err := t.lookup.ListRacesByAbility(&lookup.ListRacesByAbilityInput{Ability: ability})
	if err != nil {
		return From[[]rulebook.Race](nil, err)
	}
	return Success(out.Races), nil
}

// FindBackground resolves a free-text background name
func (t *LookupTools) FindBackground(name string) (Response[*rulebook.Background], error) {
	out, err := t.lookup.FindBackground(&lookup.FindBackgroundInput{Name: name})
	if err != nil {
		return From[*rulebook.Background](nil, err)
	}
	return Success(out.Background), nil
}

// ListBackgrounds returns every background record
func (t *LookupTools) ListBackgrounds() (Response[[]rulebook.Background], error) {
	return Success(t.lookup.ListBackgrounds().Backgrounds), nil
}

// ListSchools returns the legal spell school names
func (t *LookupTools) ListSchools() (Response[[]string], error) {
	return Success(t.lookup.Schools()), nil
}

// ListSpellClasses returns the legal spellcasting class names
func (t *LookupTools) ListSpellClasses() (Response[[]string], error) {
	return Success(t.lookup.SpellClasses()), nil
}

// ListSizes returns the legal creature size names
func (t *LookupTools) ListSizes() (Response[[]string], error) {
	return Success(t.lookup.Sizes()), nil
}

func spellNames(out *lookup.ListSpellsOutput) []string {
	names := make([]string, len(out.Spells))
	for i := range out.Spells {
		names[i] = out.Spells[i].Name
	}
	return names
}
