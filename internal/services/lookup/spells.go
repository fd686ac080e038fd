package lookup

import (
	"strings"

	"github.com/spellwright/wizard-forge/internal/domain/rulebook"
	forgeerr "github.com/spellwright/wizard-forge/internal/errors"
	"github.com/spellwright/wizard-forge/internal/resolver"
)

// FindSpellInput holds the free-text name to resolve
type FindSpellInput struct {
	Name string
}

// FindSpellOutput holds the resolved spell record
type FindSpellOutput struct {
	Spell *rulebook.Spell
}

// ListSpellsInput holds optional spell filters. Zero values mean
// "no filter" for strings; nil means "no filter" for pointers.
type ListSpellsInput struct {
	Class    string
	School   string
	MaxLevel *int
	Ritual   *bool
}

// ListSpellsOutput holds the matching spell records
type ListSpellsOutput struct {
	Spells []rulebook.Spell
}

// CompareSpellsInput holds the spell names to look up side by side
type CompareSpellsInput struct {
	Names []string
}

// CompareSpellsOutput holds the resolved records in input order
type CompareSpellsOutput struct {
	Spells []*rulebook.Spell
}

func (s *service) FindSpell(input *FindSpellInput) (*FindSpellOutput, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, forgeerr.InvalidArgument("spell name is required")
	}

	name, ok := resolver.Resolve(input.Name, s.store.SpellNames())
	if !ok {
		return nil, forgeerr.NotFoundf("no spell found matching '%s'", input.Name)
	}

	spell, ok := s.store.SpellByName(name)
	if !ok {
		return nil, forgeerr.Internalf("spell '%s' resolved but is not indexed", name)
	}

	return &FindSpellOutput{Spell: spell}, nil
}

func (s *service) ListSpells(input *ListSpellsInput) (*ListSpellsOutput, error) {
	if input == nil {
		input = &ListSpellsInput{}
	}

	var class rulebook.SpellClass
	if input.Class != "" {
		class = rulebook.SpellClass(strings.ToLower(strings.TrimSpace(input.Class)))
		if !class.Valid() {
			return nil, forgeerr.InvalidArgumentf(
				"invalid class '%s', valid classes are: %s",
				input.Class, rulebook.JoinSpellClasses())
		}
	}

	var school rulebook.School
	if input.School != "" {
		school = rulebook.School(strings.ToLower(strings.TrimSpace(input.School)))
		if !school.Valid() {
			return nil, forgeerr.InvalidArgumentf(
				"invalid school '%s', valid schools are: %s",
				input.School, rulebook.JoinSchools())
		}
	}

	if input.MaxLevel != nil && (*input.MaxLevel < 0 || *input.MaxLevel > 9) {
		return nil, forgeerr.InvalidArgumentf(
			"invalid max level %d, spell levels range from 0 to 9", *input.MaxLevel)
	}

	var matches []rulebook.Spell
	for _, spell := range s.store.Spells() {
		if class != "" && !spell.HasClass(class) {
			continue
		}
		if school != "" && spell.School != school {
			continue
		}
		if input.MaxLevel != nil && spell.Level > *input.MaxLevel {
			continue
		}
		if input.Ritual != nil && spell.Ritual != *input.Ritual {
			continue
		}
		matches = append(matches, spell)
	}

	return &ListSpellsOutput{Spells: matches}, nil
}

func (s *service) CompareSpells(input *CompareSpellsInput) (*CompareSpellsOutput, error) {
	if input == nil || len(input.Names) == 0 {
		return nil, forgeerr.InvalidArgument("at least one spell name is required")
	}

	spells := make([]*rulebook.Spell, 0, len(input.Names))
	for _, name := range input.Names {
		found, err := s.FindSpell(&FindSpellInput{Name: name})
		if err != nil {
			return nil, err
		}
		spells = append(spells, found.Spell)
	}

	return &CompareSpellsOutput{Spells: spells}, nil
}

func (s *service) ListWizardCantrips() *ListSpellsOutput {
	var matches []rulebook.Spell
	for _, spell := range s.store.Spells() {
		if spell.IsCantrip() && spell.HasClass(rulebook.ClassWizard) {
			matches = append(matches, spell)
		}
	}
	return &ListSpellsOutput{Spells: matches}
}

func (s *service) ListWizardFirstLevelSpells() *ListSpellsOutput {
	var matches []rulebook.Spell
	for _, spell := range s.store.Spells() {
		if spell.Level == 1 && spell.HasClass(rulebook.ClassWizard) {
			matches = append(matches, spell)
		}
	}
	return &ListSpellsOutput{Spells: matches}
}
