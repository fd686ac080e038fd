// Package data loads the bundled reference collections (spells, races,
// backgrounds) once at startup and serves them read-only for the process
// lifetime. A malformed bundle is a fatal startup error; there is no
// runtime fallback for missing reference data.
package data

import (
	"embed"
	"encoding/json"

	"golang.org/x/sync/errgroup"

	"github.com/spellwright/wizard-forge/internal/domain/rulebook"
	"github.com/spellwright/wizard-forge/internal/errors"
)

//go:embed spells.json races.json backgrounds.json
var referenceFiles embed.FS

// Store is the in-memory index over the bundled reference data. Construct
// it once and inject it; records and slices returned from accessors are
// shared and must not be mutated.
type Store struct {
	spells      []rulebook.Spell
	races       []rulebook.Race
	backgrounds []rulebook.Background

	spellsByName      map[string]*rulebook.Spell
	racesByName       map[string]*rulebook.Race
	backgroundsByName map[string]*rulebook.Background
}

// New decodes and indexes the embedded reference files
func New() (*Store, error) {
	s := &Store{}

	var g errgroup.Group
	g.Go(func() error { return decodeFile("spells.json", &s.spells) })
	g.Go(func() error { return decodeFile("races.json", &s.races) })
	g.Go(func() error { return decodeFile("backgrounds.json", &s.backgrounds) })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := s.validateAndIndex(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewFromRecords builds a store over the given records, for tests that
// need fixture data instead of the full bundle
func NewFromRecords(
	spells []rulebook.Spell,
	races []rulebook.Race,
	backgrounds []rulebook.Background,
) (*Store, error) {
	s := &Store{
		spells:      spells,
		races:       races,
		backgrounds: backgrounds,
	}
	if err := s.validateAndIndex(); err != nil {
		return nil, err
	}
	return s, nil
}

func decodeFile(name string, target any) error {
	raw, err := referenceFiles.ReadFile(name)
	if err != nil {
		return errors.Wrapf(err, "failed to read reference data %s", name)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return errors.Wrapf(err, "failed to decode reference data %s", name)
	}
	return nil
}

func (s *Store) validateAndIndex() error {
	s.spellsByName = make(map[string]*rulebook.Spell, len(s.spells))
	for i := range s.spells {
		spell := &s.spells[i]
		if spell.Name == "" {
			return errors.Internalf("spell record %d has no name", i)
		}
		if spell.Level < 0 || spell.Level > 9 {
			return errors.Internalf("spell '%s' has invalid level %d", spell.Name, spell.Level)
		}
		if !spell.School.Valid() {
			return errors.Internalf("spell '%s' has invalid school '%s'", spell.Name, spell.School)
		}
		if len(spell.Classes) == 0 {
			return errors.Internalf("spell '%s' has no classes", spell.Name)
		}
		for _, class := range spell.Classes {
			if !class.Valid() {
				return errors.Internalf("spell '%s' has invalid class '%s'", spell.Name, class)
			}
		}
		if _, exists := s.spellsByName[spell.Name]; exists {
			return errors.Internalf("duplicate spell '%s'", spell.Name)
		}
		s.spellsByName[spell.Name] = spell
	}

	s.racesByName = make(map[string]*rulebook.Race, len(s.races))
	for i := range s.races {
		race := &s.races[i]
		if race.Name == "" {
			return errors.Internalf("race record %d has no name", i)
		}
		if !race.Size.Valid() {
			return errors.Internalf("race '%s' has invalid size '%s'", race.Name, race.Size)
		}
		for _, score := range race.AbilityScores {
			if !score.Ability.ValidBonusAbility() {
				return errors.Internalf("race '%s' has invalid bonus ability '%s'", race.Name, score.Ability)
			}
		}
		if _, exists := s.racesByName[race.Name]; exists {
			return errors.Internalf("duplicate race '%s'", race.Name)
		}
		s.racesByName[race.Name] = race
	}

	s.backgroundsByName = make(map[string]*rulebook.Background, len(s.backgrounds))
	for i := range s.backgrounds {
		background := &s.backgrounds[i]
		if background.Name == "" {
			return errors.Internalf("background record %d has no name", i)
		}
		if background.OriginFeat == "" {
			return errors.Internalf("background '%s' has no origin feat", background.Name)
		}
		for _, ability := range background.AbilityScores {
			if !ability.Valid() {
				return errors.Internalf("background '%s' has invalid ability '%s'", background.Name, ability)
			}
		}
		if _, exists := s.backgroundsByName[background.Name]; exists {
			return errors.Internalf("duplicate background '%s'", background.Name)
		}
		s.backgroundsByName[background.Name] = background
	}

	return nil
}

// Spells returns all spell records in load order
func (s *Store) Spells() []rulebook.Spell {
	return s.spells
}

// SpellNames returns every spell name in load order
func (s *Store) SpellNames() []string {
	names := make([]string, len(s.spells))
	for i := range s.spells {
		names[i] = s.spells[i].Name
	}
	return names
}

// SpellByName returns the spell with the exact given name
func (s *Store) SpellByName(name string) (*rulebook.Spell, bool) {
	spell, ok := s.spellsByName[name]
	return spell, ok
}

// Races returns all race records in load order
func (s *Store) Races() []rulebook.Race {
	return s.races
}

// RaceNames returns every race name in load order
func (s *Store) RaceNames() []string {
	names := make([]string, len(s.races))
	for i := range s.races {
		names[i] = s.races[i].Name
	}
	return names
}

// RaceByName returns the race with the exact given name
func (s *Store) RaceByName(name string) (*rulebook.Race, bool) {
	race, ok := s.racesByName[name]
	return race, ok
}

// Backgrounds returns all background records in load order
func (s *Store) Backgrounds() []rulebook.Background {
	return s.backgrounds
}

// BackgroundNames returns every background name in load order
func (s *Store) BackgroundNames() []string {
	names := make([]string, len(s.backgrounds))
	for i := range s.backgrounds {
		names[i] = s.backgrounds[i].Name
	}
	return names
}

// BackgroundByName returns the background with the exact given name
func (s *Store) BackgroundByName(name string) (*rulebook.Background, bool) {
	background, ok := s.backgroundsByName[name]
	return background, ok
}
