package lookup

import (
	"strings"

	"github.com/spellwright/wizard-forge/internal/domain/rulebook"
	forgeerr "github.com/spellwright/wizard-forge/internal/errors"
	"github.com/spellwright/wizard-forge/internal/resolver"
)

// FindRaceInput holds the free-text name to resolve
type FindRaceInput struct {
	Name string
}

// FindRaceOutput holds the resolved race record
type FindRaceOutput struct {
	Race *rulebook.Race
}

// ListRacesInput holds optional race filters
type ListRacesInput struct {
	Size          string
	HasDarkvision *bool
}

// ListRacesOutput holds the matching race records
type ListRacesOutput struct {
	Races []rulebook.Race
}

// RaceAbilityBonusesOutput holds a race's ability bonus grants
type RaceAbilityBonusesOutput struct {
	Race    string
	Bonuses []rulebook.AbilityBonus
}

// ListRacesByAbilityInput names the ability to search bonuses for
type ListRacesByAbilityInput struct {
	Ability string
}

func (s *service) FindRace(input *FindRaceInput) (*FindRaceOutput, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, forgeerr.InvalidArgument("race name is required")
	}

	name, ok := resolver.Resolve(input.Name, s.store.RaceNames())
	if !ok {
		return nil, forgeerr.NotFoundf("no race found matching '%s'", input.Name)
	}

	race, ok := s.store.RaceByName(name)
	if !ok {
		return nil, forgeerr.Internalf("race '%s' resolved but is not indexed", name)
	}

	return &FindRaceOutput{Race: race}, nil
}

func (s *service) ListRaces(input *ListRacesInput) (*ListRacesOutput, error) {
	if input == nil {
		input = &ListRacesInput{}
	}

	var size rulebook.Size
	if input.Size != "" {
		size = rulebook.Size(strings.ToLower(strings.TrimSpace(input.Size)))
		if !size.Valid() {
			return nil, forgeerr.InvalidArgumentf(
				"invalid size '%s', valid sizes are: %s",
				input.Size, rulebook.JoinSizes())
		}
	}

	var matches []rulebook.Race
	for _, race := range s.store.Races() {
		if size != "" && race.Size != size {
			continue
		}
		if input.HasDarkvision != nil && race.HasDarkvision() != *input.HasDarkvision {
			continue
		}
		matches = append(matches, race)
	}

	return &ListRacesOutput{Races: matches}, nil
}

func (s *service) RaceAbilityBonuses(input *FindRaceInput) (*RaceAbilityBonusesOutput, error) {
	found, err := s.FindRace(input)
	if err != nil {
		return nil, err
	}

	return &RaceAbilityBonusesOutput{
		Race:    found.Race.Name,
		Bonuses: found.Race.AbilityScores,
	}, nil
}

func (s *service) ListRacesByAbility(input *ListRacesByAbilityInput) (*ListRacesOutput, error) {
	if input == nil || strings.TrimSpace(input.Ability) == "" {
		return nil, forgeerr.InvalidArgument("ability name is required")
	}

	ability := rulebook.Ability(strings.ToLower(strings.TrimSpace(input.Ability)))
	if !ability.ValidBonusAbility() {
		return nil, forgeerr.InvalidArgumentf(
			"invalid ability '%s', valid abilities are: %s",
			input.Ability, rulebook.JoinBonusAbilities())
	}

	var matches []rulebook.Race
	for _, race := range s.store.Races() {
		if race.GrantsBonusTo(ability) {
			matches = append(matches, race)
		}
	}

	return &ListRacesOutput{Races: matches}, nil
}
