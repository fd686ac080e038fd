package creation

import (
	"context"
	"fmt"
	"strings"

	"github.com/spellwright/wizard-forge/internal/domain/rulebook"
	forgeerr "github.com/spellwright/wizard-forge/internal/errors"
)

// SetNameInput holds the character name
type SetNameInput struct {
	Name string
}

// SetRaceInput holds the chosen race payload
type SetRaceInput struct {
	Name         string
	Size         string
	Speed        int
	Darkvision   *int
	RacialTraits []string
}

// SetAbilityScoresInput holds the six base ability scores
type SetAbilityScoresInput struct {
	Strength     int
	Dexterity    int
	Constitution int
	Intelligence int
	Wisdom       int
	Charisma     int
}

func (s *service) SetName(ctx context.Context, sessionID string, input *SetNameInput) (*MutationResult, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, forgeerr.InvalidArgument("character name is required")
	}

	sheet, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sheet.Name = input.Name

	if err := s.repo.Save(ctx, sessionID, sheet); err != nil {
		return nil, err
	}

	return &MutationResult{
		Sheet:   sheet,
		Message: fmt.Sprintf("Character name set to '%s'", input.Name),
	}, nil
}

func (s *service) SetRace(ctx context.Context, sessionID string, input *SetRaceInput) (*MutationResult, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, forgeerr.InvalidArgument("race name is required")
	}

	size := rulebook.Size(strings.ToLower(strings.TrimSpace(input.Size)))
	if !size.Valid() {
		return nil, forgeerr.InvalidArgumentf(
			"invalid size '%s', valid sizes are: %s", input.Size, rulebook.JoinSizes())
	}
	if input.Speed <= 0 {
		return nil, forgeerr.InvalidArgumentf("invalid speed %d, must be positive", input.Speed)
	}
	if input.Darkvision != nil && *input.Darkvision <= 0 {
		return nil, forgeerr.InvalidArgumentf(
			"invalid darkvision %d, omit it for races without darkvision", *input.Darkvision)
	}

	sheet, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sheet.Race = input.Name
	sheet.Size = size
	sheet.Speed = input.Speed
	sheet.Darkvision = input.Darkvision
	sheet.RacialTraits = input.RacialTraits
	if sheet.RacialTraits == nil {
		sheet.RacialTraits = []string{}
	}

	if err := s.repo.Save(ctx, sessionID, sheet); err != nil {
		return nil, err
	}

	return &MutationResult{
		Sheet:   sheet,
		Message: fmt.Sprintf("Race set to '%s' (%s, %dft speed)", input.Name, size, input.Speed),
	}, nil
}

func (s *service) SetAbilityScores(ctx context.Context, sessionID string, input *SetAbilityScoresInput) (*MutationResult, error) {
	if input == nil {
		return nil, forgeerr.InvalidArgument("ability scores are required")
	}

	scores := map[string]int{
		"strength":     input.Strength,
		"dexterity":    input.Dexterity,
		"constitution": input.Constitution,
		"intelligence": input.Intelligence,
		"wisdom":       input.Wisdom,
		"charisma":     input.Charisma,
	}
	for ability, score := range scores {
		if score < 1 || score > 30 {
			return nil, forgeerr.InvalidArgumentf(
				"%s score %d is out of range (1-30)", ability, score)
		}
	}

	sheet, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sheet.AbilityScores.Strength = input.Strength
	sheet.AbilityScores.Dexterity = input.Dexterity
	sheet.AbilityScores.Constitution = input.Constitution
	sheet.AbilityScores.Intelligence = input.Intelligence
	sheet.AbilityScores.Wisdom = input.Wisdom
	sheet.AbilityScores.Charisma = input.Charisma

	if err := s.repo.Save(ctx, sessionID, sheet); err != nil {
		return nil, err
	}

	return &MutationResult{
		Sheet: sheet,
		Message: fmt.Sprintf(
			"Ability scores set: STR %d, DEX %d, CON %d, INT %d, WIS %d, CHA %d",
			input.Strength, input.Dexterity, input.Constitution,
			input.Intelligence, input.Wisdom, input.Charisma),
	}, nil
}
