package creation

import (
	"context"
	"fmt"
	"strings"

	"github.com/spellwright/wizard-forge/internal/domain/rulebook"
	forgeerr "github.com/spellwright/wizard-forge/internal/errors"
)

func joinAbilities() string {
	abilities := rulebook.Abilities()
	parts := make([]string, len(abilities))
	for i, a := range abilities {
		parts[i] = string(a)
	}
	return strings.Join(parts, ", ")
}

// SetClassWizardInput holds the two chosen wizard skills
type SetClassWizardInput struct {
	SkillProficiencies []string
}

// SetBackgroundInput holds the chosen background payload
type SetBackgroundInput struct {
	Name               string
	SkillProficiencies []string
	ToolProficiency    string
	OriginFeat         string
	AbilityBonuses     map[rulebook.Ability]int
}

func (s *service) SetClassWizard(ctx context.Context, sessionID string, input *SetClassWizardInput) (*MutationResult, error) {
	if input == nil {
		return nil, forgeerr.InvalidArgument("skill proficiencies are required")
	}

	for _, skill := range input.SkillProficiencies {
		if !rulebook.IsWizardSkill(skill) {
			return nil, forgeerr.RuleViolationf(
				"'%s' is not a valid wizard skill. Choose from: %s",
				skill, strings.Join(rulebook.WizardSkills(), ", "))
		}
	}

	if len(input.SkillProficiencies) != rulebook.WizardSkillChoices {
		return nil, forgeerr.RuleViolationf(
			"Wizard must choose exactly %d skill proficiencies", rulebook.WizardSkillChoices)
	}

	sheet, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sheet.CharacterClass = rulebook.WizardClassName
	sheet.Level = 1
	sheet.HitDie = rulebook.WizardHitDie
	sheet.SavingThrowProficiencies = rulebook.WizardSavingThrows()
	sheet.WeaponProficiencies = rulebook.WizardWeaponProficiencies()
	sheet.ArmorProficiencies = []string{}
	sheet.MergeSkillProficiencies(input.SkillProficiencies)

	hp := sheet.WizardMaxHP()
	sheet.MaxHP = &hp

	if err := s.repo.Save(ctx, sessionID, sheet); err != nil {
		return nil, err
	}

	return &MutationResult{
		Sheet: sheet,
		Message: fmt.Sprintf("Class set to Wizard. HP: %d, Skills: %s",
			hp, strings.Join(input.SkillProficiencies, ", ")),
	}, nil
}

func (s *service) SetBackground(ctx context.Context, sessionID string, input *SetBackgroundInput) (*MutationResult, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, forgeerr.InvalidArgument("background name is required")
	}
	if strings.TrimSpace(input.OriginFeat) == "" {
		return nil, forgeerr.InvalidArgument("origin feat is required")
	}
	for ability := range input.AbilityBonuses {
		if !ability.Valid() {
			return nil, forgeerr.InvalidArgumentf(
				"invalid ability '%s' in bonuses, valid abilities are: %s",
				ability, joinAbilities())
		}
	}

	sheet, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sheet.Background = input.Name
	sheet.OriginFeat = input.OriginFeat
	sheet.BackgroundAbilityBonuses = input.AbilityBonuses
	if sheet.BackgroundAbilityBonuses == nil {
		sheet.BackgroundAbilityBonuses = map[rulebook.Ability]int{}
	}
	sheet.MergeSkillProficiencies(input.SkillProficiencies)
	sheet.AddToolProficiency(input.ToolProficiency)

	if err := s.repo.Save(ctx, sessionID, sheet); err != nil {
		return nil, err
	}

	return &MutationResult{
		Sheet: sheet,
		Message: fmt.Sprintf("Background set to '%s' with feat '%s'",
			input.Name, input.OriginFeat),
	}, nil
}
