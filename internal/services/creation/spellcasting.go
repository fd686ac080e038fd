package creation

import (
	"context"
	"fmt"
	"strings"

	"github.com/spellwright/wizard-forge/internal/domain/rulebook"
	forgeerr "github.com/spellwright/wizard-forge/internal/errors"
	"github.com/spellwright/wizard-forge/internal/services/lookup"
)

// AddSpellInput names the spell for cantrip, spellbook and prepare mutators
type AddSpellInput struct {
	Name string
}

func (s *service) ConfigureSpellcasting(ctx context.Context, sessionID string) (*MutationResult, error) {
	sheet, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if sheet.CharacterClass != rulebook.WizardClassName {
		return nil, forgeerr.RuleViolation("Character must be a Wizard to configure spellcasting")
	}

	sheet.SpellcastingAbility = "Intelligence"
	sheet.SpellSlots = rulebook.WizardSpellSlots()

	intMod := sheet.TotalModifier(rulebook.AbilityIntelligence)
	saveDC := 8 + sheet.ProficiencyBonus + intMod
	attackBonus := sheet.ProficiencyBonus + intMod
	sheet.SpellSaveDC = &saveDC
	sheet.SpellAttackBonus = &attackBonus

	maxPrepared := intMod + sheet.Level
	if maxPrepared < 1 {
		maxPrepared = 1
	}
	sheet.MaxPreparedSpells = &maxPrepared

	if err := s.repo.Save(ctx, sessionID, sheet); err != nil {
		return nil, err
	}

	return &MutationResult{
		Sheet: sheet,
		Message: fmt.Sprintf("Spellcasting configured: DC %d, Attack +%d, Max prepared: %d",
			saveDC, attackBonus, maxPrepared),
	}, nil
}

func (s *service) AddCantrip(ctx context.Context, sessionID string, input *AddSpellInput) (*MutationResult, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, forgeerr.InvalidArgument("spell name is required")
	}

	found, err := s.lookup.FindSpell(&lookup.FindSpellInput{Name: input.Name})
	if err != nil {
		return nil, err
	}
	spell := found.Spell

	if !spell.IsCantrip() {
		return nil, forgeerr.RuleViolationf(
			"'%s' is not a cantrip (level %d)", spell.Name, spell.Level)
	}
	if !spell.HasClass(rulebook.ClassWizard) {
		return nil, forgeerr.RuleViolationf("'%s' is not a wizard spell", spell.Name)
	}

	sheet, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if len(sheet.CantripsKnown) >= rulebook.WizardCantripsKnown {
		return nil, forgeerr.RuleViolationf(
			"Cannot add more than %d cantrips at level 1", rulebook.WizardCantripsKnown)
	}
	if sheet.HasCantrip(spell.Name) {
		return nil, forgeerr.RuleViolationf("'%s' is already known", spell.Name)
	}

	sheet.CantripsKnown = append(sheet.CantripsKnown, spell.Name)

	if err := s.repo.Save(ctx, sessionID, sheet); err != nil {
		return nil, err
	}

	return &MutationResult{
		Sheet: sheet,
		Message: fmt.Sprintf("Added cantrip '%s' (%d/%d)",
			spell.Name, len(sheet.CantripsKnown), rulebook.WizardCantripsKnown),
	}, nil
}

func (s *service) AddSpellbookSpell(ctx context.Context, sessionID string, input *AddSpellInput) (*MutationResult, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, forgeerr.InvalidArgument("spell name is required")
	}

	found, err := s.lookup.FindSpell(&lookup.FindSpellInput{Name: input.Name})
	if err != nil {
		return nil, err
	}
	spell := found.Spell

	if spell.Level != 1 {
		return nil, forgeerr.RuleViolationf(
			"'%s' is level %d, must be level 1", spell.Name, spell.Level)
	}
	if !spell.HasClass(rulebook.ClassWizard) {
		return nil, forgeerr.RuleViolationf("'%s' is not a wizard spell", spell.Name)
	}

	sheet, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if len(sheet.Spellbook) >= rulebook.WizardSpellbookSize {
		return nil, forgeerr.RuleViolationf(
			"Cannot add more than %d spells to spellbook at level 1", rulebook.WizardSpellbookSize)
	}
	if sheet.InSpellbook(spell.Name) {
		return nil, forgeerr.RuleViolationf("'%s' is already in spellbook", spell.Name)
	}

	sheet.Spellbook = append(sheet.Spellbook, spell.Name)

	if err := s.repo.Save(ctx, sessionID, sheet); err != nil {
		return nil, err
	}

	return &MutationResult{
		Sheet: sheet,
		Message: fmt.Sprintf("Added '%s' to spellbook (%d/%d)",
			spell.Name, len(sheet.Spellbook), rulebook.WizardSpellbookSize),
	}, nil
}

// PrepareSpell takes the exact spellbook entry name, not a fuzzy query.
// The spellbook itself was populated through fuzzy resolution, so its
// entries are already canonical.
func (s *service) PrepareSpell(ctx context.Context, sessionID string, input *AddSpellInput) (*MutationResult, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, forgeerr.InvalidArgument("spell name is required")
	}

	sheet, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !sheet.InSpellbook(input.Name) {
		return nil, forgeerr.RuleViolationf("'%s' is not in your spellbook", input.Name)
	}
	if sheet.MaxPreparedSpells == nil {
		return nil, forgeerr.RuleViolation("Spellcasting has not been configured yet")
	}
	if len(sheet.PreparedSpells) >= *sheet.MaxPreparedSpells {
		return nil, forgeerr.RuleViolationf(
			"Cannot prepare more than %d spells", *sheet.MaxPreparedSpells)
	}
	if sheet.IsPrepared(input.Name) {
		return nil, forgeerr.RuleViolationf("'%s' is already prepared", input.Name)
	}

	sheet.PreparedSpells = append(sheet.PreparedSpells, input.Name)

	if err := s.repo.Save(ctx, sessionID, sheet); err != nil {
		return nil, err
	}

	return &MutationResult{
		Sheet: sheet,
		Message: fmt.Sprintf("Prepared '%s' (%d/%d)",
			input.Name, len(sheet.PreparedSpells), *sheet.MaxPreparedSpells),
	}, nil
}

func (s *service) ComputeDerivedStats(ctx context.Context, sessionID string) (*ComputeDerivedStatsOutput, error) {
	sheet, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	stats := sheet.RecalculateDerivedStats()

	if err := s.repo.Save(ctx, sessionID, sheet); err != nil {
		return nil, err
	}

	return &ComputeDerivedStatsOutput{
		Sheet: sheet,
		Stats: stats,
	}, nil
}
