package tools_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/spellwright/wizard-forge/internal/data"
	"github.com/spellwright/wizard-forge/internal/dice"
	"github.com/spellwright/wizard-forge/internal/domain/character"
	"github.com/spellwright/wizard-forge/internal/domain/rulebook"
	"github.com/spellwright/wizard-forge/internal/repositories/sheets"
	"github.com/spellwright/wizard-forge/internal/services/creation"
	"github.com/spellwright/wizard-forge/internal/services/lookup"
	"github.com/spellwright/wizard-forge/internal/tools"
)

// ToolsTestSuite drives the envelope surface over a full in-memory stack,
// the same wiring the orchestrator sees.
type ToolsTestSuite struct {
	suite.Suite
	characterTools *tools.CharacterTools
	lookupTools    *tools.LookupTools
	ctx            context.Context
}

func (s *ToolsTestSuite) SetupTest() {
	store, err := data.New()
	s.Require().NoError(err)

	lookupSvc, err := lookup.NewService(&lookup.ServiceConfig{Store: store})
	s.Require().NoError(err)

	creationSvc, err := creation.NewService(&creation.ServiceConfig{
		Repository: sheets.NewInMemory(),
		Lookup:     lookupSvc,
	})
	s.Require().NoError(err)

	s.characterTools = tools.NewCharacterTools(creationSvc)
	s.lookupTools = tools.NewLookupTools(lookupSvc)
	s.ctx = context.Background()
}

func TestToolsTestSuite(t *testing.T) {
	suite.Run(t, new(ToolsTestSuite))
}

func (s *ToolsTestSuite) TestMutationSuccessEnvelope() {
	resp, err := s.characterTools.SetCharacterName(s.ctx, "session",
		&creation.SetNameInput{Name: "Fizban"})
	s.Require().NoError(err)
	s.Equal(tools.StatusSuccess, resp.Status)
	s.Equal("Character name set to 'Fizban'", resp.Result)
	s.Empty(resp.Message)
}

func (s *ToolsTestSuite) TestRuleViolationBecomesFailureEnvelope() {
	resp, err := s.characterTools.SetClassWizard(s.ctx, "session",
		&creation.SetClassWizardInput{SkillProficiencies: []string{"Stealth", "Arcana"}})
	s.Require().NoError(err)
	s.Equal(tools.StatusFailure, resp.Status)
	s.Contains(resp.Message, "'Stealth' is not a valid wizard skill")
	s.Empty(resp.Result)
}

func (s *ToolsTestSuite) TestUnresolvedNameBecomesFailureEnvelope() {
	resp, err := s.characterTools.AddCantrip(s.ctx, "session",
		&creation.AddSpellInput{Name: "zzzzzz"})
	s.Require().NoError(err)
	s.Equal(tools.StatusFailure, resp.Status)
	s.Contains(resp.Message, "no spell found matching 'zzzzzz'")
}

func (s *ToolsTestSuite) TestCheckNextStep() {
	resp, err := s.characterTools.CheckNextStep(s.ctx, "session")
	s.Require().NoError(err)
	s.Equal(tools.StatusSuccess, resp.Status)
	s.Equal(character.StepRace, resp.Result.ID)
	s.Equal("Name & Race Selection", resp.Result.Label)
}

func (s *ToolsTestSuite) TestGetCharacterSheet() {
	resp, err := s.characterTools.GetCharacterSheet(s.ctx, "session")
	s.Require().NoError(err)
	s.Equal(tools.StatusSuccess, resp.Status)
	s.Equal(1, resp.Result.Level)
}

func (s *ToolsTestSuite) TestValidate_FailureKeepsErrorList() {
	resp, err := s.characterTools.ValidateCharacterSheet(s.ctx, "session")
	s.Require().NoError(err)
	s.Equal(tools.StatusFailure, resp.Status)
	s.Contains(resp.Message, "Validation failed with")
	s.False(resp.Result.Valid)
	s.NotEmpty(resp.Result.Errors)
	s.Equal(character.StepValidation, resp.Result.NextStepID)
}

func (s *ToolsTestSuite) TestValidate_CompleteSheetReportsComplete() {
	s.buildCompleteCharacter("session")

	resp, err := s.characterTools.ValidateCharacterSheet(s.ctx, "session")
	s.Require().NoError(err)
	s.Equal(tools.StatusSuccess, resp.Status)
	s.True(resp.Result.Valid)
	s.Equal(character.StepComplete, resp.Result.NextStepID)
	s.Require().NotNil(resp.Result.Summary)
	s.Equal("Fizban", resp.Result.Summary.Name)
}

func (s *ToolsTestSuite) TestComputeDerivedStats() {
	resp, err := s.characterTools.ComputeDerivedStats(s.ctx, "session")
	s.Require().NoError(err)
	s.Equal(tools.StatusSuccess, resp.Status)
	s.Equal(10, resp.Result.ArmorClass)
	s.Equal(0, resp.Result.Initiative)
}

func (s *ToolsTestSuite) TestLookupTools() {
	find, err := s.lookupTools.FindSpell("fire bolt")
	s.Require().NoError(err)
	s.Equal(tools.StatusSuccess, find.Status)
	s.Equal("Fire Bolt", find.Result.Name)

	miss, err := s.lookupTools.FindSpell("xqzzt")
	s.Require().NoError(err)
	s.Equal(tools.StatusFailure, miss.Status)

	badFilter, err := s.lookupTools.ListSpells(&lookup.ListSpellsInput{School: "chronomancy"})
	s.Require().NoError(err)
	s.Equal(tools.StatusFailure, badFilter.Status)
	s.Contains(badFilter.Message, "valid schools are")

	cantrips, err := s.lookupTools.ListWizardCantrips()
	s.Require().NoError(err)
	s.Equal(tools.StatusSuccess, cantrips.Status)
	s.Contains(cantrips.Result, "Fire Bolt")

	compare, err := s.lookupTools.CompareSpells([]string{"shield", "sleep"})
	s.Require().NoError(err)
	s.Require().Len(compare.Result, 2)
	s.Equal("Shield", compare.Result[0].Name)

	sizes, err := s.lookupTools.ListSizes()
	s.Require().NoError(err)
	s.Equal([]string{"small", "medium"}, sizes.Result)
}

func (s *ToolsTestSuite) TestDiceTools() {
	roller := dice.NewMockRoller()
	roller.SetRolls([]int{4, 5})
	diceTools := tools.NewDiceTools(roller)

	resp, err := diceTools.RollDice("2d6+3")
	s.Require().NoError(err)
	s.Equal(tools.StatusSuccess, resp.Status)
	s.Equal(12, resp.Result.Total)

	bad, err := diceTools.RollDice("banana")
	s.Require().NoError(err)
	s.Equal(tools.StatusFailure, bad.Status)
	s.Contains(bad.Message, "invalid dice notation")

	roller.SetRolls([]int{6, 1, 4, 3})
	score, err := diceTools.RollAbilityScore()
	s.Require().NoError(err)
	s.Equal(13, score.Result)
}

func (s *ToolsTestSuite) buildCompleteCharacter(sessionID string) {
	_, err := s.characterTools.SetCharacterName(s.ctx, sessionID,
		&creation.SetNameInput{Name: "Fizban"})
	s.Require().NoError(err)

	darkvision := 60
	_, err = s.characterTools.SetRace(s.ctx, sessionID, &creation.SetRaceInput{
		Name:       "Rock Gnome",
		Size:       "small",
		Speed:      25,
		Darkvision: &darkvision,
	})
	s.Require().NoError(err)

	_, err = s.characterTools.SetAbilityScores(s.ctx, sessionID, &creation.SetAbilityScoresInput{
		Strength:     8,
		Dexterity:    14,
		Constitution: 13,
		Intelligence: 15,
		Wisdom:       12,
		Charisma:     10,
	})
	s.Require().NoError(err)

	_, err = s.characterTools.SetClassWizard(s.ctx, sessionID, &creation.SetClassWizardInput{
		SkillProficiencies: []string{"Arcana", "History"},
	})
	s.Require().NoError(err)

	_, err = s.characterTools.SetBackground(s.ctx, sessionID, &creation.SetBackgroundInput{
		Name:               "Sage",
		SkillProficiencies: []string{"Arcana", "History"},
		ToolProficiency:    "Calligrapher's Supplies",
		OriginFeat:         "Magic Initiate (Wizard)",
		AbilityBonuses: map[rulebook.Ability]int{
			rulebook.AbilityIntelligence: 2,
			rulebook.AbilityConstitution: 1,
		},
	})
	s.Require().NoError(err)

	_, err = s.characterTools.ConfigureSpellcasting(s.ctx, sessionID)
	s.Require().NoError(err)

	for _, name := range []string{"Magic Missile", "Shield", "Mage Armor", "Detect Magic", "Sleep", "Thunderwave"} {
		_, err = s.characterTools.AddSpellbookSpell(s.ctx, sessionID, &creation.AddSpellInput{Name: name})
		s.Require().NoError(err)
	}
	for _, name := range []string{"Fire Bolt", "Mage Hand", "Prestidigitation"} {
		_, err = s.characterTools.AddCantrip(s.ctx, sessionID, &creation.AddSpellInput{Name: name})
		s.Require().NoError(err)
	}
	for _, name := range []string{"Magic Missile", "Shield"} {
		_, err = s.characterTools.PrepareSpell(s.ctx, sessionID, &creation.AddSpellInput{Name: name})
		s.Require().NoError(err)
	}

	_, err = s.characterTools.ComputeDerivedStats(s.ctx, sessionID)
	s.Require().NoError(err)
}
