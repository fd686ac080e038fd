package creation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/spellwright/wizard-forge/internal/data"
	"github.com/spellwright/wizard-forge/internal/domain/character"
	"github.com/spellwright/wizard-forge/internal/domain/rulebook"
	forgeerr "github.com/spellwright/wizard-forge/internal/errors"
	mocksheets "github.com/spellwright/wizard-forge/internal/repositories/sheets/mock"
	"github.com/spellwright/wizard-forge/internal/services/creation"
	"github.com/spellwright/wizard-forge/internal/services/lookup"
)

// NoWriteOnFailureTestSuite proves that a failed mutation never reaches
// the repository: validation happens entirely before any Save call.
type NoWriteOnFailureTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockRepo *mocksheets.MockRepository
	svc      creation.Service
	ctx      context.Context
}

func (s *NoWriteOnFailureTestSuite) SetupTest() {
	store, err := data.New()
	s.Require().NoError(err)

	lookupSvc, err := lookup.NewService(&lookup.ServiceConfig{Store: store})
	s.Require().NoError(err)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = mocksheets.NewMockRepository(s.mockCtrl)

	svc, err := creation.NewService(&creation.ServiceConfig{
		Repository: s.mockRepo,
		Lookup:     lookupSvc,
	})
	s.Require().NoError(err)
	s.svc = svc
	s.ctx = context.Background()
}

func (s *NoWriteOnFailureTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestNoWriteOnFailureTestSuite(t *testing.T) {
	suite.Run(t, new(NoWriteOnFailureTestSuite))
}

func (s *NoWriteOnFailureTestSuite) TestSetClassWizard_BadSkillsNeverTouchStorage() {
	// Neither Get nor Save: skill validation fails before the sheet loads
	_, err := s.svc.SetClassWizard(s.ctx, "session", &creation.SetClassWizardInput{
		SkillProficiencies: []string{"Stealth", "Arcana"},
	})
	s.True(forgeerr.IsRuleViolation(err))
}

func (s *NoWriteOnFailureTestSuite) TestAddCantrip_CapViolationDoesNotSave() {
	full := character.NewSheet()
	full.CantripsKnown = []string{"Fire Bolt", "Mage Hand", "Prestidigitation"}

	s.mockRepo.EXPECT().Get(s.ctx, "session").Return(full, nil)

	_, err := s.svc.AddCantrip(s.ctx, "session", &creation.AddSpellInput{Name: "Ray of Frost"})
	s.True(forgeerr.IsRuleViolation(err))
}

func (s *NoWriteOnFailureTestSuite) TestPrepareSpell_MissingFromSpellbookDoesNotSave() {
	sheet := character.NewSheet()

	s.mockRepo.EXPECT().Get(s.ctx, "session").Return(sheet, nil)

	_, err := s.svc.PrepareSpell(s.ctx, "session", &creation.AddSpellInput{Name: "Magic Missile"})
	s.True(forgeerr.IsRuleViolation(err))
}

func (s *NoWriteOnFailureTestSuite) TestConfigureSpellcasting_NonWizardDoesNotSave() {
	sheet := character.NewSheet()

	s.mockRepo.EXPECT().Get(s.ctx, "session").Return(sheet, nil)

	_, err := s.svc.ConfigureSpellcasting(s.ctx, "session")
	s.True(forgeerr.IsRuleViolation(err))
}

func (s *NoWriteOnFailureTestSuite) TestSetName_SavesExactlyOnce() {
	sheet := character.NewSheet()

	s.mockRepo.EXPECT().Get(s.ctx, "session").Return(sheet, nil)
	s.mockRepo.EXPECT().Save(s.ctx, "session", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, saved *character.Sheet) error {
			s.Equal("Fizban", saved.Name)
			return nil
		})

	_, err := s.svc.SetName(s.ctx, "session", &creation.SetNameInput{Name: "Fizban"})
	s.NoError(err)
}

func (s *NoWriteOnFailureTestSuite) TestMutatorsPropagateStorageErrors() {
	s.mockRepo.EXPECT().Get(s.ctx, "session").
		Return(nil, forgeerr.Internal("storage unavailable"))

	_, err := s.svc.SetName(s.ctx, "session", &creation.SetNameInput{Name: "Fizban"})
	s.True(forgeerr.IsInternal(err))
}

func (s *NoWriteOnFailureTestSuite) TestSetBackground_InvalidBonusDoesNotTouchStorage() {
	_, err := s.svc.SetBackground(s.ctx, "session", &creation.SetBackgroundInput{
		Name:       "Sage",
		OriginFeat: "Magic Initiate (Wizard)",
		AbilityBonuses: map[rulebook.Ability]int{
			rulebook.AbilityAny: 1,
		},
	})
	s.True(forgeerr.IsInvalidArgument(err))
}
