package sheets

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/spellwright/wizard-forge/internal/domain/character"
	"github.com/spellwright/wizard-forge/internal/domain/rulebook"
)

// RedisIntegrationTestSuite exercises the Redis repository against a real
// protocol implementation instead of command-level mocks.
type RedisIntegrationTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	client    *redis.Client
	repo      Repository
	ctx       context.Context
}

func (s *RedisIntegrationTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.miniRedis = mr

	s.client = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	repo, err := NewRedis(&RedisConfig{
		Client: s.client,
		TTL:    time.Hour,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisIntegrationTestSuite) TearDownTest() {
	_ = s.client.Close()
	s.miniRedis.Close()
}

func TestRedisIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RedisIntegrationTestSuite))
}

func (s *RedisIntegrationTestSuite) TestRoundTripPreservesSheetState() {
	sheet := character.NewSheet()
	sheet.Name = "Fizban"
	sheet.Race = "Rock Gnome"
	sheet.Size = rulebook.SizeSmall
	sheet.AbilityScores.Intelligence = 15
	sheet.CharacterClass = rulebook.WizardClassName
	sheet.HitDie = rulebook.WizardHitDie
	sheet.Background = "Sage"
	sheet.BackgroundAbilityBonuses = map[rulebook.Ability]int{
		rulebook.AbilityIntelligence: 2,
		rulebook.AbilityConstitution: 1,
	}
	sheet.SkillProficiencies = []string{"Arcana", "History"}
	sheet.CantripsKnown = []string{"Fire Bolt", "Mage Hand", "Prestidigitation"}
	sheet.Spellbook = []string{
		"Magic Missile", "Shield", "Mage Armor", "Detect Magic", "Sleep", "Thunderwave",
	}
	sheet.PreparedSpells = []string{"Magic Missile", "Shield"}
	sheet.RecalculateDerivedStats()

	s.Require().NoError(s.repo.Save(s.ctx, "integration-session", sheet))

	got, err := s.repo.Get(s.ctx, "integration-session")
	s.Require().NoError(err)
	s.Equal(sheet, got)
}

func (s *RedisIntegrationTestSuite) TestUnsetFieldsStayUnsetAcrossRoundTrip() {
	sheet := character.NewSheet()
	sheet.Name = "Early Draft"

	s.Require().NoError(s.repo.Save(s.ctx, "partial-session", sheet))

	got, err := s.repo.Get(s.ctx, "partial-session")
	s.Require().NoError(err)
	s.Nil(got.MaxHP)
	s.Nil(got.ArmorClass)
	s.Nil(got.SpellSaveDC)
	s.Nil(got.Darkvision)
	s.Empty(got.Spellbook)
}

func (s *RedisIntegrationTestSuite) TestSheetExpiresWithTTL() {
	sheet := character.NewSheet()
	sheet.Name = "Ephemeral"
	s.Require().NoError(s.repo.Save(s.ctx, "ttl-session", sheet))

	s.miniRedis.FastForward(2 * time.Hour)

	got, err := s.repo.Get(s.ctx, "ttl-session")
	s.NoError(err)
	s.Empty(got.Name)
}

func (s *RedisIntegrationTestSuite) TestSessionsAreIsolated() {
	first := character.NewSheet()
	first.Name = "Alpha"
	second := character.NewSheet()
	second.Name = "Beta"

	s.Require().NoError(s.repo.Save(s.ctx, "session-a", first))
	s.Require().NoError(s.repo.Save(s.ctx, "session-b", second))

	gotA, err := s.repo.Get(s.ctx, "session-a")
	s.Require().NoError(err)
	gotB, err := s.repo.Get(s.ctx, "session-b")
	s.Require().NoError(err)

	s.Equal("Alpha", gotA.Name)
	s.Equal("Beta", gotB.Name)
}
