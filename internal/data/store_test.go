package data_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spellwright/wizard-forge/internal/data"
	"github.com/spellwright/wizard-forge/internal/domain/rulebook"
	"github.com/spellwright/wizard-forge/internal/errors"
)

func TestNew_LoadsEmbeddedBundle(t *testing.T) {
	store, err := data.New()
	require.NoError(t, err)

	assert.NotEmpty(t, store.Spells())
	assert.NotEmpty(t, store.Races())
	assert.NotEmpty(t, store.Backgrounds())

	spell, ok := store.SpellByName("Fire Bolt")
	require.True(t, ok)
	assert.True(t, spell.IsCantrip())
	assert.True(t, spell.HasClass(rulebook.ClassWizard))

	race, ok := store.RaceByName("Hill Dwarf")
	require.True(t, ok)
	assert.True(t, race.HasDarkvision())
	assert.Equal(t, rulebook.SizeMedium, race.Size)

	background, ok := store.BackgroundByName("Sage")
	require.True(t, ok)
	assert.Equal(t, "Magic Initiate (Wizard)", background.OriginFeat)
	assert.Equal(t, []string{"Arcana", "History"}, background.SkillProficiencies)
}

func TestNew_NamesFollowLoadOrder(t *testing.T) {
	store, err := data.New()
	require.NoError(t, err)

	names := store.SpellNames()
	require.Len(t, names, len(store.Spells()))
	for i, spell := range store.Spells() {
		assert.Equal(t, spell.Name, names[i])
	}

	assert.Len(t, store.RaceNames(), len(store.Races()))
	assert.Len(t, store.BackgroundNames(), len(store.Backgrounds()))
}

func TestNew_UnknownNameMisses(t *testing.T) {
	store, err := data.New()
	require.NoError(t, err)

	_, ok := store.SpellByName("Wish")
	assert.False(t, ok)
	_, ok = store.RaceByName("Warforged")
	assert.False(t, ok)
	_, ok = store.BackgroundByName("Urchin")
	assert.False(t, ok)
}

func TestNewFromRecords_ValidatesRecords(t *testing.T) {
	validSpell := rulebook.Spell{
		Name:       "Test Bolt",
		Level:      0,
		School:     rulebook.SchoolEvocation,
		Classes:    []rulebook.SpellClass{rulebook.ClassWizard},
		ActionType: "action",
		Range:      "60 feet",
		Components: []string{"V", "S"},
		Duration:   "Instantaneous",
	}
	validRace := rulebook.Race{
		Name: "Testfolk",
		AbilityScores: []rulebook.AbilityBonus{
			{Ability: rulebook.AbilityIntelligence, Bonus: 2},
		},
		Size:   rulebook.SizeMedium,
		Source: "PHB",
	}
	validBackground := rulebook.Background{
		Name:          "Tester",
		AbilityScores: []rulebook.Ability{rulebook.AbilityIntelligence},
		OriginFeat:    "Alert",
	}

	tests := []struct {
		name        string
		spells      []rulebook.Spell
		races       []rulebook.Race
		backgrounds []rulebook.Background
		wantErr     string
	}{
		{
			name:        "valid records",
			spells:      []rulebook.Spell{validSpell},
			races:       []rulebook.Race{validRace},
			backgrounds: []rulebook.Background{validBackground},
		},
		{
			name: "spell with bad school",
			spells: func() []rulebook.Spell {
				s := validSpell
				s.School = "chronomancy"
				return []rulebook.Spell{s}
			}(),
			wantErr: "invalid school",
		},
		{
			name: "spell with no classes",
			spells: func() []rulebook.Spell {
				s := validSpell
				s.Classes = nil
				return []rulebook.Spell{s}
			}(),
			wantErr: "no classes",
		},
		{
			name:    "duplicate spell names",
			spells:  []rulebook.Spell{validSpell, validSpell},
			wantErr: "duplicate spell",
		},
		{
			name: "race with bad size",
			races: func() []rulebook.Race {
				r := validRace
				r.Size = "large"
				return []rulebook.Race{r}
			}(),
			wantErr: "invalid size",
		},
		{
			name: "background without origin feat",
			backgrounds: func() []rulebook.Background {
				b := validBackground
				b.OriginFeat = ""
				return []rulebook.Background{b}
			}(),
			wantErr: "no origin feat",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := data.NewFromRecords(tt.spells, tt.races, tt.backgrounds)
			if tt.wantErr == "" {
				require.NoError(t, err)
				require.NotNil(t, store)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsInternal(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
