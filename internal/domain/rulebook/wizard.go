package rulebook

// Level-1 wizard class constants. The sheet engine only builds this one
// archetype, so the class data lives here as fixed values rather than a
// class record collection.

// WizardClassName is the only supported character class
const WizardClassName = "Wizard"

// WizardHitDie is the wizard hit die
const WizardHitDie = "d6"

// WizardHitDieSides is the numeric hit die size used for max HP
const WizardHitDieSides = 6

// WizardSkillChoices is how many skills a wizard picks at level 1
const WizardSkillChoices = 2

// WizardCantripsKnown is the cantrip cap at level 1
const WizardCantripsKnown = 3

// WizardSpellbookSize is the spellbook cap at level 1
const WizardSpellbookSize = 6

// WizardSkills is the fixed list a wizard may choose skills from
func WizardSkills() []string {
	return []string{
		"Arcana",
		"History",
		"Insight",
		"Investigation",
		"Medicine",
		"Religion",
	}
}

// WizardSavingThrows are the wizard saving throw proficiencies
func WizardSavingThrows() []string {
	return []string{"Intelligence", "Wisdom"}
}

// WizardWeaponProficiencies are the wizard weapon proficiencies
func WizardWeaponProficiencies() []string {
	return []string{
		"Daggers",
		"Darts",
		"Slings",
		"Quarterstaffs",
		"Light crossbows",
	}
}

// WizardSpellSlots are the level-1 wizard spell slots, keyed by spell level
func WizardSpellSlots() map[int]int {
	return map[int]int{1: 2}
}

// IsWizardSkill reports whether the skill is on the wizard skill list
func IsWizardSkill(skill string) bool {
	for _, s := range WizardSkills() {
		if s == skill {
			return true
		}
	}
	return false
}
