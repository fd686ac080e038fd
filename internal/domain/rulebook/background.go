package rulebook

// Background is one background record from the bundled reference data.
// AbilityScores lists the abilities a player may spread the background's
// +2/+1 (or +1/+1/+1) increases across under the 2024 rules.
type Background struct {
	Name               string    `json:"name"`
	AbilityScores      []Ability `json:"abilityScores"`
	OriginFeat         string    `json:"originFeat"`
	SkillProficiencies []string  `json:"skillProficiencies"`
	ToolProficiency    string    `json:"toolProficiency"`
	Equipment          string    `json:"equipment"`
}
