package dice

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/spellwright/wizard-forge/internal/errors"
)

// notationPattern matches NdX, NdX+M, and NdX-M, with the count optional
var notationPattern = regexp.MustCompile(`^(\d*)d(\d+)([+-]\d+)?$`)

// ParseNotation parses standard dice notation like "2d6+3", "d20", or "3d8-2"
func ParseNotation(notation string) (count, sides, bonus int, err error) {
	match := notationPattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(notation)))
	if match == nil {
		return 0, 0, 0, errors.InvalidArgumentf(
			"invalid dice notation '%s', use format like '2d6+3', 'd20', or '3d8-2'", notation)
	}

	count = 1
	if match[1] != "" {
		count, _ = strconv.Atoi(match[1])
	}
	sides, _ = strconv.Atoi(match[2])
	if match[3] != "" {
		bonus, _ = strconv.Atoi(match[3])
	}

	if count < 1 || sides < 1 {
		return 0, 0, 0, errors.InvalidArgument("number of dice and die sides must be at least 1")
	}

	return count, sides, bonus, nil
}

// RollNotation parses dice notation and rolls it with the given roller
func RollNotation(roller Roller, notation string) (*RollResult, error) {
	count, sides, bonus, err := ParseNotation(notation)
	if err != nil {
		return nil, err
	}
	return roller.Roll(count, sides, bonus)
}

// RollAbilityScore rolls 4d6 and drops the lowest die, the standard way to
// generate one ability score
func RollAbilityScore(roller Roller) (int, error) {
	result, err := roller.Roll(4, 6, 0)
	if err != nil {
		return 0, err
	}
	return result.Total - result.Lowest, nil
}
