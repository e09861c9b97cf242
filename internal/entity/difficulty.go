package entity

import "strconv"

// Difficulty selects the computer opponent strategy. It is fixed for the
// lifetime of a game.
type Difficulty int

const (
	DifficultyRandom Difficulty = iota + 1
	DifficultyHeuristic
	DifficultyExhaustive
)

// ParseDifficulty - maps the textual levels 1..3 to a difficulty. Anything
// unparseable or out of range falls back to heuristic instead of failing
// startup.
func ParseDifficulty(raw string) Difficulty {
	level, err := strconv.Atoi(raw)
	if err != nil {
		return DifficultyHeuristic
	}

	switch level {
	case 1:
		return DifficultyRandom
	case 2:
		return DifficultyHeuristic
	case 3:
		return DifficultyExhaustive
	default:
		return DifficultyHeuristic
	}
}

func (that Difficulty) String() string {
	switch that {
	case DifficultyRandom:
		return "random"
	case DifficultyHeuristic:
		return "heuristic"
	case DifficultyExhaustive:
		return "exhaustive"
	default:
		return "unknown"
	}
}
