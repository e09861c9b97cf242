package entity

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

// Board is the fixed 3x3 grid stored row-major: index i maps to row i/3,
// column i%3. It is a value type, so every assignment clones the grid and
// hypothetical moves never touch the live game.
type Board [9]string

// Game holds everything that changes over the lifetime of one match: the
// board, whose mark moves next, the terminal classification and the
// strength of the computer opponent.
type Game struct {
	Board      Board      `json:"board"`
	Turn       string     `json:"player_turn"`
	Winner     string     `json:"winner"`
	Status     string     `json:"status"`
	Difficulty Difficulty `json:"difficulty"`
}

// NewGame - creates an empty board with X to move.
func NewGame(difficulty Difficulty) *Game {
	return &Game{
		Board:      Board{},
		Turn:       PlayerX,
		Status:     StatusOngoing,
		Difficulty: difficulty,
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsTie() bool {
	return that.Winner == PlayerTie
}
