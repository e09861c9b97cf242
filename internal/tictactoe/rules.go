package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// WinCombos lists the 8 winning triples in scan order: rows top to bottom,
// columns left to right, then both diagonals. A board with completed lines
// of both marks is unreachable under legal play, but the fixed order keeps
// the result deterministic anyway.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// EmptyCells - returns the indices of all empty cells in ascending order.
// An empty result means the board is full.
func EmptyCells(board entity.Board) []int {
	cells := make([]int, 0, len(board))
	for i, cell := range board {
		if cell == entity.EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

// Winner - scans the winning triples and reports the first mark occupying
// a full line, if any.
func Winner(board entity.Board) (string, bool) {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return a, true
		}
	}

	return "", false
}

// IsFull reports whether no empty cell remains.
func IsFull(board entity.Board) bool {
	for _, cell := range board {
		if cell == entity.EmptyCell {
			return false
		}
	}

	return true
}

// ToggleMark returns the opposing mark.
func ToggleMark(mark string) string {
	if mark == entity.PlayerX {
		return entity.PlayerO
	}

	return entity.PlayerX
}

// ApplyMove - places a mark on the board after validating the move, then
// reclassifies the game. The caller is re-prompted on validation errors,
// so no board mutation happens before every check passes.
func ApplyMove(game *entity.Game, mark string, cell int) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(game, mark, cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	game.Board[cell] = mark
	game.Turn = ToggleMark(mark)
	UpdateStatus(game)

	return nil
}

// UpdateStatus - derives the terminal classification of the board: a won
// or full board finishes the game, anything else keeps it ongoing. Also
// used to classify games restored from a snapshot.
func UpdateStatus(game *entity.Game) {
	if winner, ok := Winner(game.Board); ok {
		game.Winner = winner
		game.Status = entity.StatusFinished
		game.Turn = entity.EmptyCell
		return
	}

	if IsFull(game.Board) {
		game.Winner = entity.PlayerTie
		game.Status = entity.StatusFinished
		game.Turn = entity.EmptyCell
		return
	}

	game.Status = entity.StatusOngoing
}

// validateMove - checks if the move is valid.
func validateMove(game *entity.Game, mark string, cell int) error {
	if cell < 0 || cell >= len(game.Board) {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidCell, cell)
	}

	if game.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if game.Board[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}
