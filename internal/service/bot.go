package service

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

// Selecting on a full board or with an unknown difficulty is a caller bug,
// not a user-facing condition, so both panic instead of returning an error.
var (
	ErrNoAvailableMoves  = errors.New("no available moves")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

const (
	scoreWin  = 10
	scoreLoss = -10
	scoreDraw = 0
)

// cellPriority orders the positional fallback of the heuristic strategy:
// center, then corners, then edges.
var cellPriority = [9]int{4, 0, 2, 6, 8, 1, 3, 5, 7}

type BotService interface {
	SelectCell(board entity.Board, mark string, difficulty entity.Difficulty) int
}

type botService struct {
	rng *rand.Rand
}

func NewBotService(rng *rand.Rand) BotService {
	return &botService{rng: rng}
}

// SelectCell - picks the cell for the computer mark using the strategy the
// difficulty selects. The caller must have checked that an empty cell
// exists.
func (that *botService) SelectCell(board entity.Board, mark string, difficulty entity.Difficulty) int {
	availableCells := tictactoe.EmptyCells(board)
	if len(availableCells) == 0 {
		panic(fmt.Errorf("%w: board is full", ErrNoAvailableMoves))
	}

	switch difficulty {
	case entity.DifficultyRandom:
		return availableCells[that.rng.Intn(len(availableCells))]
	case entity.DifficultyHeuristic:
		return selectHeuristic(board, mark, availableCells)
	case entity.DifficultyExhaustive:
		_, cell := minimax(board, mark, mark)
		return cell
	default:
		panic(fmt.Errorf("%w: %d", ErrUnknownDifficulty, difficulty))
	}
}

// selectHeuristic - single-ply lookahead: take an immediate win, otherwise
// block the opponent's immediate win, otherwise take the best-placed free
// cell. Win and block both prefer the lowest index.
func selectHeuristic(board entity.Board, mark string, availableCells []int) int {
	for _, cell := range availableCells {
		if completesLine(board, mark, cell) {
			return cell
		}
	}

	opponent := tictactoe.ToggleMark(mark)
	for _, cell := range availableCells {
		if completesLine(board, opponent, cell) {
			return cell
		}
	}

	// The priority list covers every cell, so with a non-empty board this
	// loop always returns.
	for _, cell := range cellPriority {
		if board[cell] == entity.EmptyCell {
			return cell
		}
	}

	panic(fmt.Errorf("%w: priority scan found no empty cell", ErrNoAvailableMoves))
}

// completesLine reports whether placing mark into cell finishes a line for
// that mark. The board is a value, so the probe never leaks.
func completesLine(board entity.Board, mark string, cell int) bool {
	board[cell] = mark
	winner, ok := tictactoe.Winner(board)

	return ok && winner == mark
}

// minimax - exhaustively evaluates every continuation from the mover's
// point of view: +10 when botMark wins the finished game, -10 when the
// opponent does, 0 for a tie, with no depth discount. The mover maximizes
// when it is botMark and minimizes otherwise; ties keep the move discovered
// first in EmptyCells order. Returns the best score and the cell realizing
// it (-1 on terminal boards).
func minimax(board entity.Board, mover, botMark string) (int, int) {
	if winner, ok := tictactoe.Winner(board); ok {
		if winner == botMark {
			return scoreWin, -1
		}
		return scoreLoss, -1
	}

	availableCells := tictactoe.EmptyCells(board)
	if len(availableCells) == 0 {
		return scoreDraw, -1
	}

	maximizing := mover == botMark
	bestScore := scoreLoss - 1
	if !maximizing {
		bestScore = scoreWin + 1
	}
	bestCell := -1

	for _, cell := range availableCells {
		next := board
		next[cell] = mover

		score, _ := minimax(next, tictactoe.ToggleMark(mover), botMark)
		if (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
			bestScore = score
			bestCell = cell
		}
	}

	return bestScore, bestCell
}
