package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

func newTestBot() BotService {
	return NewBotService(rand.New(rand.NewSource(1)))
}

func TestBotService_SelectCell_Random(t *testing.T) {
	t.Run("Always returns an empty cell", func(t *testing.T) {
		// Given: a board with a few occupied cells
		board := entity.Board{
			entity.PlayerX, entity.EmptyCell, entity.PlayerO,
			entity.EmptyCell, entity.PlayerX, entity.EmptyCell,
			entity.EmptyCell, entity.PlayerO, entity.EmptyCell,
		}
		bot := newTestBot()

		// When: selecting repeatedly
		for i := 0; i < 100; i++ {
			cell := bot.SelectCell(board, entity.PlayerO, entity.DifficultyRandom)

			// Then: the chosen cell is always among the empty ones
			assert.Contains(t, tictactoe.EmptyCells(board), cell)
		}
	})

	t.Run("Takes the only remaining cell", func(t *testing.T) {
		// Given: a board with a single empty cell
		board := entity.Board{
			entity.PlayerX, entity.PlayerO, entity.PlayerX,
			entity.PlayerO, entity.PlayerX, entity.PlayerO,
			entity.PlayerO, entity.PlayerX, entity.EmptyCell,
		}
		bot := newTestBot()

		// When: selecting
		cell := bot.SelectCell(board, entity.PlayerX, entity.DifficultyRandom)

		// Then: the last cell is chosen
		assert.Equal(t, 8, cell)
	})
}

func TestBotService_SelectCell_Heuristic(t *testing.T) {
	t.Run("Takes the immediate win over everything else", func(t *testing.T) {
		// Given: X can complete the top row at cell 2
		board := entity.Board{
			entity.PlayerX, entity.PlayerX, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}
		bot := newTestBot()

		// When: selecting for X
		cell := bot.SelectCell(board, entity.PlayerX, entity.DifficultyHeuristic)

		// Then: the winning cell is chosen
		assert.Equal(t, 2, cell)
	})

	t.Run("Blocks the opponent's immediate win", func(t *testing.T) {
		// Given: O threatens the top row at cell 2 and X has no win
		board := entity.Board{
			entity.PlayerO, entity.PlayerO, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}
		bot := newTestBot()

		// When: selecting for X
		cell := bot.SelectCell(board, entity.PlayerX, entity.DifficultyHeuristic)

		// Then: the blocking cell is chosen
		assert.Equal(t, 2, cell)
	})

	t.Run("Prefers winning over blocking", func(t *testing.T) {
		// Given: both marks threaten a line, X at 2 and O at 8
		board := entity.Board{
			entity.PlayerX, entity.PlayerX, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
			entity.PlayerO, entity.PlayerO, entity.EmptyCell,
		}
		bot := newTestBot()

		// When: selecting for X
		cell := bot.SelectCell(board, entity.PlayerX, entity.DifficultyHeuristic)

		// Then: X takes its own win
		assert.Equal(t, 2, cell)
	})

	t.Run("Falls back to the center first", func(t *testing.T) {
		// Given: a single X in a corner, no threats anywhere
		board := entity.Board{}
		board[0] = entity.PlayerX
		bot := newTestBot()

		// When: selecting for O
		cell := bot.SelectCell(board, entity.PlayerO, entity.DifficultyHeuristic)

		// Then: the center is chosen
		assert.Equal(t, 4, cell)
	})

	t.Run("Falls back to a corner when the center is taken", func(t *testing.T) {
		// Given: only the center is occupied
		board := entity.Board{}
		board[4] = entity.PlayerX
		bot := newTestBot()

		// When: selecting for O
		cell := bot.SelectCell(board, entity.PlayerO, entity.DifficultyHeuristic)

		// Then: the first free corner is chosen
		assert.Equal(t, 0, cell)
	})
}

func TestBotService_SelectCell_Exhaustive(t *testing.T) {
	t.Run("Takes the forced win", func(t *testing.T) {
		// Given: X can complete the top row at cell 2
		board := entity.Board{
			entity.PlayerX, entity.PlayerX, entity.EmptyCell,
			entity.PlayerO, entity.PlayerO, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}
		bot := newTestBot()

		// When: selecting for X
		cell := bot.SelectCell(board, entity.PlayerX, entity.DifficultyExhaustive)

		// Then: the winning cell is chosen
		assert.Equal(t, 2, cell)
	})

	t.Run("Takes its own win even while threatened", func(t *testing.T) {
		// Given: O threatens the middle row at cell 5, but X threatens cell 1
		board := entity.Board{
			entity.PlayerX, entity.EmptyCell, entity.PlayerX,
			entity.PlayerO, entity.PlayerO, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}
		bot := newTestBot()

		// When: selecting for X
		cell := bot.SelectCell(board, entity.PlayerX, entity.DifficultyExhaustive)

		// Then: the immediate win is preferred over the block
		assert.Equal(t, 1, cell)
	})

	t.Run("Self-play from the empty board always draws", func(t *testing.T) {
		// Given: both marks play the exhaustive strategy
		game := entity.NewGame(entity.DifficultyExhaustive)
		bot := newTestBot()

		// When: playing the game out
		for game.IsOngoing() {
			cell := bot.SelectCell(game.Board, game.Turn, entity.DifficultyExhaustive)
			require.NoError(t, tictactoe.ApplyMove(game, game.Turn, cell))
		}

		// Then: the game ends in a draw
		assert.True(t, game.IsTie())
	})

	t.Run("Never loses to the heuristic opponent", func(t *testing.T) {
		// Given: O plays exhaustive against X playing heuristic
		game := entity.NewGame(entity.DifficultyExhaustive)
		bot := newTestBot()

		// When: playing the game out
		for game.IsOngoing() {
			difficulty := entity.DifficultyExhaustive
			if game.Turn == entity.PlayerX {
				difficulty = entity.DifficultyHeuristic
			}
			cell := bot.SelectCell(game.Board, game.Turn, difficulty)
			require.NoError(t, tictactoe.ApplyMove(game, game.Turn, cell))
		}

		// Then: O did not lose
		assert.NotEqual(t, entity.PlayerX, game.Winner)
	})
}

func TestMinimax(t *testing.T) {
	t.Run("Scores the forced block of an immediate threat", func(t *testing.T) {
		// Given: X threatens cell 1 and O is to move
		board := entity.Board{
			entity.PlayerX, entity.EmptyCell, entity.PlayerX,
			entity.PlayerO, entity.EmptyCell, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}

		// When: evaluating for O as the maximizing mark
		score, cell := minimax(board, entity.PlayerO, entity.PlayerO)

		// Then: the position is lost but the block is the best move
		assert.Equal(t, scoreLoss, score)
		assert.Equal(t, 1, cell)
	})

	t.Run("Scores a won board without a move", func(t *testing.T) {
		// Given: X already owns the top row
		board := entity.Board{
			entity.PlayerX, entity.PlayerX, entity.PlayerX,
			entity.PlayerO, entity.PlayerO, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}

		// When: evaluating for X
		score, cell := minimax(board, entity.PlayerO, entity.PlayerX)

		// Then: the terminal win scores +10 with no move
		assert.Equal(t, scoreWin, score)
		assert.Equal(t, -1, cell)
	})

	t.Run("Scores a full board as a draw", func(t *testing.T) {
		// Given: a tied full board
		board := entity.Board{
			entity.PlayerX, entity.PlayerO, entity.PlayerX,
			entity.PlayerO, entity.PlayerX, entity.PlayerO,
			entity.PlayerO, entity.PlayerX, entity.PlayerO,
		}

		// When: evaluating for either mark
		score, cell := minimax(board, entity.PlayerX, entity.PlayerX)

		// Then: the terminal draw scores 0 with no move
		assert.Equal(t, scoreDraw, score)
		assert.Equal(t, -1, cell)
	})
}

func TestBotService_SelectCell_ContractViolations(t *testing.T) {
	t.Run("Panics on a full board", func(t *testing.T) {
		// Given: a full board
		board := entity.Board{
			entity.PlayerX, entity.PlayerO, entity.PlayerX,
			entity.PlayerO, entity.PlayerX, entity.PlayerO,
			entity.PlayerO, entity.PlayerX, entity.PlayerO,
		}
		bot := newTestBot()

		// When/Then: selecting panics, this is a caller bug
		assert.Panics(t, func() {
			bot.SelectCell(board, entity.PlayerX, entity.DifficultyRandom)
		})
	})

	t.Run("Panics on an unknown difficulty", func(t *testing.T) {
		// Given: an empty board and a difficulty outside the enum
		var board entity.Board
		bot := newTestBot()

		// When/Then: selecting panics, this is a caller bug
		assert.Panics(t, func() {
			bot.SelectCell(board, entity.PlayerX, entity.Difficulty(42))
		})
	})
}
