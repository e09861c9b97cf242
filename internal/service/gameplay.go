package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

// InputReader supplies one line of player input; it blocks until a line
// arrives or the stream ends.
type InputReader interface {
	ReadLine() (string, error)
}

// Renderer receives the board and player-facing messages. The format is
// presentational only and carries no correctness contract.
type Renderer interface {
	RenderBoard(board entity.Board)
	Printf(format string, args ...any)
}

type GamePlayService interface {
	Play(ctx context.Context, game *entity.Game) error
}

type gamePlayService struct {
	logger *slog.Logger

	input     InputReader
	render    Renderer
	bot       BotService
	humanMark string
}

func NewGamePlayService(logger *slog.Logger, input InputReader, render Renderer, bot BotService, humanMark string) GamePlayService {
	return &gamePlayService{
		logger:    logger,
		input:     input,
		render:    render,
		bot:       bot,
		humanMark: humanMark,
	}
}

// Play - runs the turn loop until the game reaches exactly one terminal
// state. Human turns come from the input reader with re-prompting on
// anything invalid; computer turns come from the bot. The only ways out
// are a won or tied board, a canceled context, or an exhausted input
// stream.
func (that *gamePlayService) Play(ctx context.Context, game *entity.Game) error {
	log := that.logger.With("component", "gameplay")

	for game.IsOngoing() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("game interrupted: %w", err)
		}

		that.render.RenderBoard(game.Board)

		cell, err := that.nextCell(game)
		if err != nil {
			return fmt.Errorf("failed to obtain a move: %w", err)
		}

		if err = tictactoe.ApplyMove(game, game.Turn, cell); err != nil {
			return fmt.Errorf("failed to make turn: %w", err)
		}

		log.Debug("move applied", "cell", cell, "board", game.Snapshot())
	}

	that.render.RenderBoard(game.Board)
	that.announceResult(game)

	return nil
}

// nextCell - picks the target cell for the mark whose turn it is.
func (that *gamePlayService) nextCell(game *entity.Game) (int, error) {
	if game.Turn == that.humanMark {
		return that.readHumanCell(game)
	}

	cell := that.bot.SelectCell(game.Board, game.Turn, game.Difficulty)
	that.render.Printf("Computer (%s) plays %d\n", game.Turn, cell+1)

	return cell, nil
}

// readHumanCell - prompts for a 1-based position until the player supplies
// a parseable integer in [1,9] that maps to an empty cell. Bad input is
// recovered locally by re-prompting, never surfaced as an error.
func (that *gamePlayService) readHumanCell(game *entity.Game) (int, error) {
	for {
		that.render.Printf("Player %s, enter a position (1-9): ", game.Turn)

		line, err := that.input.ReadLine()
		if err != nil {
			return 0, fmt.Errorf("input stream closed: %w", err)
		}

		position, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || position < 1 || position > len(game.Board) {
			that.render.Printf("Invalid input. Please try again.\n")
			continue
		}

		cell := position - 1
		if game.Board[cell] != entity.EmptyCell {
			that.render.Printf("Invalid input. Please try again.\n")
			continue
		}

		return cell, nil
	}
}

func (that *gamePlayService) announceResult(game *entity.Game) {
	if game.IsTie() {
		that.render.Printf("It's a draw!\n")
		return
	}

	that.render.Printf("Player %s wins!\n", game.Winner)
}
