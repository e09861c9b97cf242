package entity

import (
	"errors"
	"fmt"
	"strings"
)

// The snapshot format is one character per cell, index 0 = top-left,
// index 8 = bottom-right, row-major. '_' stands for an empty cell.
const snapshotEmpty = '_'

var (
	ErrSnapshotLength  = errors.New("snapshot must be exactly 9 cells")
	ErrSnapshotBadMark = errors.New("snapshot contains an unknown mark")
)

// ParseSnapshot - decodes a 9-character board snapshot and infers whose
// turn it is: X always opens, so when X has placed more marks than O it is
// O's move, otherwise X's. Malformed input yields a typed error, never a
// panic.
func ParseSnapshot(raw string) (Board, string, error) {
	cells := strings.TrimSpace(raw)
	if len(cells) != len(Board{}) {
		return Board{}, "", fmt.Errorf("%w: got %d", ErrSnapshotLength, len(cells))
	}

	var board Board
	var countX, countO int

	for i, cell := range []byte(cells) {
		switch cell {
		case PlayerX[0]:
			board[i] = PlayerX
			countX++
		case PlayerO[0]:
			board[i] = PlayerO
			countO++
		case snapshotEmpty:
			board[i] = EmptyCell
		default:
			return Board{}, "", fmt.Errorf("%w: %q at cell %d", ErrSnapshotBadMark, cell, i)
		}
	}

	turn := PlayerX
	if countX > countO {
		turn = PlayerO
	}

	return board, turn, nil
}

// Snapshot - encodes the board into the flat 9-character form.
func (that *Game) Snapshot() string {
	var builder strings.Builder
	for _, cell := range that.Board {
		if cell == EmptyCell {
			builder.WriteByte(snapshotEmpty)
			continue
		}
		builder.WriteString(cell)
	}

	return builder.String()
}

// NewGameFromSnapshot - restores a game from a snapshot string with the
// current turn inferred from the mark counts.
func NewGameFromSnapshot(raw string, difficulty Difficulty) (*Game, error) {
	board, turn, err := ParseSnapshot(raw)
	if err != nil {
		return nil, fmt.Errorf("could not parse snapshot: %w", err)
	}

	return &Game{
		Board:      board,
		Turn:       turn,
		Status:     StatusOngoing,
		Difficulty: difficulty,
	}, nil
}
