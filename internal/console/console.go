// Package console implements the line-based input and board rendering
// collaborators of the game loop.
package console

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// Reader reads player input one line at a time.
type Reader struct {
	reader *bufio.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{reader: bufio.NewReader(r)}
}

// ReadLine - blocks until a full line arrives; the trailing newline is
// stripped by the caller together with other whitespace.
func (that *Reader) ReadLine() (string, error) {
	line, err := that.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read line: %w", err)
	}

	return line, nil
}

// Renderer prints the 3x3 grid and player-facing messages.
type Renderer struct {
	out io.Writer
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{out: w}
}

// RenderBoard - prints the board as three rows of cells separated by
// ASCII rules, with a blank for empty cells.
func (that *Renderer) RenderBoard(board entity.Board) {
	fmt.Fprintf(that.out, "\nCurrent Board:\n")
	for row := 0; row < 3; row++ {
		fmt.Fprintf(that.out, " %s | %s | %s \n",
			symbol(board[row*3]),
			symbol(board[row*3+1]),
			symbol(board[row*3+2]),
		)
		fmt.Fprintf(that.out, "---+---+---\n")
	}
}

func (that *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(that.out, format, args...)
}

func symbol(cell string) string {
	if cell == entity.EmptyCell {
		return " "
	}

	return cell
}
