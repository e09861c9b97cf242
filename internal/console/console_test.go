package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

func TestReader_ReadLine(t *testing.T) {
	t.Run("Reads lines in order", func(t *testing.T) {
		// Given: two lines of input
		reader := NewReader(strings.NewReader("5\nhello\n"))

		// When/Then: lines come back one at a time
		first, err := reader.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, "5", strings.TrimSpace(first))

		second, err := reader.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, "hello", strings.TrimSpace(second))
	})

	t.Run("Returns the final line without a trailing newline", func(t *testing.T) {
		// Given: input that ends without a newline
		reader := NewReader(strings.NewReader("9"))

		// When: reading it
		line, err := reader.ReadLine()

		// Then: the content is returned
		require.NoError(t, err)
		assert.Equal(t, "9", line)
	})

	t.Run("Errors when the stream is exhausted", func(t *testing.T) {
		// Given: an empty stream
		reader := NewReader(strings.NewReader(""))

		// When: reading
		_, err := reader.ReadLine()

		// Then: the exhaustion surfaces as an error
		assert.Error(t, err)
	})
}

func TestRenderer_RenderBoard(t *testing.T) {
	t.Run("Prints the 3x3 grid with blanks for empty cells", func(t *testing.T) {
		// Given: a board with a few marks
		board := entity.Board{
			entity.PlayerX, entity.EmptyCell, entity.PlayerO,
			entity.EmptyCell, entity.PlayerX, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.PlayerO,
		}

		out := &bytes.Buffer{}
		renderer := NewRenderer(out)

		// When: rendering it
		renderer.RenderBoard(board)

		// Then: rows and separators appear in order
		got := out.String()
		assert.Contains(t, got, " X |   | O ")
		assert.Contains(t, got, "   | X |   ")
		assert.Contains(t, got, "   |   | O ")
		assert.Equal(t, 3, strings.Count(got, "---+---+---"))
	})
}
