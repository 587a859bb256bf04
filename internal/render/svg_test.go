package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hailam/chessbits/internal/board"
)

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	WriteSVG(&buf, Diagram{
		Highlight: board.KnightAttacks(board.D4),
		Origin:    board.D4,
		Title:     "knight d4",
	})

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")
	assert.Contains(t, out, "knight d4")

	// 64 board squares plus 8 highlighted ones.
	assert.Equal(t, 64+8, strings.Count(out, "<rect"))
}

func TestWriteSVGEmptyDiagram(t *testing.T) {
	var buf bytes.Buffer
	WriteSVG(&buf, Diagram{Origin: board.NoSquare})

	assert.Equal(t, 64, strings.Count(buf.String(), "<rect"))
	assert.NotContains(t, buf.String(), "<circle")
}
