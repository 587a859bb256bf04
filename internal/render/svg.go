// Package render draws bitboards as SVG board diagrams.
package render

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/hailam/chessbits/internal/board"
)

const (
	squareSize = 48
	margin     = 24
	boardSize  = 8*squareSize + 2*margin
)

const (
	lightFill  = "fill:#f0d9b5"
	darkFill   = "fill:#b58863"
	highlight  = "fill:#d63031;fill-opacity:0.55"
	originFill = "fill:#0984e3"
	labelStyle = "font-family:monospace;font-size:14px;fill:#444"
)

// Diagram describes one rendered board.
type Diagram struct {
	Highlight board.Bitboard // squares to mark (attack/mask set)
	Origin    board.Square   // piece square, NoSquare for none
	Occupied  board.Bitboard // other occupied squares, drawn as dots
	Title     string
}

// WriteSVG renders the diagram to w. Rank 8 is drawn at the top, as in
// printed diagrams.
func WriteSVG(w io.Writer, d Diagram) {
	canvas := svg.New(w)
	canvas.Start(boardSize, boardSize)

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := board.NewSquare(file, rank)
			x := margin + file*squareSize
			y := margin + (7-rank)*squareSize

			fill := lightFill
			if (file+rank)%2 == 0 {
				fill = darkFill
			}
			canvas.Rect(x, y, squareSize, squareSize, fill)

			if d.Highlight.IsSet(sq) {
				canvas.Rect(x, y, squareSize, squareSize, highlight)
			}
			if d.Occupied.IsSet(sq) && sq != d.Origin {
				canvas.Circle(x+squareSize/2, y+squareSize/2, squareSize/6,
					"fill:#2d3436;fill-opacity:0.8")
			}
			if sq == d.Origin {
				canvas.Circle(x+squareSize/2, y+squareSize/2, squareSize/3, originFill)
			}
		}
	}

	for i := 0; i < 8; i++ {
		canvas.Text(margin+i*squareSize+squareSize/2-4, boardSize-6,
			string(rune('a'+i)), labelStyle)
		canvas.Text(6, margin+(7-i)*squareSize+squareSize/2+5,
			string(rune('1'+i)), labelStyle)
	}

	if d.Title != "" {
		canvas.Text(margin, 16, d.Title, labelStyle)
	}

	canvas.End()
}
