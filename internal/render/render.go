// Package render draws a board as text. It is the only consumer of the
// read-only board besides tests.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vancomm/minefield/internal/mines"
)

const (
	Hidden = "#"
	Flag   = "*"
	Mine   = "!"
	Empty  = "."
)

func Glyph(c mines.Cell) string {
	switch {
	case !c.Revealed && c.Flagged:
		return Flag
	case !c.Revealed:
		return Hidden
	case c.Mine:
		return Mine
	case c.NearbyMines == 0:
		return Empty
	default:
		return strconv.Itoa(c.NearbyMines)
	}
}

// Board writes the grid with row and column indices along the edges.
func Board(w io.Writer, b *mines.Board) error {
	width := len(strconv.Itoa(max(b.Rows, b.Columns)-1)) + 1

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", width))
	for column := range b.Columns {
		fmt.Fprintf(&sb, "%*d", width, column)
	}
	sb.WriteString("\n")

	for c := range b.All() {
		if c.Column == 0 {
			fmt.Fprintf(&sb, "%*d", width, c.Row)
		}
		fmt.Fprintf(&sb, "%*s", width, Glyph(c))
		if c.Column == b.Columns-1 {
			sb.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// Game writes a status line followed by the board.
func Game(w io.Writer, g *mines.Game) error {
	b := g.Board()
	if _, err := fmt.Fprintf(
		w, "mines left: %d, %s\n", b.MinesLeft(), g.State(),
	); err != nil {
		return err
	}
	return Board(w, b)
}
