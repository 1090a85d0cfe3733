package mines

import (
	"fmt"
	"iter"
)

type Point struct {
	Row, Column int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Column)
}

type Cell struct {
	Point
	Mine        bool
	NearbyMines int // meaningless for mines
	Flagged     bool
	Revealed    bool
}

// Board is a Rows x Columns grid stored row-major. Cells are only mutated
// through [Reveal], [RevealAll] and [Game]; everything handed out by
// [Board.Cell] and [Board.All] is a copy.
type Board struct {
	GameParams
	cells []Cell
}

func newBoard(params GameParams) *Board {
	cells := make([]Cell, params.Rows*params.Columns)
	for row := range params.Rows {
		for column := range params.Columns {
			cells[row*params.Columns+column].Point = Point{row, column}
		}
	}
	return &Board{GameParams: params, cells: cells}
}

func (b *Board) at(p Point) *Cell {
	return &b.cells[p.Row*b.Columns+p.Column]
}

func (b *Board) checkBounds(p Point) error {
	if !b.Contains(p.Row, p.Column) {
		return &BoundsError{p, b.Rows, b.Columns}
	}
	return nil
}

func (b *Board) Cell(row, column int) (Cell, error) {
	p := Point{row, column}
	if err := b.checkBounds(p); err != nil {
		return Cell{}, err
	}
	return *b.at(p), nil
}

// All yields every cell in row-major order.
func (b *Board) All() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, c := range b.cells {
			if !yield(c) {
				return
			}
		}
	}
}

func (b *Board) FlagCount() (n int) {
	for _, c := range b.cells {
		if c.Flagged {
			n++
		}
	}
	return
}

// MinesLeft is the mine count minus placed flags. It goes negative when the
// player over-flags.
func (b *Board) MinesLeft() int {
	return b.MineCount - b.FlagCount()
}

// neighbors yields the in-bounds points among the 8 around p.
func (b *Board) neighbors(p Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				n := Point{p.Row + dr, p.Column + dc}
				if b.Contains(n.Row, n.Column) && !yield(n) {
					return
				}
			}
		}
	}
}
