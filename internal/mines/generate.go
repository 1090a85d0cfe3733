package mines

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// GenerateMineLayout picks p.MineCount distinct points by rejection
// sampling. Params are validated up front, so sampling always terminates.
func GenerateMineLayout(p GameParams, r *rand.Rand) ([]Point, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	rows, columns, mineCount := p.Unpack()
	chosen := make(map[Point]struct{}, mineCount)
	layout := make([]Point, 0, mineCount)
	for len(layout) < mineCount {
		candidate := Point{r.IntN(rows), r.IntN(columns)}
		if _, taken := chosen[candidate]; taken {
			continue
		}
		chosen[candidate] = struct{}{}
		layout = append(layout, candidate)
	}
	return layout, nil
}

// CountAdjacentMines counts mines among the in-bounds neighbours of p.
func CountAdjacentMines(b *Board, p Point) int {
	count := 0
	for n := range b.neighbors(p) {
		if b.at(n).Mine {
			count++
		}
	}
	return count
}

func NewBoard(p GameParams, r *rand.Rand) (*Board, error) {
	layout, err := GenerateMineLayout(p, r)
	if err != nil {
		return nil, fmt.Errorf("unable to generate mine layout: %w", err)
	}
	b := buildBoard(p, layout)
	Log.WithFields(logrus.Fields{
		"rows":      p.Rows,
		"columns":   p.Columns,
		"mineCount": p.MineCount,
	}).Debug("board generated")
	return b, nil
}

// buildBoard places mines before counting so every count sees the final
// layout.
func buildBoard(p GameParams, layout []Point) *Board {
	b := newBoard(p)
	for _, m := range layout {
		b.at(m).Mine = true
	}
	for i := range b.cells {
		c := &b.cells[i]
		if !c.Mine {
			c.NearbyMines = CountAdjacentMines(b, c.Point)
		}
	}
	return b
}
