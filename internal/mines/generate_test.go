package mines

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	Log.SetLevel(logrus.WarnLevel)
	m.Run()
}

func TestGenerateMineLayout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params GameParams
	}{
		{"1x1(0)", GameParams{1, 1, 0}},
		{"1x2(1)", GameParams{1, 2, 1}},
		{"9x9(10)", GameParams{9, 9, 10}},
		{"9x9(80)", GameParams{9, 9, 80}},
		{"10x20(30)", GameParams{10, 20, 30}},
		{"16x30(99)", GameParams{16, 30, 99}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewPCG(1, 2))
			for range 20 {
				layout, err := GenerateMineLayout(test.params, r)
				require.NoError(t, err)
				require.Len(t, layout, test.params.MineCount)

				seen := make(map[Point]bool)
				for _, p := range layout {
					assert.True(t, test.params.Contains(p.Row, p.Column), "%v out of bounds", p)
					assert.False(t, seen[p], "%v chosen twice", p)
					seen[p] = true
				}
			}
		})
	}
}

func TestGenerateMineLayoutRejectsBadParams(t *testing.T) {
	tests := []GameParams{
		{0, 5, 0},
		{5, 0, 0},
		{-1, 5, 1},
		{3, 3, -1},
		{3, 3, 9},
		{3, 3, 10},
		{1, 1, 1},
		{3, 6148914691236517206, 0},
		{math.MaxInt, math.MaxInt, 0},
		{100000, 100000, 0},
		{MaxCells + 1, 1, 0},
	}

	r := rand.New(rand.NewPCG(1, 2))
	for _, params := range tests {
		t.Run(params.String(), func(t *testing.T) {
			layout, err := GenerateMineLayout(params, r)
			assert.Nil(t, layout)
			require.ErrorIs(t, err, ErrInvalidConfiguration)

			var ce *ConfigurationError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, params, ce.Params)
		})
	}
}

func naiveCount(b *Board, row, column int) (count int) {
	for r := row - 1; r <= row+1; r++ {
		for c := column - 1; c <= column+1; c++ {
			if (r == row && c == column) || r < 0 || c < 0 || r >= b.Rows || c >= b.Columns {
				continue
			}
			if b.cells[r*b.Columns+c].Mine {
				count++
			}
		}
	}
	return
}

func TestNewBoard(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for _, params := range []GameParams{
		{1, 1, 0}, {2, 2, 3}, {5, 7, 12}, {10, 20, 30}, {16, 16, 99},
	} {
		b, err := NewBoard(params, r)
		require.NoError(t, err)

		mines := 0
		for c := range b.All() {
			assert.False(t, c.Revealed)
			assert.False(t, c.Flagged)
			if c.Mine {
				mines++
				continue
			}
			assert.Equal(t, naiveCount(b, c.Row, c.Column), c.NearbyMines, "cell %v", c.Point)
			assert.GreaterOrEqual(t, c.NearbyMines, 0)
			assert.LessOrEqual(t, c.NearbyMines, 8)
		}
		assert.Equal(t, params.MineCount, mines)
	}
}

func TestNewBoardSingleCell(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	b, err := NewBoard(GameParams{1, 1, 0}, r)
	require.NoError(t, err)
	c, err := b.Cell(0, 0)
	require.NoError(t, err)
	assert.False(t, c.Mine)
	assert.Equal(t, 0, c.NearbyMines)

	_, err = NewBoard(GameParams{1, 1, 1}, r)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestCountAdjacentMines(t *testing.T) {
	b := buildBoard(GameParams{3, 3, 1}, []Point{{2, 2}})

	want := [3][3]int{
		{0, 0, 0},
		{0, 1, 1},
		{0, 1, -1},
	}
	for row := range 3 {
		for column := range 3 {
			c, err := b.Cell(row, column)
			require.NoError(t, err)
			if want[row][column] < 0 {
				assert.True(t, c.Mine)
				continue
			}
			assert.Equal(t, want[row][column], c.NearbyMines, "cell (%d, %d)", row, column)
		}
	}
}

func TestCountAdjacentMinesSurrounded(t *testing.T) {
	var layout []Point
	for row := range 3 {
		for column := range 3 {
			if row != 1 || column != 1 {
				layout = append(layout, Point{row, column})
			}
		}
	}
	b := buildBoard(GameParams{3, 3, 8}, layout)

	assert.Equal(t, 8, CountAdjacentMines(b, Point{1, 1}))
}

func TestNewBoardAtCellLimit(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	b, err := NewBoard(GameParams{1, MaxCells, 0}, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	c, err := b.Cell(0, MaxCells-1)
	require.NoError(t, err)
	assert.Equal(t, Point{0, MaxCells - 1}, c.Point)
}
