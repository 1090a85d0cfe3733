package mines

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxCells bounds Rows*Columns so a board always fits in memory.
const MaxCells = 1 << 22

type GameParams struct {
	Rows, Columns, MineCount int
}

func (p GameParams) Unpack() (rows int, columns int, mineCount int) {
	return p.Rows, p.Columns, p.MineCount
}

// Validate reports a [ConfigurationError] unless the grid is non-empty, no
// larger than [MaxCells], and has strictly more cells than mines.
func (p GameParams) Validate() error {
	rows, columns, mineCount := p.Unpack()
	switch {
	case rows <= 0:
		return &ConfigurationError{p, "rows must be positive"}
	case columns <= 0:
		return &ConfigurationError{p, "columns must be positive"}
	case mineCount < 0:
		return &ConfigurationError{p, "mine count must not be negative"}
	case columns > math.MaxInt/rows:
		return &ConfigurationError{p, "rows*columns overflows int"}
	case rows*columns > MaxCells:
		return &ConfigurationError{p, fmt.Sprintf(
			"%d cells exceed the limit of %d", rows*columns, MaxCells,
		)}
	case mineCount >= rows*columns:
		return &ConfigurationError{p, fmt.Sprintf(
			"not enough space for %d mines (%d cells)", mineCount, rows*columns,
		)}
	}
	return nil
}

func (p GameParams) Contains(row, column int) bool {
	return 0 <= row && row < p.Rows && 0 <= column && column < p.Columns
}

// String encodes params as "rows:columns:mines", the form accepted by
// [ParseParams].
func (p GameParams) String() string {
	return fmt.Sprintf("%d:%d:%d", p.Rows, p.Columns, p.MineCount)
}

func ParseParams(s string) (*GameParams, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return nil, fmt.Errorf(
			`invalid game params "%s": want rows:columns:mines`, s,
		)
	}
	var values [3]int
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf(`invalid game params "%s": %w`, s, err)
		}
		values[i] = v
	}
	return &GameParams{values[0], values[1], values[2]}, nil
}
