package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vancomm/minefield/internal/config"
)

func TestApplyFlags(t *testing.T) {
	defer func() { rows, columns, mineCount, seed, seedSet = 0, 0, -1, 0, false }()

	cfg := &config.Config{Rows: 10, Columns: 20, Mines: 30}
	applyFlags(cfg)
	assert.Equal(t, config.Config{Rows: 10, Columns: 20, Mines: 30}, *cfg)

	rows, columns, mineCount, seed, seedSet = 5, 6, 0, 9, true
	applyFlags(cfg)
	assert.Equal(t, config.Config{Rows: 5, Columns: 6, Mines: 0, Seed: 9}, *cfg)
}

func TestApplyFlagsZeroSeedResetsToRandom(t *testing.T) {
	defer func() { seed, seedSet = 0, false }()

	cfg := &config.Config{Seed: 42}
	applyFlags(cfg)
	assert.Equal(t, uint64(42), cfg.Seed)

	seed, seedSet = 0, true
	applyFlags(cfg)
	assert.Equal(t, uint64(0), cfg.Seed)
}

func TestCreateRandSeeded(t *testing.T) {
	a, b := createRand(42), createRand(42)
	for range 10 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}
