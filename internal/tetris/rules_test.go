package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRulesPoints(t *testing.T) {
	r := DefaultRules()

	tests := []struct {
		rows     int
		expected int
	}{
		{-1, 0},
		{0, 0},
		{1, 100},
		{2, 300},
		{3, 700},
		{4, 1500},
		{5, 1500},
		{20, 1500},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, r.Points(tc.rows), "Points(%d)", tc.rows)
	}
}

func TestRulesLevelFor(t *testing.T) {
	r := DefaultRules()

	tests := []struct {
		score    int
		expected int
	}{
		{0, 1},
		{599, 1},
		{600, 2},
		{1500, 3},
		{5399, 9},
		{5400, 10},
		{5999, 10},
		{6000, 10},
		{100000, 10},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, r.LevelFor(tc.score), "LevelFor(%d)", tc.score)
	}
}

func TestRulesLevelForCustomCap(t *testing.T) {
	r := DefaultRules()
	r.LevelStep = 100
	r.MaxLevel = 3

	assert.Equal(t, 1, r.LevelFor(99))
	assert.Equal(t, 3, r.LevelFor(200))
	assert.Equal(t, 3, r.LevelFor(5000))
}
