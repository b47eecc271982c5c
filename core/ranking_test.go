package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRankingOutput(t *testing.T) {
	ranks := []int{2, 1, 3}
	y, err := NewRankingOutput(ranks, 1)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 1, 3}, y.Ranking())
	assert.Equal(t, 1, y.NbPlus())
	assert.Equal(t, 3, y.Len())
	assert.Equal(t, 1, y.Rank(1))
	assert.True(t, y.IsPositive(0))
	assert.False(t, y.IsPositive(1))
	assert.False(t, y.IsPositive(-1))

	// 构造时复制，外部修改不影响
	ranks[0] = 99
	assert.Equal(t, 2, y.Rank(0))

	// 返回副本
	got := y.Ranking()
	got[1] = 42
	assert.Equal(t, 1, y.Rank(1))
}

func TestNewRankingOutputInvalid(t *testing.T) {
	for _, nbPlus := range []int{-1, 4} {
		_, err := NewRankingOutput([]int{1, 2, 3}, nbPlus)
		require.Error(t, err)
		assert.True(t, IsInvalidInput(err))
	}
	assert.Panics(t, func() { MustRankingOutput(nil, 1) })
}

func TestRanksFromScores(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   []int
	}{
		{name: "distinct", scores: []float64{0.1, 0.9, 0.5}, want: []int{3, 1, 2}},
		{name: "ties share position", scores: []float64{1, 2, 2, 0}, want: []int{3, 1, 1, 4}},
		{name: "empty", scores: nil, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RanksFromScores(tt.scores))
		})
	}
}
