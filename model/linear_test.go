package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushteam/rankssvm/core"
	"github.com/rushteam/rankssvm/instantiation"
)

func TestLinearModelRank(t *testing.T) {
	m := &LinearModel{Weights: []float64{1, -1}}
	x := [][]float64{{1, 0}, {0, 1}, {2, 2}, {-1, -1}}
	// scores: 1, -1, 0, 0

	y, err := m.Rank(x, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 2, 2}, y.Ranking())
	assert.Equal(t, 1, y.NbPlus())
}

func TestLinearModelRankMaximizesCompatibility(t *testing.T) {
	m := &LinearModel{Weights: []float64{0.5, 2}}
	x := [][]float64{{1, 1}, {0, 3}, {2, 0}, {1, -1}}
	inst := instantiation.NewRankingInstantiation()

	best, err := m.Rank(x, 2)
	require.NoError(t, err)
	psiBest, err := inst.Psi(x, best)
	require.NoError(t, err)
	fBest, err := m.Compatibility(psiBest)
	require.NoError(t, err)

	others := [][]int{
		{1, 2, 3, 4},
		{4, 3, 2, 1},
		{2, 1, 4, 3},
		{1, 1, 1, 1},
	}
	for _, ranks := range others {
		psi, err := inst.Psi(x, core.MustRankingOutput(ranks, 2))
		require.NoError(t, err)
		f, err := m.Compatibility(psi)
		require.NoError(t, err)
		assert.LessOrEqual(t, f, fBest+1e-12, "ranks %v", ranks)
	}
}

func TestLinearModelErrors(t *testing.T) {
	m := &LinearModel{Weights: []float64{1, 2}}

	_, err := m.Rank([][]float64{{1, 2}, {3}}, 1)
	assert.True(t, core.IsDimensionMismatch(err))

	_, err = m.Rank([][]float64{{1, 2}}, 2)
	assert.True(t, core.IsIndexOutOfRange(err))
}

func TestLoadLinearModel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"weights": [0.5, -1.5]}`), 0o644))

	m, err := LoadLinearModel(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, -1.5}, m.Weights)
	assert.Equal(t, "linear", m.Name())

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte(`{}`), 0o644))
	_, err = LoadLinearModel(empty)
	assert.True(t, core.IsInvalidInput(err))

	_, err = LoadLinearModel(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
}
