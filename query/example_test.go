package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushteam/rankssvm/core"
	"github.com/rushteam/rankssvm/instantiation"
	"github.com/rushteam/rankssvm/metrics"
	"github.com/rushteam/rankssvm/pkg/dsl"
)

func items() []*core.Item {
	mk := func(id string, vec []float64, score float64, rel string) *core.Item {
		it := core.NewItem(id, vec)
		it.Score = score
		it.PutLabel("relevant", rel)
		return it
	}
	return []*core.Item{
		mk("a", []float64{0, 1}, 0.2, "0"),
		mk("b", []float64{1, 0}, 0.9, "1"),
		mk("c", []float64{2, 2}, 0.5, "0"),
		mk("d", []float64{3, 1}, 0.4, "1"),
	}
}

func TestBuild(t *testing.T) {
	in := items()
	ex, err := Build(in, dsl.MustCompile(`label.relevant == "1"`))
	require.NoError(t, err)

	ids := make([]string, len(ex.Items))
	for i, it := range ex.Items {
		ids[i] = it.ID
	}
	assert.Equal(t, []string{"b", "d", "c", "a"}, ids)
	assert.Equal(t, [][]float64{{1, 0}, {3, 1}, {2, 2}, {0, 1}}, ex.X)
	assert.Equal(t, 2, ex.NbPlus())
	assert.Equal(t, []int{1, 2, 3, 4}, ex.Gold.Ranking())

	// 输入顺序不变
	assert.Equal(t, "a", in[0].ID)

	ap, err := metrics.AveragePrecision(ex.Gold)
	require.NoError(t, err)
	assert.Equal(t, 1.0, ap)
}

func TestBuildFeedsInstantiation(t *testing.T) {
	ex, err := Build(items(), dsl.MustCompile(`label.relevant == "1"`))
	require.NoError(t, err)

	inst := instantiation.NewRankingInstantiation()
	psi, err := inst.Psi(ex.X, ex.Gold)
	require.NoError(t, err)
	// (b-c)+(b-a)+(d-c)+(d-a)
	assert.Equal(t, []float64{4, -4}, psi)

	candidate, err := ex.Candidate([]float64{0.1, 0.2, 0.9, 0.8})
	require.NoError(t, err)
	loss, err := inst.Delta(ex.Gold, candidate)
	require.NoError(t, err)
	assert.InDelta(t, 1-(1.0/3+2.0/4)/2, loss, 1e-12)

	_, err = ex.Candidate([]float64{1})
	assert.True(t, core.IsInvalidInput(err))
}

func TestBuildErrors(t *testing.T) {
	rule := dsl.MustCompile(`label.relevant == "1"`)

	_, err := Build(nil, rule)
	assert.True(t, core.IsInvalidInput(err))

	_, err = Build(items(), nil)
	assert.True(t, core.IsInvalidInput(err))

	_, err = Build([]*core.Item{nil}, rule)
	assert.True(t, core.IsInvalidInput(err))

	_, err = Build(items(), dsl.MustCompile(`label.unknown == "1"`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item a")
}

func TestBuildWithoutPositives(t *testing.T) {
	ex, err := Build(items(), dsl.MustCompile(`item.score > 2.0`))
	require.NoError(t, err)
	assert.Equal(t, 0, ex.NbPlus())
	assert.Equal(t, "b", ex.Items[0].ID)
}
