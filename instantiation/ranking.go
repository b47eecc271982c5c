package instantiation

import (
	"github.com/rushteam/rankssvm/core"
	"github.com/rushteam/rankssvm/metrics"
	"github.com/rushteam/rankssvm/vector"
)

// DimensionFrom 决定 Psi 输出维度取自哪个物品向量。
type DimensionFrom string

const (
	// DimensionFromFirst 取 x[0] 的维度（默认），只要求至少一个物品。
	DimensionFromFirst DimensionFrom = "first"
	// DimensionFromSecond 取 x[1] 的维度，要求至少两个物品；与旧实现逐位一致。
	DimensionFromSecond DimensionFrom = "second"
)

// RankingInstantiation 是排序问题的结构化插件（x 为物品向量集合，y 为候选排序）。
//
// Psi(x, y) = Σ_{i<nbPlus} Σ_{j>=nbPlus} y_ij · (x_i − x_j)，
// 其中 y_ij = +1（rank_i < rank_j）、−1（rank_i > rank_j）、0（并列）。
//
// Delta(y1, y2) = 1 − AP(y2)。
//
// 无状态，可被多个 goroutine 并发使用。
type RankingInstantiation struct {
	dimensionFrom DimensionFrom
}

// RankingOption 配置 RankingInstantiation。
type RankingOption func(*RankingInstantiation)

// WithDimensionFrom 指定输出维度的来源，未知取值按 DimensionFromFirst 处理。
func WithDimensionFrom(from DimensionFrom) RankingOption {
	return func(r *RankingInstantiation) {
		if from == DimensionFromSecond {
			r.dimensionFrom = DimensionFromSecond
			return
		}
		r.dimensionFrom = DimensionFromFirst
	}
}

func NewRankingInstantiation(opts ...RankingOption) *RankingInstantiation {
	r := &RankingInstantiation{dimensionFrom: DimensionFromFirst}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ Instantiation[[][]float64, *core.RankingOutput] = (*RankingInstantiation)(nil)

func (r *RankingInstantiation) Name() string { return "ranking" }

func (r *RankingInstantiation) Strategy() Strategy { return StrategyInference }

func (r *RankingInstantiation) DimensionFrom() DimensionFrom { return r.dimensionFrom }

func (r *RankingInstantiation) dimension(x [][]float64) (int, error) {
	if r.dimensionFrom == DimensionFromSecond {
		if len(x) < 2 {
			return 0, core.Errorf(core.ModuleInstantiation, core.ErrorCodeIndexOutOfRange,
				"psi: dimension is taken from x[1] but x has %d items", len(x))
		}
		return len(x[1]), nil
	}
	if len(x) == 0 {
		return 0, core.NewDomainError(core.ModuleInstantiation, core.ErrorCodeIndexOutOfRange,
			"psi: dimension is taken from x[0] but x is empty")
	}
	return len(x[0]), nil
}

// Psi 计算联合特征映射。所有校验在累加之前完成，出错时不返回部分结果。
func (r *RankingInstantiation) Psi(x [][]float64, y *core.RankingOutput) ([]float64, error) {
	if y == nil {
		return nil, core.NewDomainError(core.ModuleInstantiation, core.ErrorCodeInvalidInput, "psi: nil ranking")
	}
	d, err := r.dimension(x)
	if err != nil {
		return nil, err
	}
	if y.Len() < len(x) {
		return nil, core.Errorf(core.ModuleInstantiation, core.ErrorCodeIndexOutOfRange,
			"psi: ranking has %d positions for %d items", y.Len(), len(x))
	}
	nbPlus := y.NbPlus()
	if nbPlus > len(x) {
		return nil, core.Errorf(core.ModuleInstantiation, core.ErrorCodeIndexOutOfRange,
			"psi: nbPlus %d exceeds item count %d", nbPlus, len(x))
	}
	if err := vector.CheckDimensions(x, d); err != nil {
		return nil, err
	}

	psi := vector.Zeros(d)
	for i := 0; i < nbPlus; i++ {
		for j := nbPlus; j < len(x); j++ {
			yij := pairLabel(y.Rank(i), y.Rank(j))
			if yij == 0 {
				continue
			}
			diff, err := vector.Subtract(x[i], x[j])
			if err != nil {
				return nil, err
			}
			if err := vector.AddScaledInPlace(psi, diff, yij); err != nil {
				return nil, err
			}
		}
	}
	return psi, nil
}

// pairLabel 返回正例 i 与负例 j 的相对顺序标签。
func pairLabel(rankI, rankJ int) float64 {
	switch {
	case rankI == rankJ:
		return 0
	case rankI < rankJ:
		return 1
	default:
		return -1
	}
}

// Delta 返回 1 − AP(y2)。
//
// y1（参考排序）不参与计算：损失只取决于候选排序把前 nbPlus 个正例排到了哪里。
// y1 可以为 nil。
func (r *RankingInstantiation) Delta(_ *core.RankingOutput, y2 *core.RankingOutput) (float64, error) {
	if y2 == nil {
		return 0, core.NewDomainError(core.ModuleInstantiation, core.ErrorCodeInvalidInput, "delta: nil candidate ranking")
	}
	ap, err := metrics.AveragePrecision(y2)
	if err != nil {
		return 0, err
	}
	return 1 - ap, nil
}

// EnumerateY 总是返回 ErrEnumerationUnsupported：n 个物品的排序数量随 n 指数增长。
func (r *RankingInstantiation) EnumerateY(_ [][]float64) ([]*core.RankingOutput, error) {
	return nil, ErrEnumerationUnsupported
}
