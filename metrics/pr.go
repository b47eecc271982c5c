package metrics

import "github.com/rushteam/rankssvm/core"

// PRPoint 是 PR 曲线上的一个点。
type PRPoint struct {
	Recall    float64 `json:"recall" yaml:"recall"`
	Precision float64 `json:"precision" yaml:"precision"`
}

// DefaultRecallLevels 是经典的 11 点插值（0, 0.1, ..., 1.0）。
const DefaultRecallLevels = 11

// PrecisionRecall 按排位从前到后逐个截断（并列时负例在前），返回每个截断位置的 (recall, precision)。
// 没有相关物品时 recall 恒为 0。
func PrecisionRecall(y core.Ranking) ([]PRPoint, error) {
	ranks, nbPlus, err := checkRanking(y)
	if err != nil {
		return nil, err
	}

	points := make([]PRPoint, 0, len(ranks))
	var relevant int
	for pos, i := range order(ranks, nbPlus) {
		if i < nbPlus {
			relevant++
		}
		pt := PRPoint{Precision: float64(relevant) / float64(pos+1)}
		if nbPlus > 0 {
			pt.Recall = float64(relevant) / float64(nbPlus)
		}
		points = append(points, pt)
	}
	return points, nil
}

// InterpolatedPrecision 在 levels 个等距召回点上取插值精度：
// 召回点 r 的精度为所有 recall >= r 的点中的最大精度，不存在时为 0。
// levels < 2 时使用 DefaultRecallLevels。
func InterpolatedPrecision(points []PRPoint, levels int) []PRPoint {
	if levels < 2 {
		levels = DefaultRecallLevels
	}
	out := make([]PRPoint, levels)
	for l := 0; l < levels; l++ {
		r := float64(l) / float64(levels-1)
		var best float64
		for _, p := range points {
			// 浮点误差容忍，避免 0.3 这类召回点被错过
			if p.Recall+1e-12 >= r && p.Precision > best {
				best = p.Precision
			}
		}
		out[l] = PRPoint{Recall: r, Precision: best}
	}
	return out
}
