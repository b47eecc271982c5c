// Package metrics 计算排序质量指标（AP、P@K、PR 曲线等）。
//
// 约定：core.Ranking 的前 NbPlus 个物品为相关物品，Ranking()[i] 是物品 i 的排位，
// 排位越小越靠前，排位相等视为并列。
package metrics

import (
	"sort"

	"github.com/rushteam/rankssvm/core"
)

func checkRanking(y core.Ranking) ([]int, int, error) {
	if y == nil {
		return nil, 0, core.NewDomainError(core.ModuleMetrics, core.ErrorCodeInvalidInput, "nil ranking")
	}
	ranks := y.Ranking()
	if len(ranks) == 0 {
		return nil, 0, core.NewDomainError(core.ModuleMetrics, core.ErrorCodeInvalidInput, "empty ranking")
	}
	nbPlus := y.NbPlus()
	if nbPlus < 0 || nbPlus > len(ranks) {
		return nil, 0, core.Errorf(core.ModuleMetrics, core.ErrorCodeIndexOutOfRange,
			"nbPlus %d out of [0, %d]", nbPlus, len(ranks))
	}
	return ranks, nbPlus, nil
}

// AveragePrecision 计算平均精度（PR 曲线下面积）。
//
// 对每个相关物品 p：precision(p) = 排位 <= rank[p] 的相关物品数 / 排位 <= rank[p] 的物品数，
// AP 为所有相关物品 precision 的均值。并列的物品按最坏情况计入，因此结果在 [0, 1]。
// 没有相关物品时返回 0。
func AveragePrecision(y core.Ranking) (float64, error) {
	ranks, nbPlus, err := checkRanking(y)
	if err != nil {
		return 0, err
	}
	if nbPlus == 0 {
		return 0, nil
	}

	var sum float64
	for p := 0; p < nbPlus; p++ {
		var seen, relevant int
		for i, r := range ranks {
			if r <= ranks[p] {
				seen++
				if i < nbPlus {
					relevant++
				}
			}
		}
		sum += float64(relevant) / float64(seen)
	}
	return sum / float64(nbPlus), nil
}

// order 返回按排位升序的物品下标。
// 并列时负例排在正例前面，与 AveragePrecision 的并列处理一致；同类之间按物品下标。
func order(ranks []int, nbPlus int) []int {
	idx := make([]int, len(ranks))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ra, rb := ranks[idx[a]], ranks[idx[b]]
		if ra != rb {
			return ra < rb
		}
		return idx[a] >= nbPlus && idx[b] < nbPlus
	})
	return idx
}

// PrecisionAtK 计算前 K 个位置中相关物品的比例。k <= 0 时返回 0。
func PrecisionAtK(y core.Ranking, k int) (float64, error) {
	ranks, nbPlus, err := checkRanking(y)
	if err != nil {
		return 0, err
	}
	if k <= 0 {
		return 0, nil
	}
	n := min(k, len(ranks))
	var relevant int
	for _, i := range order(ranks, nbPlus)[:n] {
		if i < nbPlus {
			relevant++
		}
	}
	return float64(relevant) / float64(k), nil
}

// ReciprocalRank 返回第一个相关物品所在位置的倒数，没有相关物品时返回 0。
func ReciprocalRank(y core.Ranking) (float64, error) {
	ranks, nbPlus, err := checkRanking(y)
	if err != nil {
		return 0, err
	}
	for pos, i := range order(ranks, nbPlus) {
		if i < nbPlus {
			return 1.0 / float64(pos+1), nil
		}
	}
	return 0, nil
}
