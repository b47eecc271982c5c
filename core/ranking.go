package core

import "sort"

// Ranking 是排序输出的最小只读视图，指标计算只依赖它。
type Ranking interface {
	// Ranking 返回每个物品的排位（下标为物品序号，值越小排得越靠前）
	Ranking() []int
	// NbPlus 返回相关物品数量，约定前 NbPlus 个物品为正例
	NbPlus() int
}

// RankingOutput 是一次查询的候选排序（结构化输出 y）。
//
// ranks[i] 是第 i 个物品的排位；排位只比较大小，相等即并列。
// 前 nbPlus 个物品为正例，其余为负例。构造后不可变。
type RankingOutput struct {
	ranks  []int
	nbPlus int
}

// NewRankingOutput 创建排序输出，要求 0 <= nbPlus <= len(ranks)。
func NewRankingOutput(ranks []int, nbPlus int) (*RankingOutput, error) {
	if nbPlus < 0 || nbPlus > len(ranks) {
		return nil, Errorf(ModuleCore, ErrorCodeInvalidInput,
			"nbPlus %d out of [0, %d]", nbPlus, len(ranks))
	}
	cp := make([]int, len(ranks))
	copy(cp, ranks)
	return &RankingOutput{ranks: cp, nbPlus: nbPlus}, nil
}

// MustRankingOutput 与 NewRankingOutput 相同，参数非法时 panic。
func MustRankingOutput(ranks []int, nbPlus int) *RankingOutput {
	y, err := NewRankingOutput(ranks, nbPlus)
	if err != nil {
		panic(err)
	}
	return y
}

// Ranking 返回排位的副本。
func (y *RankingOutput) Ranking() []int {
	cp := make([]int, len(y.ranks))
	copy(cp, y.ranks)
	return cp
}

func (y *RankingOutput) NbPlus() int { return y.nbPlus }

func (y *RankingOutput) Len() int { return len(y.ranks) }

// Rank 返回第 i 个物品的排位，不复制底层切片。
func (y *RankingOutput) Rank(i int) int { return y.ranks[i] }

// IsPositive 判断第 i 个物品是否为正例。
func (y *RankingOutput) IsPositive(i int) bool { return i >= 0 && i < y.nbPlus }

// RanksFromScores 按分数降序生成排位（从 1 开始）。
// 分数相同的物品并列，后续排位跳过（1, 2, 2, 4）。
func RanksFromScores(scores []float64) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	ranks := make([]int, len(scores))
	for pos, idx := range order {
		if pos > 0 && scores[idx] == scores[order[pos-1]] {
			ranks[idx] = ranks[order[pos-1]]
			continue
		}
		ranks[idx] = pos + 1
	}
	return ranks
}
