// Package query 把一次查询的候选物品整理成 structural SVM 训练样本：
// 按相关性规则把正例移到前面，并生成理想排序（gold）。
package query

import (
	"fmt"
	"sort"

	"github.com/rushteam/rankssvm/core"
	"github.com/rushteam/rankssvm/pkg/dsl"
)

// Example 是一次查询的训练样本。
// Items[i] 与 X[i] 一一对应，前 Gold.NbPlus() 个为正例。
type Example struct {
	Items []*core.Item
	X     [][]float64
	Gold  *core.RankingOutput
}

// Build 用 relevance 规则划分正负例，并生成样本。
//
// 正例与负例内部各自按 Score 降序（稳定）排列，gold 排位即调整后的位置（从 1 开始），
// 因此 gold 的 AP 恒为 1。输入切片不会被修改。
func Build(items []*core.Item, relevance *dsl.Program) (*Example, error) {
	if len(items) == 0 {
		return nil, core.NewDomainError(core.ModuleQuery, core.ErrorCodeInvalidInput, "no items")
	}
	if relevance == nil {
		return nil, core.NewDomainError(core.ModuleQuery, core.ErrorCodeInvalidInput, "nil relevance rule")
	}

	var positives, negatives []*core.Item
	for i, it := range items {
		if it == nil {
			return nil, core.Errorf(core.ModuleQuery, core.ErrorCodeInvalidInput, "item %d is nil", i)
		}
		ok, err := relevance.Bool(it)
		if err != nil {
			return nil, fmt.Errorf("item %s: %w", it.ID, err)
		}
		if ok {
			positives = append(positives, it)
		} else {
			negatives = append(negatives, it)
		}
	}
	byScore(positives)
	byScore(negatives)

	ordered := append(positives, negatives...)
	ex := &Example{
		Items: ordered,
		X:     make([][]float64, len(ordered)),
	}
	ranks := make([]int, len(ordered))
	for i, it := range ordered {
		ex.X[i] = it.Vector
		ranks[i] = i + 1
	}
	gold, err := core.NewRankingOutput(ranks, len(positives))
	if err != nil {
		return nil, err
	}
	ex.Gold = gold
	return ex, nil
}

func byScore(items []*core.Item) {
	sort.SliceStable(items, func(a, b int) bool {
		return items[a].Score > items[b].Score
	})
}

// NbPlus 返回样本中的正例数量。
func (e *Example) NbPlus() int { return e.Gold.NbPlus() }

// Candidate 用给定分数生成候选排序（同分并列），分数与 Items 一一对应。
func (e *Example) Candidate(scores []float64) (*core.RankingOutput, error) {
	if len(scores) != len(e.Items) {
		return nil, core.Errorf(core.ModuleQuery, core.ErrorCodeInvalidInput,
			"got %d scores for %d items", len(scores), len(e.Items))
	}
	return core.NewRankingOutput(core.RanksFromScores(scores), e.NbPlus())
}
