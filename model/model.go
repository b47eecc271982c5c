package model

import "github.com/rushteam/rankssvm/core"

// Ranker 是推断阶段的最小抽象：输入一次查询的物品向量，输出候选排序。
// structural SVM 的损失增广推断、线上预测都通过它完成，不依赖输出空间枚举。
type Ranker interface {
	Name() string
	Rank(x [][]float64, nbPlus int) (*core.RankingOutput, error)
}
