// Package rankssvm 是 structural SVM 排序问题的插件工具包。
//
// 设计要点：
// - Psi: 正例与负例两两做带符号差，累加得到联合特征映射
// - Delta: 1 - AP，只依赖候选排序
// - EnumerateY: 排序空间随物品数指数增长，明确返回 NOT_SUPPORTED；求解器应通过 Strategy 选择推断方式
package rankssvm

import (
	"github.com/rushteam/rankssvm/core"
	"github.com/rushteam/rankssvm/instantiation"
)

// 轻量 facade：便于用户直接 import "rankssvm" 使用核心抽象。
type RankingOutput = core.RankingOutput
type RankingInstantiation = instantiation.RankingInstantiation
type Strategy = instantiation.Strategy

const (
	StrategyEnumeration = instantiation.StrategyEnumeration
	StrategyInference   = instantiation.StrategyInference
)

var (
	NewRankingOutput          = core.NewRankingOutput
	NewRankingInstantiation   = instantiation.NewRankingInstantiation
	ErrEnumerationUnsupported = instantiation.ErrEnumerationUnsupported
)
