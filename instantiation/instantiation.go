// Package instantiation 定义结构化预测（如 structural SVM）所需的问题插件：
// 联合特征映射 Psi、结构化损失 Delta 以及输出空间枚举 EnumerateY。
//
// 通用求解器应先通过 Strategy 判断插件支持哪种推断方式，
// 而不是调用 EnumerateY 后再捕获错误。
package instantiation

import (
	"github.com/rushteam/rankssvm/core"
)

// Strategy 描述插件支持的损失增广推断方式。
type Strategy int

const (
	// StrategyEnumeration 输出空间可枚举，求解器可暴力遍历 EnumerateY 的结果。
	StrategyEnumeration Strategy = iota + 1
	// StrategyInference 输出空间不可枚举，求解器必须使用专门的推断算法。
	StrategyInference
)

func (s Strategy) String() string {
	switch s {
	case StrategyEnumeration:
		return "enumeration"
	case StrategyInference:
		return "inference"
	default:
		return "unknown"
	}
}

// Instantiation 是结构化预测问题的插件接口。
//
//   - Psi: 联合特征映射，返回新分配的向量，调用方持有
//   - Delta: y2 相对 y1 的结构化损失
//   - EnumerateY: 枚举 x 的全部合法输出；Strategy 非 StrategyEnumeration 时
//     必须返回 NOT_SUPPORTED 错误，而不是空集合
type Instantiation[X, Y any] interface {
	Name() string
	Strategy() Strategy
	Psi(x X, y Y) ([]float64, error)
	Delta(y1, y2 Y) (float64, error)
	EnumerateY(x X) ([]Y, error)
}

// SupportsEnumeration 判断插件能否枚举输出空间。
func SupportsEnumeration[X, Y any](inst Instantiation[X, Y]) bool {
	return inst != nil && inst.Strategy() == StrategyEnumeration
}

// ErrEnumerationUnsupported 表示输出空间过大无法枚举。
// 可用 errors.Is 或 core.IsNotSupported 判断。
var ErrEnumerationUnsupported = core.NewDomainError(
	core.ModuleInstantiation,
	core.ErrorCodeNotSupported,
	"output space enumeration is not supported: the number of rankings is exponential in the item count",
)
