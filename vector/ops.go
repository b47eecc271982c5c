// Package vector 提供定长稠密向量的逐元素运算。
//
// 所有返回向量的函数都会新分配结果，不修改入参（AddScaledInPlace 除外）。
// 维度不一致时返回 DIMENSION_MISMATCH 领域错误。
package vector

import (
	"github.com/rushteam/rankssvm/core"
)

func mismatch(op string, a, b int) error {
	return core.Errorf(core.ModuleVector, core.ErrorCodeDimensionMismatch,
		"%s: dimension mismatch %d != %d", op, a, b)
}

// Zeros 返回 d 维零向量
func Zeros(d int) []float64 {
	return make([]float64, d)
}

// Add 计算 a + b
func Add(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, mismatch("add", len(a), len(b))
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out, nil
}

// Subtract 计算 a - b
func Subtract(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, mismatch("subtract", len(a), len(b))
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out, nil
}

// Scale 计算 s * v
func Scale(v []float64, s float64) []float64 {
	out := make([]float64, len(v))
	for i := range v {
		out[i] = v[i] * s
	}
	return out
}

// Dot 计算内积
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, mismatch("dot", len(a), len(b))
	}
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum, nil
}

// AddScaledInPlace 计算 dst += s * v，结果与 Add(dst, Scale(v, s)) 一致但不分配。
func AddScaledInPlace(dst, v []float64, s float64) error {
	if len(dst) != len(v) {
		return mismatch("add", len(dst), len(v))
	}
	if s == 0 {
		return nil
	}
	for i := range v {
		dst[i] += s * v[i]
	}
	return nil
}

// CheckDimensions 校验一组向量的维度都等于 d。
// 第一个不一致的向量以 DIMENSION_MISMATCH 报告，并带上其下标。
func CheckDimensions(vs [][]float64, d int) error {
	for i, v := range vs {
		if len(v) != d {
			return core.Errorf(core.ModuleVector, core.ErrorCodeDimensionMismatch,
				"vector %d has dimension %d, want %d", i, len(v), d)
		}
	}
	return nil
}
