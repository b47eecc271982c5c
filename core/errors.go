package core

import (
	"errors"
	"fmt"
)

// DomainError 是领域层的统一错误类型。
//
// 设计原则：
//   - 所有输入校验错误都使用此类型
//   - 提供错误代码（Code）和消息（Message）
//   - 支持错误检查函数（IsXXX），被 fmt.Errorf("%w") 包装后仍可识别
//
// 使用场景：
//   - Vector 错误：DIMENSION_MISMATCH
//   - Instantiation 错误：INDEX_OUT_OF_RANGE, NOT_SUPPORTED
//   - Metrics 错误：INVALID_INPUT
type DomainError struct {
	Code    string // 错误代码（如 "DIMENSION_MISMATCH", "NOT_SUPPORTED"）
	Message string // 错误消息
	Module  string // 模块名称（如 "vector", "metrics", "instantiation"）
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Module, e.Message)
}

// Is 让 errors.Is 按 Module+Code 比较，便于和哨兵错误对比。
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Module == t.Module
}

// GetDomainError 获取错误链上的 DomainError，如果不存在则返回 nil
func GetDomainError(err error) *DomainError {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// IsDomainError 检查错误链上是否存在 DomainError
func IsDomainError(err error) bool {
	return GetDomainError(err) != nil
}

// NewDomainError 创建新的领域错误
func NewDomainError(module, code, message string) *DomainError {
	return &DomainError{
		Module:  module,
		Code:    code,
		Message: message,
	}
}

// Errorf 以格式化消息创建领域错误
func Errorf(module, code, format string, args ...any) *DomainError {
	return NewDomainError(module, code, fmt.Sprintf(format, args...))
}

// 错误代码常量
const (
	ErrorCodeDimensionMismatch = "DIMENSION_MISMATCH" // 向量维度不一致
	ErrorCodeIndexOutOfRange   = "INDEX_OUT_OF_RANGE" // 下标越界
	ErrorCodeNotSupported      = "NOT_SUPPORTED"      // 操作不支持
	ErrorCodeInvalidInput      = "INVALID_INPUT"      // 输入无效
)

// 模块名称常量
const (
	ModuleVector        = "vector"
	ModuleMetrics       = "metrics"
	ModuleInstantiation = "instantiation"
	ModuleModel         = "model"
	ModuleQuery         = "query"
	ModuleCore          = "core"
)

func hasCode(err error, code string) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == code
	}
	return false
}

// IsDimensionMismatch 检查错误是否为 DIMENSION_MISMATCH
func IsDimensionMismatch(err error) bool {
	return hasCode(err, ErrorCodeDimensionMismatch)
}

// IsIndexOutOfRange 检查错误是否为 INDEX_OUT_OF_RANGE
func IsIndexOutOfRange(err error) bool {
	return hasCode(err, ErrorCodeIndexOutOfRange)
}

// IsNotSupported 检查错误是否为 NOT_SUPPORTED
func IsNotSupported(err error) bool {
	return hasCode(err, ErrorCodeNotSupported)
}

// IsInvalidInput 检查错误是否为 INVALID_INPUT
func IsInvalidInput(err error) bool {
	return hasCode(err, ErrorCodeInvalidInput)
}
