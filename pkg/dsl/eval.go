package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/rushteam/rankssvm/core"
	"github.com/rushteam/rankssvm/pkg/conv"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvErr  error
	celEnvOnce sync.Once
)

// getCELEnv 获取或创建 CEL 环境
func getCELEnv() (*cel.Env, error) {
	celEnvOnce.Do(func() {
		celEnv, celEnvErr = cel.NewEnv(
			cel.Variable("item", cel.DynType),
			cel.Variable("label", cel.DynType),
		)
	})
	return celEnv, celEnvErr
}

// Program 是编译后的物品表达式，使用 CEL (Common Expression Language) 语法。
// 编译一次后可被多个 goroutine 并发求值。
//
// 可用变量：
//   - item.id / item.score / item.vector / item.labels / item.meta
//   - label.<key>：item.labels 的简写
//
// 示例：
//   - `label.relevant == "1"` → 标注为相关
//   - `item.score >= 0.5 && item.vector[0] > 1.0` → 分数和首个分量同时满足
//   - `"gold" in item.labels` → 存在 gold 标签
type Program struct {
	expr string
	prg  cel.Program
}

// Compile 解析并编译表达式。
func Compile(expr string) (*Program, error) {
	if expr == "" {
		return nil, fmt.Errorf("empty expression")
	}
	env, err := getCELEnv()
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}
	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile error: %w", issues.Err())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %w", err)
	}
	return &Program{expr: expr, prg: prg}, nil
}

// MustCompile 与 Compile 相同，出错时 panic。
func MustCompile(expr string) *Program {
	p, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Program) String() string { return p.expr }

// Bool 对物品求值，表达式必须返回布尔值。
func (p *Program) Bool(item *core.Item) (bool, error) {
	out, err := p.eval(item)
	if err != nil {
		return false, err
	}
	result, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("expression %q must return boolean, got %T", p.expr, out)
	}
	return result, nil
}

// Float 对物品求值，表达式必须返回数值。
func (p *Program) Float(item *core.Item) (float64, error) {
	out, err := p.eval(item)
	if err != nil {
		return 0, err
	}
	f, ok := conv.ToFloat64(out)
	if !ok {
		return 0, fmt.Errorf("expression %q must return a number, got %T", p.expr, out)
	}
	return f, nil
}

func (p *Program) eval(item *core.Item) (any, error) {
	if item == nil {
		return nil, fmt.Errorf("nil item")
	}
	out, _, err := p.prg.Eval(buildInput(item))
	if err != nil {
		// 访问不存在的 key 会报错，应使用 "key" in item.labels 检查存在性
		return nil, fmt.Errorf("eval error: %w", err)
	}
	return out.Value(), nil
}

// buildInput 构建 CEL 表达式的输入数据
func buildInput(item *core.Item) map[string]any {
	labels := make(map[string]any, len(item.Labels))
	for k, v := range item.Labels {
		labels[k] = v
	}
	vec := make([]any, len(item.Vector))
	for i, v := range item.Vector {
		vec[i] = v
	}
	meta := item.Meta
	if meta == nil {
		meta = map[string]any{}
	}

	return map[string]any{
		"item": map[string]any{
			"id":     item.ID,
			"score":  item.Score,
			"vector": vec,
			"labels": labels,
			"meta":   meta,
		},
		"label": labels,
	}
}
