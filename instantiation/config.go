package instantiation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/rushteam/rankssvm/core"
	"github.com/rushteam/rankssvm/pkg/conv"
)

// RankingProblem 是排序问题插件的具体类型参数组合。
type RankingProblem = Instantiation[[][]float64, *core.RankingOutput]

// Builder 根据配置构建插件。
type Builder func(cfg map[string]any) (RankingProblem, error)

// Config 是插件与批量计算的配置结构（支持 YAML/JSON）。
type Config struct {
	Instantiation struct {
		Type   string         `yaml:"type" json:"type"`     // ranking 等
		Config map[string]any `yaml:"config" json:"config"` // 插件特定配置
	} `yaml:"instantiation" json:"instantiation"`
	Batch struct {
		MaxConcurrent int `yaml:"max_concurrent" json:"max_concurrent"`
	} `yaml:"batch" json:"batch"`
}

// LoadConfig 按扩展名选择解析方式：.json 使用 JSON，其余按 YAML 解析。
func LoadConfig(path string) (*Config, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return LoadConfigFromJSON(path)
	}
	return LoadConfigFromYAML(path)
}

// LoadConfigFromYAML 从 YAML 文件加载配置。
func LoadConfigFromYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return ParseConfigYAML(data)
}

// ParseConfigYAML 解析 YAML 内容。
func ParseConfigYAML(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return &cfg, nil
}

// LoadConfigFromJSON 从 JSON 文件加载配置。
func LoadConfigFromJSON(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return &cfg, nil
}

// Build 按配置的类型构建插件；类型为空时使用 "ranking"。
func (c *Config) Build() (RankingProblem, error) {
	typeName := c.Instantiation.Type
	if typeName == "" {
		typeName = "ranking"
	}
	return Build(typeName, c.Instantiation.Config)
}

// BatchOptions 返回配置对应的批量计算选项。
func (c *Config) BatchOptions() []BatchOption {
	if c.Batch.MaxConcurrent > 0 {
		return []BatchOption{WithMaxConcurrent(c.Batch.MaxConcurrent)}
	}
	return nil
}

var (
	builders   = make(map[string]Builder)
	buildersMu sync.RWMutex
)

func init() {
	Register("ranking", BuildRanking)
}

// Register 注册一种插件的构建逻辑，重复注册会覆盖。
func Register(typeName string, builder Builder) {
	if typeName == "" || builder == nil {
		return
	}
	buildersMu.Lock()
	defer buildersMu.Unlock()
	builders[typeName] = builder
}

// SupportedTypes 返回当前已注册的插件类型列表（排序），用于错误提示与校验。
func SupportedTypes() []string {
	buildersMu.RLock()
	defer buildersMu.RUnlock()
	types := make([]string, 0, len(builders))
	for t := range builders {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Build 根据类型和配置构建插件。
func Build(typeName string, cfg map[string]any) (RankingProblem, error) {
	buildersMu.RLock()
	builder, ok := builders[typeName]
	buildersMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unsupported instantiation type %q (supported: %v)", typeName, SupportedTypes())
	}
	return builder(cfg)
}

// BuildRanking 从配置构建 RankingInstantiation。
//
//	dimension_from: first | second
func BuildRanking(cfg map[string]any) (RankingProblem, error) {
	if raw, ok := cfg["dimension_from"]; ok {
		if _, isString := raw.(string); !isString {
			return nil, fmt.Errorf("invalid dimension_from %v (%T), want %q or %q", raw, raw, DimensionFromFirst, DimensionFromSecond)
		}
	}
	from := conv.ConfigGet(cfg, "dimension_from", string(DimensionFromFirst))
	switch DimensionFrom(from) {
	case DimensionFromFirst, DimensionFromSecond:
	default:
		return nil, fmt.Errorf("invalid dimension_from %q (want %q or %q)", from, DimensionFromFirst, DimensionFromSecond)
	}
	return NewRankingInstantiation(WithDimensionFrom(DimensionFrom(from))), nil
}
