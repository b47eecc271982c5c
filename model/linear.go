package model

import (
	"encoding/json"
	"os"

	"github.com/rushteam/rankssvm/core"
	"github.com/rushteam/rankssvm/vector"
)

// LinearModel 是 structural SVM 学到的线性打分模型。
//
// 打分原理：
// 1. 单个物品分数: s_i = <w, x_i>
// 2. 兼容度: F(x, y) = <w, psi(x, y)>
//
// 对于排序特征映射，按 s_i 降序排列即可得到使 F(x, y) 最大的排序。
type LinearModel struct {
	Weights []float64 // 权重向量，维度与物品向量一致
}

// LoadLinearModel 从 JSON 文件加载模型：{"weights": [...]}
func LoadLinearModel(path string) (*LinearModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw struct {
		Weights []float64 `json:"weights"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if len(raw.Weights) == 0 {
		return nil, core.NewDomainError(core.ModuleModel, core.ErrorCodeInvalidInput, "model has no weights")
	}
	return &LinearModel{Weights: raw.Weights}, nil
}

var _ Ranker = (*LinearModel)(nil)

func (m *LinearModel) Name() string { return "linear" }

// Score 返回 <w, v>。
func (m *LinearModel) Score(v []float64) (float64, error) {
	return vector.Dot(m.Weights, v)
}

// Compatibility 返回 <w, psi>，psi 通常来自 Instantiation.Psi。
func (m *LinearModel) Compatibility(psi []float64) (float64, error) {
	return vector.Dot(m.Weights, psi)
}

// Rank 按 <w, x_i> 降序生成排位（从 1 开始，同分并列），前 nbPlus 个物品视为正例。
func (m *LinearModel) Rank(x [][]float64, nbPlus int) (*core.RankingOutput, error) {
	if nbPlus < 0 || nbPlus > len(x) {
		return nil, core.Errorf(core.ModuleModel, core.ErrorCodeIndexOutOfRange,
			"nbPlus %d out of [0, %d]", nbPlus, len(x))
	}
	scores := make([]float64, len(x))
	for i, v := range x {
		s, err := m.Score(v)
		if err != nil {
			return nil, err
		}
		scores[i] = s
	}
	return core.NewRankingOutput(core.RanksFromScores(scores), nbPlus)
}
