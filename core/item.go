package core

// Item 是构造训练样本时的候选物品：向量表示、分数、元信息、标签。
// Labels 用于相关性规则判断；Score 用于同类物品内部排序。
type Item struct {
	ID     string
	Vector []float64
	Score  float64
	Labels map[string]string
	Meta   map[string]any
}

func NewItem(id string, vec []float64) *Item {
	return &Item{
		ID:     id,
		Vector: vec,
		Labels: make(map[string]string),
		Meta:   make(map[string]any),
	}
}

// PutLabel 写入 Label；若已存在同名 key，则以 '|' 累积，保留历史。
func (it *Item) PutLabel(key, value string) {
	if it.Labels == nil {
		it.Labels = make(map[string]string)
	}
	if old, ok := it.Labels[key]; ok && old != "" && value != "" {
		it.Labels[key] = old + "|" + value
		return
	}
	if value == "" {
		if _, ok := it.Labels[key]; ok {
			return
		}
	}
	it.Labels[key] = value
}
