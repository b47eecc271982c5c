package instantiation

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/rushteam/rankssvm/core"
	"github.com/rushteam/rankssvm/vector"
)

type batchOptions struct {
	maxConcurrent int
}

// BatchOption 配置批量计算。
type BatchOption func(*batchOptions)

// WithMaxConcurrent 限制并发数（0 表示无限制）。
func WithMaxConcurrent(n int) BatchOption {
	return func(o *batchOptions) {
		o.maxConcurrent = n
	}
}

func newGroup(ctx context.Context, opts []BatchOption) (*errgroup.Group, context.Context) {
	o := batchOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	eg, gctx := errgroup.WithContext(ctx)
	if o.maxConcurrent > 0 {
		eg.SetLimit(o.maxConcurrent)
	}
	return eg, gctx
}

// SumPsi 并发计算每个样本 (xs[i], ys[i]) 的 Psi 并求和。
// 每个样本的结果按下标顺序累加，保证结果与并发度无关。
// 任一样本出错会取消其余计算并返回该错误。
func SumPsi[X, Y any](ctx context.Context, inst Instantiation[X, Y], xs []X, ys []Y, opts ...BatchOption) ([]float64, error) {
	if len(xs) != len(ys) {
		return nil, core.Errorf(core.ModuleInstantiation, core.ErrorCodeInvalidInput,
			"sum psi: %d inputs but %d outputs", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return nil, core.NewDomainError(core.ModuleInstantiation, core.ErrorCodeInvalidInput, "sum psi: no examples")
	}

	results := make([][]float64, len(xs))
	eg, gctx := newGroup(ctx, opts)
	for i := range xs {
		i := i
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			psi, err := inst.Psi(xs[i], ys[i])
			if err != nil {
				return err
			}
			results[i] = psi
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sum := results[0]
	for _, psi := range results[1:] {
		next, err := vector.Add(sum, psi)
		if err != nil {
			return nil, err
		}
		sum = next
	}
	return sum, nil
}

// MeanDelta 并发计算每对 (golds[i], candidates[i]) 的 Delta 并取均值。
func MeanDelta[X, Y any](ctx context.Context, inst Instantiation[X, Y], golds, candidates []Y, opts ...BatchOption) (float64, error) {
	if len(golds) != len(candidates) {
		return 0, core.Errorf(core.ModuleInstantiation, core.ErrorCodeInvalidInput,
			"mean delta: %d references but %d candidates", len(golds), len(candidates))
	}
	if len(golds) == 0 {
		return 0, core.NewDomainError(core.ModuleInstantiation, core.ErrorCodeInvalidInput, "mean delta: no pairs")
	}

	losses := make([]float64, len(golds))
	eg, gctx := newGroup(ctx, opts)
	for i := range golds {
		i := i
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			loss, err := inst.Delta(golds[i], candidates[i])
			if err != nil {
				return err
			}
			losses[i] = loss
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	var sum float64
	for _, l := range losses {
		sum += l
	}
	return sum / float64(len(losses)), nil
}
