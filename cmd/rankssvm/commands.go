package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rushteam/rankssvm/core"
	"github.com/rushteam/rankssvm/instantiation"
	"github.com/rushteam/rankssvm/metrics"
	"github.com/rushteam/rankssvm/model"
)

// exampleFile 是命令行读取的单个查询样本，YAML 或 JSON 均可。
type exampleFile struct {
	X       [][]float64 `yaml:"x" json:"x"`
	Ranking []int       `yaml:"ranking" json:"ranking"`
	NbPlus  int         `yaml:"nb_plus" json:"nb_plus"`
}

func loadExample(path string) (*exampleFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	var ex exampleFile
	// JSON 是 YAML 的子集，统一按 YAML 解析
	if err := yaml.Unmarshal(data, &ex); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &ex, nil
}

func (e *exampleFile) output() (*core.RankingOutput, error) {
	return core.NewRankingOutput(e.Ranking, e.NbPlus)
}

func (a *app) print(cmd *cobra.Command, v any, text string) error {
	out := cmd.OutOrStdout()
	if a.jsonOut {
		return json.NewEncoder(out).Encode(v)
	}
	_, err := fmt.Fprintln(out, text)
	return err
}

func formatVector(v []float64) string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = fmt.Sprintf("%g", f)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func newPsiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "psi FILE...",
		Short: "Compute the joint feature map, summed over all given examples",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs := make([][][]float64, 0, len(args))
			ys := make([]*core.RankingOutput, 0, len(args))
			for _, path := range args {
				ex, err := loadExample(path)
				if err != nil {
					return err
				}
				y, err := ex.output()
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				xs = append(xs, ex.X)
				ys = append(ys, y)
			}

			psi, err := instantiation.SumPsi(cmd.Context(), a.inst, xs, ys, a.cfg.BatchOptions()...)
			if err != nil {
				return err
			}
			a.logger.Debug("psi computed", "examples", len(args), "dimension", len(psi))
			return a.print(cmd, map[string]any{"psi": psi}, formatVector(psi))
		},
	}
}

func newDeltaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delta GOLD CANDIDATE",
		Short: "Compute the loss 1 - AP of a candidate ranking",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rankings := make([]*core.RankingOutput, 2)
			for i, path := range args {
				ex, err := loadExample(path)
				if err != nil {
					return err
				}
				if rankings[i], err = ex.output(); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			}

			loss, err := a.inst.Delta(rankings[0], rankings[1])
			if err != nil {
				return err
			}
			return a.print(cmd, map[string]float64{"delta": loss}, fmt.Sprintf("%g", loss))
		},
	}
}

type apReport struct {
	AP             float64           `json:"ap"`
	PrecisionAtK   float64           `json:"precision_at_k"`
	K              int               `json:"k"`
	ReciprocalRank float64           `json:"reciprocal_rank"`
	Curve          []metrics.PRPoint `json:"curve"`
}

func newAPCmd(a *app) *cobra.Command {
	var (
		k      int
		levels int
	)
	cmd := &cobra.Command{
		Use:   "ap FILE",
		Short: "Report AP, P@K, reciprocal rank and the interpolated PR curve",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ex, err := loadExample(args[0])
			if err != nil {
				return err
			}
			y, err := ex.output()
			if err != nil {
				return err
			}

			var r apReport
			r.K = k
			if r.AP, err = metrics.AveragePrecision(y); err != nil {
				return err
			}
			if r.PrecisionAtK, err = metrics.PrecisionAtK(y, k); err != nil {
				return err
			}
			if r.ReciprocalRank, err = metrics.ReciprocalRank(y); err != nil {
				return err
			}
			points, err := metrics.PrecisionRecall(y)
			if err != nil {
				return err
			}
			r.Curve = metrics.InterpolatedPrecision(points, levels)

			var b strings.Builder
			fmt.Fprintf(&b, "AP\t%g\nP@%d\t%g\nRR\t%g\n", r.AP, k, r.PrecisionAtK, r.ReciprocalRank)
			for _, p := range r.Curve {
				fmt.Fprintf(&b, "R=%.2f\tP=%g\n", p.Recall, p.Precision)
			}
			return a.print(cmd, r, strings.TrimRight(b.String(), "\n"))
		},
	}
	cmd.Flags().IntVar(&k, "k", 10, "cut-off for precision at K")
	cmd.Flags().IntVar(&levels, "levels", metrics.DefaultRecallLevels, "number of interpolated recall levels")
	return cmd
}

func newRankCmd(a *app) *cobra.Command {
	var modelPath string
	cmd := &cobra.Command{
		Use:   "rank FILE",
		Short: "Rank the items of an example with a linear model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := model.LoadLinearModel(modelPath)
			if err != nil {
				return fmt.Errorf("loading model: %w", err)
			}
			ex, err := loadExample(args[0])
			if err != nil {
				return err
			}
			y, err := m.Rank(ex.X, ex.NbPlus)
			if err != nil {
				return err
			}
			loss, err := a.inst.Delta(nil, y)
			if err != nil {
				return err
			}
			a.logger.Debug("ranked", "model", m.Name(), "items", len(ex.X), "nb_plus", ex.NbPlus)

			result := map[string]any{"ranking": y.Ranking(), "nb_plus": y.NbPlus(), "delta": loss}
			text := fmt.Sprintf("ranking\t%v\ndelta\t%g", y.Ranking(), loss)
			return a.print(cmd, result, text)
		},
	}
	cmd.Flags().StringVar(&modelPath, "model", "", "linear model JSON file ({\"weights\": [...]})")
	_ = cmd.MarkFlagRequired("model")
	return cmd
}
