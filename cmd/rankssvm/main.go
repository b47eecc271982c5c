package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rushteam/rankssvm/instantiation"
)

var version = "0.1.0-dev"

// app 保存一次命令执行的全局状态
type app struct {
	configPath string
	jsonOut    bool
	verbose    bool

	logger *slog.Logger
	cfg    *instantiation.Config
	inst   instantiation.RankingProblem
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "rankssvm",
		Short: "Ranking feature map and AP loss for structural SVMs",
		Long: `rankssvm evaluates the ranking instantiation of a structural SVM.

It computes the joint feature map psi(x, y) of a query's item vectors and
a candidate ranking, the AP-based loss delta(y1, y2) = 1 - AP(y2), and
ranks items with a learned linear model.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.init,
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "instantiation config file (YAML or JSON)")
	rootCmd.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newVersionCmd(a),
		newPsiCmd(a),
		newDeltaCmd(a),
		newAPCmd(a),
		newRankCmd(a),
	)
	return rootCmd
}

func (a *app) init(cmd *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))

	cfg := &instantiation.Config{}
	if a.configPath != "" {
		var err error
		cfg, err = instantiation.LoadConfig(a.configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}
	inst, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("building instantiation: %w", err)
	}
	a.cfg = cfg
	a.inst = inst

	a.logger.Debug("instantiation ready",
		"type", inst.Name(),
		"strategy", inst.Strategy().String(),
		"max_concurrent", cfg.Batch.MaxConcurrent,
	)
	return nil
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.print(cmd, map[string]string{"version": version}, fmt.Sprintf("rankssvm version %s", version))
		},
	}
}
