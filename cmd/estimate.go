package cmd

import (
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lattice-estimator/redcost/reduction"
	"github.com/lattice-estimator/redcost/reduction/models"
)

var (
	selection    modelFlags
	blockSize    int
	dimension    int
	bitSize      int
	infeasible   bool
	output       string
	vectorCount  int64
	noPreprocess bool
	strategy     string
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Cost record of BKZ-β on a d-dimensional lattice",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := resolveModelConfig(defaultsPath, selection)
		if err != nil {
			logrus.Fatalf("Failed to select cost model: %v", err)
		}
		if err := runEstimate(cmd.OutOrStdout(), cfg, blockSize, dimension, bitSize, infeasible, output); err != nil {
			logrus.Fatalf("estimate: %v", err)
		}
	},
}

var shortVectorsCmd = &cobra.Command{
	Use:   "short-vectors",
	Short: "Cost of producing many short vectors with BKZ-β",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := resolveModelConfig(defaultsPath, selection)
		if err != nil {
			logrus.Fatalf("Failed to select cost model: %v", err)
		}
		if err := runShortVectors(cmd.OutOrStdout(), cfg, strategy, blockSize, dimension, vectorCount, bitSize, !noPreprocess); err != nil {
			logrus.Fatalf("short-vectors: %v", err)
		}
	},
}

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List cost models and nearest-neighbour variants",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, "models:")
		for _, name := range models.Names() {
			fmt.Fprintf(w, "  %s\n", name)
		}
		fmt.Fprintln(w, "nn variants (Kyber, GJ21):")
		for _, name := range models.NNVariants() {
			fmt.Fprintf(w, "  %s\n", name)
		}
	},
}

func validateDims(beta, d int) error {
	if beta < 2 {
		return fmt.Errorf("--beta must be >= 2, got %d", beta)
	}
	if d < 1 {
		return fmt.Errorf("--d must be >= 1, got %d", d)
	}
	return nil
}

func runEstimate(w io.Writer, cfg models.ModelConfig, beta, d, B int, forceInfeasible bool, format string) error {
	if err := validateDims(beta, d); err != nil {
		return err
	}
	m, err := models.New(cfg)
	if err != nil {
		return err
	}
	logrus.Infof("Estimating %s with β=%d, d=%d, B=%d", m.Name(), beta, d, B)

	opts := reduction.EvalOptions{BitSize: B}
	if forceInfeasible {
		feasible := false
		opts.Predicate = &feasible
	}
	c, err := reduction.Evaluate(m, beta, d, opts)
	if err != nil {
		return err
	}

	switch format {
	case "text":
		_, err = fmt.Fprintf(w, "%s: %s\n", m.Name(), c)
	case "yaml":
		data, merr := yaml.Marshal(c)
		if merr != nil {
			return fmt.Errorf("marshal cost record: %w", merr)
		}
		_, err = w.Write(data)
	default:
		return fmt.Errorf("unknown output format %q (want text or yaml)", format)
	}
	return err
}

// shortVectorsReport is the YAML shape printed by short-vectors.
type shortVectorsReport struct {
	Model    string  `yaml:"model"`
	Strategy string  `yaml:"strategy"`
	Beta     int     `yaml:"beta"`
	D        int     `yaml:"d"`
	Rho      float64 `yaml:"rho"`
	Cost     float64 `yaml:"cost"`
	Log2Cost float64 `yaml:"log2_cost"`
	N        float64 `yaml:"n"`
}

func runShortVectors(w io.Writer, cfg models.ModelConfig, strategy string, beta, d int, n int64, B int, preprocess bool) error {
	if err := validateDims(beta, d); err != nil {
		return err
	}
	m, err := models.New(cfg)
	if err != nil {
		return err
	}
	got, err := models.ShortVectorsWith(strategy, m, beta, d, n, B, preprocess)
	if err != nil {
		return err
	}
	if strategy == "" {
		strategy = models.StrategyModel
	}
	data, err := yaml.Marshal(shortVectorsReport{
		Model:    m.Name(),
		Strategy: strategy,
		Beta:     beta,
		D:        d,
		Rho:      got.Rho,
		Cost:     got.Cost,
		Log2Cost: math.Log2(got.Cost),
		N:        got.N,
	})
	if err != nil {
		return fmt.Errorf("marshal short vectors report: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func addModelFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&selection.preset, "preset", "", "Preset name from the defaults file (default: the file's default preset)")
	cmd.Flags().StringVar(&selection.model, "model", "", "Cost model name (see `redcost models`)")
	cmd.Flags().StringVar(&selection.mode, "mode", "", "ADPS16 mode (classical, quantum, paranoid)")
	cmd.Flags().StringVar(&selection.nn, "nn", "", "Nearest-neighbour variant for Kyber/GJ21")
	cmd.Flags().Float64Var(&selection.c, "c", 0, "Progressive BKZ overhead C for Kyber/GJ21 (0: default 5.46)")
	cmd.Flags().IntVar(&blockSize, "beta", 0, "Block size β")
	cmd.Flags().IntVar(&dimension, "d", 0, "Lattice dimension d")
	cmd.Flags().IntVar(&bitSize, "bits", 0, "Bit size of basis entries (0: unknown)")
	_ = cmd.MarkFlagRequired("beta")
	_ = cmd.MarkFlagRequired("d")
}

func init() {
	addModelFlags(estimateCmd)
	estimateCmd.Flags().BoolVar(&infeasible, "infeasible", false, "Mark the configuration infeasible (rop = red = inf)")
	estimateCmd.Flags().StringVar(&output, "output", "text", "Output format (text, yaml)")

	addModelFlags(shortVectorsCmd)
	shortVectorsCmd.Flags().Int64Var(&vectorCount, "n", 0, "Number of vectors requested (0: model default)")
	shortVectorsCmd.Flags().BoolVar(&noPreprocess, "no-preprocess", false, "Assume the basis is already BKZ-β reduced")
	shortVectorsCmd.Flags().StringVar(&strategy, "strategy", models.StrategyModel, "Short-vector strategy (model, lll, simple)")
}
