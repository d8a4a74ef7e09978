package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lattice-estimator/redcost/reduction"
)

var (
	deltaBeta  float64
	betaDelta  float64
	betaMethod string
)

var deltaCmd = &cobra.Command{
	Use:   "delta",
	Short: "Root-Hermite factor reached by BKZ with the given block size",
	Run: func(cmd *cobra.Command, args []string) {
		if deltaBeta < 2 {
			logrus.Fatalf("--beta must be >= 2, got %v", deltaBeta)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%.6f\n", reduction.Delta(deltaBeta))
	},
}

var betaCmd = &cobra.Command{
	Use:   "beta",
	Short: "Block size needed to reach the given root-Hermite factor",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runBeta(cmd.OutOrStdout(), betaDelta, betaMethod); err != nil {
			logrus.Fatalf("beta: %v", err)
		}
	},
}

func runBeta(w io.Writer, delta float64, method string) error {
	var (
		beta int
		err  error
	)
	switch method {
	case "find-root":
		beta, err = reduction.Beta(delta)
	case "simple":
		beta, err = reduction.BetaSimple(delta)
	case "secant":
		beta, err = reduction.BetaSecant(delta)
	default:
		return fmt.Errorf("unknown method %q (want find-root, simple or secant)", method)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, beta)
	return err
}

func init() {
	deltaCmd.Flags().Float64Var(&deltaBeta, "beta", 0, "Block size β")
	_ = deltaCmd.MarkFlagRequired("beta")

	betaCmd.Flags().Float64Var(&betaDelta, "delta", 0, "Root-Hermite factor δ > 1")
	betaCmd.Flags().StringVar(&betaMethod, "method", "find-root", "Search method (find-root, simple, secant)")
	_ = betaCmd.MarkFlagRequired("delta")
}
