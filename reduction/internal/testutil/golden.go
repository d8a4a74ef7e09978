// Package testutil provides shared test infrastructure for the reduction
// packages: the golden cost dataset and float assertion helpers.
package testutil

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gopkg.in/yaml.v3"
)

// GoldenDataset represents the structure of testdata/golden_costs.yaml.
type GoldenDataset struct {
	Costs        []GoldenCost        `yaml:"costs"`
	ShortVectors []GoldenShortVector `yaml:"short_vectors"`
}

// GoldenCost is one expected log₂ cost of a model evaluation.
type GoldenCost struct {
	Model string  `yaml:"model"`
	Mode  string  `yaml:"mode,omitempty"`
	NN    string  `yaml:"nn,omitempty"`
	Beta  int     `yaml:"beta"`
	D     int     `yaml:"d"`
	Log2  float64 `yaml:"log2"`
	Tol   float64 `yaml:"tol"` // absolute tolerance on log2
}

// GoldenShortVector is one expected ShortVectors result.
type GoldenShortVector struct {
	Model      string  `yaml:"model"`
	Beta       int     `yaml:"beta"`
	D          int     `yaml:"d"`
	N          int64   `yaml:"n"` // 0: unset
	Preprocess bool    `yaml:"preprocess"`
	Rho        float64 `yaml:"rho"`
	Cost       float64 `yaml:"cost"`
	Count      float64 `yaml:"count"`
}

// LoadGoldenDataset loads the golden dataset from the repository testdata directory.
// The path is resolved relative to this source file: reduction/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "golden_costs.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
// Equal infinities compare equal.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == got {
		return
	}
	if !scalar.EqualWithinRel(want, got, relTol) {
		diff := math.Abs(want - got)
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/math.Max(math.Abs(want), math.Abs(got)))
	}
}

// AssertLog2Near checks |log₂(got) − wantLog2| ≤ absTol.
func AssertLog2Near(t *testing.T, name string, wantLog2, got, absTol float64) {
	t.Helper()
	if !scalar.EqualWithinAbs(math.Log2(got), wantLog2, absTol) {
		t.Errorf("%s: log2 got %.6f, want %.6f (tol %v)", name, math.Log2(got), wantLog2, absTol)
	}
}
