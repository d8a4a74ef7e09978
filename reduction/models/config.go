package models

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lattice-estimator/redcost/reduction"
)

// ModelConfig names a cost model and its parameters.
type ModelConfig struct {
	Model string  `yaml:"model"`
	Mode  string  `yaml:"mode,omitempty"` // ADPS16 only
	NN    string  `yaml:"nn,omitempty"`   // Kyber and GJ21 only
	C     float64 `yaml:"c,omitempty"`    // Kyber and GJ21 only
}

// Presets represents a presets YAML file.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Presets struct {
	Version string                 `yaml:"version"`
	Default string                 `yaml:"default"`
	Models  map[string]ModelConfig `yaml:"models"`
}

var modelNames = []string{
	"ABFKSW20", "ABLR21", "ADPS16", "BDGL16", "CheNgu12", "GJ21", "Kyber", "LaaMosPol14",
}

// Names lists the model names accepted by New.
func Names() []string {
	out := make([]string, len(modelNames))
	copy(out, modelNames)
	return out
}

func canonicalName(name string) (string, bool) {
	for _, n := range modelNames {
		if strings.EqualFold(n, name) {
			return n, true
		}
	}
	return "", false
}

// New builds the model described by cfg. Model names match case-insensitively.
// Returns an error for an unknown model, mode or NN variant, an invalid C,
// or a parameter the model does not take.
func New(cfg ModelConfig) (reduction.ShortVectorModel, error) {
	name, ok := canonicalName(cfg.Model)
	if !ok {
		return nil, fmt.Errorf("cost model: %w %q (available: %v)", ErrUnknownModel, cfg.Model, modelNames)
	}

	var problems []string
	if cfg.Mode != "" && name != "ADPS16" {
		problems = append(problems, fmt.Sprintf("mode %q is only valid for ADPS16", cfg.Mode))
	}
	if name != "Kyber" && name != "GJ21" {
		if cfg.NN != "" {
			problems = append(problems, fmt.Sprintf("nn %q is only valid for Kyber and GJ21", cfg.NN))
		}
		if cfg.C != 0 {
			problems = append(problems, fmt.Sprintf("c %v is only valid for Kyber and GJ21", cfg.C))
		}
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("cost model %s: %s", name, strings.Join(problems, "; "))
	}

	switch name {
	case "CheNgu12":
		return CheNgu12{}, nil
	case "ABFKSW20":
		return ABFKSW20{}, nil
	case "ABLR21":
		return ABLR21{}, nil
	case "BDGL16":
		return BDGL16{}, nil
	case "LaaMosPol14":
		return LaaMosPol14{}, nil
	case "ADPS16":
		m, err := NewADPS16(cfg.Mode)
		if err != nil {
			return nil, fmt.Errorf("cost model: %w", err)
		}
		return m, nil
	case "Kyber":
		m, err := NewKyber(cfg.NN, cfg.C)
		if err != nil {
			return nil, fmt.Errorf("cost model: %w", err)
		}
		return m, nil
	default: // GJ21
		m, err := NewGJ21(cfg.NN, cfg.C, nil)
		if err != nil {
			return nil, fmt.Errorf("cost model: %w", err)
		}
		return m, nil
	}
}

// ParsePresets decodes presets YAML. Unknown fields are errors, and every
// preset must build with New.
func ParsePresets(data []byte) (*Presets, error) {
	var p Presets
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&p); err != nil {
		return nil, fmt.Errorf("parse presets YAML: %w", err)
	}
	for _, name := range p.Names() {
		if _, err := New(p.Models[name]); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
	}
	if p.Default != "" {
		if _, ok := p.Models[p.Default]; !ok {
			return nil, fmt.Errorf("default preset %q not defined", p.Default)
		}
	}
	return &p, nil
}

// LoadPresets reads and parses a presets file.
func LoadPresets(path string) (*Presets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets %q: %w", path, err)
	}
	return ParsePresets(data)
}

// Names returns the preset names in sorted order.
func (p *Presets) Names() []string {
	names := make([]string, 0, len(p.Models))
	for k := range p.Models {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named preset; "" selects the default preset.
func (p *Presets) Lookup(name string) (ModelConfig, error) {
	if name == "" {
		name = p.Default
	}
	cfg, ok := p.Models[name]
	if !ok {
		return ModelConfig{}, fmt.Errorf("preset %q not found (available: %v)", name, p.Names())
	}
	return cfg, nil
}
