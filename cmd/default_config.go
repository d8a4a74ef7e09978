package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/sirupsen/logrus"

	"github.com/lattice-estimator/redcost/reduction/models"
)

// modelFlags holds the model selection flags shared by estimate and short-vectors.
type modelFlags struct {
	preset string
	model  string
	mode   string
	nn     string
	c      float64
}

// resolveModelConfig builds the model configuration from the presets file
// and the flags. An explicit --model without --preset ignores the presets
// file; otherwise the named preset (or the file's default) is loaded and the
// remaining flags override its fields.
func resolveModelConfig(path string, f modelFlags) (models.ModelConfig, error) {
	var cfg models.ModelConfig

	if f.model != "" && f.preset == "" {
		cfg.Model = f.model
	} else {
		presets, err := models.LoadPresets(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && f.preset == "" {
				return models.ModelConfig{}, fmt.Errorf("no cost model selected and no presets file at %s: pass --model (available: %v)", path, models.Names())
			}
			return models.ModelConfig{}, err
		}
		cfg, err = presets.Lookup(f.preset)
		if err != nil {
			return models.ModelConfig{}, err
		}
		name := f.preset
		if name == "" {
			name = presets.Default
		}
		logrus.Infof("Using preset %q from %s", name, path)
		if f.model != "" {
			cfg.Model = f.model
		}
	}

	if f.mode != "" {
		cfg.Mode = f.mode
	}
	if f.nn != "" {
		cfg.NN = f.nn
	}
	if f.c != 0 {
		cfg.C = f.c
	}
	return cfg, nil
}
