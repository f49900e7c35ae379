package serialize

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fimdpgo/cmdp"
)

// RunConfig is the CLI's run configuration (spec §6, §9 "ambient stack"):
// which CMDP description to load, under what format, with what capacity,
// target set and objective.
type RunConfig struct {
	// Path is the CMDP description file to load.
	Path string `yaml:"path"`
	// Format is either "json" or "prism".
	Format string `yaml:"format"`
	// Capacity is the solver's capacity. Zero means unbounded (fixpoint.Inf).
	Capacity int `yaml:"capacity"`
	// Targets overrides the target set embedded in the description file, if
	// non-empty.
	Targets []int `yaml:"targets,omitempty"`
	// Objective names one of min_init_cons, safe, pos_reach, as_reach, buchi.
	Objective string `yaml:"objective"`
}

// LoadRunConfig reads a RunConfig from YAML (spec §9 "ambient stack" /
// Configuration).
func LoadRunConfig(r io.Reader) (RunConfig, error) {
	var cfg RunConfig
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return RunConfig{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if cfg.Format != "json" && cfg.Format != "prism" {
		return RunConfig{}, fmt.Errorf("%w: format must be \"json\" or \"prism\", got %q", ErrMalformed, cfg.Format)
	}
	return cfg, nil
}

// TargetStates converts cfg.Targets to cmdp.StateID, used when the config
// overrides a description file's embedded targets.
func (cfg RunConfig) TargetStates() []cmdp.StateID {
	out := make([]cmdp.StateID, len(cfg.Targets))
	for i, t := range cfg.Targets {
		out[i] = cmdp.StateID(t)
	}
	return out
}
