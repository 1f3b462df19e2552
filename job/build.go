package job

import (
	"fmt"

	"github.com/hamilton-earthscope/tinkerpop/stage"
)

// BuildChain builds a stage.Chain from config and registry. Stage names in
// config must be registered.
func BuildChain(reg *Registry, cfg *JobConfig) (*stage.Chain, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	stages := make([]stage.Stage, 0, len(cfg.Stages))
	for i, ref := range cfg.Stages {
		if ref.Name == "" {
			return nil, fmt.Errorf("stage %d: name required", i)
		}
		s, ok := reg.Get(ref.Name)
		if !ok {
			return nil, fmt.Errorf("stage %d: %q not in registry", i, ref.Name)
		}
		if ref.Timeout > 0 {
			s = stage.WithTimeout(s, ref.Timeout.Duration())
		}
		stages = append(stages, s)
	}
	return &stage.Chain{Name: cfg.Name, Stages: stages}, nil
}
