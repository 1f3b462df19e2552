package job

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hamilton-earthscope/tinkerpop/conf"
)

// JobConfig is the root structure for a job definition (e.g. from YAML): a
// named chain of stages plus the initial configuration handed to the first
// stage.
type JobConfig struct {
	Name   string              `yaml:"name"`
	Stages []StageRef          `yaml:"stages"`
	Conf   *conf.Configuration `yaml:"conf"`
}

// StageRef is a single stage entry: either a plain name or name + options.
// In YAML, a stage can be written as:
//   - load
//   - name: rank
//     timeout: 60s
type StageRef struct {
	Name string `yaml:"name"`

	// Timeout applied around the stage (e.g. "60s"). Zero means no timeout.
	Timeout Duration `yaml:"timeout"`
}

// UnmarshalYAML allows a stage to be a string (stage name only) or a struct.
func (s *StageRef) UnmarshalYAML(value *yaml.Node) error {
	var nameOnly string
	if err := value.Decode(&nameOnly); err == nil {
		s.Name = nameOnly
		return nil
	}
	type raw StageRef
	return value.Decode((*raw)(s))
}

// Duration is a time.Duration that unmarshals from YAML strings (e.g. "60s", "5m").
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Duration returns the standard time.Duration.
func (d Duration) Duration() time.Duration { return time.Duration(d) }

// ParseJobConfig parses YAML bytes into a single JobConfig.
func ParseJobConfig(data []byte) (*JobConfig, error) {
	var cfg JobConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
