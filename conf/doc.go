// Package conf provides the configuration model for multi-stage graph
// computations: an ordered key/value Configuration with typed values, the
// well-known keys stages read and write, and DeriveInput, which turns the
// output configuration of one stage into the input configuration of the next.
//
// Configuration is the only contract between stages: a stage reads a graph
// from the location its input configuration names, computes, and writes its
// result to the location its output configuration names. No state is shared
// in memory between stages, so deriving the next stage's input from the
// previous stage's output must be total (no key is dropped) and safe when
// pipeline-specific keys are absent (rules are skipped, not errors).
//
// Configurations load from and save to YAML:
//
//	c, err := conf.Parse(data)
//	...
//	out, err := yaml.Marshal(c)
//
// Values are tagged (string, int, float, bool, class reference); typed
// getters return a wrong-type error instead of coercing. See DeriveInput and
// InferInputFormat for the derivation rules.
package conf
