package stage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hamilton-earthscope/tinkerpop/conf"
)

// Stage is one batch computation in a chain. It receives the configuration
// describing its input (where to read, which formats to use) and returns the
// configuration describing its output. Stages must not mutate their input
// configuration; return a copy with the output settings applied.
type Stage func(ctx context.Context, input *conf.Configuration) (*conf.Configuration, error)

// Observer provides pre/post hooks for chain and stage execution so callers
// can record runs (log configurations, durations, failures). Hook errors are
// reported but never mask a stage's own error.
type Observer interface {
	BeforeChain(ctx context.Context, runID, name string, input *conf.Configuration) error
	AfterChain(ctx context.Context, runID string, result *conf.Configuration, err error) error
	BeforeStage(ctx context.Context, runID string, stageIndex int, input *conf.Configuration) error
	AfterStage(ctx context.Context, runID string, stageIndex int, input, output *conf.Configuration, stageErr error, duration time.Duration) error
}

// RunOptions is optional and used to attach an Observer and optional RunID.
// If Observer is set and RunID is empty, a new UUID is generated for the run.
type RunOptions struct {
	Observer Observer
	RunID    string
}

// Chain runs a linear sequence of stages. Between consecutive stages the next
// input configuration is derived from the previous output configuration with
// conf.DeriveInput; the first stage receives the caller's configuration as
// is, and Run returns the last stage's output configuration.
type Chain struct {
	Name   string
	Stages []Stage
}

// Run executes the chain with the given initial input configuration (nil is
// treated as empty). Returns the last stage's output configuration or the
// first error, wrapped with the failing stage's index. If opts is non-nil and
// opts.Observer is set, pre/post hooks are called for the chain and each
// stage.
func (c *Chain) Run(ctx context.Context, input *conf.Configuration, opts *RunOptions) (*conf.Configuration, error) {
	if input == nil {
		input = conf.New()
	}
	if opts == nil || opts.Observer == nil {
		return c.runStages(ctx, input, nil, "")
	}
	runID := opts.RunID
	if runID == "" {
		runID = uuid.New().String()
	}
	if err := opts.Observer.BeforeChain(ctx, runID, c.Name, input); err != nil {
		return nil, fmt.Errorf("before chain: %w", err)
	}
	result, err := c.runStages(ctx, input, opts.Observer, runID)
	if postErr := opts.Observer.AfterChain(ctx, runID, result, err); postErr != nil {
		// Don't mask the chain error
		if err == nil {
			err = fmt.Errorf("after chain: %w", postErr)
		}
	}
	return result, err
}

func (c *Chain) runStages(ctx context.Context, input *conf.Configuration, obs Observer, runID string) (*conf.Configuration, error) {
	// An empty chain returns its input unchanged.
	in, out := input, input
	for i, stage := range c.Stages {
		if i > 0 {
			in = conf.DeriveInput(out)
		}
		if obs != nil {
			if err := obs.BeforeStage(ctx, runID, i, in); err != nil {
				return nil, fmt.Errorf("before stage %d: %w", i, err)
			}
		}
		start := time.Now()
		next, stageErr := stage(ctx, in)
		duration := time.Since(start)
		if obs != nil {
			if postErr := obs.AfterStage(ctx, runID, i, in, next, stageErr, duration); postErr != nil {
				if stageErr == nil {
					stageErr = fmt.Errorf("after stage: %w", postErr)
				}
			}
		}
		if stageErr != nil {
			return nil, fmt.Errorf("stage %d: %w", i, stageErr)
		}
		out = next
	}
	return out, nil
}
