// Package stage: standard stages for common chain patterns.

package stage

import (
	"context"
	"fmt"
	"time"

	"github.com/hamilton-earthscope/tinkerpop/conf"
)

// Identity returns a stage that passes its input configuration through
// unchanged. Useful as a no-op, for observer boundaries, or as a placeholder.
func Identity() Stage {
	return func(ctx context.Context, input *conf.Configuration) (*conf.Configuration, error) {
		return input, nil
	}
}

// Tap returns a stage that calls fn(ctx, input) then passes the input through
// unchanged. Use for logging, metrics, or side effects without changing the
// configuration.
func Tap(fn func(context.Context, *conf.Configuration)) Stage {
	return func(ctx context.Context, input *conf.Configuration) (*conf.Configuration, error) {
		fn(ctx, input)
		return input, nil
	}
}

// SetKey returns a stage whose output is a copy of its input with key set to
// v. Use it to declare an output setting (e.g. where a stage wrote its
// result) without touching the caller's configuration.
func SetKey(key string, v conf.Value) Stage {
	return func(ctx context.Context, input *conf.Configuration) (*conf.Configuration, error) {
		out := input.Copy()
		out.Set(key, v)
		return out, nil
	}
}

// Require returns a stage that passes its input through only if every listed
// key is present; otherwise it fails naming the first missing key. Use it at
// the head of a chain to fail fast before any computation starts.
func Require(keys ...string) Stage {
	return func(ctx context.Context, input *conf.Configuration) (*conf.Configuration, error) {
		for _, k := range keys {
			if !input.Contains(k) {
				return nil, fmt.Errorf("require: %q not set", k)
			}
		}
		return input, nil
	}
}

// WithTimeout wraps inner so it runs with a context deadline of now+timeout.
// If inner does not return before the deadline, context.DeadlineExceeded is
// returned.
func WithTimeout(inner Stage, timeout time.Duration) Stage {
	return func(ctx context.Context, input *conf.Configuration) (*conf.Configuration, error) {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return inner(ctx, input)
	}
}
