package job

import (
	"fmt"
	"sync"

	"github.com/hamilton-earthscope/tinkerpop/stage"
)

// Registry maps stage names to stages. Safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	stages map[string]stage.Stage
}

// NewRegistry returns an empty stage registry.
func NewRegistry() *Registry {
	return &Registry{stages: make(map[string]stage.Stage)}
}

// Register adds a stage under the given name. Overwrites any existing
// registration.
func (r *Registry) Register(name string, s stage.Stage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stages == nil {
		r.stages = make(map[string]stage.Stage)
	}
	r.stages[name] = s
}

// Get returns the stage for name, or nil and false if not found.
func (r *Registry) Get(name string) (stage.Stage, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.stages[name]
	return s, ok
}

// MustGet returns the stage for name, or panics if not found.
func (r *Registry) MustGet(name string) stage.Stage {
	s, ok := r.Get(name)
	if !ok {
		panic(fmt.Sprintf("job: stage %q not registered", name))
	}
	return s
}

// Names returns all registered stage names (unordered).
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.stages))
	for n := range r.stages {
		names = append(names, n)
	}
	return names
}
