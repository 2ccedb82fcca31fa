package metaapi

import (
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-scaffold/pkg/config"
)

// Registry indexes configurations by model name. Handlers read it
// concurrently; registration is expected to finish before serving.
type Registry struct {
	mu    sync.RWMutex
	cores map[string]*config.Core
}

// NewRegistry registers cores, panicking on duplicates.
func NewRegistry(cores ...*config.Core) *Registry {
	r := &Registry{cores: make(map[string]*config.Core, len(cores))}
	for _, core := range cores {
		if err := r.Register(core); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds core under its model name. The lazily built column set and
// action column lists are resolved here so handlers only read.
func (r *Registry) Register(core *config.Core) error {
	if core == nil || core.Model() == nil {
		return fmt.Errorf("metaapi: register: configuration has no model")
	}
	name := core.Model().Name()

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cores == nil {
		r.cores = make(map[string]*config.Core)
	}
	if _, exists := r.cores[name]; exists {
		return fmt.Errorf("metaapi: register: duplicate model %q", name)
	}
	core.Columns()
	for _, action := range core.Actions() {
		core.ActionColumns(action)
	}
	r.cores[name] = core
	return nil
}

// Lookup returns the configuration of the named model.
func (r *Registry) Lookup(name string) (*config.Core, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	core, ok := r.cores[name]
	return core, ok
}

// Names lists the registered model names in order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.cores))
	for name := range r.cores {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
