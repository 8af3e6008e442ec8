// Package registry provides binding registration and lookup functionality
// for devconsole. It manages the process-wide table of named variables and
// functions, populated once at startup by the host.
package registry

import (
	"fmt"
	"sync"

	"devconsole/internal/logger"
	"devconsole/pkg/contypes"
)

// Registry manages binding registration and lookup. Names are unique across
// the combined set of variables and functions. Registration happens once at
// startup; lookups are read-only and side-effect free.
type Registry struct {
	mu       sync.RWMutex
	bindings map[string]contypes.Binding
	names    []string // insertion order, the stable base order for ranking
}

// New creates a new registry with an empty binding table.
func New() *Registry {
	return &Registry{
		bindings: make(map[string]contypes.Binding),
	}
}

// RegisterVariable adds a variable binding. Returns an error if the name is
// empty or already taken by any binding.
func (r *Registry) RegisterVariable(v *contypes.Variable) error {
	if v == nil {
		return fmt.Errorf("variable binding cannot be nil")
	}
	return r.register(v.Name, contypes.Binding{Variable: v})
}

// RegisterFunction adds a function binding. Returns an error if the name is
// empty or already taken, or if the function's optional parameters do not
// form a contiguous suffix of its parameter list.
func (r *Registry) RegisterFunction(f *contypes.Function) error {
	if f == nil {
		return fmt.Errorf("function binding cannot be nil")
	}
	seenOptional := false
	for _, p := range f.Params {
		if p.Optional {
			seenOptional = true
		} else if seenOptional {
			return fmt.Errorf("function %s: required parameter %s follows an optional parameter", f.Name, p.Name)
		}
	}
	return r.register(f.Name, contypes.Binding{Function: f})
}

func (r *Registry) register(name string, b contypes.Binding) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name == "" {
		return fmt.Errorf("binding name cannot be empty")
	}
	if _, exists := r.bindings[name]; exists {
		return fmt.Errorf("binding %s already registered", name)
	}

	r.bindings[name] = b
	r.names = append(r.names, name)
	logger.BindingOperation("register", name)
	return nil
}

// Lookup retrieves a binding by exact, case-sensitive name. Returns the
// binding and true if found, or a zero binding and false otherwise.
func (r *Registry) Lookup(name string) (contypes.Binding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, exists := r.bindings[name]
	return b, exists
}

// Names returns all registered names in registration order. The returned
// slice is a copy and can be safely modified.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Len returns the number of registered bindings.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bindings)
}
