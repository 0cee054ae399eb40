package exercise

import "sync"

// Registry is a keyed table of exercise descriptors with explicit owned
// lifetime: callers create one, populate it, and hand it to tracker
// constructors, rather than relying on ambient process-wide state.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Descriptor)}
}

// Register adds or overwrites the descriptor under its name. Descriptors
// without a name are ignored.
func (r *Registry) Register(d Descriptor) {
	if d.Name == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName[d.Name] = d
}

// RegisterAll registers every descriptor in order.
func (r *Registry) RegisterAll(ds ...Descriptor) {
	for _, d := range ds {
		r.Register(d)
	}
}

// Unregister removes the descriptor registered under name and reports
// whether one existed.
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.byName[name]
	delete(r.byName, name)
	return ok
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byName[name]
	return d, ok
}

// Names returns the registered action-type names in unspecified order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	return names
}
