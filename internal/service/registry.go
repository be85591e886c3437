package service

import (
	"sort"
	"strings"
	"sync"
)

// Registry is the in-memory set of known player names. It starts from the
// configured seed list, is merged with the distinct players already in
// storage, and grows through /addname.
type Registry struct {
	mu    sync.Mutex
	names map[string]struct{}
}

func NewRegistry(seed []string) *Registry {
	r := &Registry{names: make(map[string]struct{})}
	r.AddAll(seed)
	return r
}

// Add registers a player name. Adding an existing name is a no-op; an
// empty or whitespace-only name is a usage error.
func (r *Registry) Add(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.names[name] = struct{}{}
	return nil
}

// AddAll registers every non-empty name in names, skipping blanks.
func (r *Registry) AddAll(names []string) {
	for _, n := range names {
		_ = r.Add(n)
	}
}

// List returns the registered names sorted alphabetically, so keyboards
// render in a stable order.
func (r *Registry) List() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.names))
	for n := range r.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
