package process

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/akrivova/ionflow/internal/atom"
)

// Module is the interface process-kernel packages implement to be
// registered at startup.
type Module interface {
	Register(r *Registry)
}

// Registry maps process tags to their kernels for a single application
// instance. The mapping is fixed before a run starts.
type Registry struct {
	mu       sync.RWMutex
	lines    map[string]LineKernel
	pathways map[string]PathwayKernel
}

// NewRegistry creates an empty Registry instance.
func NewRegistry() *Registry {
	return &Registry{
		lines:    make(map[string]LineKernel),
		pathways: make(map[string]PathwayKernel),
	}
}

// RegisterLineKernel adds a two-level kernel under its tag.
func (r *Registry) RegisterLineKernel(k LineKernel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tag := k.Tag()
	if _, exists := r.lines[tag]; exists {
		panic(fmt.Sprintf("line kernel with tag '%s' already registered", tag))
	}
	slog.Debug("Registering line kernel.", "tag", tag)
	r.lines[tag] = k
}

// RegisterPathwayKernel adds a three-level kernel under its tag.
func (r *Registry) RegisterPathwayKernel(k PathwayKernel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tag := k.Tag()
	if _, exists := r.pathways[tag]; exists {
		panic(fmt.Sprintf("pathway kernel with tag '%s' already registered", tag))
	}
	slog.Debug("Registering pathway kernel.", "tag", tag)
	r.pathways[tag] = k
}

// LineKernel resolves a tag; an unknown tag wraps
// atom.ErrInvalidConfiguration.
func (r *Registry) LineKernel(tag string) (LineKernel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	k, ok := r.lines[tag]
	if !ok {
		return nil, fmt.Errorf("no line kernel registered for tag %q: %w", tag, atom.ErrInvalidConfiguration)
	}
	return k, nil
}

// PathwayKernel resolves a tag; an unknown tag wraps
// atom.ErrInvalidConfiguration.
func (r *Registry) PathwayKernel(tag string) (PathwayKernel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	k, ok := r.pathways[tag]
	if !ok {
		return nil, fmt.Errorf("no pathway kernel registered for tag %q: %w", tag, atom.ErrInvalidConfiguration)
	}
	return k, nil
}

// Tags lists every registered tag in sorted order.
func (r *Registry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.lines)+len(r.pathways))
	for tag := range r.lines {
		out = append(out, tag)
	}
	for tag := range r.pathways {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
