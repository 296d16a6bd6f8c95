package cascade

import (
	"context"
	"fmt"
	"sync"

	"github.com/akrivova/ionflow/internal/basis"
	"github.com/akrivova/ionflow/internal/ci"
	"github.com/akrivova/ionflow/internal/ctxlog"
	"github.com/akrivova/ionflow/internal/process"
	"github.com/akrivova/ionflow/internal/radial"
	"github.com/akrivova/ionflow/internal/scf"
)

// Resolver computes block multiplets at most once each, so every step
// touching the same block reuses one structural computation. The lock
// is held across the computation, which also serializes concurrent
// resolution of the same run.
type Resolver struct {
	nm  radial.NuclearModel
	g   *radial.Grid
	scf scf.Settings
	ci  ci.Settings

	mu           sync.Mutex
	cache        map[string]*ci.Multiplet
	computations int
}

// NewResolver prepares an empty per-run multiplet cache.
func NewResolver(nm radial.NuclearModel, g *radial.Grid, scfSet scf.Settings, ciSet ci.Settings) *Resolver {
	return &Resolver{nm: nm, g: g, scf: scfSet, ci: ciSet, cache: map[string]*ci.Multiplet{}}
}

// Resolve returns the block's multiplet, computing it on first access.
func (r *Resolver) Resolve(ctx context.Context, b *Block) (*ci.Multiplet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := b.Key()
	if m, ok := r.cache[key]; ok {
		return m, nil
	}
	m, err := r.compute(ctx, b)
	if err != nil {
		return nil, err
	}
	r.computations++
	r.cache[key] = m
	return m, nil
}

// Computations reports how many block multiplets were actually built.
func (r *Resolver) Computations() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.computations
}

func (r *Resolver) compute(ctx context.Context, b *Block) (*ci.Multiplet, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Resolving block multiplet.", "block", b.Key())

	bas, err := basis.Build(b.Configurations)
	if err != nil {
		return nil, fmt.Errorf("block %s: %w", b.Key(), err)
	}
	if err := scf.Solve(ctx, bas, r.nm, r.g, r.scf); err != nil {
		return nil, fmt.Errorf("block %s: %w", b.Key(), err)
	}
	m, err := ci.Solve(ctx, bas, r.nm, r.g, r.ci)
	if err != nil {
		return nil, fmt.Errorf("block %s: %w", b.Key(), err)
	}
	m.Name = b.Key()
	return m, nil
}

// StepExecutor fills steps with transition data by resolving the
// endpoint multiplets and dispatching the registered kernel for the
// step's process tag.
type StepExecutor struct {
	Registry *process.Registry
	Resolver *Resolver
	Settings process.Settings
}

// Execute computes one step's lines or pathways.
func (e *StepExecutor) Execute(ctx context.Context, st *Step) error {
	ini, err := e.Resolver.Resolve(ctx, st.Initial)
	if err != nil {
		return err
	}
	fin, err := e.Resolver.Resolve(ctx, st.Final)
	if err != nil {
		return err
	}

	if st.Intermediate != nil {
		kernel, err := e.Registry.PathwayKernel(st.Process)
		if err != nil {
			return err
		}
		mid, err := e.Resolver.Resolve(ctx, st.Intermediate)
		if err != nil {
			return err
		}
		st.Pathways, err = kernel.ComputePathways(ctx, ini, mid, fin, e.Resolver.nm, e.Resolver.g, e.Settings)
		return err
	}

	kernel, err := e.Registry.LineKernel(st.Process)
	if err != nil {
		return err
	}
	st.Lines, err = kernel.ComputeLines(ctx, ini, fin, e.Resolver.nm, e.Resolver.g, e.Settings)
	return err
}

// ExecuteAll computes every step of the graph in its stored order.
func (e *StepExecutor) ExecuteAll(ctx context.Context, g *Graph) error {
	logger := ctxlog.FromContext(ctx)
	for _, st := range g.Steps {
		if err := e.Execute(ctx, st); err != nil {
			return fmt.Errorf("step %s: %w", st, err)
		}
		logger.Debug("Executed cascade step.",
			"step", st.String(), "lines", len(st.Lines), "pathways", len(st.Pathways))
	}
	return nil
}
