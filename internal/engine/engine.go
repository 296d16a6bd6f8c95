package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/akrivova/ionflow/internal/atom"
	"github.com/akrivova/ionflow/internal/basis"
	"github.com/akrivova/ionflow/internal/cascade"
	"github.com/akrivova/ionflow/internal/ci"
	"github.com/akrivova/ionflow/internal/ctxlog"
	"github.com/akrivova/ionflow/internal/persist"
	"github.com/akrivova/ionflow/internal/process"
	"github.com/akrivova/ionflow/internal/radial"
	"github.com/akrivova/ionflow/internal/report"
	"github.com/akrivova/ionflow/internal/scf"
)

// Engine performs decoded requests. Process kernels come from the
// registry; results go to the reporter and, when one is configured, to
// the snapshot store.
type Engine struct {
	registry *process.Registry
	reporter report.Reporter
	store    persist.Store
}

// New assembles an engine. A nil reporter or store falls back to the
// discarding implementation.
func New(reg *process.Registry, rep report.Reporter, store persist.Store) *Engine {
	if reg == nil {
		reg = process.NewRegistry()
	}
	if rep == nil {
		rep = report.Discard{}
	}
	if store == nil {
		store = persist.Discard{}
	}
	return &Engine{registry: reg, reporter: rep, store: store}
}

// StructureSpec is one decoded structure request.
type StructureSpec struct {
	Name           string
	Configurations []atom.Configuration

	Nuclear radial.NuclearModel
	Grid    *radial.Grid

	Field       scf.Settings
	Interaction ci.Settings
}

// CascadeSpec is one decoded cascade request.
type CascadeSpec struct {
	Name    string
	Initial []atom.Configuration

	// Builder carries the descendant bounds, shell restrictions and the
	// process catalog.
	Builder cascade.GraphBuilder

	Nuclear radial.NuclearModel
	Grid    *radial.Grid

	Field       scf.Settings
	Interaction ci.Settings

	// Kernels steers the transition computations of every step.
	Kernels process.Settings
}

// SimulationSpec is one decoded simulation request.
type SimulationSpec struct {
	Name string

	// Cascade names the cascade whose result the simulation follows.
	Cascade string

	Settings cascade.Settings
}

// CascadeResult bundles an executed graph with the resolver whose
// multiplet cache a following simulation reuses.
type CascadeResult struct {
	Graph    *cascade.Graph
	Resolver *cascade.Resolver
}

// PerformStructure expands the configurations into a CSF basis, refines
// the orbitals in the requested field, and diagonalizes the symmetry
// blocks into a multiplet.
func (e *Engine) PerformStructure(ctx context.Context, spec StructureSpec) (*ci.Multiplet, error) {
	logger := ctxlog.FromContext(ctx)
	started := time.Now().UTC()
	logger.Info("Computing structure.", "name", spec.Name, "configurations", len(spec.Configurations))

	bas, err := basis.Build(spec.Configurations)
	if err != nil {
		return nil, fmt.Errorf("structure %q: %w", spec.Name, err)
	}
	if err := scf.Solve(ctx, bas, spec.Nuclear, spec.Grid, spec.Field); err != nil {
		return nil, fmt.Errorf("structure %q: %w", spec.Name, err)
	}
	m, err := ci.Solve(ctx, bas, spec.Nuclear, spec.Grid, spec.Interaction)
	if err != nil {
		return nil, fmt.Errorf("structure %q: %w", spec.Name, err)
	}
	m.Name = spec.Name

	e.reporter.Multiplet(m)
	meta := persist.RunMeta{Kind: "structure", Label: spec.Name, StartedAt: started}
	if err := e.store.Save(ctx, meta, persist.Results{"levels": levelRecords(m)}); err != nil {
		return nil, fmt.Errorf("snapshot structure %q: %w", spec.Name, err)
	}

	logger.Info("Structure complete.", "name", spec.Name, "levels", m.Size())
	return m, nil
}

// PerformCascade enumerates the descendant blocks, computes every
// block's multiplet at most once, and fills every step with transition
// data.
func (e *Engine) PerformCascade(ctx context.Context, spec CascadeSpec) (*CascadeResult, error) {
	logger := ctxlog.FromContext(ctx)
	started := time.Now().UTC()
	logger.Info("Computing cascade.", "name", spec.Name, "initial", len(spec.Initial))

	g, err := spec.Builder.Build(ctx, spec.Initial)
	if err != nil {
		return nil, fmt.Errorf("cascade %q: %w", spec.Name, err)
	}
	resolver := cascade.NewResolver(spec.Nuclear, spec.Grid, spec.Field, spec.Interaction)
	exec := &cascade.StepExecutor{Registry: e.registry, Resolver: resolver, Settings: spec.Kernels}
	if err := exec.ExecuteAll(ctx, g); err != nil {
		return nil, fmt.Errorf("cascade %q: %w", spec.Name, err)
	}

	e.reporter.Blocks(g.Blocks)
	e.reporter.Steps(g.Steps)

	blocks, err := blockRecords(ctx, g, resolver)
	if err != nil {
		return nil, fmt.Errorf("cascade %q: %w", spec.Name, err)
	}
	meta := persist.RunMeta{Kind: "cascade", Label: spec.Name, StartedAt: started}
	results := persist.Results{"blocks": blocks, "steps": stepRecords(g)}
	if err := e.store.Save(ctx, meta, results); err != nil {
		return nil, fmt.Errorf("snapshot cascade %q: %w", spec.Name, err)
	}

	logger.Info("Cascade complete.",
		"name", spec.Name,
		"blocks", len(g.Blocks),
		"steps", len(g.Steps),
		"computations", resolver.Computations())
	return &CascadeResult{Graph: g, Resolver: resolver}, nil
}

// PerformSimulation propagates level populations over an executed
// cascade. The result must come from PerformCascade so the simulation
// reuses its multiplet cache.
func (e *Engine) PerformSimulation(ctx context.Context, spec SimulationSpec, from *CascadeResult) (persist.Results, error) {
	logger := ctxlog.FromContext(ctx)
	started := time.Now().UTC()
	logger.Info("Simulating cascade.", "name", spec.Name, "cascade", spec.Cascade)

	if from == nil || from.Graph == nil || from.Resolver == nil {
		return nil, fmt.Errorf("simulation %q has no cascade result to follow: %w",
			spec.Name, atom.ErrInvalidConfiguration)
	}

	sim := &cascade.Simulator{Resolver: from.Resolver}
	outcome, err := sim.Run(ctx, from.Graph, spec.Settings)
	if err != nil {
		return nil, fmt.Errorf("simulation %q: %w", spec.Name, err)
	}
	e.reporter.Distribution(outcome)

	results := persist.Results{}
	if outcome.Ion != nil {
		results[cascade.OutputIonDistribution] = outcome.Ion
	}
	if outcome.Levels != nil {
		results[cascade.OutputLevelDistribution] = outcome.Levels
	}
	meta := persist.RunMeta{Kind: "simulation", Label: spec.Name, StartedAt: started}
	if err := e.store.Save(ctx, meta, results); err != nil {
		return nil, fmt.Errorf("snapshot simulation %q: %w", spec.Name, err)
	}

	logger.Info("Simulation complete.", "name", spec.Name, "outputs", len(results))
	return results, nil
}
