package app

import (
	"context"
	"fmt"

	"github.com/akrivova/ionflow/internal/atom"
	"github.com/akrivova/ionflow/internal/config"
	"github.com/akrivova/ionflow/internal/ctxlog"
	"github.com/akrivova/ionflow/internal/engine"
)

// RunStructures loads the request files and performs the named
// structure requests, or every one when names is empty.
func (a *App) RunStructures(ctx context.Context, paths []string, names ...string) error {
	ctx = ctxlog.WithLogger(ctx, a.Logger)
	doc, err := config.Load(ctx, paths...)
	if err != nil {
		return err
	}

	reqs := doc.Structures
	if len(names) > 0 {
		reqs = nil
		for _, name := range names {
			r := doc.Structure(name)
			if r == nil {
				return fmt.Errorf("no structure request named %q: %w", name, atom.ErrInvalidConfiguration)
			}
			reqs = append(reqs, r)
		}
	}
	if len(reqs) == 0 {
		return fmt.Errorf("no structure requests to run: %w", atom.ErrInvalidConfiguration)
	}

	for _, req := range reqs {
		spec, err := engine.DecodeStructure(doc, req)
		if err != nil {
			return err
		}
		if _, err := a.Engine.PerformStructure(ctx, spec); err != nil {
			return err
		}
	}
	return nil
}

// RunCascades loads the request files and performs the named cascade
// requests, or every one when names is empty.
func (a *App) RunCascades(ctx context.Context, paths []string, names ...string) error {
	ctx = ctxlog.WithLogger(ctx, a.Logger)
	doc, err := config.Load(ctx, paths...)
	if err != nil {
		return err
	}

	reqs := doc.Cascades
	if len(names) > 0 {
		reqs = nil
		for _, name := range names {
			r := doc.Cascade(name)
			if r == nil {
				return fmt.Errorf("no cascade request named %q: %w", name, atom.ErrInvalidConfiguration)
			}
			reqs = append(reqs, r)
		}
	}
	if len(reqs) == 0 {
		return fmt.Errorf("no cascade requests to run: %w", atom.ErrInvalidConfiguration)
	}

	for _, req := range reqs {
		spec, err := engine.DecodeCascade(doc, req)
		if err != nil {
			return err
		}
		if _, err := a.Engine.PerformCascade(ctx, spec); err != nil {
			return err
		}
	}
	return nil
}

// RunSimulations loads the request files and performs the named
// simulation requests, or every one when names is empty. Simulations
// sharing a cascade share its executed graph and multiplet cache.
func (a *App) RunSimulations(ctx context.Context, paths []string, names ...string) error {
	ctx = ctxlog.WithLogger(ctx, a.Logger)
	doc, err := config.Load(ctx, paths...)
	if err != nil {
		return err
	}

	reqs := doc.Simulations
	if len(names) > 0 {
		reqs = nil
		for _, name := range names {
			r := doc.Simulation(name)
			if r == nil {
				return fmt.Errorf("no simulation request named %q: %w", name, atom.ErrInvalidConfiguration)
			}
			reqs = append(reqs, r)
		}
	}
	if len(reqs) == 0 {
		return fmt.Errorf("no simulation requests to run: %w", atom.ErrInvalidConfiguration)
	}

	cascades := make(map[string]*engine.CascadeResult)
	for _, req := range reqs {
		result, ok := cascades[req.Cascade]
		if !ok {
			spec, err := engine.DecodeCascade(doc, doc.Cascade(req.Cascade))
			if err != nil {
				return err
			}
			if result, err = a.Engine.PerformCascade(ctx, spec); err != nil {
				return err
			}
			cascades[req.Cascade] = result
		}
		if _, err := a.Engine.PerformSimulation(ctx, engine.DecodeSimulation(req), result); err != nil {
			return err
		}
	}
	return nil
}
