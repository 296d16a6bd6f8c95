package scf

import (
	"context"
	"fmt"
	"math"

	"github.com/akrivova/ionflow/internal/angular"
	"github.com/akrivova/ionflow/internal/atom"
	"github.com/akrivova/ionflow/internal/basis"
	"github.com/akrivova/ionflow/internal/ctxlog"
	"github.com/akrivova/ionflow/internal/radial"
)

const (
	// minZeff keeps the screened charge of a nearly free orbital from
	// collapsing to zero or turning negative.
	minZeff = 0.05

	// zeffMixing damps the charge update between iterations.
	zeffMixing = 0.5
)

// Solve attaches an orbital to every subshell of the basis and records
// the iteration outcome in b.SCF. Reaching the iteration cap is not an
// error; it is reported through SCFStatus.Converged.
func Solve(ctx context.Context, b *basis.Basis, nm radial.NuclearModel, g *radial.Grid, set Settings) error {
	if set.Start != StartHydrogenic && set.Start != StartFromOrbitals {
		return fmt.Errorf("start strategy %d: %w", int(set.Start), atom.ErrInvalidConfiguration)
	}
	switch set.Method {
	case MethodMeanFieldDFS, MethodMeanFieldHS, MethodOptimizedLevel, MethodPureNuclear:
	default:
		return fmt.Errorf("field method %d: %w", int(set.Method), atom.ErrInvalidConfiguration)
	}
	if b.Size() == 0 {
		return fmt.Errorf("basis has no states: %w", atom.ErrInvalidConfiguration)
	}

	seed(ctx, b, nm, g, set)

	if set.Method == MethodPureNuclear {
		b.SCF = basis.SCFStatus{Converged: true, Iterations: 0, Residual: 0}
		return nil
	}
	if set.MaxIterations < 1 || set.Accuracy <= 0 {
		return fmt.Errorf("iteration cap %d and accuracy %g must be positive: %w",
			set.MaxIterations, set.Accuracy, atom.ErrInvalidConfiguration)
	}
	return iterate(ctx, b, nm, g, set)
}

// seed fills b.Orbitals for every subshell, falling back to hydrogenic
// orbitals where the caller map has gaps.
func seed(ctx context.Context, b *basis.Basis, nm radial.NuclearModel, g *radial.Grid, set Settings) {
	logger := ctxlog.FromContext(ctx)
	if b.Orbitals == nil {
		b.Orbitals = make(map[atom.Subshell]*radial.Orbital, len(b.Subshells))
	}
	z := nm.Charge()
	for _, sub := range b.Subshells {
		if set.Start == StartFromOrbitals {
			if o := set.Orbitals[sub]; o != nil {
				b.Orbitals[sub] = o
				continue
			}
			logger.Warn("Start orbital missing, seeding hydrogenically.", "subshell", sub.String())
		}
		b.Orbitals[sub] = radial.Hydrogenic(sub, z, g)
	}
}

func iterate(ctx context.Context, b *basis.Basis, nm radial.NuclearModel, g *radial.Grid, set Settings) error {
	logger := ctxlog.FromContext(ctx)

	opt := radial.PotentialOptions{Alpha: 2.0 / 3.0}
	if set.Method == MethodMeanFieldHS {
		opt = radial.PotentialOptions{Alpha: 1, Latter: true}
	}
	weights := meanOccupations(b)

	prevTotal := weightedTotal(b, weights)
	var residual float64
	for it := 1; it <= set.MaxIterations; it++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		occ := make([]radial.Occupied, 0, len(b.Subshells))
		for k, sub := range b.Subshells {
			occ = append(occ, radial.Occupied{Orbital: b.Orbitals[sub], Weight: weights[k]})
		}
		v := radial.EffectivePotential(g, nm, occ, opt)

		maxRel := 0.0
		for _, sub := range b.Subshells {
			old := b.Orbitals[sub]
			next := resolve(sub, old, v, g)
			rel := math.Abs(next.Energy-old.Energy) / math.Max(math.Abs(old.Energy), 1e-12)
			if rel > maxRel {
				maxRel = rel
			}
			b.Orbitals[sub] = next
		}

		if set.Method == MethodOptimizedLevel {
			total := weightedTotal(b, weights)
			residual = math.Abs(total-prevTotal) / math.Max(math.Abs(prevTotal), 1e-12)
			prevTotal = total
		} else {
			residual = maxRel
		}
		logger.Debug("Field iteration complete.", "iteration", it, "residual", residual)

		if residual <= set.Accuracy {
			b.SCF = basis.SCFStatus{Converged: true, Iterations: it, Residual: residual}
			return nil
		}
	}

	b.SCF = basis.SCFStatus{Converged: false, Iterations: set.MaxIterations, Residual: residual}
	logger.Warn("Field iteration hit the cap without converging.",
		"iterations", set.MaxIterations, "residual", residual)
	return nil
}

// resolve re-solves one subshell against the effective potential: the
// screened charge is the density-weighted -r V expectation (exact for a
// bare Coulomb potential), damped against the previous value, and the
// orbital energy is the kinetic term of the new shape plus its potential
// expectation.
func resolve(sub atom.Subshell, old *radial.Orbital, v []float64, g *radial.Grid) *radial.Orbital {
	f := make([]float64, g.Len())
	for i, p := range old.P {
		f[i] = -p * p * g.R[i] * v[i]
	}
	zeff := zeffMixing*g.Integrate(f) + (1-zeffMixing)*old.Zeff
	if zeff < minZeff {
		zeff = minZeff
	}

	next := radial.Hydrogenic(sub, zeff, g)
	for i, p := range next.P {
		f[i] = p * p * v[i]
	}
	nn := float64(sub.N)
	next.Energy = zeff*zeff/(2*nn*nn) + g.Integrate(f)
	return next
}

// meanOccupations returns the degeneracy-weighted average electron count
// per global subshell across all CSFs.
func meanOccupations(b *basis.Basis) []float64 {
	w := make([]float64, len(b.Subshells))
	total := 0.0
	for i := range b.CSFs {
		deg := float64(angular.Degeneracy(b.CSFs[i].TwoJ))
		total += deg
		for k, q := range b.CSFs[i].Occupation {
			w[k] += deg * float64(q)
		}
	}
	for k := range w {
		w[k] /= total
	}
	return w
}

func weightedTotal(b *basis.Basis, weights []float64) float64 {
	sum := 0.0
	for k, sub := range b.Subshells {
		sum += weights[k] * b.Orbitals[sub].Energy
	}
	return sum
}
