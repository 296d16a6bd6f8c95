// Package dielectronic computes resonant two-step pathways through an
// intermediate multiplet: a multipole excitation into the resonance
// followed by autoionizing decay into a continuum partial wave.
package dielectronic

import (
	"context"
	"math"

	"github.com/akrivova/ionflow/internal/ci"
	"github.com/akrivova/ionflow/internal/process"
	"github.com/akrivova/ionflow/internal/radial"
)

// Module implements the process.Module interface for this package.
type Module struct{}

// Register registers the kernel with the engine.
func (m *Module) Register(r *process.Registry) {
	r.RegisterPathwayKernel(Kernel{})
}

// Kernel reuses the amplitude scales of the resonant multiplet for
// both steps: multipole-length amplitudes for the excitation and a
// damped Coulomb strength for the decay.
type Kernel struct{}

func (Kernel) Tag() string { return "dielectronic" }

func (Kernel) ComputePathways(ctx context.Context, ini, mid, fin *ci.Multiplet,
	nm radial.NuclearModel, g *radial.Grid, set process.Settings) ([]process.Pathway, error) {
	d := process.RadiusScale(mid, g)
	strength := process.StrengthScale(mid, g)

	cfg := process.PathwayConfig{
		Process:  "dielectronic",
		Settings: set,
		Excite: func(ini, mid *ci.Level, mult process.Multipole, gauge process.Gauge) float64 {
			return math.Pow(d, float64(mult.L))
		},
		Decay: func(mid, fin *ci.Level, kappa int) float64 {
			energy := mid.Energy - fin.Energy
			return strength / (2 * (1 + energy))
		},
	}
	return process.EnumeratePathways(ctx, ini, mid, fin, cfg)
}
