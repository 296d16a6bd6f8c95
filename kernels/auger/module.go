// Package auger computes autoionization lines between an initial
// multiplet and a final multiplet with one electron fewer.
package auger

import (
	"context"
	"math"

	"github.com/akrivova/ionflow/internal/ci"
	"github.com/akrivova/ionflow/internal/ctxlog"
	"github.com/akrivova/ionflow/internal/process"
	"github.com/akrivova/ionflow/internal/radial"
)

// Module implements the process.Module interface for this package.
type Module struct{}

// Register registers the kernel with the engine.
func (m *Module) Register(r *process.Registry) {
	r.RegisterLineKernel(Kernel{})
}

// Kernel estimates Auger rates from a Coulomb strength scale of the
// initial multiplet, damped by the energy of the ejected electron.
// Each open partial wave contributes the same amplitude, and the rate
// is 2 pi times the summed squared amplitudes.
type Kernel struct{}

func (Kernel) Tag() string { return "auger" }

func (Kernel) ComputeLines(ctx context.Context, ini, fin *ci.Multiplet,
	nm radial.NuclearModel, g *radial.Grid, set process.Settings) ([]process.Line, error) {
	logger := ctxlog.FromContext(ctx)
	strength := process.StrengthScale(ini, g)

	var out []process.Line
	for i := range ini.Levels {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		li := &ini.Levels[i]

		for f := range fin.Levels {
			lf := &fin.Levels[f]
			energy := li.Energy - lf.Energy
			if energy <= 0 {
				continue
			}
			waves := process.Waves(li.Symmetry(), lf.Symmetry(), set.MaxKappa)
			if len(waves) == 0 {
				continue
			}

			amp := strength / (2 * (1 + energy))
			channels := make([]process.Channel, 0, len(waves))
			rate := 0.0
			for _, kappa := range waves {
				channels = append(channels, process.Channel{
					Kappa:     kappa,
					Amplitude: amp,
				})
				rate += 2 * math.Pi * amp * amp
			}

			out = append(out, process.Line{
				Process:      "auger",
				InitialIndex: i,
				FinalIndex:   f,
				Energy:       energy,
				Rate:         rate,
				Channels:     channels,
			})
		}
	}

	logger.Debug("Computed Auger lines.", "count", len(out))
	return out, nil
}
