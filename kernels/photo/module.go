// Package photo computes photoionization cross sections between an
// initial multiplet and a final multiplet with one electron fewer, at
// a fixed list of photon energies.
package photo

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

// Kernel estimates dipole photoionization cross sections. The bound
// amplitude is the outermost orbital radius of the initial multiplet,
// scaled by (threshold/omega)^(3/2) so the cross section falls off
// with the cube of the photon energy above threshold.
type Kernel struct{}

func (Kernel) Tag() string { return "photo" }

func (Kernel) ComputeLines(ctx context.Context, ini, fin *ci.Multiplet,
	nm radial.NuclearModel, g *radial.Grid, set process.Settings) ([]process.Line, error) {
	logger := ctxlog.FromContext(ctx)
	d := process.RadiusScale(ini, g)

	var out []process.Line
	for _, omega := range set.PhotonEnergies {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		for i := range ini.Levels {
			li := &ini.Levels[i]
			for f := range fin.Levels {
				lf := &fin.Levels[f]
				threshold := lf.Energy - li.Energy
				if threshold <= 0 || omega < threshold {
					continue
				}
				waves := process.Waves(li.Symmetry(), lf.Symmetry(), set.MaxKappa)
				if len(waves) == 0 {
					continue
				}

				amp := d * math.Pow(threshold/omega, 1.5)
				var channels []process.Channel
				sigma := 0.0
				for _, kappa := range waves {
					sigma += (8 * math.Pi / 3) * radial.FineStructure * amp * amp
					for _, gauge := range set.Gauges {
						channels = append(channels, process.Channel{
							Multipole: process.E1,
							Kappa:     kappa,
							Gauge:     gauge,
							Amplitude: amp,
						})
					}
				}

				out = append(out, process.Line{
					Process:      "photo",
					InitialIndex: i,
					FinalIndex:   f,
					Energy:       threshold,
					PhotonEnergy: omega,
					CrossSection: sigma,
					Channels:     channels,
				})
			}
		}
	}

	logger.Debug("Computed photoionization lines.", "count", len(out))
	return out, nil
}
