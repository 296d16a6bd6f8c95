// Package radiative computes bound-bound emission lines between two
// multiplets of the same electron count.
package radiative

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

// Kernel estimates emission rates from a multipole-length amplitude: the
// transition length scale is the mean of the two outermost orbital
// radii, and the E1 rate follows the standard (4/3) alpha^3 w^3 d^2
// form, generalized to higher multipoles by further alpha*w*d powers.
// Magnetic components pick up an extra alpha^2.
type Kernel struct{}

func (Kernel) Tag() string { return "radiative" }

func (Kernel) ComputeLines(ctx context.Context, ini, fin *ci.Multiplet,
	nm radial.NuclearModel, g *radial.Grid, set process.Settings) ([]process.Line, error) {
	logger := ctxlog.FromContext(ctx)
	d := 0.5 * (process.RadiusScale(ini, g) + process.RadiusScale(fin, g))

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
			omega := li.Energy - lf.Energy
			if omega <= 0 {
				continue
			}

			var channels []process.Channel
			rate := 0.0
			for _, mult := range set.Multipoles {
				if !mult.Allows(li.Symmetry(), lf.Symmetry()) {
					continue
				}
				amp := math.Pow(d, float64(mult.L))
				contrib := (4.0 / 3.0) * amp * amp *
					math.Pow(radial.FineStructure, float64(2*mult.L+1)) *
					math.Pow(omega, float64(2*mult.L+1))
				if !mult.Electric {
					contrib *= radial.FineStructure * radial.FineStructure
				}
				rate += contrib
				for _, gauge := range set.Gauges {
					channels = append(channels, process.Channel{
						Multipole: mult,
						Gauge:     gauge,
						Amplitude: amp,
					})
				}
			}
			if len(channels) == 0 {
				continue
			}

			out = append(out, process.Line{
				Process:      "radiative",
				InitialIndex: i,
				FinalIndex:   f,
				Energy:       omega,
				Rate:         rate,
				Channels:     channels,
			})
		}
	}

	logger.Debug("Computed radiative lines.", "count", len(out))
	return out, nil
}
