package process

import (
	"context"

	"github.com/akrivova/ionflow/internal/ci"
	"github.com/akrivova/ionflow/internal/ctxlog"
)

// ExcitationAmplitude evaluates the upward radiative matrix element of a
// pathway for one multipole and gauge.
type ExcitationAmplitude func(ini, mid *ci.Level, m Multipole, g Gauge) float64

// DecayAmplitude evaluates the secondary-emission matrix element into
// one continuum partial wave.
type DecayAmplitude func(mid, fin *ci.Level, kappa int) float64

// PathwayConfig carries the kernel-specific pieces of the shared
// three-level enumeration.
type PathwayConfig struct {
	Process  string
	Settings Settings
	Excite   ExcitationAmplitude
	Decay    DecayAmplitude
}

// EnumeratePathways runs the generic three-level loop shared by all
// capture kernels: every (initial, intermediate, final) level triple
// with non-negative excitation and secondary energies, optionally
// restricted by the settings allow-list, expanded into its radiative and
// partial-wave channels. Triples with no open channel on either side
// contribute nothing and are dropped silently.
func EnumeratePathways(ctx context.Context, ini, mid, fin *ci.Multiplet, cfg PathwayConfig) ([]Pathway, error) {
	logger := ctxlog.FromContext(ctx)

	var allow map[[3]int]bool
	if len(cfg.Settings.Allow) > 0 {
		allow = make(map[[3]int]bool, len(cfg.Settings.Allow))
		for _, t := range cfg.Settings.Allow {
			allow[t] = true
		}
	}

	var out []Pathway
	for i := range ini.Levels {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		li := &ini.Levels[i]

		for m := range mid.Levels {
			lm := &mid.Levels[m]
			exc := lm.Energy - li.Energy
			if exc < 0 {
				continue
			}

			var excitation []Channel
			for _, mult := range cfg.Settings.Multipoles {
				if !mult.Allows(li.Symmetry(), lm.Symmetry()) {
					continue
				}
				for _, gauge := range cfg.Settings.Gauges {
					excitation = append(excitation, Channel{
						Multipole: mult,
						Gauge:     gauge,
						Amplitude: cfg.Excite(li, lm, mult, gauge),
					})
				}
			}
			if len(excitation) == 0 {
				continue
			}

			for f := range fin.Levels {
				lf := &fin.Levels[f]
				sec := lm.Energy - lf.Energy
				if sec < 0 {
					continue
				}
				if allow != nil && !allow[[3]int{i, m, f}] {
					continue
				}

				var decay []Channel
				for _, kappa := range Waves(lm.Symmetry(), lf.Symmetry(), cfg.Settings.MaxKappa) {
					decay = append(decay, Channel{
						Kappa:     kappa,
						Gauge:     GaugeNone,
						Amplitude: cfg.Decay(lm, lf, kappa),
					})
				}
				if len(decay) == 0 {
					continue
				}

				decayStrength := 0.0
				for _, ch := range decay {
					decayStrength += ch.Amplitude * ch.Amplitude
				}
				cross := make(map[Gauge]float64, len(cfg.Settings.Gauges))
				for _, ch := range excitation {
					cross[ch.Gauge] += ch.Amplitude * ch.Amplitude * decayStrength
				}

				out = append(out, Pathway{
					Process:           cfg.Process,
					InitialIndex:      i,
					IntermediateIndex: m,
					FinalIndex:        f,
					ExcitationEnergy:  exc,
					SecondaryEnergy:   sec,
					Excitation:        excitation,
					Decay:             decay,
					CrossSection:      cross,
				})
			}
		}
	}

	logger.Debug("Enumerated pathways.", "process", cfg.Process, "count", len(out))
	return out, nil
}
