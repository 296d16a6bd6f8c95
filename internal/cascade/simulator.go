package cascade

import (
	"context"
	"fmt"
	"sort"

	"github.com/akrivova/ionflow/internal/atom"
	"github.com/akrivova/ionflow/internal/ctxlog"
)

// Output kinds understood by the simulator. Intensity and coincidence
// spectra are deliberately not provided.
const (
	OutputIonDistribution   = "ion-distribution"
	OutputLevelDistribution = "level-distribution"
)

// Settings drive one population propagation pass.
type Settings struct {
	// Initial is the explicit population of the initial block's levels,
	// indexed like its multiplet.
	Initial []float64

	// PhotonFluence converts photoionization cross sections into
	// absorption probabilities. It must be positive when the executed
	// graph carries cross-section lines.
	PhotonFluence float64

	// Outputs lists the requested distribution kinds.
	Outputs []string
}

// Outcome carries the requested distributions. Unrequested fields stay
// nil.
type Outcome struct {
	// Ion maps electron count to its total population.
	Ion map[int]float64

	// Levels maps block keys to final per-level populations.
	Levels map[string][]float64
}

// Simulator propagates level populations across an executed graph in
// generation order: every block's inbound flow is complete before the
// block feeds the next generation.
type Simulator struct {
	Resolver *Resolver
}

// Run validates the request, seeds the initial distribution, and sweeps
// the graph. Decaying levels split their population by rate branching;
// photoionizing lines move the cross section times the photon fluence.
// Population is conserved exactly up to rounding.
func (s *Simulator) Run(ctx context.Context, g *Graph, set Settings) (*Outcome, error) {
	logger := ctxlog.FromContext(ctx)

	if len(set.Outputs) == 0 {
		return nil, fmt.Errorf("no output kinds requested: %w", atom.ErrInvalidConfiguration)
	}
	for _, kind := range set.Outputs {
		if kind != OutputIonDistribution && kind != OutputLevelDistribution {
			return nil, fmt.Errorf("output kind %q: %w", kind, atom.ErrUnimplemented)
		}
	}

	initial := g.InitialBlocks()
	if len(initial) != 1 {
		return nil, fmt.Errorf("simulation needs exactly one initial block, got %d: %w",
			len(initial), atom.ErrInvalidConfiguration)
	}

	if s.ionizing(g) && set.PhotonFluence <= 0 {
		return nil, fmt.Errorf("graph carries cross-section lines but no photon fluence is set: %w",
			atom.ErrInvalidConfiguration)
	}

	pops := make(map[string][]float64, len(g.Blocks))
	for _, b := range g.Blocks {
		m, err := s.Resolver.Resolve(ctx, b)
		if err != nil {
			return nil, err
		}
		pops[b.Key()] = make([]float64, m.Size())
	}
	seed := pops[initial[0].Key()]
	if len(set.Initial) != len(seed) {
		return nil, fmt.Errorf("initial distribution has %d entries for %d levels: %w",
			len(set.Initial), len(seed), atom.ErrInvalidConfiguration)
	}
	copy(seed, set.Initial)

	for _, b := range byGeneration(g.Blocks) {
		if err := s.drain(ctx, g, b, pops, set.PhotonFluence); err != nil {
			return nil, err
		}
	}

	out := &Outcome{}
	for _, kind := range set.Outputs {
		switch kind {
		case OutputIonDistribution:
			out.Ion = map[int]float64{}
			for _, b := range g.Blocks {
				total := 0.0
				for _, p := range pops[b.Key()] {
					total += p
				}
				out.Ion[b.ElectronCount] += total
			}
		case OutputLevelDistribution:
			out.Levels = pops
		}
	}

	logger.Debug("Simulated cascade.", "blocks", len(g.Blocks), "outputs", len(set.Outputs))
	return out, nil
}

// drain moves the block's current population along its outgoing steps.
func (s *Simulator) drain(ctx context.Context, g *Graph, b *Block, pops map[string][]float64, fluence float64) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	var outgoing []*Step
	for _, st := range g.Steps {
		if st.Initial == b && st.Intermediate == nil {
			outgoing = append(outgoing, st)
		}
	}
	if len(outgoing) == 0 {
		return nil
	}

	src := pops[b.Key()]
	totalRate := make([]float64, len(src))
	for _, st := range outgoing {
		for _, ln := range st.Lines {
			if ln.Rate > 0 {
				totalRate[ln.InitialIndex] += ln.Rate
			}
		}
	}

	for i, p := range src {
		if p == 0 {
			continue
		}

		moved := 0.0
		for _, st := range outgoing {
			dst := pops[st.Final.Key()]
			for _, ln := range st.Lines {
				if ln.InitialIndex != i || ln.CrossSection <= 0 {
					continue
				}
				flow := p * ln.CrossSection * fluence
				dst[ln.FinalIndex] += flow
				moved += flow
			}
		}
		if moved > p {
			return fmt.Errorf("photon fluence absorbs %.3g of a unit population in level %d of block %s: %w",
				moved/p, i, b.Key(), atom.ErrInvalidConfiguration)
		}

		rest := p - moved
		if totalRate[i] > 0 {
			for _, st := range outgoing {
				dst := pops[st.Final.Key()]
				for _, ln := range st.Lines {
					if ln.InitialIndex != i || ln.Rate <= 0 {
						continue
					}
					dst[ln.FinalIndex] += rest * ln.Rate / totalRate[i]
				}
			}
			rest = 0
		}
		src[i] = rest
	}
	return nil
}

// ionizing reports whether any executed step carries cross-section
// lines.
func (s *Simulator) ionizing(g *Graph) bool {
	for _, st := range g.Steps {
		for _, ln := range st.Lines {
			if ln.CrossSection > 0 {
				return true
			}
		}
	}
	return false
}

// byGeneration orders blocks for the propagation sweep without
// disturbing the graph's own ordering.
func byGeneration(blocks []*Block) []*Block {
	out := make([]*Block, len(blocks))
	copy(out, blocks)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Generation < out[j].Generation
	})
	return out
}
