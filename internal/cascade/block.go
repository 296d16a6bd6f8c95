package cascade

import (
	"strings"

	"github.com/akrivova/ionflow/internal/atom"
)

// Block is one structural unit of the cascade graph: one configuration,
// or several configurations sharing an electron count when block
// combination is requested. Its multiplet is computed lazily and at most
// once per run by a Resolver.
type Block struct {
	// Configurations in stable order; never empty.
	Configurations []atom.Configuration

	// ElectronCount shared by every configuration of the block.
	ElectronCount int

	// Generation is the longest-path depth from the initial blocks.
	Generation int

	// Initial marks blocks seeded by the request rather than derived
	// from another configuration.
	Initial bool

	// MeanBinding is a screened-hydrogenic estimate of the total binding
	// energy in Hartree, kept for display. Step enumeration computes its
	// own ordering measure and does not read this field.
	MeanBinding float64
}

// Key returns the stable identity of the block, usable as a cache key.
func (b *Block) Key() string {
	parts := make([]string, len(b.Configurations))
	for i, cfg := range b.Configurations {
		parts[i] = cfg.String()
	}
	return strings.Join(parts, " + ")
}

func (b *Block) String() string { return b.Key() }

// bindingEstimate sums screened-hydrogenic shell bindings for one
// configuration: each shell sees the nuclear charge reduced by all
// electrons in shells below it and by half its own companions.
func bindingEstimate(z float64, cfg atom.Configuration) float64 {
	total := 0.0
	inner := 0
	for _, so := range cfg.Shells {
		zeff := z - float64(inner) - 0.5*float64(so.Occupation-1)
		if zeff < 1 {
			zeff = 1
		}
		n := float64(so.Shell.N)
		total += float64(so.Occupation) * zeff * zeff / (2 * n * n)
		inner += so.Occupation
	}
	return total
}

// blockBinding averages the estimate over the block's configurations.
func blockBinding(z float64, b *Block) float64 {
	sum := 0.0
	for _, cfg := range b.Configurations {
		sum += bindingEstimate(z, cfg)
	}
	return sum / float64(len(b.Configurations))
}

// orderingBinding is the measure the step predicates compare: the bare
// hydrogenic sum over shells. Unlike the screened display estimate it
// is strictly monotone under electron removal, so a hole state always
// sits above the states that refill it and downhill rules never form
// cycles.
func orderingBinding(z float64, b *Block) float64 {
	sum := 0.0
	for _, cfg := range b.Configurations {
		for _, so := range cfg.Shells {
			n := float64(so.Shell.N)
			sum += float64(so.Occupation) * z * z / (2 * n * n)
		}
	}
	return sum / float64(len(b.Configurations))
}
