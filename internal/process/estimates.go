package process

import (
	"github.com/akrivova/ionflow/internal/ci"
	"github.com/akrivova/ionflow/internal/radial"
)

// RadiusScale returns the mean radius of the most extended orbital of
// the multiplet's basis. Kernels use it as the length scale of their
// amplitude estimates.
func RadiusScale(m *ci.Multiplet, g *radial.Grid) float64 {
	max := 0.0
	for _, o := range m.Basis.Orbitals {
		if r := o.MeanR(g); r > max {
			max = r
		}
	}
	return max
}

// StrengthScale returns the Coulomb self-interaction of the outermost
// orbital, the natural magnitude for two-electron matrix element
// estimates.
func StrengthScale(m *ci.Multiplet, g *radial.Grid) float64 {
	var outer *radial.Orbital
	maxR := -1.0
	for _, o := range m.Basis.Orbitals {
		if r := o.MeanR(g); r > maxR {
			maxR = r
			outer = o
		}
	}
	if outer == nil {
		return 0
	}
	return radial.Fk(g, 0, outer, outer)
}
