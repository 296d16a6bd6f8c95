package radial

import (
	"math"

	"github.com/akrivova/ionflow/internal/atom"
)

// Orbital is one relativistic subshell's radial solution sampled on a
// mesh: the reduced amplitude P(r) = r R(r), its single-particle energy,
// and the effective charge parameterizing the amplitude's shape.
type Orbital struct {
	Subshell atom.Subshell

	// Energy is the single-particle energy in Hartree, negative for a
	// bound state.
	Energy float64

	// Zeff is the effective nuclear charge seen by the electron; the
	// amplitude has the hydrogenic shape for this charge.
	Zeff float64

	// P holds the reduced amplitude, one sample per mesh node.
	P []float64
}

// Norm returns the integral of P squared over the mesh.
func (o *Orbital) Norm(g *Grid) float64 {
	f := make([]float64, len(o.P))
	for i, p := range o.P {
		f[i] = p * p
	}
	return g.Integrate(f)
}

// Normalize rescales the amplitude to unit norm.
func (o *Orbital) Normalize(g *Grid) {
	n := o.Norm(g)
	if n <= 0 {
		return
	}
	s := 1 / math.Sqrt(n)
	for i := range o.P {
		o.P[i] *= s
	}
}

// Overlap returns the radial overlap integral of two orbitals on the
// same mesh.
func (o *Orbital) Overlap(g *Grid, other *Orbital) float64 {
	f := make([]float64, len(o.P))
	for i, p := range o.P {
		f[i] = p * other.P[i]
	}
	return g.Integrate(f)
}

// MeanR returns the expectation value of r.
func (o *Orbital) MeanR(g *Grid) float64 {
	f := make([]float64, len(o.P))
	for i, p := range o.P {
		f[i] = p * p * g.R[i]
	}
	return g.Integrate(f)
}
