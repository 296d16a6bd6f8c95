package radial

import "math"

// NuclearModel describes the electrostatic potential of the nucleus.
// Potential samples V(r) on every node of the mesh; values are negative
// for an attractive charge.
type NuclearModel interface {
	// Charge returns the nuclear charge Z.
	Charge() float64

	// Potential samples the nuclear potential on the mesh.
	Potential(g *Grid) []float64
}

// PointNucleus is the bare Coulomb potential -Z/r.
type PointNucleus struct {
	Z float64
}

func (p PointNucleus) Charge() float64 { return p.Z }

func (p PointNucleus) Potential(g *Grid) []float64 {
	v := make([]float64, g.Len())
	for i, r := range g.R {
		v[i] = -p.Z / r
	}
	return v
}

// UniformNucleus models the charge as a uniformly charged sphere of
// radius R0 (in Bohr). Inside the sphere the potential is parabolic,
// outside it matches the point form.
type UniformNucleus struct {
	Z  float64
	R0 float64
}

// NewUniformNucleus builds the uniform-sphere model with the empirical
// radius 1.2 fm * A^(1/3) for mass number a.
func NewUniformNucleus(z float64, a float64) UniformNucleus {
	return UniformNucleus{Z: z, R0: 1.2 * math.Cbrt(a) * BohrFM}
}

func (u UniformNucleus) Charge() float64 { return u.Z }

func (u UniformNucleus) Potential(g *Grid) []float64 {
	v := make([]float64, g.Len())
	for i, r := range g.R {
		if r >= u.R0 {
			v[i] = -u.Z / r
			continue
		}
		x := r / u.R0
		v[i] = -u.Z / u.R0 * (1.5 - 0.5*x*x)
	}
	return v
}

// DebyeScreened wraps a nuclear model with an exponential screening
// factor exp(-r/Lambda), the Debye-Hueckel form for a charge embedded in
// a plasma. Exact for a point charge, and a good approximation for
// finite-size models whenever Lambda far exceeds the nuclear radius.
type DebyeScreened struct {
	Model  NuclearModel
	Lambda float64
}

func (d DebyeScreened) Charge() float64 { return d.Model.Charge() }

func (d DebyeScreened) Potential(g *Grid) []float64 {
	v := d.Model.Potential(g)
	for i, r := range g.R {
		v[i] *= math.Exp(-r / d.Lambda)
	}
	return v
}
