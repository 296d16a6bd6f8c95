package radial

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate"
)

// Default mesh parameters. The step and point count follow the usual
// exponential-mesh choices for bound-state problems: dense near the
// nucleus, with an outer boundary that contracts with the nuclear charge.
const (
	DefaultStep   = 3.5e-2
	DefaultPoints = 450
)

// DefaultScale returns the default mesh scale for nuclear charge z. It
// contracts with z so that the innermost nodes resolve the 1s amplitude.
func DefaultScale(z float64) float64 { return 2.0e-4 / z }

// Grid is an exponential radial mesh,
//
//	r_i = r0 * (exp(h*(i+1)) - 1),  i = 0..n-1,
//
// which excludes the origin itself so that Coulomb-singular integrands
// stay finite at every node. The omitted [0, r_0] slice carries no weight
// for amplitudes vanishing like r^(l+1).
type Grid struct {
	r0 float64
	h  float64

	// R holds the node radii in Bohr, strictly increasing.
	R []float64
}

// NewGrid builds a mesh with scale r0, logarithmic step h and n points.
func NewGrid(r0, h float64, n int) (*Grid, error) {
	if r0 <= 0 || h <= 0 || n < 2 {
		return nil, fmt.Errorf("radial: bad mesh parameters r0=%g h=%g n=%d", r0, h, n)
	}
	g := &Grid{r0: r0, h: h, R: make([]float64, n)}
	for i := range g.R {
		// math.Expm1 keeps precision for the small innermost arguments.
		g.R[i] = r0 * math.Expm1(g.h*float64(i+1))
	}
	return g, nil
}

// NewDefaultGrid builds the standard mesh for nuclear charge z.
func NewDefaultGrid(z float64) (*Grid, error) {
	if z <= 0 {
		return nil, fmt.Errorf("radial: nuclear charge must be positive, got %g", z)
	}
	return NewGrid(DefaultScale(z), DefaultStep, DefaultPoints)
}

// Len returns the number of mesh points.
func (g *Grid) Len() int { return len(g.R) }

// Rmax returns the outermost node radius.
func (g *Grid) Rmax() float64 { return g.R[len(g.R)-1] }

// Integrate evaluates the integral of the sampled function f over the
// whole mesh by the trapezoid rule. f must have one sample per node.
func (g *Grid) Integrate(f []float64) float64 {
	if len(f) != len(g.R) {
		panic(fmt.Sprintf("radial: integrand has %d samples, mesh has %d nodes", len(f), len(g.R)))
	}
	return integrate.Trapezoidal(g.R, f)
}

// CumulativeInward fills out[i] with the integral of f from the first node
// up to node i. out may alias f.
func (g *Grid) CumulativeInward(f, out []float64) {
	if len(f) != len(g.R) || len(out) != len(g.R) {
		panic("radial: cumulative integrand length mismatch")
	}
	acc := 0.0
	prevF, prevR := f[0], g.R[0]
	out[0] = 0
	for i := 1; i < len(f); i++ {
		fi, ri := f[i], g.R[i]
		acc += 0.5 * (fi + prevF) * (ri - prevR)
		out[i] = acc
		prevF, prevR = fi, ri
	}
}

// CumulativeOutward fills out[i] with the integral of f from node i to the
// outer boundary. out may alias f.
func (g *Grid) CumulativeOutward(f, out []float64) {
	if len(f) != len(g.R) || len(out) != len(g.R) {
		panic("radial: cumulative integrand length mismatch")
	}
	n := len(f)
	acc := 0.0
	prevF, prevR := f[n-1], g.R[n-1]
	out[n-1] = 0
	for i := n - 2; i >= 0; i-- {
		fi, ri := f[i], g.R[i]
		acc += 0.5 * (fi + prevF) * (prevR - ri)
		out[i] = acc
		prevF, prevR = fi, ri
	}
}
