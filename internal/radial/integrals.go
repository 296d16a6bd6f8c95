package radial

import "math"

// OneElectron returns the one-body radial integral I(a) for an orbital:
// the kinetic expectation of its hydrogenic shape plus the quadrature of
// P squared against the nuclear potential.
func OneElectron(g *Grid, nm NuclearModel, o *Orbital) float64 {
	nn := float64(o.Subshell.N)
	kinetic := o.Zeff * o.Zeff / (2 * nn * nn)
	v := nm.Potential(g)
	f := make([]float64, g.Len())
	for i, p := range o.P {
		f[i] = p * p * v[i]
	}
	return kinetic + g.Integrate(f)
}

// SlaterRk evaluates the generalized two-electron radial integral
//
//	R^k(ab,cd) = Int Int P_a(1) P_c(1) [r<^k / r>^(k+1)] P_b(2) P_d(2)
//
// with the pair (a,c) on the inner coordinate and (b,d) on the outer one.
func SlaterRk(g *Grid, k int, a, b, c, d *Orbital) float64 {
	return ScreenedSlaterRk(g, k, a, b, c, d, 0)
}

// ScreenedSlaterRk is SlaterRk with the multipole kernel damped by
// exp(-r>/lambda), the Debye-Hueckel screening of the electron pair.
// lambda <= 0 disables the screening.
func ScreenedSlaterRk(g *Grid, k int, a, b, c, d *Orbital, lambda float64) float64 {
	n := g.Len()
	screened := lambda > 0

	// Inner pair density against s^k, accumulated from the origin, and
	// against s^-(k+1) (screened when s is the larger radius),
	// accumulated from the boundary.
	up := make([]float64, n)
	down := make([]float64, n)
	for i, r := range g.R {
		pac := a.P[i] * c.P[i]
		up[i] = pac * math.Pow(r, float64(k))
		down[i] = pac * math.Pow(r, -float64(k+1))
		if screened {
			down[i] *= math.Exp(-r / lambda)
		}
	}
	g.CumulativeInward(up, up)
	g.CumulativeOutward(down, down)

	f := make([]float64, n)
	for i, r := range g.R {
		yk := up[i] * math.Pow(r, -float64(k+1))
		if screened {
			yk *= math.Exp(-r / lambda)
		}
		yk += down[i] * math.Pow(r, float64(k))
		f[i] = yk * b.P[i] * d.P[i]
	}
	return g.Integrate(f)
}

// Fk returns the direct Slater integral F^k(a,b).
func Fk(g *Grid, k int, a, b *Orbital) float64 {
	return SlaterRk(g, k, a, b, a, b)
}

// Gk returns the exchange Slater integral G^k(a,b).
func Gk(g *Grid, k int, a, b *Orbital) float64 {
	return SlaterRk(g, k, a, b, b, a)
}

// BreitStrength estimates the magnetic pair strength as the exchange
// Slater integral scaled by alpha squared. The angular layer supplies
// the multipole weights.
func BreitStrength(g *Grid, k int, a, b *Orbital) float64 {
	return FineStructure * FineStructure * Gk(g, k, a, b)
}
