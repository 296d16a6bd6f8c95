package radial

import (
	"math"

	"github.com/akrivova/ionflow/internal/atom"
)

// HydrogenicEnergy returns the nonrelativistic bound-state energy
// -Z^2/(2 n^2) in Hartree for effective charge z and principal quantum
// number n.
func HydrogenicEnergy(z float64, n int) float64 {
	nn := float64(n)
	return -z * z / (2 * nn * nn)
}

// Hydrogenic samples the closed-form Coulomb amplitude for subshell sub
// and effective charge z on the mesh,
//
//	P_nl(r) = N * (2 z r / n)^(l+1) * exp(-z r / n) * L,
//
// with L the generalized Laguerre polynomial of degree n-l-1 and order
// 2l+1. The amplitude is normalized on the mesh, so outer-boundary
// truncation never leaks into overlaps.
func Hydrogenic(sub atom.Subshell, z float64, g *Grid) *Orbital {
	n, l := sub.N, sub.L()
	o := &Orbital{
		Subshell: sub,
		Energy:   HydrogenicEnergy(z, n),
		Zeff:     z,
		P:        make([]float64, g.Len()),
	}
	nn := float64(n)
	for i, r := range g.R {
		x := 2 * z * r / nn
		o.P[i] = math.Pow(x, float64(l+1)) * math.Exp(-x/2) * laguerre(n-l-1, 2*l+1, x)
	}
	o.Normalize(g)
	return o
}

// laguerre evaluates the generalized Laguerre polynomial L_k^a(x) by the
// three-term recurrence.
func laguerre(k, a int, x float64) float64 {
	if k == 0 {
		return 1
	}
	af := float64(a)
	prev, cur := 1.0, 1+af-x
	for i := 2; i <= k; i++ {
		fi := float64(i)
		prev, cur = cur, ((2*fi-1+af-x)*cur-(fi-1+af)*prev)/fi
	}
	return cur
}
