package radial

import "math"

// Occupied pairs an orbital with its electron count for density sums.
type Occupied struct {
	Orbital *Orbital
	Weight  float64
}

// PotentialOptions selects the local exchange approximation entering the
// effective potential.
type PotentialOptions struct {
	// Alpha scales the Slater exchange term. 2/3 gives the Kohn-Sham
	// value, 1 the original Slater one.
	Alpha float64

	// Latter caps the far tail at -(Z-N+1)/r so a recaptured electron
	// sees the correct ionic charge.
	Latter bool
}

// EffectivePotential assembles the local mean-field potential
//
//	V(r) = V_nuc(r) + V_direct(r) + V_exchange(r)
//
// from the nuclear model and the occupied orbitals. The direct term is
// the classical potential of the shell-summed radial density; exchange is
// the Slater local-density form scaled by Alpha.
func EffectivePotential(g *Grid, nm NuclearModel, occ []Occupied, opt PotentialOptions) []float64 {
	n := g.Len()
	v := nm.Potential(g)
	if len(occ) == 0 {
		return v
	}

	rho := make([]float64, n)
	total := 0.0
	for _, oc := range occ {
		total += oc.Weight
		for i, p := range oc.Orbital.P {
			rho[i] += oc.Weight * p * p
		}
	}

	// Direct term: inner charge over r plus the outer 1/s tail.
	inner := make([]float64, n)
	g.CumulativeInward(rho, inner)
	overR := make([]float64, n)
	for i, r := range g.R {
		overR[i] = rho[i] / r
	}
	outer := make([]float64, n)
	g.CumulativeOutward(overR, outer)
	for i, r := range g.R {
		v[i] += inner[i]/r + outer[i]
	}

	// Slater exchange on the local number density.
	if opt.Alpha > 0 {
		for i, r := range g.R {
			nd := rho[i] / (4 * math.Pi * r * r)
			if nd <= 0 {
				continue
			}
			v[i] -= 1.5 * opt.Alpha * math.Cbrt(3*nd/math.Pi)
		}
	}

	if opt.Latter {
		zion := nm.Charge() - total + 1
		if zion < 1 {
			zion = 1
		}
		for i, r := range g.R {
			if tail := -zion / r; v[i] > tail {
				v[i] = tail
			}
		}
	}
	return v
}
