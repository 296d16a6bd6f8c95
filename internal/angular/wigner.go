package angular

import "math"

// Wigner3j evaluates the 3j symbol (j1 j2 j3; m1 m2 m3) with all arguments
// doubled. It returns zero whenever a selection rule is violated. The
// evaluation uses the Racah sum with log-factorials, which is accurate far
// beyond the momenta occurring in subshell coupling.
func Wigner3j(twoJ1, twoJ2, twoJ3, twoM1, twoM2, twoM3 int) float64 {
	if twoM1+twoM2+twoM3 != 0 {
		return 0
	}
	if !Triangle(twoJ1, twoJ2, twoJ3) {
		return 0
	}
	if abs(twoM1) > twoJ1 || abs(twoM2) > twoJ2 || abs(twoM3) > twoJ3 {
		return 0
	}
	if (twoJ1+twoM1)%2 != 0 || (twoJ2+twoM2)%2 != 0 || (twoJ3+twoM3)%2 != 0 {
		return 0
	}

	// All the factorial arguments below are guaranteed non-negative
	// integers once the checks above pass; they are carried doubled.
	lnDelta := 0.5 * (lnFact(twoJ1+twoJ2-twoJ3) + lnFact(twoJ1-twoJ2+twoJ3) +
		lnFact(-twoJ1+twoJ2+twoJ3) - lnFact(twoJ1+twoJ2+twoJ3+2))
	lnNum := 0.5 * (lnFact(twoJ1+twoM1) + lnFact(twoJ1-twoM1) +
		lnFact(twoJ2+twoM2) + lnFact(twoJ2-twoM2) +
		lnFact(twoJ3+twoM3) + lnFact(twoJ3-twoM3))

	kMin := 0
	if d := twoJ2 - twoJ3 - twoM1; d > kMin {
		kMin = d
	}
	if d := twoJ1 - twoJ3 + twoM2; d > kMin {
		kMin = d
	}
	kMax := twoJ1 + twoJ2 - twoJ3
	if d := twoJ1 - twoM1; d < kMax {
		kMax = d
	}
	if d := twoJ2 + twoM2; d < kMax {
		kMax = d
	}

	sum := 0.0
	for twoK := kMin; twoK <= kMax; twoK += 2 {
		lnTerm := lnFact(twoK) + lnFact(twoJ1+twoJ2-twoJ3-twoK) +
			lnFact(twoJ1-twoM1-twoK) + lnFact(twoJ2+twoM2-twoK) +
			lnFact(twoJ3-twoJ2+twoM1+twoK) + lnFact(twoJ3-twoJ1-twoM2+twoK)
		term := math.Exp(lnDelta + lnNum - lnTerm)
		if (twoK/2)%2 != 0 {
			term = -term
		}
		sum += term
	}

	phase := (twoJ1 - twoJ2 - twoM3) / 2
	if (phase%2+2)%2 != 0 {
		sum = -sum
	}
	return sum
}

// lnFact returns ln((twoN/2)!) for an even, non-negative doubled argument.
func lnFact(twoN int) float64 {
	v, _ := math.Lgamma(float64(twoN/2) + 1)
	return v
}
