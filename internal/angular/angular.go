package angular

import "strconv"

// Triangle reports whether three angular momenta (doubled) satisfy the
// triangle inequality with an integer-perimeter coupling.
func Triangle(twoJA, twoJB, twoJC int) bool {
	if twoJA < 0 || twoJB < 0 || twoJC < 0 {
		return false
	}
	if (twoJA+twoJB+twoJC)%2 != 0 {
		return false
	}
	return twoJC >= abs(twoJA-twoJB) && twoJC <= twoJA+twoJB
}

// CoupleRange lists the doubled total momenta reachable by coupling two
// momenta: |a-b|, |a-b|+2, ..., a+b.
func CoupleRange(twoJA, twoJB int) []int {
	lo := abs(twoJA - twoJB)
	hi := twoJA + twoJB
	out := make([]int, 0, (hi-lo)/2+1)
	for twoJ := lo; twoJ <= hi; twoJ += 2 {
		out = append(out, twoJ)
	}
	return out
}

// Degeneracy returns the number of magnetic substates 2J+1.
func Degeneracy(twoJ int) int { return twoJ + 1 }

// JLabel renders a doubled momentum for display: "2" for integer values,
// "3/2" for half-integer ones.
func JLabel(twoJ int) string {
	if twoJ%2 == 0 {
		return strconv.Itoa(twoJ / 2)
	}
	return strconv.Itoa(twoJ) + "/2"
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
