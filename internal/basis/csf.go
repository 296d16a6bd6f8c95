package basis

import "github.com/akrivova/ionflow/internal/atom"

// CSF is one configuration state function: an occupation pattern over the
// global subshell list together with its angular coupling. All slices are
// parallel to the owning Basis's Subshells and must not be mutated after
// enumeration.
type CSF struct {
	// Occupation holds the electron count per global subshell.
	Occupation []int

	// SubshellTwoJ holds the doubled term momentum of each occupied
	// subshell (zero where empty).
	SubshellTwoJ []int

	// StateIndex distinguishes repeated terms of the same momentum
	// within one subshell occupation, counting from one (zero where a
	// subshell is empty).
	StateIndex []int

	// CouplingTwoJ holds the doubled cumulative momentum after coupling
	// each subshell onto the running total.
	CouplingTwoJ []int

	// TwoJ is the doubled total momentum of the state.
	TwoJ int

	// Parity is the common parity of the occupation pattern.
	Parity atom.Parity
}

// ElectronCount returns the sum of the occupation vector.
func (c *CSF) ElectronCount() int {
	n := 0
	for _, q := range c.Occupation {
		n += q
	}
	return n
}
