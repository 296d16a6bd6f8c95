package radial

// Physical constants (CODATA 2018) used across the structure solvers.
const (
	// HartreeEV converts energies from Hartree to electron-volts.
	HartreeEV = 27.211386245988

	// FineStructure is the fine-structure constant alpha.
	FineStructure = 7.2973525693e-3

	// BohrFM converts nuclear radii from femtometers to Bohr.
	BohrFM = 1.0 / 52917.7210903
)
