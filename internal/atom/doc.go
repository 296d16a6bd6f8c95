// Package atom defines the elementary vocabulary of the code: spectroscopic
// shells, relativistic subshells, symbolic electron configurations, and the
// expansion of a non-relativistic configuration into the relativistic
// configurations consistent with it.
//
// Everything in this package is plain data with deterministic ordering and
// string forms; all heavier machinery (coupling, orbitals, Hamiltonians)
// builds on top of it.
package atom
