// Package scf generates the orbital set of a basis by self-consistent
// field iteration: an effective mean-field potential is assembled from
// the current orbitals, every subshell is re-resolved against it, and the
// loop repeats until the orbital energies settle.
//
// The per-subshell resolver is a screened-hydrogenic model: each orbital
// keeps the closed-form Coulomb shape for an effective charge extracted
// from the potential it moves in. A full finite-difference or B-spline
// bound-state solver can replace it behind the same iteration.
package scf
