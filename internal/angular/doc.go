// Package angular carries the small amount of angular-momentum algebra the
// code needs on its own: triangle tests, coupling ranges, the table of
// antisymmetric many-electron states of a single subshell, and a plain
// Wigner 3j evaluation.
//
// Every angular momentum is passed as its doubled integer value (TwoJ), so
// half-integer momenta stay exact. Full recoupling machinery for arbitrary
// matrix elements is deliberately out of scope; richer coefficient sets
// plug in at the configuration-interaction layer.
package angular
