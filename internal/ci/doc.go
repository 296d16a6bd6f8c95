// Package ci performs the configuration-interaction step: it partitions
// the basis into symmetry blocks, assembles the Hamiltonian of each block
// from radial integrals weighted by angular coefficients, diagonalizes
// the blocks, and assembles the resulting levels into one energy-sorted
// multiplet.
//
// Angular coefficients come from an AngularLibrary. The built-in
// AverageEnergyLibrary supplies exact configuration-average diagonal
// coefficients and no off-diagonal mixing; a full recoupling library can
// be injected through Settings to enable real mixing.
package ci
