// Package radial provides the radial-coordinate numerics underneath the
// structure solvers: an exponential mesh, quadrature over it, nuclear
// potential models, closed-form hydrogenic orbitals, effective-potential
// construction, and the one- and two-electron radial integrals entering
// Hamiltonian matrix elements.
//
// All quantities are in Hartree atomic units. Orbitals are stored through
// their reduced amplitude P(r) = r R(r), normalized so that the integral of
// P squared over the mesh is one.
package radial
