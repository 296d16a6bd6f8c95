// Package config loads computation requests from HCL files: structure,
// cascade and simulation blocks plus the shared nuclear and grid blocks.
// Files are parsed with hclparse, decoded through gohcl-tagged schema
// structs, and translated into the format-agnostic request model the
// engine consumes.
//
// Quantities with a unit degree of freedom (photon energies, initial
// populations) stay HCL expressions until load time and are evaluated
// against a small context providing the unit constants Ha, eV and keV.
package config
