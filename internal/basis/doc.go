// Package basis assembles the many-electron basis for one structure
// calculation: the ordered global subshell list, the configuration state
// functions enumerated from each relativistic configuration, the core
// subshells filled in every state, and the orbital set attached by the
// self-consistent-field stage.
package basis
