// Package engine drives the three request kinds behind the CLI:
// structure computations, cascade computations and cascade simulations.
// It decodes loaded requests into solver settings, runs the numeric
// packages in order, and hands results to the reporter and the snapshot
// store.
package engine
