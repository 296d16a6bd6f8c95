// Package cascade orchestrates multi-step decay and ionization
// computations: it derives the descendant configurations of an initial
// ion state, groups them into blocks, connects the blocks with
// process-labeled steps, resolves each block's multiplet at most once,
// and propagates level populations across the resulting graph.
package cascade
