// Package report renders computation results for human consumption.
//
// Reporters are write-only collaborators: the core hands them multiplets,
// cascade blocks and steps, and simulation distributions, and never reads
// anything back. Console writes aligned tables to an io.Writer; Discard
// drops everything and backs runs that only persist results.
package report
