// Package process defines the contract between the cascade machinery and
// the atomic-process kernels: line and pathway data types, radiative
// multipole and continuum partial-wave selection rules, the kernel
// registry, and the generic three-level pathway driver shared by capture
// processes.
//
// Kernels live under kernels/ and register themselves through the Module
// interface, one package per process tag.
package process
