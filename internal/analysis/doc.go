// Package analysis derives secondary series from population traces.
//
// The package provides pointwise transforms of simulation output:
//
//   - [Activity]: instantaneous decay rate A = λN
//   - [Ratio]: daughter/parent population ratio
//
// All functions allocate fresh output, never mutate their inputs, and keep
// the time alignment of the source traces.
package analysis
