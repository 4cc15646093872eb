// Package decay provides core simulation primitives for radioactive decay.
//
// The package defines the fundamental interfaces and types for numerical
// simulation of coupled first-order linear decay ODEs (dN/dt = -λN):
//
//   - [State]: vector of nuclide populations
//   - [System]: interface for decay systems (dN/dt = f(N, t))
//   - [Stepper]: numerical integrator interface (forward Euler)
//   - [Grid]: fixed time grid (total time, step count)
//   - [Simulator]: orchestrates simulation runs
//
// # Example
//
//	single, _ := models.NewSingle(species)
//	sim := decay.New(single, decay.NewEuler())
//	result, _ := sim.Run(decay.State{n0}, grid)
//
// # Determinism
//
// Simulators hold no hidden state: repeated runs with identical inputs
// produce bit-identical traces. Euler stepping with λ·dt > 1 is numerically
// unstable and may produce negative populations; this is deliberately not
// clamped or reported as an error so callers can observe it.
package decay
