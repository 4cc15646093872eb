// Package viz renders population and activity traces as terminal plots.
// It consumes finished traces only; nothing here feeds back into the
// simulation engine.
package viz
