// Package analysis finds periodic structure in per-frame fire metrics.
//
// The heater automaton often falls into cycles between perturbations;
// the power spectrum of the flame height shows them as peaks.
package analysis
