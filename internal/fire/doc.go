// Package fire is the simulation engine behind the terminal fireplace.
//
// An [Engine] owns every buffer of one simulation: the rendered heat field,
// the scratch field being written, the heater automaton and the hotplate.
// Each [Engine.Tick] runs one frame to completion:
//
//	heater evolves -> hotplate warms -> Step diffuses and cools -> swap
//
// Step samples a 7x5 window around every cell, biased downward toward the
// hotplate, averages it, applies [Cooldown] and writes the result one row
// higher than the cell it sampled around. Heat entering from the hotplate
// therefore climbs the screen frame by frame.
//
// # Height record
//
// The engine remembers the highest row that has held heat. Rows more than
// three above it are treated as cold and are neither recomputed nor
// redrawn. The record only moves up; it drops back to 0 (full recompute)
// on [Engine.Resize].
//
// # Thread Safety
//
// Engine is NOT safe for concurrent use. The main loop owns it.
package fire
