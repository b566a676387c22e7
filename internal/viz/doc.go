// Package viz draws the fire in the terminal with Bubble Tea.
//
// [Display] implements sim.Display on top of a cache of rendered rows and
// [Model] drives a sim.Runner from the Bubble Tea event loop:
//
//   - tick messages advance the runner one frame
//   - window size messages only flag a resize; the runner applies it on
//     the next tick
//   - key messages are queued and drained by the runner
//
// # Key Bindings
//
//	q, Ctrl-C - Quit
//	k, Up     - Raise max temperature
//	j, Down   - Lower max temperature
//	p         - Cycle colour palettes
package viz
