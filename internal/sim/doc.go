// Package sim drives the fire engine frame by frame against a display.
//
// A [Runner] is a small state machine with three phases:
//
//	Running  -> one engine frame plus one render per tick
//	Resizing -> every buffer is reallocated for the display's new size
//	Stopped  -> terminal; the loop returns
//
// Asynchronous inputs (a terminal resize, a quit request, a signal) only
// set atomic flags through [Runner.NotifyResize] and [Runner.Stop]. The
// loop reads them once at the top of each tick and performs every buffer
// mutation itself.
package sim
