package sim

import "errors"

// ErrNoDisplay indicates a runner built without a display.
var ErrNoDisplay = errors.New("sim: no display")
