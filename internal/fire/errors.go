package fire

import "errors"

// ErrMaxTemp indicates a maximum temperature below 1.
var ErrMaxTemp = errors.New("fire: max temperature must be at least 1")
