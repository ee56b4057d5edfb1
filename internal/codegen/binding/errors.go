package binding

import "errors"

// ErrNameCollision is returned when two schema names map to the same
// generated identifier
var ErrNameCollision = errors.New("generated identifier collision")
