package numtheory

import "errors"

// ErrNegative indicates that a function defined on non-negative integers
// received a negative argument.
var ErrNegative = errors.New("numtheory: argument must be non-negative")
