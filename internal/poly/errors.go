package poly

import "errors"

// ErrInvalidOpening is returned when (f(X) - y) is not divisible by (X - a),
// meaning y != f(a). A quotient computed in that case would not bind to f.
var ErrInvalidOpening = errors.New("claimed evaluation leaves a nonzero remainder in the opening quotient")
