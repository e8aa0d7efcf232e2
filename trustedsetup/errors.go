package trustedsetup

import "errors"

var (
	ErrInvalidPoint = errors.New("trusted setup contains a point that could not be decoded")
	ErrEmptySetup   = errors.New("trusted setup has no G1 or G2 points")
)
