package kzg

import "errors"

var (
	ErrInvalidPolynomialSize = errors.New("invalid polynomial size (larger than SRS or == 0)")
	ErrVerifyOpeningProof    = errors.New("can't verify opening proof")
	ErrMinSRSSize            = errors.New("srs must contain at least one G1 point")
	ErrG2Size                = errors.New("srs must contain exactly two G2 points: [G2, tau*G2]")
	ErrMalformedSRS          = errors.New("srs contains an invalid point")
	ErrInconsistentSRS       = errors.New("srs G1 and G2 powers do not share the same secret")
	ErrInvalidPoint          = errors.New("point is not in the G1 prime order subgroup")
	ErrScratchSize           = errors.New("scratch buffer length must be one less than the polynomial length")
)
