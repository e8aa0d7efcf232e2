package serialization

import "errors"

var (
	ErrNonCanonicalScalar = errors.New("scalar is not canonical when interpreted as a big integer in big-endian")
	ErrInvalidG1Point     = errors.New("bytes do not encode a valid compressed G1 point")
	ErrInvalidG2Point     = errors.New("bytes do not encode a valid compressed G2 point")
)
