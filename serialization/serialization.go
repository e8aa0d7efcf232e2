package serialization

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/crate-crypto/go-kzg-airdrop/internal/utils"
)

// This is the number of bytes needed to represent a
// group element in G1 when compressed.
const CompressedG1Size = bn254.SizeOfG1AffineCompressed

// This is the number of bytes needed to represent a
// group element in G2 when compressed.
const CompressedG2Size = bn254.SizeOfG2AffineCompressed

// This is the number of bytes needed to represent a field
// element corresponding to the order of the G1 group.
const SerializedScalarSize = fr.Bytes

type Scalar = [SerializedScalarSize]byte
type G1Point = [CompressedG1Size]byte
type G2Point = [CompressedG2Size]byte

// KZGCommitment is the published commitment to the airdrop polynomial.
type KZGCommitment = G1Point

// KZGProof is the commitment to the quotient polynomial of an opening.
type KZGProof = G1Point

func SerializeG1Point(affine bn254.G1Affine) G1Point {
	return affine.Bytes()
}

// DeserializeG1Point decompresses a G1 point. gnark-crypto checks that the
// point is on the curve and in the prime order subgroup.
func DeserializeG1Point(serPoint G1Point) (bn254.G1Affine, error) {
	var point bn254.G1Affine

	_, err := point.SetBytes(serPoint[:])
	if err != nil {
		return bn254.G1Affine{}, fmt.Errorf("%w: %v", ErrInvalidG1Point, err)
	}
	return point, nil
}

func SerializeG2Point(affine bn254.G2Affine) G2Point {
	return affine.Bytes()
}

func DeserializeG2Point(serPoint G2Point) (bn254.G2Affine, error) {
	var point bn254.G2Affine

	_, err := point.SetBytes(serPoint[:])
	if err != nil {
		return bn254.G2Affine{}, fmt.Errorf("%w: %v", ErrInvalidG2Point, err)
	}
	return point, nil
}

// SerializeScalar encodes a field element as 32 big-endian bytes,
// the byte order of an EVM uint256.
func SerializeScalar(element fr.Element) Scalar {
	return element.Bytes()
}

// DeserializeScalar is the inverse of SerializeScalar. Encodings of
// integers >= r are rejected rather than reduced.
func DeserializeScalar(serScalar Scalar) (fr.Element, error) {
	scalar, err := utils.ReduceCanonical(serScalar[:])
	if err != nil {
		return fr.Element{}, ErrNonCanonicalScalar
	}
	return scalar, nil
}

// ScalarFromSlice copies a byte slice into a Scalar, failing when the
// slice is not exactly SerializedScalarSize bytes.
func ScalarFromSlice(b []byte) (Scalar, error) {
	var s Scalar
	if len(b) != SerializedScalarSize {
		return s, fmt.Errorf("%w: expected %d bytes, got %d", ErrNonCanonicalScalar, SerializedScalarSize, len(b))
	}
	copy(s[:], b)
	return s, nil
}

// G1PointFromSlice copies a byte slice into a G1Point, failing when the
// slice is not exactly CompressedG1Size bytes.
func G1PointFromSlice(b []byte) (G1Point, error) {
	var p G1Point
	if len(b) != CompressedG1Size {
		return p, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidG1Point, CompressedG1Size, len(b))
	}
	copy(p[:], b)
	return p, nil
}

// G2PointFromSlice copies a byte slice into a G2Point, failing when the
// slice is not exactly CompressedG2Size bytes.
func G2PointFromSlice(b []byte) (G2Point, error) {
	var p G2Point
	if len(b) != CompressedG2Size {
		return p, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidG2Point, CompressedG2Size, len(b))
	}
	copy(p[:], b)
	return p, nil
}
