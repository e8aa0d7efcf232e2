package serialization

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
)

func TestG1RoundTripSmoke(t *testing.T) {
	_, _, g1Aff, _ := bn254.Generators()
	var p bn254.G1Affine
	p.ScalarMultiplication(&g1Aff, big.NewInt(12345))

	for _, point := range []bn254.G1Affine{g1Aff, p, {}} {
		g1Bytes := SerializeG1Point(point)
		aff, err := DeserializeG1Point(g1Bytes)
		require.NoError(t, err)
		require.True(t, aff.Equal(&point), "G1 serialization roundtrip fail")
	}
}

func TestG2RoundTripSmoke(t *testing.T) {
	_, _, _, g2Aff := bn254.Generators()
	var p bn254.G2Affine
	p.ScalarMultiplication(&g2Aff, big.NewInt(3))

	for _, point := range []bn254.G2Affine{g2Aff, p} {
		g2Bytes := SerializeG2Point(point)
		aff, err := DeserializeG2Point(g2Bytes)
		require.NoError(t, err)
		require.True(t, aff.Equal(&point), "G2 serialization roundtrip fail")
	}
}

func TestDeserializeG1Garbage(t *testing.T) {
	var garbage G1Point
	for i := range garbage {
		garbage[i] = 0xff
	}
	_, err := DeserializeG1Point(garbage)
	require.ErrorIs(t, err, ErrInvalidG1Point)
}

func TestScalarIsBigEndian(t *testing.T) {
	one := fr.One()
	ser := SerializeScalar(one)
	require.Equal(t, byte(1), ser[SerializedScalarSize-1])
	for i := 0; i < SerializedScalarSize-1; i++ {
		require.Zero(t, ser[i])
	}
}

func TestScalarRoundTrip(t *testing.T) {
	elements := make([]fr.Element, 16)
	for i := range elements {
		_, err := elements[i].SetRandom()
		require.NoError(t, err)
	}

	for _, element := range elements {
		got, err := DeserializeScalar(SerializeScalar(element))
		require.NoError(t, err)
		require.Equal(t, element, got)
	}
}

func TestDeserializeNonCanonicalScalar(t *testing.T) {
	var modulus Scalar
	fr.Modulus().FillBytes(modulus[:])

	_, err := DeserializeScalar(modulus)
	require.ErrorIs(t, err, ErrNonCanonicalScalar)
}

func TestFromSliceLengths(t *testing.T) {
	_, err := ScalarFromSlice(make([]byte, 31))
	require.ErrorIs(t, err, ErrNonCanonicalScalar)
	_, err = ScalarFromSlice(make([]byte, 32))
	require.NoError(t, err)

	_, err = G1PointFromSlice(make([]byte, 33))
	require.ErrorIs(t, err, ErrInvalidG1Point)
	_, err = G1PointFromSlice(make([]byte, 32))
	require.NoError(t, err)

	_, err = G2PointFromSlice(make([]byte, 32))
	require.ErrorIs(t, err, ErrInvalidG2Point)
	_, err = G2PointFromSlice(make([]byte, 64))
	require.NoError(t, err)
}
