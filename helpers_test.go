package goairdropkzg_test

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/crate-crypto/go-kzg-airdrop/internal/kzg"
	"github.com/stretchr/testify/require"
)

// Set the number of go routines to be 0
// for tests. This tells concurrent algorithms
// to use as many go routines as there are CPU cores.
const NumGoRoutines = 0

// airdropValues is the n=8 vector used throughout the tests.
var airdropValues = []uint64{12, 123, 1234, 12345, 123456, 1234567, 12345678, 123456789}

func insecureSRS(t *testing.T, size uint64, secret int64) ([]bn254.G1Affine, []bn254.G2Affine) {
	t.Helper()
	srs, err := kzg.NewSRSInsecure(size, big.NewInt(secret))
	require.NoError(t, err)
	return srs.CommitKey.G1, srs.G2()
}

func toElements(values []uint64) []fr.Element {
	elements := make([]fr.Element, len(values))
	for i, v := range values {
		elements[i] = fr.NewElement(v)
	}
	return elements
}
