package goairdropkzg_test

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	goairdropkzg "github.com/crate-crypto/go-kzg-airdrop"
	"github.com/crate-crypto/go-kzg-airdrop/internal/poly"
	"github.com/stretchr/testify/require"
)

func TestInterpolateRoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 6, 8, 16, 24} {
		values := make([]fr.Element, n)
		for i := range values {
			_, err := values[i].SetRandom()
			require.NoError(t, err)
		}

		coeffs, err := goairdropkzg.Interpolate(values)
		require.NoError(t, err)
		require.Len(t, coeffs, n, "interpolation must not pad or truncate")

		w, err := goairdropkzg.DomainGenerator(uint64(n))
		require.NoError(t, err)
		x := fr.One()
		for i := 0; i < n; i++ {
			got := poly.PolyEval(coeffs, x)
			require.True(t, got.Equal(&values[i]), "n=%d i=%d", n, i)
			x.Mul(&x, &w)
		}
	}
}

func TestInterpolateConstant(t *testing.T) {
	values := make([]fr.Element, 8)
	for i := range values {
		values[i] = fr.NewElement(42)
	}
	coeffs, err := goairdropkzg.Interpolate(values)
	require.NoError(t, err)

	require.Len(t, coeffs, 8)
	require.True(t, coeffs[0].Equal(&values[0]))
	for i := 1; i < len(coeffs); i++ {
		require.True(t, coeffs[i].IsZero())
	}
}

func TestInterpolateDomainError(t *testing.T) {
	// 5 does not divide r-1
	_, err := goairdropkzg.Interpolate(make([]fr.Element, 5))
	require.ErrorIs(t, err, goairdropkzg.ErrDomainSize)

	_, err = goairdropkzg.Interpolate(nil)
	require.ErrorIs(t, err, goairdropkzg.ErrDomainSize)

	_, err = goairdropkzg.DomainGenerator(7)
	require.ErrorIs(t, err, goairdropkzg.ErrDomainSize)
}

func TestDomainGeneratorLargePrimeOrder(t *testing.T) {
	// Largest prime factor of r-1. w^n == 1 with w != 1 means w has order n.
	const n = uint64(1670836401704629)

	w, err := goairdropkzg.DomainGenerator(n)
	require.NoError(t, err)

	var wn big.Int
	wn.SetUint64(n)
	var pow fr.Element
	pow.Exp(w, &wn)
	require.True(t, pow.IsOne())
	require.False(t, w.IsOne())
}
