package kzg

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/crate-crypto/go-kzg-airdrop/internal/multiexp"
	"github.com/crate-crypto/go-kzg-airdrop/internal/utils"
)

// OpeningKey is the key used to verify opening proofs
type OpeningKey struct {
	// GenG1 is [1]G₁, the first element of the commit key.
	GenG1 bn254.G1Affine
	// GenG2 is [1]G₂
	GenG2 bn254.G2Affine
	// AlphaG2 is [τ]G₂
	AlphaG2 bn254.G2Affine
}

// CommitKey is the key used to commit to polynomials and make opening proofs.
//
// G1[i] = [τ^i]G₁
type CommitKey struct {
	G1 []bn254.G1Affine
}

// SRS is the structured reference string (SRS) for making
// and verifying KZG proofs.
//
// An SRS is never mutated once it has been constructed.
type SRS struct {
	CommitKey  CommitKey
	OpeningKey OpeningKey
}

// G2 returns the G₂ half of the SRS as [G₂, [τ]G₂].
func (srs *SRS) G2() []bn254.G2Affine {
	return []bn254.G2Affine{srs.OpeningKey.GenG2, srs.OpeningKey.AlphaG2}
}

// NewSRS builds an SRS from the output of a trusted setup:
// g1 = [G₁, [τ]G₁, ..., [τ^{n-1}]G₁] and g2 = [G₂, [τ]G₂].
//
// The points are copied and re-validated: every point must be a non-identity
// element of the prime order subgroup, and when g1 holds [τ]G₁ it must use
// the same τ as g2[1]. Validating the remaining powers is the job of the
// ceremony verifier and is not done here.
//
// A single G₁ point is enough to commit to and open a constant polynomial.
func NewSRS(g1 []bn254.G1Affine, g2 []bn254.G2Affine) (*SRS, error) {
	if len(g2) != 2 {
		return nil, fmt.Errorf("%w: got %d", ErrG2Size, len(g2))
	}
	if len(g1) == 0 {
		return nil, fmt.Errorf("%w: got %d", ErrMinSRSSize, len(g1))
	}

	for i := range g1 {
		if g1[i].IsInfinity() || !g1[i].IsOnCurve() || !g1[i].IsInSubGroup() {
			return nil, fmt.Errorf("%w: G1 point at index %d", ErrMalformedSRS, i)
		}
	}
	for i := range g2 {
		if g2[i].IsInfinity() || !g2[i].IsOnCurve() || !g2[i].IsInSubGroup() {
			return nil, fmt.Errorf("%w: G2 point at index %d", ErrMalformedSRS, i)
		}
	}

	if len(g1) > 1 {
		// e([τ]G₁, G₂) == e(G₁, [τ]G₂)
		var negG1 bn254.G1Affine
		negG1.Neg(&g1[0])
		ok, err := bn254.PairingCheck(
			[]bn254.G1Affine{g1[1], negG1},
			[]bn254.G2Affine{g2[0], g2[1]},
		)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrInconsistentSRS
		}
	}

	commitKey := CommitKey{G1: make([]bn254.G1Affine, len(g1))}
	copy(commitKey.G1, g1)

	return &SRS{
		CommitKey: commitKey,
		OpeningKey: OpeningKey{
			GenG1:   g1[0],
			GenG2:   g2[0],
			AlphaG2: g2[1],
		},
	}, nil
}

// NewSRSInsecure returns an SRS of the given size whose secret is `bAlpha`.
//
// Note that since we provide the secret scalar as input,
// this method must never be used in production. It exists for tests.
func NewSRSInsecure(size uint64, bAlpha *big.Int) (*SRS, error) {
	if size == 0 {
		return nil, ErrMinSRSSize
	}

	var commitKey CommitKey
	var openKey OpeningKey
	commitKey.G1 = make([]bn254.G1Affine, size)

	var alpha fr.Element
	alpha.SetBigInt(bAlpha)

	_, _, gen1Aff, gen2Aff := bn254.Generators()
	commitKey.G1[0] = gen1Aff
	openKey.GenG1 = gen1Aff
	openKey.GenG2 = gen2Aff
	openKey.AlphaG2.ScalarMultiplication(&gen2Aff, bAlpha)

	if size > 1 {
		// alphas = [τ, τ^2, ..., τ^{size-1}]
		alphas := utils.ComputePowers(alpha, uint(size))[1:]
		g1s := bn254.BatchScalarMultiplicationG1(&gen1Aff, alphas)
		copy(commitKey.G1[1:], g1s)
	}

	return &SRS{
		CommitKey:  commitKey,
		OpeningKey: openKey,
	}, nil
}

// Commit commits to a polynomial using a multi exponentiation with the SRS.
//
// The result is a pure function of the coefficients and the commit key.
// Trailing coefficients beyond the polynomial's length are not touched.
func Commit(p Polynomial, ck *CommitKey, numGoRoutines int) (*Commitment, error) {
	if len(p) == 0 || len(p) > len(ck.G1) {
		return nil, ErrInvalidPolynomialSize
	}

	return multiexp.MultiExp(p, ck.G1[:len(p)], numGoRoutines)
}
