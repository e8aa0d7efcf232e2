// Package goairdropkzg commits to a vector of airdrop allocations with a
// KZG polynomial commitment over BN254 and proves individual entries.
//
// Value i of the vector is the evaluation of the committed polynomial at
// w^i, where w is a primitive n'th root of unity and n the vector length.
// A proof for index i convinces anyone holding the commitment and the
// public SRS that value i is what the prover claims, using a single
// pairing check.
package goairdropkzg

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/crate-crypto/go-kzg-airdrop/internal/domain"
	"github.com/crate-crypto/go-kzg-airdrop/internal/kzg"
	"github.com/crate-crypto/go-kzg-airdrop/internal/pool"
)

// Commitment is a compressed-serializable BN254 G1 point binding the
// airdrop polynomial.
type Commitment = bn254.G1Affine

// Scheme holds the state needed to commit to one polynomial and to
// create and verify opening proofs for it.
//
// A Scheme is never modified after Setup returns, so its methods may be
// called from any number of goroutines.
type Scheme struct {
	domain     *domain.Domain
	polynomial kzg.Polynomial
	commitKey  *kzg.CommitKey
	openKey    *kzg.OpeningKey

	numGoRoutines int
	// Scratch space for quotient polynomials, one buffer per
	// concurrent Open.
	quotientPool *pool.ScalarPool
}

// Setup creates a Scheme for the polynomial with coefficients `polynomial`,
// evaluated over the powers of `w`.
//
// srsG1 must hold exactly len(polynomial) powers [τ^i]G₁ and srsG2 must be
// [G₂, [τ]G₂]. All inputs are copied.
func Setup(polynomial []fr.Element, w fr.Element, srsG1 []bn254.G1Affine, srsG2 []bn254.G2Affine, opts ...Option) (*Scheme, error) {
	var cfg config
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if len(srsG2) != 2 {
		return nil, fmt.Errorf("%w: got %d G2 points, expected 2", ErrSetupSize, len(srsG2))
	}
	if len(srsG1) == 0 {
		return nil, fmt.Errorf("%w: got 0 G1 points", ErrSetupSize)
	}
	if len(polynomial) != len(srsG1) {
		return nil, fmt.Errorf("%w: polynomial has %d coefficients, SRS has %d G1 points", ErrSetupSize, len(polynomial), len(srsG1))
	}

	evalDomain, err := domain.NewDomainWithGenerator(uint64(len(polynomial)), w)
	if err != nil {
		return nil, err
	}

	srs, err := kzg.NewSRS(srsG1, srsG2)
	if err != nil {
		return nil, err
	}

	polyCopy := make(kzg.Polynomial, len(polynomial))
	copy(polyCopy, polynomial)

	return &Scheme{
		domain:        evalDomain,
		polynomial:    polyCopy,
		commitKey:     &srs.CommitKey,
		openKey:       &srs.OpeningKey,
		numGoRoutines: cfg.numGoRoutines,
		quotientPool:  pool.NewScalarPool(len(polynomial) - 1),
	}, nil
}

// SetupFromValues interpolates `values` over the canonical domain of size
// len(values) and calls Setup with the result.
func SetupFromValues(values []fr.Element, srsG1 []bn254.G1Affine, srsG2 []bn254.G2Affine, opts ...Option) (*Scheme, error) {
	evalDomain, err := domain.NewDomain(uint64(len(values)))
	if err != nil {
		return nil, err
	}
	polynomial, err := evalDomain.IfftFr(values)
	if err != nil {
		return nil, err
	}
	return Setup(polynomial, evalDomain.Generator, srsG1, srsG2, opts...)
}

// Size returns the number of values committed to.
func (s *Scheme) Size() uint64 {
	return s.domain.Cardinality
}

// DomainGenerator returns w, the root of unity index i is evaluated at
// the i'th power of.
func (s *Scheme) DomainGenerator() fr.Element {
	return s.domain.Generator
}

// EvaluationPoint returns w^index.
func (s *Scheme) EvaluationPoint(index uint64) (fr.Element, error) {
	if index >= s.domain.Cardinality {
		return fr.Element{}, fmt.Errorf("%w: %d >= %d", ErrIndexOutOfRange, index, s.domain.Cardinality)
	}
	return s.domain.Element(index), nil
}

// Polynomial returns a copy of the coefficients of the committed polynomial.
func (s *Scheme) Polynomial() []fr.Element {
	polyCopy := make([]fr.Element, len(s.polynomial))
	copy(polyCopy, s.polynomial)
	return polyCopy
}
