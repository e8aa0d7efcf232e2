package goairdropkzg

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/crate-crypto/go-kzg-airdrop/internal/domain"
	"github.com/crate-crypto/go-kzg-airdrop/internal/kzg"
	"github.com/crate-crypto/go-kzg-airdrop/internal/poly"
)

// Interpolate returns the n coefficients of the unique polynomial f of
// degree < n with f(w^i) = values[i], where n = len(values) and w is the
// root of unity returned by DomainGenerator(n).
//
// Returns an error wrapping [ErrDomainSize] if the scalar field has no
// subgroup of order n. The input is never padded or truncated.
func Interpolate(values []fr.Element) ([]fr.Element, error) {
	evalDomain, err := domain.NewDomain(uint64(len(values)))
	if err != nil {
		return nil, err
	}
	return poly.Interpolate(evalDomain, values)
}

// DomainGenerator returns the canonical primitive n'th root of unity used
// by Interpolate.
func DomainGenerator(n uint64) (fr.Element, error) {
	evalDomain, err := domain.NewDomain(n)
	if err != nil {
		return fr.Element{}, err
	}
	return evalDomain.Generator, nil
}

// Commit computes Σ polynomial[j]·srsG1[j] without setting up a Scheme.
// It returns the same point as Scheme.Commit for the same inputs.
func Commit(polynomial []fr.Element, srsG1 []bn254.G1Affine, numGoRoutines int) (Commitment, error) {
	if len(polynomial) > len(srsG1) {
		return Commitment{}, fmt.Errorf("%w: polynomial has %d coefficients, SRS has %d G1 points", ErrSetupSize, len(polynomial), len(srsG1))
	}
	comm, err := kzg.Commit(polynomial, &kzg.CommitKey{G1: srsG1}, numGoRoutines)
	if err != nil {
		return Commitment{}, err
	}
	return *comm, nil
}
