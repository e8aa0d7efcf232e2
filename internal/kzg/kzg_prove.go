package kzg

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/crate-crypto/go-kzg-airdrop/internal/poly"
)

// Open creates a KZG proof that the polynomial f(x), when evaluated at
// `inputPoint`, is equal to f(inputPoint).
//
// The quotient (f(x) - f(a)) / (x - a) is written into `scratch` when it is
// non-nil; it must then have len(p)-1 elements. The scratch buffer can be
// reused as soon as Open returns.
func Open(p Polynomial, inputPoint fr.Element, ck *CommitKey, scratch []fr.Element, numGoRoutines int) (OpeningProof, error) {
	if len(p) == 0 || len(p) > len(ck.G1) {
		return OpeningProof{}, ErrInvalidPolynomialSize
	}
	if scratch == nil {
		scratch = make([]fr.Element, len(p)-1)
	}
	if len(scratch) != len(p)-1 {
		return OpeningProof{}, ErrScratchSize
	}

	res := OpeningProof{
		InputPoint:   inputPoint,
		ClaimedValue: poly.PolyEval(p, inputPoint),
	}

	// compute the quotient polynomial
	err := poly.DividePolyByXminusAInto(scratch, p, res.InputPoint, res.ClaimedValue)
	if err != nil {
		return OpeningProof{}, err
	}

	// A constant polynomial has the zero polynomial as its quotient,
	// which commits to the identity.
	if len(scratch) == 0 {
		return res, nil
	}

	// commit to Quotient polynomial
	quotientCommit, err := Commit(scratch, ck, numGoRoutines)
	if err != nil {
		return OpeningProof{}, err
	}
	res.QuotientComm.Set(quotientCommit)

	return res, nil
}
