package kzg

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// OpeningProof is the proof to the claim that a polynomial f(x) was evaluated at a point `a` and
// resulted in `f(a)`
type OpeningProof struct {
	// H quotient polynomial (f - f(a))/(x-a)
	QuotientComm bn254.G1Affine

	// Point that we are evaluating the polynomial at : `a`
	InputPoint fr.Element

	// ClaimedValue purported value : `f(a)`
	ClaimedValue fr.Element
}

// Verify a KZG proof
//
// Checks e(C - [f(a)]G₁, G₂) == e(H, [τ - a]G₂). Returns [ErrVerifyOpeningProof]
// if the equation does not hold and [ErrInvalidPoint] if C or H is not a
// point of the prime order subgroup. The identity is accepted.
//
// Copied and modified from gnark-crypto
func Verify(commitment *Commitment, proof *OpeningProof, openKey *OpeningKey) error {
	if !commitment.IsInSubGroup() {
		return fmt.Errorf("%w: commitment", ErrInvalidPoint)
	}
	if !proof.QuotientComm.IsInSubGroup() {
		return fmt.Errorf("%w: quotient commitment", ErrInvalidPoint)
	}

	// [-1]G₂
	// It's possible to precompute this, however Negation
	// is cheap (2 Fp negations), so doing it per verify
	// should be insignificant compared to the rest of Verify.
	var negG2 bn254.G2Affine
	negG2.Neg(&openKey.GenG2)

	// Convert the G2 generator to Jacobian for
	// later computations.
	var genG2Jac bn254.G2Jac
	genG2Jac.FromAffine(&openKey.GenG2)

	// [a]G₂
	var inputPointG2Jac bn254.G2Jac
	var pointBigInt big.Int
	proof.InputPoint.BigInt(&pointBigInt)
	inputPointG2Jac.ScalarMultiplication(&genG2Jac, &pointBigInt)

	// [τ - a]G₂
	var alphaMinusAG2Jac bn254.G2Jac
	alphaMinusAG2Jac.FromAffine(&openKey.AlphaG2)
	alphaMinusAG2Jac.SubAssign(&inputPointG2Jac)

	// [τ-a]G₂ (Convert to Affine format)
	var alphaMinusAG2Aff bn254.G2Affine
	alphaMinusAG2Aff.FromJacobian(&alphaMinusAG2Jac)

	// [f(a)]G₁
	var claimedValueG1Aff bn254.G1Affine
	var claimedValueBigInt big.Int
	proof.ClaimedValue.BigInt(&claimedValueBigInt)
	claimedValueG1Aff.ScalarMultiplication(&openKey.GenG1, &claimedValueBigInt)

	// [f(τ) - f(a)]G₁
	var fminusfaG1Aff bn254.G1Affine
	fminusfaG1Aff.Sub(commitment, &claimedValueG1Aff)

	check, err := bn254.PairingCheck(
		[]bn254.G1Affine{fminusfaG1Aff, proof.QuotientComm},
		[]bn254.G2Affine{negG2, alphaMinusAG2Aff},
	)
	if err != nil {
		return err
	}
	if !check {
		return ErrVerifyOpeningProof
	}

	return nil
}
