package goairdropkzg

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/crate-crypto/go-kzg-airdrop/internal/kzg"
)

// Verify returns true if `proof` shows that the polynomial committed to by
// `commitment` evaluates to `value` at w^index.
//
// A rejected proof is an expected outcome and is reported as false,
// never as an error. Points outside the G1 prime order subgroup are
// rejected before any pairing is computed.
func (s *Scheme) Verify(commitment Commitment, value fr.Element, proof bn254.G1Affine, index uint64) bool {
	openingProof := OpeningProof{
		Index:        index,
		ClaimedValue: value,
		QuotientComm: proof,
	}
	return s.VerifyOpeningProof(commitment, &openingProof) == nil
}

// VerifyOpeningProof is Verify returning the reason a proof was rejected.
//
// The evaluation point is always recomputed from proof.Index; the
// InputPoint field is ignored. An error wrapping [ErrInvalidPoint] is
// returned if the commitment or the quotient commitment is not in the
// G1 prime order subgroup.
func (s *Scheme) VerifyOpeningProof(commitment Commitment, proof *OpeningProof) error {
	inputPoint, err := s.EvaluationPoint(proof.Index)
	if err != nil {
		return err
	}

	kzgProof := kzg.OpeningProof{
		QuotientComm: proof.QuotientComm,
		InputPoint:   inputPoint,
		ClaimedValue: proof.ClaimedValue,
	}
	if err := kzg.Verify(&commitment, &kzgProof, s.openKey); err != nil {
		return fmt.Errorf("index %d: %w", proof.Index, err)
	}
	return nil
}
