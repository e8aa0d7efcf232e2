package goairdropkzg

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/crate-crypto/go-kzg-airdrop/serialization"
)

// SerializedOpening is the published form of an opening: the claimed
// value as a big-endian scalar and the compressed quotient commitment.
type SerializedOpening struct {
	Index uint64
	Value serialization.Scalar
	Proof serialization.KZGProof
}

// SerializeCommitment returns the 32 byte compressed commitment.
func SerializeCommitment(commitment Commitment) serialization.KZGCommitment {
	return serialization.SerializeG1Point(commitment)
}

// DeserializeCommitment decodes a compressed commitment, checking that it
// is a valid curve point.
func DeserializeCommitment(serComm serialization.KZGCommitment) (Commitment, error) {
	return serialization.DeserializeG1Point(serComm)
}

// Serialize returns the published form of the proof.
func (p *OpeningProof) Serialize() SerializedOpening {
	return SerializedOpening{
		Index: p.Index,
		Value: serialization.SerializeScalar(p.ClaimedValue),
		Proof: serialization.SerializeG1Point(p.QuotientComm),
	}
}

// Deserialize decodes a published opening. The evaluation point is left
// unset; verification recomputes it from the index.
func (s *SerializedOpening) Deserialize() (OpeningProof, error) {
	value, err := serialization.DeserializeScalar(s.Value)
	if err != nil {
		return OpeningProof{}, err
	}
	quotientComm, err := serialization.DeserializeG1Point(s.Proof)
	if err != nil {
		return OpeningProof{}, err
	}
	return OpeningProof{
		Index:        s.Index,
		ClaimedValue: value,
		QuotientComm: quotientComm,
	}, nil
}

// VerifySerialized decodes and verifies a published opening against a
// serialized commitment. Malformed encodings are reported as errors,
// a well formed but invalid proof as false.
func (s *Scheme) VerifySerialized(serComm serialization.KZGCommitment, opening SerializedOpening) (bool, error) {
	commitment, err := DeserializeCommitment(serComm)
	if err != nil {
		return false, err
	}
	proof, err := opening.Deserialize()
	if err != nil {
		return false, err
	}
	return s.Verify(commitment, proof.ClaimedValue, proof.QuotientComm, proof.Index), nil
}

// ScalarModulus returns the order of the BN254 scalar field as 32
// big-endian bytes.
func ScalarModulus() [32]byte {
	var modulus [32]byte
	fr.Modulus().FillBytes(modulus[:])
	return modulus
}
