package goairdropkzg

import (
	"fmt"
	"runtime"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/crate-crypto/go-kzg-airdrop/internal/kzg"
	"golang.org/x/sync/errgroup"
)

// OpeningProof shows that the committed polynomial evaluates to
// ClaimedValue at w^Index.
type OpeningProof struct {
	Index        uint64
	InputPoint   fr.Element
	ClaimedValue fr.Element
	// Commitment to (f(X) - ClaimedValue) / (X - InputPoint)
	QuotientComm bn254.G1Affine
}

// Commit returns the commitment to the scheme's polynomial.
//
// The result only depends on the polynomial and the SRS.
func (s *Scheme) Commit() (Commitment, error) {
	comm, err := kzg.Commit(s.polynomial, s.commitKey, s.numGoRoutines)
	if err != nil {
		return Commitment{}, err
	}
	return *comm, nil
}

// Open creates a proof for the value at `index`.
func (s *Scheme) Open(index uint64) (OpeningProof, error) {
	inputPoint, err := s.EvaluationPoint(index)
	if err != nil {
		return OpeningProof{}, err
	}

	scratch, err := s.quotientPool.Get()
	if err != nil {
		return OpeningProof{}, err
	}
	defer s.quotientPool.Put(scratch)

	proof, err := kzg.Open(s.polynomial, inputPoint, s.commitKey, scratch, s.numGoRoutines)
	if err != nil {
		return OpeningProof{}, fmt.Errorf("index %d: %w", index, err)
	}

	return OpeningProof{
		Index:        index,
		InputPoint:   proof.InputPoint,
		ClaimedValue: proof.ClaimedValue,
		QuotientComm: proof.QuotientComm,
	}, nil
}

// OpenAll creates a proof for every index. proofs[i] is the proof for index i.
func (s *Scheme) OpenAll() ([]OpeningProof, error) {
	proofs := make([]OpeningProof, s.domain.Cardinality)

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i := range proofs {
		g.Go(func() error {
			proof, err := s.Open(uint64(i))
			if err != nil {
				return err
			}
			proofs[i] = proof
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return proofs, nil
}
