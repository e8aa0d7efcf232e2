package main

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	goairdropkzg "github.com/crate-crypto/go-kzg-airdrop"
	"github.com/crate-crypto/go-kzg-airdrop/serialization"
	"github.com/crate-crypto/go-kzg-airdrop/trustedsetup"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

type OpeningJson struct {
	Index      uint64
	InputPoint string
	Value      string
	Proof      string
}

type AirdropVectorsJson struct {
	NumValues       int
	DomainGenerator string
	Values          []string
	Commitment      string
	Openings        []OpeningJson
}

func airdropVectors(setup *trustedsetup.TrustedSetup, values []fr.Element) (AirdropVectorsJson, error) {
	numValues := len(values)
	scheme, err := goairdropkzg.SetupFromValues(values, setup.G1[:numValues], setup.G2)
	if err != nil {
		return AirdropVectorsJson{}, err
	}

	commitment, err := scheme.Commit()
	if err != nil {
		return AirdropVectorsJson{}, err
	}
	proofs, err := scheme.OpenAll()
	if err != nil {
		return AirdropVectorsJson{}, err
	}

	serComm := goairdropkzg.SerializeCommitment(commitment)
	vectors := AirdropVectorsJson{
		NumValues:       numValues,
		DomainGenerator: scalarHex(scheme.DomainGenerator()),
		Values:          make([]string, numValues),
		Commitment:      hexutil.Encode(serComm[:]),
		Openings:        make([]OpeningJson, numValues),
	}
	for i := range values {
		vectors.Values[i] = scalarHex(values[i])

		ser := proofs[i].Serialize()
		vectors.Openings[i] = OpeningJson{
			Index:      ser.Index,
			InputPoint: scalarHex(proofs[i].InputPoint),
			Value:      hexutil.Encode(ser.Value[:]),
			Proof:      hexutil.Encode(ser.Proof[:]),
		}
	}
	return vectors, nil
}

func scalarHex(element fr.Element) string {
	ser := serialization.SerializeScalar(element)
	return hexutil.Encode(ser[:])
}
