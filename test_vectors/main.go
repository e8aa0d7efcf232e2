// Command test_vectors writes fixtures for verifier implementations, for
// example an on-chain verifier built on the EVM pairing precompile.
//
// The trusted setup it uses has a known secret and SHOULD NOT BE USED IN
// PRODUCTION.
package main

import (
	"encoding/json"
	"math/big"
	"os"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/crate-crypto/go-kzg-airdrop/internal/kzg"
	"github.com/crate-crypto/go-kzg-airdrop/trustedsetup"
)

func main() {
	secret := big.NewInt(123456789)
	numValues := uint64(8)

	srs, err := kzg.NewSRSInsecure(numValues, secret)
	if err != nil {
		panic(err)
	}
	setup := &trustedsetup.TrustedSetup{G1: srs.CommitKey.G1, G2: srs.G2()}

	setupJSON, err := trustedsetup.Encode(setup)
	if err != nil {
		panic(err)
	}
	if err := os.WriteFile("srs.json", setupJSON, 0o644); err != nil {
		panic(err)
	}

	vectors, err := airdropVectors(setup, offsetValues(1000, int(numValues)))
	if err != nil {
		panic(err)
	}
	saveAsJson(vectors, "airdrop_vectors.json")
}

func saveAsJson(data interface{}, fileName string) {
	file, err := json.MarshalIndent(data, "", " ")
	if err != nil {
		panic(err)
	}
	if err := os.WriteFile(fileName, file, 0o644); err != nil {
		panic(err)
	}
}

func offsetValues(offset int, numValues int) []fr.Element {
	values := make([]fr.Element, numValues)
	for i := 0; i < numValues; i++ {
		values[i].SetInt64(int64(offset + i))
	}
	return values
}
