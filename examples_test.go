package goairdropkzg_test

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	goairdropkzg "github.com/crate-crypto/go-kzg-airdrop"
	"github.com/crate-crypto/go-kzg-airdrop/internal/kzg"
)

func Example() {
	// Test-only SRS, the secret is known.
	srs, err := kzg.NewSRSInsecure(4, big.NewInt(1337))
	if err != nil {
		panic(err)
	}

	values := []fr.Element{fr.NewElement(10), fr.NewElement(20), fr.NewElement(30), fr.NewElement(40)}
	scheme, err := goairdropkzg.SetupFromValues(values, srs.CommitKey.G1, srs.G2())
	if err != nil {
		panic(err)
	}

	commitment, err := scheme.Commit()
	if err != nil {
		panic(err)
	}
	proof, err := scheme.Open(2)
	if err != nil {
		panic(err)
	}

	fmt.Println(proof.ClaimedValue.String())
	fmt.Println(scheme.Verify(commitment, proof.ClaimedValue, proof.QuotientComm, 2))
	// Output:
	// 30
	// true
}
