// Command airdrop-kzg commits to an airdrop allocation file and creates
// and verifies per-recipient KZG opening proofs.
//
//	airdrop-kzg commit --config airdrop.yaml
//	airdrop-kzg open   --config airdrop.yaml --index 3
//	airdrop-kzg verify --config airdrop.yaml --index 3 --commitment 0x.. --value 0x.. --proof 0x..
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
