// Package trustedsetup reads and writes the structured reference string
// produced by a powers-of-tau ceremony over BN254.
//
// The file format is a JSON object holding hex encoded compressed points:
//
//	{"g1": ["0x..", ...], "g2": ["0x..", "0x.."]}
//
// g1[i] is [τ^i]G₁ and g2 is [G₂, [τ]G₂].
package trustedsetup

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/crate-crypto/go-kzg-airdrop/internal/kzg"
	"github.com/crate-crypto/go-kzg-airdrop/serialization"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/sync/errgroup"
)

// Hex string for a compressed G1 point with the `0x` prefix
type G1CompressedHexStr = string

// Hex string for a compressed G2 point with the `0x` prefix
type G2CompressedHexStr = string

// JSONTrustedSetup is the on-disk shape of a trusted setup.
type JSONTrustedSetup struct {
	SetupG1 []G1CompressedHexStr `json:"g1"`
	SetupG2 []G2CompressedHexStr `json:"g2"`
}

// TrustedSetup holds decoded and validated SRS points.
type TrustedSetup struct {
	G1 []bn254.G1Affine
	G2 []bn254.G2Affine
}

// Size is the number of G1 powers, ie the largest polynomial length
// the setup can commit to.
func (ts *TrustedSetup) Size() int {
	return len(ts.G1)
}

// Load reads and parses the trusted setup stored at path.
func Load(path string) (*TrustedSetup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a JSON trusted setup.
//
// Points are decompressed in parallel since the subgroup checks dominate
// load time. The decoded points are then checked for consistency
// the same way the commitment scheme checks them.
func Parse(data []byte) (*TrustedSetup, error) {
	var parsedSetup JSONTrustedSetup
	if err := json.Unmarshal(data, &parsedSetup); err != nil {
		return nil, fmt.Errorf("could not unmarshal trusted setup: %w", err)
	}
	return parsedSetup.Decode()
}

// Decode turns the hex encoded points into curve points.
func (js *JSONTrustedSetup) Decode() (*TrustedSetup, error) {
	if len(js.SetupG1) == 0 || len(js.SetupG2) == 0 {
		return nil, ErrEmptySetup
	}

	g1Points, err := parseG1PointsPar(js.SetupG1)
	if err != nil {
		return nil, err
	}
	g2Points, err := parseG2PointsPar(js.SetupG2)
	if err != nil {
		return nil, err
	}

	srs, err := kzg.NewSRS(g1Points, g2Points)
	if err != nil {
		return nil, err
	}

	return &TrustedSetup{G1: srs.CommitKey.G1, G2: srs.G2()}, nil
}

// Encode is the inverse of Parse.
func Encode(ts *TrustedSetup) ([]byte, error) {
	return json.Marshal(ToJSON(ts))
}

// ToJSON hex encodes every point of the setup.
func ToJSON(ts *TrustedSetup) *JSONTrustedSetup {
	js := &JSONTrustedSetup{
		SetupG1: make([]G1CompressedHexStr, len(ts.G1)),
		SetupG2: make([]G2CompressedHexStr, len(ts.G2)),
	}
	for i := range ts.G1 {
		ser := serialization.SerializeG1Point(ts.G1[i])
		js.SetupG1[i] = hexutil.Encode(ser[:])
	}
	for i := range ts.G2 {
		ser := serialization.SerializeG2Point(ts.G2[i])
		js.SetupG2[i] = hexutil.Encode(ser[:])
	}
	return js
}

func parseG1Point(hexString G1CompressedHexStr) (bn254.G1Affine, error) {
	byts, err := hexutil.Decode(hexString)
	if err != nil {
		return bn254.G1Affine{}, err
	}

	serializedPoint, err := serialization.G1PointFromSlice(byts)
	if err != nil {
		return bn254.G1Affine{}, err
	}

	return serialization.DeserializeG1Point(serializedPoint)
}

func parseG2Point(hexString G2CompressedHexStr) (bn254.G2Affine, error) {
	byts, err := hexutil.Decode(hexString)
	if err != nil {
		return bn254.G2Affine{}, err
	}

	serializedPoint, err := serialization.G2PointFromSlice(byts)
	if err != nil {
		return bn254.G2Affine{}, err
	}

	return serialization.DeserializeG2Point(serializedPoint)
}

func parseG1PointsPar(hexStrings []G1CompressedHexStr) ([]bn254.G1Affine, error) {
	numG1 := len(hexStrings)
	g1Points := make([]bn254.G1Affine, numG1)

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i := 0; i < numG1; i++ {
		g.Go(func() error {
			g1Point, err := parseG1Point(hexStrings[i])
			if err != nil {
				return fmt.Errorf("%w: g1[%d]: %v", ErrInvalidPoint, i, err)
			}
			g1Points[i] = g1Point
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return g1Points, nil
}

func parseG2PointsPar(hexStrings []G2CompressedHexStr) ([]bn254.G2Affine, error) {
	numG2 := len(hexStrings)
	g2Points := make([]bn254.G2Affine, numG2)

	var g errgroup.Group
	for i := 0; i < numG2; i++ {
		g.Go(func() error {
			g2Point, err := parseG2Point(hexStrings[i])
			if err != nil {
				return fmt.Errorf("%w: g2[%d]: %v", ErrInvalidPoint, i, err)
			}
			g2Points[i] = g2Point
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return g2Points, nil
}
