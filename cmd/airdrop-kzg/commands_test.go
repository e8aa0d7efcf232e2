package main

import (
	"bytes"
	"encoding/json"
	"math/big"
	"strings"
	"testing"

	"github.com/crate-crypto/go-kzg-airdrop/internal/kzg"
	"github.com/crate-crypto/go-kzg-airdrop/trustedsetup"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/require"
)

const allocationsCSV = `address,amount
0x1111111111111111111111111111111111111111,12
0x2222222222222222222222222222222222222222,123
0x3333333333333333333333333333333333333333,1234
0x4444444444444444444444444444444444444444,12345
`

// writeFixtures writes a test trusted setup with more powers than
// allocations, the allocation file and a config pointing at both.
func writeFixtures(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	srs, err := kzg.NewSRSInsecure(8, big.NewInt(1337))
	require.NoError(t, err)
	setupJSON, err := trustedsetup.Encode(&trustedsetup.TrustedSetup{G1: srs.CommitKey.G1, G2: srs.G2()})
	require.NoError(t, err)

	srsPath := writeFile(t, dir, "srs.json", string(setupJSON))
	dataPath := writeFile(t, dir, "airdrop.csv", allocationsCSV)
	return writeFile(t, dir, "airdrop.yaml", "srsPath: "+srsPath+"\ndataPath: "+dataPath+"\nlogger:\n  level: error\n")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommitOpenVerify(t *testing.T) {
	configPath := writeFixtures(t)

	out, err := run(t, "commit", "--config", configPath)
	require.NoError(t, err)
	commitment := strings.TrimSpace(out)
	commBytes, err := hexutil.Decode(commitment)
	require.NoError(t, err)
	require.Len(t, commBytes, 32)

	out, err = run(t, "open", "--config", configPath, "--index", "2")
	require.NoError(t, err)
	var opening openingJSON
	require.NoError(t, json.Unmarshal([]byte(out), &opening))
	require.Equal(t, uint64(2), opening.Index)
	require.Len(t, opening.Value, 32)
	require.Len(t, opening.Proof, 32)

	out, err = run(t, "verify", "--config", configPath,
		"--index", "2",
		"--commitment", commitment,
		"--value", opening.Value.String(),
		"--proof", opening.Proof.String(),
	)
	require.NoError(t, err)
	require.Contains(t, out, "proof accepted")

	// Same proof at a different index
	_, err = run(t, "verify", "--config", configPath,
		"--index", "3",
		"--commitment", commitment,
		"--value", opening.Value.String(),
		"--proof", opening.Proof.String(),
	)
	require.ErrorIs(t, err, errProofRejected)

	// Tampered value
	tampered := append(hexutil.Bytes{}, opening.Value...)
	tampered[31] ^= 1
	_, err = run(t, "verify", "--config", configPath,
		"--index", "2",
		"--commitment", commitment,
		"--value", tampered.String(),
		"--proof", opening.Proof.String(),
	)
	require.ErrorIs(t, err, errProofRejected)
}

func TestOpenAll(t *testing.T) {
	configPath := writeFixtures(t)

	out, err := run(t, "open", "--config", configPath, "--all")
	require.NoError(t, err)

	var openings []openingJSON
	require.NoError(t, json.Unmarshal([]byte(out), &openings))
	require.Len(t, openings, 4)
	for i, opening := range openings {
		require.Equal(t, uint64(i), opening.Index)
	}
}

func TestSingleAllocation(t *testing.T) {
	configPath := writeFixtures(t)
	dataPath := writeFile(t, t.TempDir(), "single.csv", "0x1111111111111111111111111111111111111111,12\n")

	out, err := run(t, "commit", "--config", configPath, "--data", dataPath)
	require.NoError(t, err)
	commitment := strings.TrimSpace(out)

	out, err = run(t, "open", "--config", configPath, "--data", dataPath, "--index", "0")
	require.NoError(t, err)
	var opening openingJSON
	require.NoError(t, json.Unmarshal([]byte(out), &opening))

	out, err = run(t, "verify", "--config", configPath, "--data", dataPath,
		"--index", "0",
		"--commitment", commitment,
		"--value", opening.Value.String(),
		"--proof", opening.Proof.String(),
	)
	require.NoError(t, err)
	require.Contains(t, out, "proof accepted")
}

func TestOpenRequiresIndex(t *testing.T) {
	configPath := writeFixtures(t)

	_, err := run(t, "open", "--config", configPath)
	require.Error(t, err)

	_, err = run(t, "open", "--config", configPath, "--index", "4")
	require.Error(t, err)
}

func TestVerifyMalformedInput(t *testing.T) {
	configPath := writeFixtures(t)

	_, err := run(t, "verify", "--config", configPath,
		"--index", "0",
		"--commitment", "0x1234",
		"--value", "0x"+strings.Repeat("00", 32),
		"--proof", "0x"+strings.Repeat("00", 32),
	)
	require.Error(t, err)
	require.NotErrorIs(t, err, errProofRejected)
}

func TestFlagsOverrideConfig(t *testing.T) {
	configPath := writeFixtures(t)

	_, err := run(t, "commit", "--config", configPath, "--data", "/does/not/exist.csv")
	require.Error(t, err)

	_, err = run(t, "commit", "--config", configPath, "--log-level", "verbose")
	require.Error(t, err)
}

func TestMissingConfig(t *testing.T) {
	_, err := run(t, "commit")
	require.ErrorIs(t, err, errMissingSRSPath)
}
