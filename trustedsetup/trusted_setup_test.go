package trustedsetup

import (
	"encoding/json"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/crate-crypto/go-kzg-airdrop/internal/kzg"
	"github.com/stretchr/testify/require"
)

func insecureSetup(t *testing.T, size uint64, secret int64) *TrustedSetup {
	t.Helper()
	srs, err := kzg.NewSRSInsecure(size, big.NewInt(secret))
	require.NoError(t, err)
	return &TrustedSetup{G1: srs.CommitKey.G1, G2: srs.G2()}
}

func TestEncodeParseRoundTrip(t *testing.T) {
	setup := insecureSetup(t, 8, 1337)

	data, err := Encode(setup)
	require.NoError(t, err)

	got, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, 8, got.Size())
	require.Equal(t, setup.G1, got.G1)
	require.Equal(t, setup.G2, got.G2)
}

func TestJSONShape(t *testing.T) {
	setup := insecureSetup(t, 4, 7)

	data, err := Encode(setup)
	require.NoError(t, err)

	var raw map[string][]string
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw["g1"], 4)
	require.Len(t, raw["g2"], 2)
	// 0x prefix followed by 32 bytes
	require.Len(t, raw["g1"][0], 2+2*32)
	// 0x prefix followed by 64 bytes
	require.Len(t, raw["g2"][0], 2+2*64)
}

func TestLoad(t *testing.T) {
	setup := insecureSetup(t, 4, 7)
	data, err := Encode(setup)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "srs.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, setup.G1, got.G1)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestParseBadPoint(t *testing.T) {
	js := ToJSON(insecureSetup(t, 4, 7))
	js.SetupG1[2] = "0x" + "ff"
	data, err := json.Marshal(js)
	require.NoError(t, err)

	_, err = Parse(data)
	require.ErrorIs(t, err, ErrInvalidPoint)
	require.Contains(t, err.Error(), "g1[2]")

	js = ToJSON(insecureSetup(t, 4, 7))
	js.SetupG2[1] = "not hex"
	data, err = json.Marshal(js)
	require.NoError(t, err)

	_, err = Parse(data)
	require.ErrorIs(t, err, ErrInvalidPoint)
	require.Contains(t, err.Error(), "g2[1]")
}

func TestParseRevalidates(t *testing.T) {
	a := ToJSON(insecureSetup(t, 4, 7))
	b := ToJSON(insecureSetup(t, 4, 8))
	a.SetupG2 = b.SetupG2
	data, err := json.Marshal(a)
	require.NoError(t, err)

	_, err = Parse(data)
	require.ErrorIs(t, err, kzg.ErrInconsistentSRS)

	c := ToJSON(insecureSetup(t, 4, 7))
	c.SetupG2 = c.SetupG2[:1]
	data, err = json.Marshal(c)
	require.NoError(t, err)

	_, err = Parse(data)
	require.ErrorIs(t, err, kzg.ErrG2Size)
}

func TestParseEmptyOrMalformed(t *testing.T) {
	_, err := Parse([]byte(`{"g1": [], "g2": []}`))
	require.ErrorIs(t, err, ErrEmptySetup)

	_, err = Parse([]byte(`{"g1": `))
	require.Error(t, err)
}
