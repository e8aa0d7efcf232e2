// Package dataset turns an airdrop allocation file into the vector of
// field elements that gets committed to.
//
// The file is a CSV with two columns, address and amount. Each row is
// hashed as keccak256(abi.encode(address, uint256)) and the digest,
// read as a big-endian integer, is reduced into the BN254 scalar field.
// Row i of the file becomes value i of the vector.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

// recordArguments is the ABI layout of a hashed record: (address, uint256).
var recordArguments = mustArguments("address", "uint256")

func mustArguments(types ...string) abi.Arguments {
	args := make(abi.Arguments, len(types))
	for i, t := range types {
		typ, err := abi.NewType(t, "", nil)
		if err != nil {
			panic(err)
		}
		args[i] = abi.Argument{Type: typ}
	}
	return args
}

// Record is a single allocation.
type Record struct {
	Address common.Address
	Amount  *uint256.Int
}

// Encode returns abi.encode(address, uint256), 64 bytes.
// A record without an amount is rejected with [ErrInvalidAmount].
func (r Record) Encode() ([]byte, error) {
	if r.Amount == nil {
		return nil, fmt.Errorf("%w: missing", ErrInvalidAmount)
	}
	return recordArguments.Pack(r.Address, r.Amount.ToBig())
}

// Hash returns keccak256 of the ABI encoded record.
func (r Record) Hash() (common.Hash, error) {
	encoded, err := r.Encode()
	if err != nil {
		return common.Hash{}, err
	}
	return crypto.Keccak256Hash(encoded), nil
}

// FieldElement maps the record into the scalar field.
func (r Record) FieldElement() (fr.Element, error) {
	hash, err := r.Hash()
	if err != nil {
		return fr.Element{}, err
	}
	var element fr.Element
	// SetBytes interprets the digest as big-endian and reduces it mod r
	element.SetBytes(hash[:])
	return element, nil
}

// ReadRecords parses CSV rows of the form `address,amount`.
//
// An optional first row of column names (starting with "address") is
// skipped. Surrounding whitespace in each field is ignored. Errors are
// wrapped with the 1-based line number they occurred on.
func ReadRecords(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var records []Record
	first := true
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := reader.FieldPos(0)

		if first {
			first = false
			if len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "address") {
				continue
			}
		}

		record, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func parseRow(row []string) (Record, error) {
	if len(row) < 2 {
		return Record{}, ErrMissingColumn
	}
	addr := strings.TrimSpace(row[0])
	amount := strings.TrimSpace(row[1])
	if addr == "" || amount == "" {
		return Record{}, ErrMissingColumn
	}

	if !common.IsHexAddress(addr) {
		return Record{}, fmt.Errorf("%w: %q", ErrInvalidAddress, addr)
	}
	value, err := uint256.FromDecimal(amount)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %q: %v", ErrInvalidAmount, amount, err)
	}

	return Record{Address: common.HexToAddress(addr), Amount: value}, nil
}

// FieldElements hashes every record, preserving order.
func FieldElements(records []Record) ([]fr.Element, error) {
	values := make([]fr.Element, len(records))
	for i, record := range records {
		value, err := record.FieldElement()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		values[i] = value
	}
	return values, nil
}

// LoadFieldElements reads the CSV at path and hashes its records.
func LoadFieldElements(path string) ([]fr.Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoRecords)
	}
	return FieldElements(records)
}
