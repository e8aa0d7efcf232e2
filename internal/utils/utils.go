package utils

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Computes x^0 to x^n-1
// If n==0: an empty slice is returned
func ComputePowers(x fr.Element, n uint) []fr.Element {
	if n == 0 {
		return []fr.Element{}
	}
	powers := make([]fr.Element, n)
	powers[0].SetOne()
	for i := uint(1); i < n; i++ {
		powers[i].Mul(&powers[i-1], &x)
	}

	return powers
}

// Pow returns x^k
func Pow(x fr.Element, k uint64) fr.Element {
	var result fr.Element
	result.Exp(x, new(big.Int).SetUint64(k))
	return result
}

// Return true if `value` is a power of two
// `0` will return false
func IsPowerOfTwo(value uint64) bool {
	return value > 0 && (value&(value-1) == 0)
}

// PrimeFactors returns the distinct prime factors of n in ascending order.
// n <= 1 has no prime factors.
func PrimeFactors(n uint64) []uint64 {
	var factors []uint64
	for p := uint64(2); p*p <= n; p++ {
		if n%p != 0 {
			continue
		}
		factors = append(factors, p)
		for n%p == 0 {
			n /= p
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}

// Tries to convert a big-endian byte slice to a field element.
// Returns an error if the byte slice was not a canonical representation
// of the field element.
// Canonical meaning that the big integer interpretation was less than
// the field's prime. ie it lies within the range [0, p-1] (inclusive)
func ReduceCanonical(serScalar []byte) (fr.Element, error) {
	var scalar fr.Element
	err := scalar.SetBytesCanonical(serScalar)
	return scalar, err
}
