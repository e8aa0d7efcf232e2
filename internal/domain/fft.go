package domain

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/crate-crypto/go-kzg-airdrop/internal/utils"
)

// In this file we implement a simple version of the fft algorithm
// without any optimizations. The transform runs once per dataset snapshot
// (interpolation), so it is not on the hot path.
//
// Domains whose size is not a power of two fall back to the quadratic
// discrete Fourier transform.
//
// See: https://faculty.sites.iastate.edu/jia/files/inline-files/polymultiply.pdf
// for a reference.

// IfftFr returns the coefficients of the unique polynomial of degree < n
// which evaluates to values[i] at w^i.
func (d *Domain) IfftFr(values []fr.Element) ([]fr.Element, error) {
	if uint64(len(values)) != d.Cardinality {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrMismatchedLength, len(values), d.Cardinality)
	}

	output := d.transformFr(values, d.GeneratorInv)

	// Scale by the inverse of the domain size
	for i := 0; i < len(output); i++ {
		output[i].Mul(&output[i], &d.CardinalityInv)
	}
	return output, nil
}

func (d *Domain) transformFr(values []fr.Element, nthRootOfUnity fr.Element) []fr.Element {
	if d.IsRadix2() {
		output := make([]fr.Element, len(values))
		copy(output, values)
		fftFr(output, nthRootOfUnity)
		return output
	}
	return dftFr(values, nthRootOfUnity)
}

// fftFr performs an in-place FFT. len(values) must be a power of two
// and nthRootOfUnity a primitive len(values)'th root of unity.
func fftFr(values []fr.Element, nthRootOfUnity fr.Element) {
	n := len(values)
	if n == 1 {
		return
	}

	// Decimation-in-frequency (DIF) FFT - Gentleman-Sande butterfly
	// Takes input in natural order, produces output in bit-reversed order
	for size := n; size >= 2; size /= 2 {
		halfSize := size / 2

		// w = nthRootOfUnity^(n/size) is a primitive size-th root of unity
		wStep := utils.Pow(nthRootOfUnity, uint64(n/size))

		for start := 0; start < n; start += size {
			w := fr.One()
			for k := 0; k < halfSize; k++ {
				topIdx := start + k
				botIdx := start + k + halfSize

				var tmp fr.Element
				tmp.Sub(&values[topIdx], &values[botIdx])
				values[topIdx].Add(&values[topIdx], &values[botIdx])
				values[botIdx].Mul(&tmp, &w)

				w.Mul(&w, &wStep)
			}
		}
	}

	BitReverse(values)
}

// dftFr computes result[k] = sum_j values[j] * root^(jk) directly.
func dftFr(values []fr.Element, root fr.Element) []fr.Element {
	n := len(values)
	result := make([]fr.Element, n)

	// rootK = root^k
	rootK := fr.One()
	for k := 0; k < n; k++ {
		// Horner evaluation at root^k
		var acc fr.Element
		for j := n - 1; j >= 0; j-- {
			acc.Mul(&acc, &rootK)
			acc.Add(&acc, &values[j])
		}
		result[k] = acc
		rootK.Mul(&rootK, &root)
	}
	return result
}
