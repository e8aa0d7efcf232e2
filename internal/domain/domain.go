package domain

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/crate-crypto/go-kzg-airdrop/internal/utils"
)

// maxOrderRoot is the 2-adicity of the BN254 scalar field: r-1 = 2^28 * t with t odd.
const maxOrderRoot uint64 = 28

// maxGeneratorCandidates bounds the search for an element of exact order n
// when n is not a power of two.
const maxGeneratorCandidates = 256

// Domain is the set of points that the airdrop polynomial is evaluated over.
//
// The points are the powers of a primitive n'th root of unity w:
// x_i = w^i for i in [0, n). Index i of the input vector is always
// paired with w^i; there is no bit-reversal anywhere in this library.
type Domain struct {
	// Size of the domain. Any n dividing r-1 is supported, powers of two
	// additionally get an FFT.
	Cardinality uint64
	// Inverse of the size of the domain as a field element.
	CardinalityInv fr.Element
	// Generator for the multiplicative subgroup of order Cardinality.
	// Not a primitive element (i.e. generator) for the *whole* field.
	Generator fr.Element
	// Inverse of the Generator.
	GeneratorInv fr.Element
}

// NewDomain returns the evaluation domain of size x.
//
// Powers of two up to 2^28 use the same generator as gnark-crypto's fft package.
// Any other size is supported when it divides r-1; the generator is then the
// first element of the form g^((r-1)/x), g = 2, 3, ..., with order exactly x.
//
// An error wrapping [ErrDomainSize] is returned if no such subgroup exists.
// The size is never rounded up.
func NewDomain(x uint64) (*Domain, error) {
	if x == 0 {
		return nil, fmt.Errorf("%w: size 0", ErrDomainSize)
	}

	var generator fr.Element
	var err error
	if utils.IsPowerOfTwo(x) {
		generator, err = radix2Generator(x)
	} else {
		generator, err = mixedRadixGenerator(x)
	}
	if err != nil {
		return nil, err
	}

	return newDomain(x, generator), nil
}

// NewDomainWithGenerator returns the domain of size x whose points are the
// powers of w. An error wrapping [ErrDomainGenerator] is returned unless w
// is a primitive x'th root of unity.
//
// Any primitive root generates the same set of points; only the order in
// which indices map onto them differs from NewDomain.
func NewDomainWithGenerator(x uint64, w fr.Element) (*Domain, error) {
	if x == 0 {
		return nil, fmt.Errorf("%w: size 0", ErrDomainSize)
	}
	if !HasOrder(w, x) {
		return nil, fmt.Errorf("%w: order of w is not %d", ErrDomainGenerator, x)
	}
	return newDomain(x, w), nil
}

func newDomain(x uint64, generator fr.Element) *Domain {
	domain := &Domain{Cardinality: x, Generator: generator}
	domain.GeneratorInv.Inverse(&domain.Generator)
	domain.CardinalityInv.SetUint64(x)
	domain.CardinalityInv.Inverse(&domain.CardinalityInv)

	return domain
}

// radix2Generator returns a generator of the subgroup of order x == 2^k.
//
// Modified from [gnark-crypto].
//
// [gnark-crypto]: https://github.com/Consensys/gnark-crypto/blob/master/ecc/bn254/fr/fft/domain.go
func radix2Generator(x uint64) (fr.Element, error) {
	logx := uint64(bits.TrailingZeros64(x))
	if logx > maxOrderRoot {
		return fr.Element{}, fmt.Errorf("%w: %d exceeds the 2-adicity of the field (2^%d)", ErrDomainSize, x, maxOrderRoot)
	}

	// Generator of the largest 2-adic subgroup.
	// This particular element has order 2^maxOrderRoot == 2^28.
	var rootOfUnity fr.Element
	_, err := rootOfUnity.SetString("19103219067921713944291392827692070036145651957329286315305642004821462161904")
	if err != nil {
		panic("failed to initialize root of unity")
	}

	expo := uint64(1 << (maxOrderRoot - logx))
	return utils.Pow(rootOfUnity, expo), nil
}

// mixedRadixGenerator returns an element of order exactly x, for any x dividing r-1.
func mixedRadixGenerator(x uint64) (fr.Element, error) {
	bx := new(big.Int).SetUint64(x)
	groupOrder := new(big.Int).Sub(fr.Modulus(), big.NewInt(1))
	cofactor, rem := new(big.Int).QuoRem(groupOrder, bx, new(big.Int))
	if rem.Sign() != 0 {
		return fr.Element{}, fmt.Errorf("%w: %d does not divide r-1", ErrDomainSize, x)
	}

	factors := utils.PrimeFactors(x)
	for candidate := uint64(2); candidate < maxGeneratorCandidates; candidate++ {
		var w fr.Element
		base := fr.NewElement(candidate)
		w.Exp(base, cofactor)
		if hasOrder(w, x, factors) {
			return w, nil
		}
	}
	return fr.Element{}, fmt.Errorf("%w: no element of order %d found", ErrDomainSize, x)
}

// HasOrder returns true if w^n == 1 and w^k != 1 for 0 < k < n.
func HasOrder(w fr.Element, n uint64) bool {
	if n == 0 {
		return false
	}
	return hasOrder(w, n, utils.PrimeFactors(n))
}

// hasOrder is HasOrder with the distinct prime factors of n supplied.
func hasOrder(w fr.Element, n uint64, factors []uint64) bool {
	if n == 0 {
		return false
	}
	wn := utils.Pow(w, n)
	if !wn.IsOne() {
		return false
	}
	// The order of w divides n. It is exactly n iff w^(n/p) != 1
	// for every prime p dividing n.
	for _, p := range factors {
		wnp := utils.Pow(w, n/p)
		if wnp.IsOne() {
			return false
		}
	}
	return true
}

// Element returns w^i. Indices wrap around modulo the domain size
// since w has order Cardinality.
// Powers are computed on demand; the domain never stores its points.
func (d *Domain) Element(i uint64) fr.Element {
	return utils.Pow(d.Generator, i%d.Cardinality)
}

// IsRadix2 returns true if the domain admits a radix-2 FFT.
func (d *Domain) IsRadix2() bool {
	return utils.IsPowerOfTwo(d.Cardinality)
}

// BitReverse applies the bit-reversal permutation to `list`.
// `len(list)` must be a power of 2
//
// This means that for post-state list output and pre-state list input,
// we have output[i] == input[bitreverse(i)], where bitreverse reverses the bit-pattern
// of i, interpreted as a log2(len(list))-bit integer.
//
// Modified from [gnark-crypto].
//
// [gnark-crypto]: https://github.com/ConsenSys/gnark-crypto/blob/8f7ca09273c24ed9465043566906cbecf5dcee91/ecc/bn254/fr/fft/fft.go#L245
func BitReverse[K interface{}](list []K) {
	n := uint64(len(list))
	if !utils.IsPowerOfTwo(n) {
		panic("size of list given to BitReverse must be a power of two")
	}

	// bits.Reverse64 inverts its input as a 64-bit unsigned integer.
	// We need to invert it as a log2(len(list))-bit integer, so we shift back.
	shiftCorrection := uint64(64 - bits.TrailingZeros64(n))
	for i := uint64(0); i < n; i++ {
		irev := bits.Reverse64(i) >> shiftCorrection
		if irev > i {
			list[i], list[irev] = list[irev], list[i]
		}
	}
}
