package poly

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/crate-crypto/go-kzg-airdrop/internal/domain"
)

// PolynomialCoeff is a dense polynomial in monomial form.
// poly[i] is the coefficient of X^i.
type PolynomialCoeff = []fr.Element

// Interpolate returns the coefficients of the unique polynomial f with
// deg(f) < n such that f(w^i) = values[i], where w generates the domain.
//
// The result always has exactly n coefficients, even if the leading
// ones are zero, so that it lines up with an n-point commit key.
func Interpolate(d *domain.Domain, values []fr.Element) (PolynomialCoeff, error) {
	return d.IfftFr(values)
}

// PolyEval evaluates a polynomial f(x) at a point `z`; f(z)
// We denote `z` as `inputPoint`
func PolyEval(poly PolynomialCoeff, inputPoint fr.Element) fr.Element {
	result := fr.NewElement(0)

	for i := len(poly) - 1; i >= 0; i-- {
		tmp := fr.Element{}
		tmp.Mul(&result, &inputPoint)
		result.Add(&tmp, &poly[i])
	}

	return result
}

// DividePolyByXminusAInto computes (f(x) - y) / (x - a) into the caller
// owned buffer `quotient`, which must have len(poly)-1 elements.
//
// An error wrapping [ErrInvalidOpening] is returned if the division leaves a
// remainder, ie. if f(a) != y. The buffer content is then unspecified.
//
// Synthetic division, modified from the gnark codebase.
func DividePolyByXminusAInto(quotient, poly PolynomialCoeff, a, y fr.Element) error {
	if len(poly) == 0 || len(quotient) != len(poly)-1 {
		return ErrInvalidOpening
	}

	// The running value `carry` is the next quotient coefficient, starting
	// from the leading coefficient of f.
	var carry, t fr.Element
	carry.Set(&poly[len(poly)-1])
	for i := len(poly) - 2; i >= 0; i-- {
		quotient[i] = carry

		t.Mul(&carry, &a)
		carry.Add(&poly[i], &t)
	}

	// carry now holds f(a); the remainder is f(a) - y
	carry.Sub(&carry, &y)
	if !carry.IsZero() {
		return ErrInvalidOpening
	}

	return nil
}
