package domain

import "errors"

var (
	// ErrDomainSize is returned when the multiplicative group of the scalar field
	// has no subgroup of the requested size.
	ErrDomainSize = errors.New("no evaluation domain of the requested size exists in the scalar field")
	// ErrDomainGenerator is returned when an element does not generate a subgroup
	// of the expected order.
	ErrDomainGenerator = errors.New("element is not a primitive root of unity of the expected order")
	// ErrMismatchedLength is returned when a vector's length differs from the
	// domain size.
	ErrMismatchedLength = errors.New("vector length does not equal the domain size")
)
