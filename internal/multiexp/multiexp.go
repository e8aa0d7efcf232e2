package multiexp

import (
	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// MultiExp computes a multi exponentiation -- That is, an inner product between points and scalars.
//
// More precisely, the result is set to scalars[0]*points[0] + ... + scalars[n-1]*points[n-1], where n is the length of both slices
// If the slices differ in length, this function returns an error.
// If both slices are empty, the identity element is returned.
//
// numGoRoutines is used to configure the amount of concurrency needed. Setting this
// value to a negative number or 0 will make it default to the number of CPUs.
//
// Returns an error if the numGoRoutines exceeds 1023.
func MultiExp(scalars []fr.Element, points []bn254.G1Affine, numGoRoutines int) (*bn254.G1Affine, error) {
	err := IsValidNumGoRoutines(numGoRoutines)
	if err != nil {
		return nil, err
	}
	if len(scalars) != len(points) {
		return nil, ErrMismatchedLength
	}
	if len(scalars) == 0 {
		return new(bn254.G1Affine), nil
	}
	return new(bn254.G1Affine).MultiExp(points, scalars, ecc.MultiExpConfig{NbTasks: numGoRoutines})
}

// IsValidNumGoRoutines will return an error if the number
// of go routines to be used is not Valid.
//
// Valid meaning that is less than 1024.
//
// 1024 is chosen here as the underlying gnark-crypto library will
// return an error for more than 1024.
// Instead of waiting until the user tries to call an algorithm
// which requires numGoRoutines, we return the error here instead.
func IsValidNumGoRoutines(value int) error {
	if value >= 1024 {
		return ErrTooManyGoRoutines
	}
	return nil
}
