package kzg

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Commitment binds exactly one polynomial under a given SRS.
type Commitment = bn254.G1Affine

// Polynomial in monomial form. Polynomial[i] is the coefficient of X^i.
type Polynomial = []fr.Element
