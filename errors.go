package goairdropkzg

import (
	"errors"

	"github.com/crate-crypto/go-kzg-airdrop/internal/domain"
	"github.com/crate-crypto/go-kzg-airdrop/internal/kzg"
	"github.com/crate-crypto/go-kzg-airdrop/internal/poly"
	"github.com/crate-crypto/go-kzg-airdrop/serialization"
)

var (
	ErrSetupSize       = errors.New("polynomial length must equal the number of G1 powers and the SRS must hold [G2, tau*G2]")
	ErrIndexOutOfRange = errors.New("index is outside of the evaluation domain")

	// ErrDomainSize is returned when the scalar field has no multiplicative
	// subgroup with as many elements as there are values.
	ErrDomainSize = domain.ErrDomainSize
	// ErrDomainGenerator is returned when the root of unity given to Setup
	// is not a primitive n'th root of unity.
	ErrDomainGenerator = domain.ErrDomainGenerator
	// ErrInvalidOpening signals a claimed evaluation that does not lie on the
	// polynomial. Seeing it from Open means the scheme state is corrupt.
	ErrInvalidOpening  = poly.ErrInvalidOpening
	ErrMalformedSRS    = kzg.ErrMalformedSRS
	ErrInconsistentSRS = kzg.ErrInconsistentSRS
	// ErrInvalidPoint is returned by VerifyOpeningProof when the commitment
	// or the proof is not a point of the G1 prime order subgroup.
	ErrInvalidPoint = kzg.ErrInvalidPoint

	ErrNonCanonicalScalar = serialization.ErrNonCanonicalScalar
)
