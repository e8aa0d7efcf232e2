package goairdropkzg

import "github.com/crate-crypto/go-kzg-airdrop/internal/multiexp"

// Option configures a Scheme at Setup.
type Option func(*config) error

type config struct {
	numGoRoutines int
}

// WithNumGoRoutines sets the number of go routines used by each multi
// exponentiation. Zero or a negative value means one per CPU core.
func WithNumGoRoutines(numGoRoutines int) Option {
	return func(c *config) error {
		if err := multiexp.IsValidNumGoRoutines(numGoRoutines); err != nil {
			return err
		}
		c.numGoRoutines = numGoRoutines
		return nil
	}
}
