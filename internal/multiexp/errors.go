package multiexp

import "errors"

var (
	ErrTooManyGoRoutines = errors.New("number of go-routines must be less than 1024")
	ErrMismatchedLength  = errors.New("number of points does not equal the number of scalars")
)
