package pool

import "errors"

var (
	// ErrPoolIsNil is returned when Get is called on a nil pool.
	ErrPoolIsNil = errors.New("pool is nil")

	// ErrPoolReturnedNil is returned when the pool's Get returns nil.
	ErrPoolReturnedNil = errors.New("pool returned nil")

	// ErrPoolWrongType is returned when the pool returns an unexpected type.
	ErrPoolWrongType = errors.New("pool returned wrong type")

	// ErrPoolWrongSize is returned when the pool returns a buffer of the wrong length.
	ErrPoolWrongSize = errors.New("pool returned buffer of the wrong size")
)
