// Package pool provides a typed wrapper around sync.Pool for the
// scratch coefficient buffers used when computing opening proofs.
//
// Every opening needs a quotient buffer of the same length, so a scheme
// keeps one ScalarPool sized to its polynomial and shares it between
// concurrent Open calls.
//
//	buf, err := p.Get()
//	if err != nil {
//	    return err
//	}
//	defer p.Put(buf)
package pool

import (
	"fmt"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// scalars wraps the buffer so the pool stores a pointer type.
type scalars struct {
	data []fr.Element
}

// ScalarPool hands out []fr.Element buffers of a fixed length.
type ScalarPool struct {
	size int
	pool sync.Pool
}

// NewScalarPool returns a pool of buffers holding `size` field elements.
func NewScalarPool(size int) *ScalarPool {
	p := &ScalarPool{size: size}
	p.pool.New = func() any {
		return &scalars{data: make([]fr.Element, size)}
	}
	return p
}

// Size returns the length of the buffers handed out by the pool.
func (p *ScalarPool) Size() int {
	if p == nil {
		return 0
	}
	return p.size
}

// Get retrieves a buffer from the pool. The contents are unspecified.
// Returns an error if:
//   - the pool is nil
//   - the pool returns nil
//   - the pool returns a buffer of the wrong type or length
func (p *ScalarPool) Get() ([]fr.Element, error) {
	if p == nil {
		return nil, ErrPoolIsNil
	}

	v := p.pool.Get()
	if v == nil {
		return nil, ErrPoolReturnedNil
	}

	buf, ok := v.(*scalars)
	if !ok {
		return nil, fmt.Errorf("%w: expected %T, got %T", ErrPoolWrongType, buf, v)
	}
	if len(buf.data) != p.size {
		return nil, fmt.Errorf("%w: expected %d elements, got %d", ErrPoolWrongSize, p.size, len(buf.data))
	}

	return buf.data, nil
}

// Put returns a buffer to the pool. Buffers of the wrong length are dropped.
// Silently ignores nil pool to avoid panics in defer statements.
func (p *ScalarPool) Put(buf []fr.Element) {
	if p == nil || len(buf) != p.size {
		return
	}
	p.pool.Put(&scalars{data: buf})
}
