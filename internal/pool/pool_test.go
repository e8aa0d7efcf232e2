package pool

import (
	"sync"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
)

func TestPool_HappyPath(t *testing.T) {
	p := NewScalarPool(10)
	require.Equal(t, 10, p.Size())

	buf, err := p.Get()
	require.NoError(t, err)
	require.Len(t, buf, 10)

	buf[3] = fr.NewElement(3)
	p.Put(buf)

	buf, err = p.Get()
	require.NoError(t, err)
	require.Len(t, buf, 10)
}

func TestPool_WrongType(t *testing.T) {
	p := NewScalarPool(4)
	p.pool.New = func() any {
		return "wrong type"
	}

	_, err := p.Get()
	require.ErrorIs(t, err, ErrPoolWrongType)
	require.ErrorContains(t, err, "got string")
}

func TestPool_WrongSize(t *testing.T) {
	p := NewScalarPool(4)
	p.pool.New = func() any {
		return &scalars{data: make([]fr.Element, 3)}
	}

	_, err := p.Get()
	require.ErrorIs(t, err, ErrPoolWrongSize)
}

func TestPool_ReturnsNil(t *testing.T) {
	p := NewScalarPool(4)
	p.pool.New = func() any {
		return nil
	}

	_, err := p.Get()
	require.ErrorIs(t, err, ErrPoolReturnedNil)
}

func TestPool_NilPool(t *testing.T) {
	var p *ScalarPool
	_, err := p.Get()
	require.ErrorIs(t, err, ErrPoolIsNil)
	require.Equal(t, 0, p.Size())

	// Put should not panic with nil pool
	require.NotPanics(t, func() {
		p.Put(nil)
	})
}

func TestPool_PutDropsWrongLength(t *testing.T) {
	p := NewScalarPool(4)
	p.Put(make([]fr.Element, 5))

	buf, err := p.Get()
	require.NoError(t, err)
	require.Len(t, buf, 4)
}

func TestPool_Concurrent(t *testing.T) {
	p := NewScalarPool(16)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				buf, err := p.Get()
				if err != nil {
					t.Error(err)
					return
				}
				buf[0] = fr.NewElement(uint64(j))
				p.Put(buf)
			}
		}()
	}
	wg.Wait()
}
