package generic

import "sync"

// Pool is a typed wrapper around sync.Pool. Values handed back through Put
// must be reset by the caller; the pool does not clear them.
type Pool[T any] struct {
	pool sync.Pool
}

func NewPool[T any](construct func() T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any { return construct() },
		},
	}
}

func (p *Pool[T]) Get() T {
	return p.pool.Get().(T)
}

func (p *Pool[T]) Put(value T) {
	p.pool.Put(value)
}
