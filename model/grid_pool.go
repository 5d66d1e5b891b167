package model

import "sync"

// statePool recycles the scratch buffers a Graph fills during its compute phase.
type statePool struct {
	pool sync.Pool
}

func newStatePool() *statePool {
	return &statePool{
		pool: sync.Pool{
			New: func() interface{} {
				return new([]CellState)
			},
		},
	}
}

// Get returns a buffer of length n. Its contents are unspecified.
func (p *statePool) Get(n int) *[]CellState {
	buf := p.pool.Get().(*[]CellState)
	if cap(*buf) < n {
		*buf = make([]CellState, n)
	}
	*buf = (*buf)[:n]
	return buf
}

// Put clears the buffer and returns it to the pool
func (p *statePool) Put(buf *[]CellState) {
	clear(*buf)
	p.pool.Put(buf)
}

var scratchStates = newStatePool()
