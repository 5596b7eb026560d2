package model

import "sync"

// GridPool recycles the byte buffers a grid serializes its cells into when
// hashing. History hashes once per generation, so a running session would
// otherwise allocate a width*height buffer on every step.
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return new([]byte)
			},
		},
	}
}

// Get returns a buffer of length size. Its contents are unspecified.
func (p *GridPool) Get(size int) []byte {
	bp := p.pool.Get().(*[]byte)
	if cap(*bp) < size {
		return make([]byte, size)
	}
	return (*bp)[:size]
}

// Put hands a buffer back to the pool for reuse.
func (p *GridPool) Put(buf []byte) {
	if buf == nil {
		return
	}
	p.pool.Put(&buf)
}
