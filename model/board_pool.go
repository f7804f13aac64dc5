package model

import "sync"

// BoardToPool returns a board to the pool for reuse
func BoardToPool(board *Board, pool *BoardPool) {
	if pool == nil || board == nil {
		return
	}

	pool.Put(board)
}

// BoardPool recycles board storage across resizes and restarts
type BoardPool struct {
	pool sync.Pool
}

func NewBoardPool() *BoardPool {
	return &BoardPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Board{}
			},
		},
	}
}

// Get retrieves a board from the pool, resetting it to the given dimensions
// with every cell dead. A nil pool allocates a fresh board.
func (p *BoardPool) Get(width, height int) *Board {
	if p == nil {
		return NewBoard(width, height)
	}
	b := p.pool.Get().(*Board)
	b.Reset(width, height)
	return b
}

// Put returns a board to the pool, clearing its state
func (p *BoardPool) Put(b *Board) {
	// Clear the board before returning to pool
	b.Clear()
	p.pool.Put(b)
}
