// Package queue is the hand-off buffer between the gateway handler (producer)
// and the settlement worker (sole consumer). Items live for the process
// lifetime only; an admitted call that the process loses before settlement is
// written off, the same way a failed settlement is.
package queue

import (
	"math/big"
	"sync"
)

// Item is one admitted call awaiting on-chain settlement. Ownership passes
// to the worker at drain time.
type Item struct {
	APIID uint64
	Buyer string
	Price *big.Int
}

// Queue is an append-only, drain-in-batch FIFO.
type Queue struct {
	mu    sync.Mutex
	items []Item
}

func New() *Queue {
	return &Queue{}
}

// Enqueue appends an item. Never blocks.
func (q *Queue) Enqueue(it Item) {
	q.mu.Lock()
	q.items = append(q.items, it)
	q.mu.Unlock()
}

// DrainAll removes and returns every queued item in FIFO order, leaving the
// queue empty. Items enqueued while a drained batch is being processed land
// in the next drain rather than racing the current one.
func (q *Queue) DrainAll() []Item {
	q.mu.Lock()
	defer q.mu.Unlock()
	batch := q.items
	q.items = nil
	return batch
}

// Len returns the number of currently queued items.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
