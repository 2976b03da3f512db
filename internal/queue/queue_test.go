package queue

import (
	"math/big"
	"sync"
	"testing"
)

func item(buyer string, n int64) Item {
	return Item{APIID: 0, Buyer: buyer, Price: big.NewInt(n)}
}

func TestQueue_DrainEmpty(t *testing.T) {
	q := New()
	if batch := q.DrainAll(); len(batch) != 0 {
		t.Errorf("drain of empty queue returned %d items", len(batch))
	}
}

func TestQueue_FIFOOrder(t *testing.T) {
	q := New()
	q.Enqueue(item("0xa", 1))
	q.Enqueue(item("0xb", 2))
	q.Enqueue(item("0xc", 3))

	batch := q.DrainAll()
	if len(batch) != 3 {
		t.Fatalf("drained %d items, want 3", len(batch))
	}
	for i, want := range []string{"0xa", "0xb", "0xc"} {
		if batch[i].Buyer != want {
			t.Errorf("batch[%d].Buyer = %s, want %s", i, batch[i].Buyer, want)
		}
	}
	if q.Len() != 0 {
		t.Errorf("queue not empty after drain: %d", q.Len())
	}
}

// Items enqueued after a drain belong to the next batch; a drain is
// exhaustive and non-duplicating.
func TestQueue_DrainBoundary(t *testing.T) {
	q := New()
	q.Enqueue(item("0xa", 1))

	first := q.DrainAll()
	q.Enqueue(item("0xb", 2))

	if len(first) != 1 || first[0].Buyer != "0xa" {
		t.Errorf("first drain = %+v", first)
	}
	second := q.DrainAll()
	if len(second) != 1 || second[0].Buyer != "0xb" {
		t.Errorf("second drain = %+v", second)
	}
}

// Concurrent producers with a draining consumer: every item appears exactly
// once across all drains.
func TestQueue_ConcurrentEnqueueDrain(t *testing.T) {
	q := New()
	const producers = 8
	const perProducer = 100

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Enqueue(Item{APIID: uint64(p), Buyer: "0xbuyer", Price: big.NewInt(int64(i))})
			}
		}(p)
	}

	seen := 0
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	for {
		seen += len(q.DrainAll())
		select {
		case <-done:
			seen += len(q.DrainAll())
			if seen != producers*perProducer {
				t.Errorf("saw %d items, want %d", seen, producers*perProducer)
			}
			return
		default:
		}
	}
}
