// Package reserve tracks funds provisionally committed to admitted but
// not-yet-settled calls. A buyer with any outstanding reservation is refused
// new admissions, which serializes calls per buyer and keeps the asynchronous
// settlement path free of double-spend races.
package reserve

import (
	"math/big"
	"strings"
	"sync"
)

// Ledger is the only mutable shared state between the gateway handler
// (admission) and the settlement worker (release). A single lock is enough
// at the expected contention: both critical sections are a map lookup and
// a big.Int add.
type Ledger struct {
	mu       sync.Mutex
	reserved map[string]*big.Int // lowercased buyer address → outstanding sum
}

func NewLedger() *Ledger {
	return &Ledger{reserved: make(map[string]*big.Int)}
}

// Reserved returns the buyer's outstanding sum, zero if absent.
func (l *Ledger) Reserved(buyer string) *big.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if cur, ok := l.reserved[key(buyer)]; ok {
		return new(big.Int).Set(cur)
	}
	return new(big.Int)
}

// Reserve adds amount to the buyer's outstanding sum.
func (l *Ledger) Reserve(buyer string, amount *big.Int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	k := key(buyer)
	cur, ok := l.reserved[k]
	if !ok {
		cur = new(big.Int)
		l.reserved[k] = cur
	}
	cur.Add(cur, amount)
}

// Release subtracts amount from the buyer's outstanding sum. The sum is
// clamped at zero and the entry removed once fully released, so a stale
// zero entry can never block a future admission.
func (l *Ledger) Release(buyer string, amount *big.Int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	k := key(buyer)
	cur, ok := l.reserved[k]
	if !ok {
		return
	}
	cur.Sub(cur, amount)
	if cur.Sign() <= 0 {
		delete(l.reserved, k)
	}
}

// TryReserve atomically checks the one-in-flight gate and reserves. It
// returns false without mutating anything if the buyer already holds a
// non-zero reservation. Check and reserve must share one critical section,
// or two concurrent admissions for the same buyer could both pass the gate.
func (l *Ledger) TryReserve(buyer string, amount *big.Int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	k := key(buyer)
	if cur, ok := l.reserved[k]; ok && cur.Sign() > 0 {
		return false
	}
	l.reserved[k] = new(big.Int).Set(amount)
	return true
}

func key(buyer string) string {
	return strings.ToLower(buyer)
}
