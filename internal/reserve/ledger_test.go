package reserve

import (
	"math/big"
	"sync"
	"testing"
)

const buyer = "0xAbCd000000000000000000000000000000000001"

func TestLedger_ReservedZeroWhenAbsent(t *testing.T) {
	l := NewLedger()
	if got := l.Reserved(buyer); got.Sign() != 0 {
		t.Errorf("expected zero for absent buyer, got %s", got)
	}
}

func TestLedger_ReserveAndRelease(t *testing.T) {
	l := NewLedger()
	price := big.NewInt(2_000_000)

	l.Reserve(buyer, price)
	if got := l.Reserved(buyer); got.Cmp(price) != 0 {
		t.Fatalf("reserved = %s, want %s", got, price)
	}

	l.Release(buyer, price)
	if got := l.Reserved(buyer); got.Sign() != 0 {
		t.Errorf("reserved after full release = %s, want 0", got)
	}
	// Entry must be gone, not a stale zero.
	l.mu.Lock()
	_, ok := l.reserved[key(buyer)]
	l.mu.Unlock()
	if ok {
		t.Error("zero entry left in map after release")
	}
}

func TestLedger_CaseInsensitiveKeys(t *testing.T) {
	l := NewLedger()
	l.Reserve("0xABCDEF0000000000000000000000000000000001", big.NewInt(5))
	if got := l.Reserved("0xabcdef0000000000000000000000000000000001"); got.Int64() != 5 {
		t.Errorf("case variant not found: %s", got)
	}
}

func TestLedger_ReleaseClampsAtZero(t *testing.T) {
	l := NewLedger()
	l.Reserve(buyer, big.NewInt(100))
	l.Release(buyer, big.NewInt(250))
	if got := l.Reserved(buyer); got.Sign() != 0 {
		t.Errorf("over-release left %s, want 0", got)
	}
	// Releasing an absent buyer is a no-op.
	l.Release("0x0000000000000000000000000000000000000099", big.NewInt(1))
}

func TestLedger_TryReserveGate(t *testing.T) {
	l := NewLedger()
	price := big.NewInt(2_000_000)

	if !l.TryReserve(buyer, price) {
		t.Fatal("first TryReserve must succeed")
	}
	if l.TryReserve(buyer, price) {
		t.Fatal("second TryReserve must fail while reservation outstanding")
	}
	l.Release(buyer, price)
	if !l.TryReserve(buyer, price) {
		t.Error("TryReserve must succeed again after release")
	}
}

// Many goroutines race TryReserve for the same buyer; exactly one may win.
func TestLedger_TryReserveConcurrent(t *testing.T) {
	l := NewLedger()
	price := big.NewInt(1000)

	const n = 64
	var wg sync.WaitGroup
	wins := make(chan struct{}, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.TryReserve(buyer, price) {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	count := 0
	for range wins {
		count++
	}
	if count != 1 {
		t.Errorf("%d concurrent admissions won the gate, want exactly 1", count)
	}
	if got := l.Reserved(buyer); got.Cmp(price) != 0 {
		t.Errorf("reserved = %s, want %s", got, price)
	}
}

// Reserve must not alias the caller's big.Int.
func TestLedger_AmountNotAliased(t *testing.T) {
	l := NewLedger()
	amount := big.NewInt(10)
	l.TryReserve(buyer, amount)
	amount.SetInt64(9999)
	if got := l.Reserved(buyer); got.Int64() != 10 {
		t.Errorf("ledger aliased caller's amount: %s", got)
	}
}
