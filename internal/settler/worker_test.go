package settler

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/fhe402/fhe402-gateway/internal/queue"
	"github.com/fhe402/fhe402-gateway/internal/reserve"
)

type fakeSettler struct {
	mu    sync.Mutex
	calls []settleCall
	fail  map[uint64]error
}

type settleCall struct {
	apiID uint64
	buyer common.Address
}

func (f *fakeSettler) SettleCall(ctx context.Context, apiID uint64, buyer common.Address) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, settleCall{apiID: apiID, buyer: buyer})
	if f.fail != nil {
		if err, ok := f.fail[apiID]; ok {
			return err
		}
	}
	return nil
}

func (f *fakeSettler) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

const buyerA = "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B"

func newWorker(q *queue.Queue, l *reserve.Ledger, s Settler) *Worker {
	return NewWorker(q, l, s, 10*time.Millisecond, time.Second, zap.NewNop())
}

func TestSettleBatch_SuccessReleasesReservation(t *testing.T) {
	q := queue.New()
	ledger := reserve.NewLedger()
	fake := &fakeSettler{}
	w := newWorker(q, ledger, fake)

	price := big.NewInt(5)
	ledger.Reserve(buyerA, price)
	q.Enqueue(queue.Item{APIID: 1, Buyer: buyerA, Price: price})

	w.settleBatch(context.Background())

	if got := fake.callCount(); got != 1 {
		t.Fatalf("settle calls = %d, want 1", got)
	}
	if r := ledger.Reserved(buyerA); r.Sign() != 0 {
		t.Fatalf("reservation after settle = %s, want 0", r)
	}
}

func TestSettleBatch_FailureStillReleasesReservation(t *testing.T) {
	q := queue.New()
	ledger := reserve.NewLedger()
	fake := &fakeSettler{fail: map[uint64]error{7: fmt.Errorf("tx reverted")}}
	w := newWorker(q, ledger, fake)

	price := big.NewInt(3)
	ledger.Reserve(buyerA, price)
	q.Enqueue(queue.Item{APIID: 7, Buyer: buyerA, Price: price})

	w.settleBatch(context.Background())

	if r := ledger.Reserved(buyerA); r.Sign() != 0 {
		t.Fatalf("reservation after failed settle = %s, want 0", r)
	}
}

func TestSettleBatch_FailureDoesNotBlockRestOfBatch(t *testing.T) {
	q := queue.New()
	ledger := reserve.NewLedger()
	fake := &fakeSettler{fail: map[uint64]error{1: fmt.Errorf("boom")}}
	w := newWorker(q, ledger, fake)

	for i := uint64(1); i <= 3; i++ {
		q.Enqueue(queue.Item{APIID: i, Buyer: buyerA, Price: big.NewInt(1)})
	}

	w.settleBatch(context.Background())

	if got := fake.callCount(); got != 3 {
		t.Fatalf("settle calls = %d, want 3", got)
	}
}

func TestSettleBatch_PreservesQueueOrder(t *testing.T) {
	q := queue.New()
	ledger := reserve.NewLedger()
	fake := &fakeSettler{}
	w := newWorker(q, ledger, fake)

	for i := uint64(1); i <= 5; i++ {
		q.Enqueue(queue.Item{APIID: i, Buyer: buyerA, Price: big.NewInt(1)})
	}

	w.settleBatch(context.Background())

	for i, c := range fake.calls {
		if c.apiID != uint64(i+1) {
			t.Fatalf("call %d settled apiId %d, want %d", i, c.apiID, i+1)
		}
	}
}

func TestSettleBatch_EmptyQueueIsNoOp(t *testing.T) {
	q := queue.New()
	w := newWorker(q, reserve.NewLedger(), &fakeSettler{})

	w.settleBatch(context.Background())

	if q.Len() != 0 {
		t.Fatalf("queue length = %d, want 0", q.Len())
	}
}

func TestRun_DrainsOnShutdown(t *testing.T) {
	q := queue.New()
	ledger := reserve.NewLedger()
	fake := &fakeSettler{}
	// Long interval so the only drain can come from shutdown.
	w := NewWorker(q, ledger, fake, time.Hour, time.Second, zap.NewNop())

	q.Enqueue(queue.Item{APIID: 9, Buyer: buyerA, Price: big.NewInt(2)})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after cancel")
	}

	if got := fake.callCount(); got != 1 {
		t.Fatalf("settle calls after shutdown drain = %d, want 1", got)
	}
}

func TestRun_SettlesOnTick(t *testing.T) {
	q := queue.New()
	ledger := reserve.NewLedger()
	fake := &fakeSettler{}
	w := newWorker(q, ledger, fake)

	q.Enqueue(queue.Item{APIID: 4, Buyer: buyerA, Price: big.NewInt(1)})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	deadline := time.After(2 * time.Second)
	for fake.callCount() == 0 {
		select {
		case <-deadline:
			t.Fatal("worker never settled the queued item")
		case <-time.After(5 * time.Millisecond):
		}
	}
}
