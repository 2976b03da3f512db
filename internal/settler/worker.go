// Package settler drains the settlement queue on a fixed interval and
// submits one settleCall transaction per completed API call.
package settler

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/fhe402/fhe402-gateway/internal/queue"
	"github.com/fhe402/fhe402-gateway/internal/reserve"
)

// Settler submits one on-chain settlement. Implemented by *chain.Client.
type Settler interface {
	SettleCall(ctx context.Context, apiID uint64, buyer common.Address) error
}

// Worker periodically drains queued calls and settles them in order.
// Whatever the outcome of a settlement, the buyer's reservation is released
// so the next call is gated by the contract's balance check rather than a
// stale hold.
type Worker struct {
	queue    *queue.Queue
	ledger   *reserve.Ledger
	settler  Settler
	interval time.Duration
	timeout  time.Duration
	log      *zap.Logger
}

func NewWorker(q *queue.Queue, ledger *reserve.Ledger, settler Settler, interval, timeout time.Duration, log *zap.Logger) *Worker {
	return &Worker{
		queue:    q,
		ledger:   ledger,
		settler:  settler,
		interval: interval,
		timeout:  timeout,
		log:      log,
	}
}

// Run blocks until ctx is cancelled, settling a batch every interval.
// On shutdown it drains whatever is still queued one last time.
func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.settleBatch(context.Background())
			return
		case <-ticker.C:
			w.settleBatch(ctx)
		}
	}
}

// settleBatch drains the queue and settles each item sequentially.
func (w *Worker) settleBatch(ctx context.Context) {
	items := w.queue.DrainAll()
	if len(items) == 0 {
		return
	}

	w.log.Info("settling batch", zap.Int("count", len(items)))

	for _, item := range items {
		w.settleOne(ctx, item)
	}
}

func (w *Worker) settleOne(ctx context.Context, item queue.Item) {
	callCtx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	buyer := common.HexToAddress(item.Buyer)
	err := w.settler.SettleCall(callCtx, item.APIID, buyer)

	// Release before judging the outcome. A payer whose settlement failed
	// must not stay locked out; the contract balance check on the next
	// call is the arbiter.
	w.ledger.Release(item.Buyer, item.Price)

	if err != nil {
		w.log.Error("settlement failed",
			zap.Uint64("apiId", item.APIID),
			zap.String("buyer", item.Buyer),
			zap.Error(err))
		return
	}

	w.log.Info("call settled",
		zap.Uint64("apiId", item.APIID),
		zap.String("buyer", item.Buyer),
		zap.String("price", item.Price.String()))
}
