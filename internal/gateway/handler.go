// Package gateway mounts the paid API routes: each request must carry a
// valid X-Payment proof before it is reverse-proxied to its upstream.
package gateway

import (
	"context"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fhe402/fhe402-gateway/internal/chain"
	"github.com/fhe402/fhe402-gateway/internal/config"
	"github.com/fhe402/fhe402-gateway/internal/payment"
	"github.com/fhe402/fhe402-gateway/internal/queue"
	"github.com/fhe402/fhe402-gateway/internal/reserve"
)

// Marketplace is the read side of the on-chain contract.
// Satisfied by *chain.Client; decoupled here so handler tests can use a mock.
type Marketplace interface {
	Listing(ctx context.Context, apiID uint64) (*chain.Listing, error)
	CanAfford(ctx context.Context, apiID uint64, buyer common.Address) (bool, error)
}

// Handler wires paid routes onto a Gin engine.
type Handler struct {
	market          Marketplace
	ledger          *reserve.Ledger
	queue           *queue.Queue
	nonces          *payment.NonceStore
	contract        string
	network         string
	callTimeout     time.Duration
	upstreamTimeout time.Duration
	log             *zap.Logger
}

func NewHandler(market Marketplace, ledger *reserve.Ledger, q *queue.Queue, nonces *payment.NonceStore, contract, network string, callTimeout, upstreamTimeout time.Duration, log *zap.Logger) *Handler {
	return &Handler{
		market:          market,
		ledger:          ledger,
		queue:           q,
		nonces:          nonces,
		contract:        contract,
		network:         network,
		callTimeout:     callTimeout,
		upstreamTimeout: upstreamTimeout,
		log:             log,
	}
}

// Register mounts one paid route per config entry. Every HTTP method is
// accepted; the payment check runs before the request is forwarded.
func (h *Handler) Register(engine *gin.Engine, routes []config.RouteConfig) error {
	for _, route := range routes {
		target, err := url.Parse(route.Upstream)
		if err != nil {
			return err
		}
		rp := httputil.NewSingleHostReverseProxy(target)
		orig := rp.Director
		rp.Director = func(req *http.Request) {
			orig(req)
			req.Host = target.Host
			req.Header.Del("X-Payment")
		}
		// A merchant API that never answers must not hold the gateway's
		// request goroutine past the configured bound.
		rp.Transport = &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			ResponseHeaderTimeout: h.upstreamTimeout,
		}
		rp.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
			h.log.Error("upstream error", zap.String("path", r.URL.Path), zap.Error(err))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`{"error":"upstream error"}`)) //nolint:errcheck
		}

		engine.Any(route.Path, h.paid(route.APIID, rp))
		engine.Any(route.Path+"/*rest", h.paid(route.APIID, rp))
	}
	return nil
}

// paid builds the handler for one route: challenge, verify, gate, forward.
func (h *Handler) paid(apiID uint64, rp *httputil.ReverseProxy) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-Payment")
		if raw == "" {
			c.JSON(http.StatusPaymentRequired, payment.NewChallenge(h.contract, h.network, apiID))
			return
		}

		proof, err := payment.DecodeHeader(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed payment header"})
			return
		}
		if proof.APIID != apiID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "payment proof is for a different api"})
			return
		}

		if !payment.Verify(proof) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
			return
		}

		listing, err := h.fetchListing(c.Request.Context(), apiID)
		if err != nil {
			h.log.Error("listing lookup", zap.Uint64("apiId", apiID), zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "listing unavailable"})
			return
		}
		if !listing.Active {
			c.JSON(http.StatusNotFound, gin.H{"error": "api not active"})
			return
		}

		buyer := proof.BuyerAddress
		affordable, err := h.checkAfford(c.Request.Context(), apiID, common.HexToAddress(buyer))
		if err != nil {
			h.log.Error("affordability check", zap.Uint64("apiId", apiID), zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "balance check unavailable"})
			return
		}
		if !affordable {
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "insufficient balance"})
			return
		}

		// One in-flight call per payer: the hold stays until the settlement
		// worker has pushed the debit on-chain.
		if !h.ledger.TryReserve(buyer, listing.Price) {
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "balance reserved"})
			return
		}

		// Nonce consumption is the last gate, so a policy rejection above
		// never burns a nonce the buyer could still retry with.
		fresh, err := h.nonces.Consume(c.Request.Context(), apiID, proof.Nonce)
		if err != nil {
			h.ledger.Release(buyer, listing.Price)
			h.log.Error("nonce store", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "payment check unavailable"})
			return
		}
		if !fresh {
			h.ledger.Release(buyer, listing.Price)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "nonce already used"})
			return
		}

		h.queue.Enqueue(queue.Item{APIID: apiID, Buyer: strings.ToLower(buyer), Price: listing.Price})

		h.log.Info("call admitted",
			zap.Uint64("apiId", apiID),
			zap.String("buyer", buyer),
			zap.String("price", listing.Price.String()))

		rp.ServeHTTP(safeWriter{c.Writer}, c.Request)
	}
}

// fetchListing reads the listing with the configured chain-read bound; a
// stalled RPC node turns into an error instead of a hung request.
func (h *Handler) fetchListing(ctx context.Context, apiID uint64) (*chain.Listing, error) {
	callCtx, cancel := context.WithTimeout(ctx, h.callTimeout)
	defer cancel()
	return h.market.Listing(callCtx, apiID)
}

// checkAfford runs the affordability read under the same bound; a timeout is
// treated as a failure and the caller rejects the request.
func (h *Handler) checkAfford(ctx context.Context, apiID uint64, buyer common.Address) (bool, error) {
	callCtx, cancel := context.WithTimeout(ctx, h.callTimeout)
	defer cancel()
	return h.market.CanAfford(callCtx, apiID, buyer)
}

// safeWriter overrides CloseNotify on gin.ResponseWriter. httputil's reverse
// proxy still asserts the deprecated http.CloseNotifier, and the recorder
// backing the writer in tests does not provide it, so without the shim the
// assertion panics inside net/http.
//
//nolint:staticcheck
type safeWriter struct{ gin.ResponseWriter }

//nolint:staticcheck
func (s safeWriter) CloseNotify() <-chan bool { return make(chan bool, 1) }
