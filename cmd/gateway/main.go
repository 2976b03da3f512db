package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/fhe402/fhe402-gateway/internal/chain"
	"github.com/fhe402/fhe402-gateway/internal/config"
	"github.com/fhe402/fhe402-gateway/internal/gateway"
	"github.com/fhe402/fhe402-gateway/internal/payment"
	"github.com/fhe402/fhe402-gateway/internal/queue"
	"github.com/fhe402/fhe402-gateway/internal/reserve"
	"github.com/fhe402/fhe402-gateway/internal/settler"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync() //nolint:errcheck

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── Redis (optional: enables single-use nonces) ───────────────────────────
	var nonces *payment.NonceStore
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal("redis ping failed", zap.Error(err))
		}
		nonces = payment.NewNonceStore(rdb, time.Duration(cfg.Redis.NonceTTLSec)*time.Second)
		log.Info("nonce replay protection enabled", zap.String("redis", cfg.Redis.Addr))
	}

	// ── Chain client (gateway key + ABI binding) ──────────────────────────────
	onchain, err := chain.NewClient(cfg)
	if err != nil {
		log.Fatal("chain client init failed", zap.Error(err))
	}

	ledger := reserve.NewLedger()
	q := queue.New()

	// ── Settlement worker ─────────────────────────────────────────────────────
	worker := settler.NewWorker(
		q,
		ledger,
		onchain,
		time.Duration(cfg.Settler.IntervalSec)*time.Second,
		time.Duration(cfg.Settler.SettleTimeoutSec)*time.Second,
		log,
	)
	workerDone := make(chan struct{})
	go func() {
		worker.Run(ctx)
		close(workerDone)
	}()

	// ── HTTP server ───────────────────────────────────────────────────────────
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	h := gateway.NewHandler(onchain, ledger, q, nonces,
		cfg.Chain.ContractAddress, cfg.Chain.Network,
		time.Duration(cfg.Settler.CallTimeoutSec)*time.Second,
		time.Duration(cfg.Upstream.TimeoutSec)*time.Second,
		log)
	if err := h.Register(r, cfg.Routes); err != nil {
		log.Fatal("route registration failed", zap.Error(err))
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Info("HTTP server starting",
			zap.Int("port", cfg.Server.Port),
			zap.Int("routes", len(cfg.Routes)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// ── Graceful shutdown ─────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	log.Info("shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", zap.Error(err))
	}

	// The worker drains the settlement queue one last time before exiting.
	select {
	case <-workerDone:
	case <-time.After(time.Duration(cfg.Settler.SettleTimeoutSec) * time.Second):
		log.Warn("settlement worker did not finish before deadline")
	}
	log.Info("shutdown complete")
}
