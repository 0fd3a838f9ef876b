package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/saxenaaman628/redis-quiz-service/config"
	"github.com/saxenaaman628/redis-quiz-service/internal/api"
	"github.com/saxenaaman628/redis-quiz-service/internal/logger"
	"github.com/saxenaaman628/redis-quiz-service/internal/pubsub"
	"github.com/saxenaaman628/redis-quiz-service/internal/redis"
	redishandler "github.com/saxenaaman628/redis-quiz-service/internal/redisHandler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		zl.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// The listener gets its own connection so a blocked subscription never
	// competes with request traffic.
	subRdb, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		zl.Fatal("failed to connect to redis for updates", zap.Error(err))
	}
	defer subRdb.Close()
	zl.Info("redis connected", zap.String("addr", cfg.Redis.Addr))

	store := redishandler.NewQuizStore(rdb, cfg.Channel, zl)
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: api.NewRouter(store, cfg.Auth, zl),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return pubsub.NewListener(subRdb, cfg.Channel, zl).Run(gctx)
	})

	g.Go(func() error {
		zl.Info("listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		zl.Error("service stopped with error", zap.Error(err))
		return
	}
	zl.Info("service stopped")
}
