package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/redis/go-redis/v9"

	"station-search/config"
	"station-search/consumer"
	"station-search/driver"
	"station-search/gateway"
	"station-search/logger"
	"station-search/server"
	"station-search/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger.Init()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Logger.Error("failed to load configuration", "err", err)
		return
	}

	esClient, err := driver.NewClient(
		cfg.Elasticsearch.Addresses,
		cfg.Elasticsearch.Username,
		cfg.Elasticsearch.Password,
	)
	if err != nil {
		logger.Logger.Error("failed to create search engine client", "err", err)
		return
	}

	esDriver := driver.NewElasticsearchDriver(esClient)
	engineGateway := gateway.NewSearchEngineGateway(esDriver)
	searchUsecase := usecase.NewSearchStationsUsecase(engineGateway, cfg.Elasticsearch.Index)

	// ──────────── event consumer ────────────
	consumerCfg := consumer.ConfigFromEnv()
	if consumerCfg.Enabled {
		opts, err := redis.ParseURL(consumerCfg.RedisURL)
		if err != nil {
			logger.Logger.Error("invalid redis URL", "err", err)
			return
		}
		redisClient := redis.NewClient(opts)
		defer redisClient.Close()

		publisher := consumer.NewRedisResultPublisher(redisClient, consumerCfg.ReplyStreamKey)
		handler := consumer.NewSearchEventHandler(searchUsecase, publisher, logger.Logger)
		cons := consumer.New(redisClient, consumerCfg, handler, logger.Logger)
		if err := cons.Start(ctx); err != nil {
			logger.Logger.Error("failed to start consumer", "err", err)
			return
		}
		defer cons.Stop()
	}

	// ──────────── HTTP server ────────────
	srv := server.New(cfg, searchUsecase)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Error("http", "err", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error("shutdown", "err", err)
	}
}
