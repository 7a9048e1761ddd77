package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/govalues/decimal"
	"github.com/openex/ordergate/internal/adapter/config"
	"github.com/openex/ordergate/internal/adapter/engine"
	"github.com/openex/ordergate/internal/adapter/handler/http"
	"github.com/openex/ordergate/internal/adapter/logger"
	"github.com/openex/ordergate/internal/adapter/mq"
	"github.com/openex/ordergate/internal/adapter/outbox"
	"github.com/openex/ordergate/internal/adapter/storage"
	"github.com/openex/ordergate/internal/adapter/storage/repository"
	"github.com/openex/ordergate/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log, err := logger.NewLogger(conf.App)
	if err != nil {
		fmt.Printf("error creating log: %s", err)
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repository creating error", zap.Error(err))
		return
	}

	queue := mq.NewQueue(strings.Split(conf.Broker.Brokers, ","))
	defer func() {
		if err := queue.Close(); err != nil {
			log.Error("queue close error", zap.Error(err))
		}
	}()

	bufferFactor, err := decimal.Parse(conf.Engine.LockingBufferFactor)
	if err != nil {
		log.Error("locking buffer factor parse error", zap.Error(err))
		return
	}

	estimator := engine.NewTickerEstimator()

	svc, err := service.NewService(repo, repo, estimator, queue, service.Config{
		BufferFactor:        bufferFactor,
		InternalDriver:      conf.Engine.InternalDriver,
		OrderProcessorQueue: conf.Engine.OrderProcessorQueue,
		MatchingQueue:       conf.Engine.MatchingQueue,
	}, log.Named("Service"))
	if err != nil {
		log.Error("order service creating error", zap.Error(err))
		return
	}

	reconciler := outbox.NewReconciler(repo, queue,
		time.Duration(conf.Engine.ReconcileSeconds)*time.Second, log.Named("Outbox"))
	reconciler.Start(ctx)

	orderHandler, err := http.NewOrderHandler(svc, repo, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, orderHandler)
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
