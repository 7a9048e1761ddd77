package outbox

import (
	"context"
	"encoding/json"
	"time"

	"github.com/openex/ordergate/internal/core/domain"
	"github.com/openex/ordergate/internal/core/port"
	"go.uber.org/zap"
)

const drainBatchSize = 100

// Reconciler re-delivers submit commands that were committed with their order
// but never reached the broker. Delivery here is acked: once a command has
// been stranded, best-effort is not good enough a second time.
type Reconciler struct {
	repo     port.Repository
	channel  port.CommandChannel
	interval time.Duration
	logger   *zap.Logger
}

func NewReconciler(repo port.Repository, channel port.CommandChannel,
	interval time.Duration, logger *zap.Logger) *Reconciler {
	return &Reconciler{
		repo:     repo,
		channel:  channel,
		interval: interval,
		logger:   logger,
	}
}

func (r *Reconciler) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.drainOnce(ctx)
			}
		}
	}()
}

func (r *Reconciler) drainOnce(ctx context.Context) {
	stashed, err := r.repo.ListStashedCommands(ctx, drainBatchSize)
	if err != nil {
		r.logger.Error("list stashed commands", zap.Error(err))
		return
	}

	for _, stranded := range stashed {
		var cmd domain.Command
		if err := json.Unmarshal(stranded.Payload, &cmd); err != nil {
			r.logger.Error("unmarshal stashed command",
				zap.Uint64("id", stranded.ID), zap.Error(err))
			continue
		}

		if err := r.channel.Enqueue(ctx, stranded.Queue, cmd); err != nil {
			r.logger.Warn("redeliver stashed command",
				zap.Uint64("id", stranded.ID), zap.Error(err))
			// Broker still down, try the whole batch again next tick.
			return
		}

		if err := r.repo.MarkCommandDelivered(ctx, stranded.ID); err != nil {
			r.logger.Error("mark command delivered",
				zap.Uint64("id", stranded.ID), zap.Error(err))
			return
		}

		r.logger.Info("redelivered stashed command",
			zap.Uint64("id", stranded.ID),
			zap.String("queue", stranded.Queue))
	}
}
