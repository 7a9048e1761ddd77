package service

import (
	"context"

	"github.com/openex/ordergate/internal/core/domain"
	"go.uber.org/zap"
)

// CancelOrder publishes a cancel request for a persisted order. Orders on a
// market served by the internal driver go to the matching queue; every other
// driver value, known or not, gets the typed third-party command. The cancel
// is a request: the order's state transition belongs to the engine's
// acknowledgment path, not to this service.
func (s *Service) CancelOrder(ctx context.Context, order *domain.Order) error {
	if order == nil || order.Market == nil {
		return domain.ErrBadRequest
	}

	driver := order.Market.Engine.Driver
	if driver == s.cfg.InternalDriver {
		cmd := domain.Command{
			Action: domain.CommandActionCancel,
			Order:  order.MatchingAttributes(),
		}
		return s.channel.Enqueue(ctx, s.cfg.MatchingQueue, cmd)
	}

	s.logger.Debug("routing cancel to third-party engine",
		zap.String("driver", driver),
		zap.String("uuid", order.UUID.String()))

	return s.channel.Publish(ctx, driver, domain.EngineCommand{
		Data: order.EngineAttributes(),
		Type: domain.EngineCancelOrder,
	})
}

// BulkCancel asks a third-party engine to cancel every order matching the
// filter set, e.g. {"market": "btcusd"}. Administrative use only.
func (s *Service) BulkCancel(ctx context.Context, driver string, filters map[string]any) error {
	if driver == "" {
		return domain.ErrBadRequest
	}

	return s.channel.Publish(ctx, driver, domain.EngineCommand{
		Data: filters,
		Type: domain.EngineCancelBulk,
	})
}
