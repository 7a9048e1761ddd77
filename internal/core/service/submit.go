package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/openex/ordergate/internal/core/domain"
	"go.uber.org/zap"
)

// SubmitOrder runs the submission pipeline: lock computation, atomic
// check-and-reserve persistence, then one best-effort submit command. A
// publish failure after commit never rolls the order back; the command is
// stashed for the reconciler and the failure goes to the error sink.
func (s *Service) SubmitOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	locked, err := s.computeLocked(ctx, order)
	if err != nil {
		return nil, s.classify(err, order)
	}
	order.Locked = locked
	order.OriginLocked = locked

	committed, err := s.repo.SubmitOrder(ctx, order)
	if err != nil {
		return nil, s.classify(err, order)
	}

	cmd := domain.Command{
		Action: domain.CommandActionSubmit,
		Order:  committed.Attributes(),
	}
	if err := s.channel.EnqueueTransient(ctx, s.cfg.OrderProcessorQueue, cmd); err != nil {
		// Order stays committed. Losing the notification silently would be
		// worse than reconciling by hand, so the command goes to the outbox.
		s.logger.Error("submit command publish failed after commit",
			zap.Uint64("order", committed.ID),
			zap.String("uuid", committed.UUID.String()),
			zap.Error(err))
		s.stash(ctx, s.cfg.OrderProcessorQueue, cmd)
	}

	return committed, nil
}

func (s *Service) stash(ctx context.Context, queue string, cmd domain.Command) {
	payload, err := json.Marshal(cmd)
	if err != nil {
		s.logger.Error("marshal stashed command", zap.Error(err))
		return
	}
	if err := s.repo.StashCommand(ctx, queue, payload); err != nil {
		s.logger.Error("stash command for reconciliation", zap.Error(err))
	}
}

// classify separates the expected failure classes from everything else.
// Expected classes pass through for the caller to translate; unexpected ones
// are escalated to the error sink and collapsed into the generic create error.
func (s *Service) classify(err error, order *domain.Order) error {
	switch {
	case errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrInsufficientLiquidity),
		errors.Is(err, domain.ErrInvalidOrder):
		s.logger.Debug("order rejected",
			zap.String("uuid", order.UUID.String()),
			zap.Error(err))
		return err
	default:
		s.logger.Error("unexpected error submitting order",
			zap.String("uuid", order.UUID.String()),
			zap.Error(err))
		return domain.ErrOrderCreate
	}
}
