package service

import (
	"context"
	"fmt"

	"github.com/govalues/decimal"
	"github.com/openex/ordergate/internal/core/domain"
)

// requiredFunds is the order's intrinsic reservation requirement in its
// debited currency: the amount execution could consume with no buffer applied.
func (s *Service) requiredFunds(ctx context.Context, order *domain.Order) (decimal.Decimal, error) {
	if order.Side == domain.OrderSideSell {
		// The member delivers the base currency regardless of ord_type.
		return order.Volume, nil
	}

	switch order.Type {
	case domain.OrderTypeLimit:
		if !order.Price.Valid {
			return decimal.Zero, domain.ErrInvalidOrder
		}
		required, err := order.Price.Decimal.Mul(order.Volume)
		if err != nil {
			return decimal.Zero, fmt.Errorf("math error: %w", err)
		}
		return required, nil
	case domain.OrderTypeMarket:
		// Worst case across the book, priced by the engine side.
		return s.estimator.EstimateRequiredFunds(ctx, order.Market, order.Volume)
	default:
		return decimal.Zero, domain.ErrInvalidOrder
	}
}

// computeLocked decides how much balance the order reserves. Market buys get
// the locking buffer to cover price movement during execution; the buffered
// amount is clamped to the member's balance so the buffer alone never rejects
// an order the base requirement allows. Every other combination locks the
// intrinsic requirement exactly.
func (s *Service) computeLocked(ctx context.Context, order *domain.Order) (decimal.Decimal, error) {
	balance, err := s.balances.Balance(ctx, order.MemberID, order.DebitedCurrency())
	if err != nil {
		return decimal.Zero, err
	}

	required, err := s.requiredFunds(ctx, order)
	if err != nil {
		return decimal.Zero, err
	}

	if balance.Cmp(required) < 0 {
		return decimal.Zero, domain.ErrInsufficientBalance
	}

	if order.Type == domain.OrderTypeMarket && order.Side == domain.OrderSideBuy {
		buffered, err := required.Mul(s.cfg.BufferFactor)
		if err != nil {
			return decimal.Zero, fmt.Errorf("math error: %w", err)
		}
		return buffered.Min(balance), nil
	}

	return required, nil
}
