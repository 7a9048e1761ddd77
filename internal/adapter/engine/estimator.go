package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/govalues/decimal"
	"github.com/openex/ordergate/internal/core/domain"
)

// TickerEstimator prices the worst case for market buys from the last known
// worst ask per market. The quotes are pushed in by whatever feed tracks the
// engines' books; submission only reads them. Markets without a quote cannot
// be priced and are reported as insufficient liquidity.
type TickerEstimator struct {
	mu       sync.RWMutex
	worstAsk map[string]decimal.Decimal
}

func NewTickerEstimator() *TickerEstimator {
	return &TickerEstimator{
		worstAsk: make(map[string]decimal.Decimal),
	}
}

// SetWorstAsk records the least favorable ask price currently available on a
// market's book.
func (e *TickerEstimator) SetWorstAsk(marketID string, price decimal.Decimal) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.worstAsk[marketID] = price
}

func (e *TickerEstimator) EstimateRequiredFunds(ctx context.Context,
	market *domain.Market, volume decimal.Decimal) (decimal.Decimal, error) {
	if market == nil {
		return decimal.Zero, domain.ErrBadRequest
	}

	e.mu.RLock()
	price, ok := e.worstAsk[market.ID]
	e.mu.RUnlock()

	if !ok || price.Sign() <= 0 {
		return decimal.Zero, domain.ErrInsufficientLiquidity
	}

	required, err := price.Mul(volume)
	if err != nil {
		return decimal.Zero, fmt.Errorf("math error: %w", err)
	}

	return required, nil
}
