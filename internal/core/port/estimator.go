package port

import (
	"context"

	"github.com/govalues/decimal"
	"github.com/openex/ordergate/internal/core/domain"
)

//go:generate mockgen -source=estimator.go -destination=mock/estimator.go -package=mock

// FundsEstimator supplies the worst-case quote amount a market buy could
// consume if executed in full at the least favorable available price. The
// computation is owned by the market/engine side; this core treats it as
// opaque. May fail with domain.ErrInsufficientLiquidity.
type FundsEstimator interface {
	EstimateRequiredFunds(ctx context.Context, market *domain.Market, volume decimal.Decimal) (decimal.Decimal, error)
}
