package port

import (
	"context"

	"github.com/govalues/decimal"
)

//go:generate mockgen -source=balance.go -destination=mock/balance.go -package=mock

// BalanceSource reports a member's available balance in one currency.
// Reads must be consistent within a single submission (no torn reads).
type BalanceSource interface {
	Balance(ctx context.Context, memberID uint64, currency string) (decimal.Decimal, error)
}
