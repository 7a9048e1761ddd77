package engine

import (
	"context"
	"testing"

	"github.com/govalues/decimal"
	"github.com/openex/ordergate/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestTickerEstimator(t *testing.T) {
	e := NewTickerEstimator()
	market := &domain.Market{ID: "btcusd", BaseUnit: "btc", QuoteUnit: "usd"}

	_, err := e.EstimateRequiredFunds(context.Background(), market, decimal.MustParse("2"))
	assert.ErrorIs(t, err, domain.ErrInsufficientLiquidity)

	e.SetWorstAsk("btcusd", decimal.MustParse("40"))

	required, err := e.EstimateRequiredFunds(context.Background(), market, decimal.MustParse("2"))
	assert.NoError(t, err)
	assert.Zero(t, required.Cmp(decimal.MustParse("80")))

	_, err = e.EstimateRequiredFunds(context.Background(), nil, decimal.MustParse("2"))
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}
