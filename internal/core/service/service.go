package service

import (
	"fmt"

	"github.com/govalues/decimal"
	"github.com/openex/ordergate/internal/core/port"
	"go.uber.org/zap"
)

// Config carries the engine-specific inputs the submission pipeline needs.
type Config struct {
	// BufferFactor over-reserves market buy orders against price slippage.
	// Must be greater than one.
	BufferFactor decimal.Decimal
	// InternalDriver is the engine driver identifier served by the
	// in-house matching queue. Any other driver routes third-party.
	InternalDriver      string
	OrderProcessorQueue string
	MatchingQueue       string
}

type Service struct {
	repo      port.Repository
	balances  port.BalanceSource
	estimator port.FundsEstimator
	channel   port.CommandChannel
	cfg       Config
	logger    *zap.Logger
}

func NewService(repo port.Repository, balances port.BalanceSource,
	estimator port.FundsEstimator, channel port.CommandChannel,
	cfg Config, logger *zap.Logger) (*Service, error) {
	if cfg.BufferFactor.Cmp(decimal.One) <= 0 {
		return nil, fmt.Errorf("locking buffer factor must be > 1, got %s", cfg.BufferFactor)
	}
	if cfg.InternalDriver == "" || cfg.OrderProcessorQueue == "" || cfg.MatchingQueue == "" {
		return nil, fmt.Errorf("driver and queue names must be set")
	}

	return &Service{
		repo:      repo,
		balances:  balances,
		estimator: estimator,
		channel:   channel,
		cfg:       cfg,
		logger:    logger,
	}, nil
}
