package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Business errors.
	ErrInsufficientBalance   = errors.New("balance is not enough for requested lock")
	ErrInsufficientLiquidity = errors.New("market liquidity is not enough to price the order")
	ErrInvalidOrder          = errors.New("order volume or price is not valid")
	ErrOrderCreate           = errors.New("order creation failed")
)

// Caller-facing message keys for submission failures.
const (
	MsgInsufficientBalance   = "market.account.insufficient_balance"
	MsgInsufficientLiquidity = "market.order.insufficient_market_liquidity"
	MsgInvalidVolumeOrPrice  = "market.order.invalid_volume_or_price"
	MsgCreateError           = "market.order.create_error"
)

// MessageKey translates a submission error into the fixed message key the
// caller embeds in its error payload. Unexpected classes collapse into the
// generic create error key.
func MessageKey(err error) string {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return MsgInsufficientBalance
	case errors.Is(err, ErrInsufficientLiquidity):
		return MsgInsufficientLiquidity
	case errors.Is(err, ErrInvalidOrder):
		return MsgInvalidVolumeOrPrice
	default:
		return MsgCreateError
	}
}
