package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

type OrderSide string

const (
	OrderSideBuy  OrderSide = "buy"
	OrderSideSell OrderSide = "sell"
)

type OrderType string

const (
	OrderTypeLimit  OrderType = "limit"
	OrderTypeMarket OrderType = "market"
)

type OrderState string

const (
	OrderStatePending OrderState = "pending"
	OrderStateWait    OrderState = "wait"
	OrderStateDone    OrderState = "done"
	OrderStateCancel  OrderState = "cancel"
)

// Order is the submission-time view of an exchange order. ID is assigned by
// persistence, UUID at construction. AskUnit/BidUnit are copied from the market
// when the order is built, so the debited currency stays fixed even if the
// market definition changes later.
type Order struct {
	ID           uint64
	UUID         uuid.UUID
	Side         OrderSide
	Type         OrderType
	MarketID     string
	Price        decimal.NullDecimal
	Volume       decimal.Decimal
	OriginVolume decimal.Decimal
	Locked       decimal.Decimal
	OriginLocked decimal.Decimal
	State        OrderState
	MemberID     uint64
	AskUnit      string
	BidUnit      string
	CreatedAt    time.Time

	Market *Market
	Member *Member
}

// DebitedCurrency is the unit the order consumes from the member's balance:
// base for sells, quote for buys.
func (o *Order) DebitedCurrency() string {
	if o.Side == OrderSideBuy {
		return o.BidUnit
	}
	return o.AskUnit
}

func (o *Order) priceValue() any {
	if o.Price.Valid {
		return o.Price.Decimal.String()
	}
	return nil
}

// Attributes is the full snapshot carried by the submit command.
func (o *Order) Attributes() map[string]any {
	return map[string]any{
		"id":            o.ID,
		"uuid":          o.UUID.String(),
		"market":        o.MarketID,
		"side":          string(o.Side),
		"ord_type":      string(o.Type),
		"price":         o.priceValue(),
		"volume":        o.Volume.String(),
		"origin_volume": o.OriginVolume.String(),
		"locked":        o.Locked.String(),
		"origin_locked": o.OriginLocked.String(),
		"state":         string(o.State),
		"member_id":     o.MemberID,
		"ask":           o.AskUnit,
		"bid":           o.BidUnit,
		"created_at":    o.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// MatchingAttributes is the reduced projection the internal matching engine
// needs to locate the order in its book.
func (o *Order) MatchingAttributes() map[string]any {
	return map[string]any{
		"id":     o.ID,
		"uuid":   o.UUID.String(),
		"market": o.MarketID,
		"side":   string(o.Side),
		"volume": o.Volume.String(),
		"price":  o.priceValue(),
	}
}

// EngineAttributes is the external-facing snapshot sent to third-party engines.
func (o *Order) EngineAttributes() map[string]any {
	return map[string]any{
		"uuid":             o.UUID.String(),
		"market":           o.MarketID,
		"side":             string(o.Side),
		"ord_type":         string(o.Type),
		"price":            o.priceValue(),
		"origin_volume":    o.OriginVolume.String(),
		"remaining_volume": o.Volume.String(),
		"state":            string(o.State),
	}
}

// OrderRequest carries the already-validated attributes the management layer
// supplies for a new order.
type OrderRequest struct {
	Side   OrderSide
	Type   OrderType
	Price  decimal.NullDecimal
	Volume decimal.Decimal
}
