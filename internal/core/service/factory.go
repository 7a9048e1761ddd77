package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/openex/ordergate/internal/core/domain"
)

// BuildOrder constructs an unpersisted Order from already-validated request
// attributes. Sells become ask-side orders debiting the base unit, buys
// bid-side orders debiting the quote unit; the units are snapshotted from the
// market here and never change afterwards. Locked amounts are left unset.
func (s *Service) BuildOrder(req *domain.OrderRequest,
	member *domain.Member, market *domain.Market) (*domain.Order, error) {
	if req == nil || member == nil || market == nil {
		return nil, domain.ErrBadRequest
	}
	if req.Side != domain.OrderSideBuy && req.Side != domain.OrderSideSell {
		return nil, domain.ErrBadRequest
	}
	if req.Volume.Sign() <= 0 {
		return nil, domain.ErrBadRequest
	}

	ordType := req.Type
	if ordType == "" {
		ordType = domain.OrderTypeLimit
	}

	order := &domain.Order{
		UUID:         uuid.New(),
		Side:         req.Side,
		Type:         ordType,
		MarketID:     market.ID,
		Price:        req.Price,
		Volume:       req.Volume,
		OriginVolume: req.Volume,
		State:        domain.OrderStatePending,
		MemberID:     member.ID,
		AskUnit:      market.BaseUnit,
		BidUnit:      market.QuoteUnit,
		CreatedAt:    time.Now(),
		Market:       market,
		Member:       member,
	}

	return order, nil
}
