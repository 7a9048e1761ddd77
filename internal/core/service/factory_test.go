package service_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/openex/ordergate/internal/core/domain"
	"github.com/openex/ordergate/internal/core/port/mock"
	"github.com/stretchr/testify/assert"
)

func TestService_BuildOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	s := newService(t,
		mock.NewMockRepository(mockCtrl),
		mock.NewMockBalanceSource(mockCtrl),
		mock.NewMockFundsEstimator(mockCtrl),
		mock.NewMockCommandChannel(mockCtrl))

	member := &domain.Member{ID: 7, UID: "ID001"}

	type buildTest struct {
		name        string
		req         *domain.OrderRequest
		member      *domain.Member
		market      *domain.Market
		expError    error
		expType     domain.OrderType
		expCurrency string
	}

	tests := []buildTest{
		{
			name: "sell builds ask variant debiting base",
			req: &domain.OrderRequest{
				Side:   domain.OrderSideSell,
				Type:   domain.OrderTypeLimit,
				Price:  decimal.NullDecimal{Decimal: decimal.MustParse("10"), Valid: true},
				Volume: decimal.MustParse("2"),
			},
			member:      member,
			market:      market("peatio"),
			expType:     domain.OrderTypeLimit,
			expCurrency: "btc",
		},
		{
			name: "buy builds bid variant debiting quote",
			req: &domain.OrderRequest{
				Side:   domain.OrderSideBuy,
				Type:   domain.OrderTypeMarket,
				Volume: decimal.MustParse("2"),
			},
			member:      member,
			market:      market("peatio"),
			expType:     domain.OrderTypeMarket,
			expCurrency: "usd",
		},
		{
			name: "ord_type defaults to limit",
			req: &domain.OrderRequest{
				Side:   domain.OrderSideBuy,
				Price:  decimal.NullDecimal{Decimal: decimal.MustParse("10"), Valid: true},
				Volume: decimal.MustParse("2"),
			},
			member:      member,
			market:      market("peatio"),
			expType:     domain.OrderTypeLimit,
			expCurrency: "usd",
		},
		{
			name: "unknown side rejected",
			req: &domain.OrderRequest{
				Side:   domain.OrderSide("hold"),
				Volume: decimal.MustParse("2"),
			},
			member:   member,
			market:   market("peatio"),
			expError: domain.ErrBadRequest,
		},
		{
			name: "zero volume rejected",
			req: &domain.OrderRequest{
				Side: domain.OrderSideBuy,
			},
			member:   member,
			market:   market("peatio"),
			expError: domain.ErrBadRequest,
		},
		{
			name: "missing market rejected",
			req: &domain.OrderRequest{
				Side:   domain.OrderSideBuy,
				Volume: decimal.MustParse("2"),
			},
			member:   member,
			expError: domain.ErrBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			order, err := s.BuildOrder(test.req, test.member, test.market)

			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				assert.Nil(t, order)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, test.expType, order.Type)
			assert.Equal(t, test.expCurrency, order.DebitedCurrency())
			assert.Equal(t, domain.OrderStatePending, order.State)
			assert.NotEqual(t, uuid.Nil, order.UUID)
			assert.Zero(t, order.Volume.Cmp(order.OriginVolume))
			assert.Equal(t, "btc", order.AskUnit)
			assert.Equal(t, "usd", order.BidUnit)
			assert.Equal(t, member.ID, order.MemberID)
			assert.True(t, order.Locked.IsZero())
		})
	}
}
