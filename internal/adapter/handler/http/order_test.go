package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/openex/ordergate/internal/adapter/config"
	"github.com/openex/ordergate/internal/core/domain"
	"github.com/openex/ordergate/internal/core/port/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T, service *mock.MockService, repo *mock.MockRepository) *Router {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger, _ := zap.NewProduction()
	handler, err := NewOrderHandler(service, repo, logger)
	assert.NoError(t, err)

	router, err := NewRouter(&config.HTTP{}, handler)
	assert.NoError(t, err)
	return router
}

func persistedOrder() *domain.Order {
	return &domain.Order{
		ID:           42,
		UUID:         uuid.New(),
		Side:         domain.OrderSideSell,
		Type:         domain.OrderTypeMarket,
		MarketID:     "btcusd",
		Volume:       decimal.MustParse("2"),
		OriginVolume: decimal.MustParse("2"),
		Locked:       decimal.MustParse("2"),
		OriginLocked: decimal.MustParse("2"),
		State:        domain.OrderStatePending,
		MemberID:     7,
		AskUnit:      "btc",
		BidUnit:      "usd",
	}
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	service := mock.NewMockService(mockCtrl)
	repo := mock.NewMockRepository(mockCtrl)

	order := persistedOrder()

	repo.EXPECT().ReadMemberByUID(gomock.Any(), "ID001").
		Return(&domain.Member{ID: 7, UID: "ID001"}, nil)
	repo.EXPECT().ReadMarket(gomock.Any(), "btcusd").
		Return(&domain.Market{ID: "btcusd", BaseUnit: "btc", QuoteUnit: "usd"}, nil)
	service.EXPECT().BuildOrder(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(order, nil)
	service.EXPECT().SubmitOrder(gomock.Any(), order).
		Return(order, nil)

	router := newTestRouter(t, service, repo)

	body, _ := json.Marshal(map[string]string{
		"uid":      "ID001",
		"market":   "btcusd",
		"side":     "sell",
		"ord_type": "market",
		"volume":   "2",
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/market/orders", bytes.NewReader(body))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp orderResp
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint64(42), resp.ID)
	assert.Equal(t, order.UUID.String(), resp.UUID)
}

func TestOrderHandler_CreateOrderRejected(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	service := mock.NewMockService(mockCtrl)
	repo := mock.NewMockRepository(mockCtrl)

	repo.EXPECT().ReadMemberByUID(gomock.Any(), "ID001").
		Return(&domain.Member{ID: 7, UID: "ID001"}, nil)
	repo.EXPECT().ReadMarket(gomock.Any(), "btcusd").
		Return(&domain.Market{ID: "btcusd", BaseUnit: "btc", QuoteUnit: "usd"}, nil)
	service.EXPECT().BuildOrder(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(persistedOrder(), nil)
	service.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrInsufficientBalance)

	router := newTestRouter(t, service, repo)

	body, _ := json.Marshal(map[string]string{
		"uid":    "ID001",
		"market": "btcusd",
		"side":   "buy",
		"volume": "2",
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/market/orders", bytes.NewReader(body))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t,
		`{"errors":["market.account.insufficient_balance"]}`,
		rec.Body.String())
}

func TestOrderHandler_CancelOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	type cancelTest struct {
		name string
		path string
		mock func(service *mock.MockService, repo *mock.MockRepository, order *domain.Order)
		code int
	}

	tests := []cancelTest{
		{
			name: "cancel by uuid",
			path: "",
			mock: func(service *mock.MockService, repo *mock.MockRepository, order *domain.Order) {
				repo.EXPECT().ReadOrderByUUID(gomock.Any(), order.UUID).Return(order, nil)
				repo.EXPECT().ReadMarket(gomock.Any(), "btcusd").
					Return(&domain.Market{ID: "btcusd", Engine: domain.Engine{Driver: "peatio"}}, nil)
				service.EXPECT().CancelOrder(gomock.Any(), order).Return(nil)
			},
			code: http.StatusOK,
		},
		{
			name: "cancel by numeric id",
			path: "/api/market/orders/42/cancel",
			mock: func(service *mock.MockService, repo *mock.MockRepository, order *domain.Order) {
				repo.EXPECT().ReadOrder(gomock.Any(), uint64(42)).Return(order, nil)
				repo.EXPECT().ReadMarket(gomock.Any(), "btcusd").
					Return(&domain.Market{ID: "btcusd", Engine: domain.Engine{Driver: "peatio"}}, nil)
				service.EXPECT().CancelOrder(gomock.Any(), order).Return(nil)
			},
			code: http.StatusOK,
		},
		{
			name: "unknown numeric id",
			path: "/api/market/orders/43/cancel",
			mock: func(service *mock.MockService, repo *mock.MockRepository, order *domain.Order) {
				repo.EXPECT().ReadOrder(gomock.Any(), uint64(43)).
					Return(nil, domain.ErrDataNotFound)
			},
			code: http.StatusNotFound,
		},
		{
			name: "malformed id",
			path: "/api/market/orders/not-an-id/cancel",
			mock: func(service *mock.MockService, repo *mock.MockRepository, order *domain.Order) {},
			code: http.StatusBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			service := mock.NewMockService(mockCtrl)
			repo := mock.NewMockRepository(mockCtrl)

			order := persistedOrder()
			test.mock(service, repo, order)

			path := test.path
			if path == "" {
				path = "/api/market/orders/" + order.UUID.String() + "/cancel"
			}

			router := newTestRouter(t, service, repo)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, path, nil)
			router.ServeHTTP(rec, req)

			assert.Equal(t, test.code, rec.Code)
		})
	}
}

func TestOrderHandler_BulkCancel(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	service := mock.NewMockService(mockCtrl)
	repo := mock.NewMockRepository(mockCtrl)

	service.EXPECT().BulkCancel(gomock.Any(), "binance", map[string]any{"market": "btcusd"}).
		Return(nil)

	router := newTestRouter(t, service, repo)

	body, _ := json.Marshal(map[string]any{
		"driver":  "binance",
		"filters": map[string]string{"market": "btcusd"},
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/market/orders/cancel", bytes.NewReader(body))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
