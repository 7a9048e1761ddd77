package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/openex/ordergate/internal/core/domain"
	"github.com/openex/ordergate/internal/core/port"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
	repo    port.Repository
}

func NewOrderHandler(service port.Service, repo port.Repository, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
		repo:    repo,
	}, nil
}

type createOrderRequest struct {
	UID     string `json:"uid" binding:"required"`
	Market  string `json:"market" binding:"required"`
	Side    string `json:"side" binding:"required"`
	OrdType string `json:"ord_type"`
	Price   string `json:"price"`
	Volume  string `json:"volume" binding:"required"`
}

type orderResp struct {
	ID           uint64  `json:"id"`
	UUID         string  `json:"uuid"`
	Market       string  `json:"market"`
	Side         string  `json:"side"`
	OrdType      string  `json:"ord_type"`
	Price        *string `json:"price"`
	Volume       string  `json:"volume"`
	OriginVolume string  `json:"origin_volume"`
	Locked       string  `json:"locked"`
	OriginLocked string  `json:"origin_locked"`
	State        string  `json:"state"`
	CreatedAt    string  `json:"created_at"`
}

func newOrderResp(o *domain.Order) orderResp {
	resp := orderResp{
		ID:           o.ID,
		UUID:         o.UUID.String(),
		Market:       o.MarketID,
		Side:         string(o.Side),
		OrdType:      string(o.Type),
		Volume:       o.Volume.String(),
		OriginVolume: o.OriginVolume.String(),
		Locked:       o.Locked.String(),
		OriginLocked: o.OriginLocked.String(),
		State:        string(o.State),
		CreatedAt:    o.CreatedAt.UTC().Format(time.RFC3339),
	}
	if o.Price.Valid {
		p := o.Price.Decimal.String()
		resp.Price = &p
	}
	return resp
}

func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	var req createOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	volume, err := decimal.Parse(req.Volume)
	if err != nil {
		oh.handleSubmitError(ctx, domain.ErrInvalidOrder)
		return
	}

	orderReq := domain.OrderRequest{
		Side:   domain.OrderSide(req.Side),
		Type:   domain.OrderType(req.OrdType),
		Volume: volume,
	}
	if req.Price != "" {
		price, err := decimal.Parse(req.Price)
		if err != nil {
			oh.handleSubmitError(ctx, domain.ErrInvalidOrder)
			return
		}
		orderReq.Price = decimal.NullDecimal{Decimal: price, Valid: true}
	}

	member, err := oh.repo.ReadMemberByUID(ctx, req.UID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	market, err := oh.repo.ReadMarket(ctx, req.Market)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	order, err := oh.service.BuildOrder(&orderReq, member, market)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	committed, err := oh.service.SubmitOrder(ctx, order)
	if err != nil {
		oh.handleSubmitError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, newOrderResp(committed), http.StatusCreated)
}

// findOrder resolves the path parameter as an order uuid or, failing that, a
// numeric order id.
func (oh *OrderHandler) findOrder(ctx *gin.Context, param string) (*domain.Order, error) {
	if id, err := uuid.Parse(param); err == nil {
		return oh.repo.ReadOrderByUUID(ctx, id)
	}
	id, err := strconv.ParseUint(param, 10, 64)
	if err != nil {
		return nil, domain.ErrBadRequest
	}
	return oh.repo.ReadOrder(ctx, id)
}

func (oh *OrderHandler) CancelOrder(ctx *gin.Context) {
	order, err := oh.findOrder(ctx, ctx.Param("id"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	market, err := oh.repo.ReadMarket(ctx, order.MarketID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	order.Market = market

	if err := oh.service.CancelOrder(ctx, order); err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResp(order))
}

type bulkCancelRequest struct {
	Driver  string         `json:"driver" binding:"required"`
	Filters map[string]any `json:"filters"`
}

func (oh *OrderHandler) BulkCancel(ctx *gin.Context) {
	var req bulkCancelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	if err := oh.service.BulkCancel(ctx, req.Driver, req.Filters); err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, nil, http.StatusOK)
}
