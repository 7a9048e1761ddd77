package port

import (
	"context"

	"github.com/openex/ordergate/internal/core/domain"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type Service interface {
	BuildOrder(req *domain.OrderRequest, member *domain.Member, market *domain.Market) (*domain.Order, error)
	SubmitOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)

	CancelOrder(ctx context.Context, order *domain.Order) error
	BulkCancel(ctx context.Context, driver string, filters map[string]any) error
}
