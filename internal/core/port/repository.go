package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/openex/ordergate/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// Order
	// SubmitOrder persists the order inside a single transaction that
	// re-checks the member's available balance against order.Locked and
	// reserves it atomically with respect to concurrent submissions.
	SubmitOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, id uint64) (*domain.Order, error)
	ReadOrderByUUID(ctx context.Context, id uuid.UUID) (*domain.Order, error)

	// Reference data
	ReadMarket(ctx context.Context, id string) (*domain.Market, error)
	ReadMemberByUID(ctx context.Context, uid string) (*domain.Member, error)

	// Outbox
	StashCommand(ctx context.Context, queue string, payload []byte) error
	ListStashedCommands(ctx context.Context, limit int) ([]*domain.OutboxCommand, error)
	MarkCommandDelivered(ctx context.Context, id uint64) error
}
