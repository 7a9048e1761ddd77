package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/openex/ordergate/internal/core/domain"
	"github.com/openex/ordergate/internal/core/port/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func stashed(t *testing.T, id uint64, action string) *domain.OutboxCommand {
	t.Helper()
	payload, err := json.Marshal(domain.Command{Action: action, Order: map[string]any{"id": float64(id)}})
	assert.NoError(t, err)
	return &domain.OutboxCommand{ID: id, Queue: "order_processor", Payload: payload}
}

func TestReconciler_DrainRedelivers(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	repo := mock.NewMockRepository(mockCtrl)
	channel := mock.NewMockCommandChannel(mockCtrl)

	repo.EXPECT().ListStashedCommands(gomock.Any(), drainBatchSize).
		Return([]*domain.OutboxCommand{stashed(t, 1, "submit"), stashed(t, 2, "submit")}, nil)
	channel.EXPECT().Enqueue(gomock.Any(), "order_processor", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, cmd domain.Command) error {
			assert.Equal(t, "submit", cmd.Action)
			return nil
		}).Times(2)
	repo.EXPECT().MarkCommandDelivered(gomock.Any(), uint64(1)).Return(nil)
	repo.EXPECT().MarkCommandDelivered(gomock.Any(), uint64(2)).Return(nil)

	r := NewReconciler(repo, channel, time.Second, logger)
	r.drainOnce(context.Background())
}

func TestReconciler_DrainStopsWhileBrokerDown(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	repo := mock.NewMockRepository(mockCtrl)
	channel := mock.NewMockCommandChannel(mockCtrl)

	repo.EXPECT().ListStashedCommands(gomock.Any(), drainBatchSize).
		Return([]*domain.OutboxCommand{stashed(t, 1, "submit"), stashed(t, 2, "submit")}, nil)
	channel.EXPECT().Enqueue(gomock.Any(), "order_processor", gomock.Any()).
		Return(errors.New("broker unavailable"))

	r := NewReconciler(repo, channel, time.Second, logger)
	r.drainOnce(context.Background())
}
