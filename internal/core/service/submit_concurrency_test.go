package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/openex/ordergate/internal/core/domain"
	"github.com/openex/ordergate/internal/core/port/mock"
	"github.com/stretchr/testify/assert"
)

// fakeLedgerRepo reproduces the persistence layer's contract for one account:
// the balance check and the reservation happen under one lock, exactly like
// the row lock in the postgres repository.
type fakeLedgerRepo struct {
	mu      sync.Mutex
	balance decimal.Decimal
	locked  decimal.Decimal
	nextID  uint64
	orders  []*domain.Order
}

func (f *fakeLedgerRepo) SubmitOrder(_ context.Context, order *domain.Order) (*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.balance.Cmp(order.Locked) < 0 {
		return nil, domain.ErrInsufficientBalance
	}

	balance, err := f.balance.Sub(order.Locked)
	if err != nil {
		return nil, err
	}
	locked, err := f.locked.Add(order.Locked)
	if err != nil {
		return nil, err
	}
	f.balance = balance
	f.locked = locked

	f.nextID++
	order.ID = f.nextID
	f.orders = append(f.orders, order)
	return order, nil
}

// Balance is the deliberately stale read the submitter pre-checks against.
func (f *fakeLedgerRepo) Balance(_ context.Context, _ uint64, _ string) (decimal.Decimal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.balance, nil
}

func (f *fakeLedgerRepo) ReadOrder(context.Context, uint64) (*domain.Order, error) {
	return nil, domain.ErrDataNotFound
}

func (f *fakeLedgerRepo) ReadOrderByUUID(context.Context, uuid.UUID) (*domain.Order, error) {
	return nil, domain.ErrDataNotFound
}

func (f *fakeLedgerRepo) ReadMarket(context.Context, string) (*domain.Market, error) {
	return nil, domain.ErrDataNotFound
}

func (f *fakeLedgerRepo) ReadMemberByUID(context.Context, string) (*domain.Member, error) {
	return nil, domain.ErrDataNotFound
}

func (f *fakeLedgerRepo) StashCommand(context.Context, string, []byte) error { return nil }

func (f *fakeLedgerRepo) ListStashedCommands(context.Context, int) ([]*domain.OutboxCommand, error) {
	return nil, nil
}

func (f *fakeLedgerRepo) MarkCommandDelivered(context.Context, uint64) error { return nil }

type countingChannel struct {
	mu       sync.Mutex
	enqueued []domain.Command
}

func (c *countingChannel) Enqueue(_ context.Context, _ string, cmd domain.Command) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enqueued = append(c.enqueued, cmd)
	return nil
}

func (c *countingChannel) EnqueueTransient(ctx context.Context, queue string, cmd domain.Command) error {
	return c.Enqueue(ctx, queue, cmd)
}

func (c *countingChannel) Publish(context.Context, string, domain.EngineCommand) error { return nil }

// Many concurrent submissions against one balance must never jointly reserve
// more than the member holds, even though every pre-check can pass against a
// stale read.
func TestService_SubmitOrderConcurrentReservations(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	repo := &fakeLedgerRepo{balance: decimal.MustParse("100")}
	channel := &countingChannel{}
	estimator := mock.NewMockFundsEstimator(mockCtrl)

	s := newService(t, repo, repo, estimator, channel)

	const submitters = 8

	var wg sync.WaitGroup
	results := make(chan error, submitters)

	for range submitters {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// limit buy 3 @ 10: every order wants a 30 reservation
			order := &domain.Order{
				UUID:         uuid.New(),
				Side:         domain.OrderSideBuy,
				Type:         domain.OrderTypeLimit,
				MarketID:     "btcusd",
				Price:        decimal.NullDecimal{Decimal: decimal.MustParse("10"), Valid: true},
				Volume:       decimal.MustParse("3"),
				OriginVolume: decimal.MustParse("3"),
				State:        domain.OrderStatePending,
				MemberID:     1,
				AskUnit:      "btc",
				BidUnit:      "usd",
				Market:       market("peatio"),
			}
			_, err := s.SubmitOrder(context.Background(), order)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	committed := 0
	for err := range results {
		if err == nil {
			committed++
		} else {
			assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
		}
	}

	// 100 / 30 supports at most 3 reservations
	assert.LessOrEqual(t, committed, 3)
	assert.Equal(t, committed, len(repo.orders))
	assert.Equal(t, committed, len(channel.enqueued))

	totalLocked := decimal.Zero
	for _, o := range repo.orders {
		var err error
		totalLocked, err = totalLocked.Add(o.Locked)
		assert.NoError(t, err)
	}
	assert.LessOrEqual(t, totalLocked.Cmp(decimal.MustParse("100")), 0)
	assert.GreaterOrEqual(t, repo.balance.Sign(), 0)
}
