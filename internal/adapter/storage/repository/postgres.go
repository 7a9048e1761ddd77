package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/openex/ordergate/internal/adapter/storage"
	"github.com/openex/ordergate/internal/core/domain"
)

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

var orderColumns = []string{
	"id", "uuid", "side", "ord_type", "market_id", "price",
	"volume", "origin_volume", "locked", "origin_locked",
	"state", "member_id", "ask_unit", "bid_unit", "created_at",
}

// validateOrder mirrors the schema constraints so expected rejections come
// back as domain errors instead of raw pg check violations.
func validateOrder(order *domain.Order) error {
	if order.Volume.Sign() <= 0 {
		return domain.ErrInvalidOrder
	}
	if order.Type == domain.OrderTypeLimit {
		if !order.Price.Valid || order.Price.Decimal.Sign() <= 0 {
			return domain.ErrInvalidOrder
		}
	}
	if order.Locked.Sign() < 0 || order.Locked.Cmp(order.OriginLocked) != 0 {
		return domain.ErrInvalidOrder
	}
	return nil
}

// SubmitOrder persists the order and reserves its locked amount in one
// transaction. The account row is taken with FOR UPDATE, so concurrent
// submissions for the same member serialize on the balance check: two commits
// can never jointly reserve more than the member holds.
func (r *Repository) SubmitOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := validateOrder(order); err != nil {
		return nil, err
	}

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		balanceSt := r.db.QueryBuilder.
			Select("balance").
			From("accounts").
			Where(sq.Eq{"member_id": order.MemberID, "currency": order.DebitedCurrency()}).
			Suffix("for update")

		sql, args, err := balanceSt.ToSql()
		if err != nil {
			return err
		}

		var balance decimal.Decimal
		err = tx.QueryRow(ctx, sql, args...).Scan(&balance)
		if err != nil {
			if err == pgx.ErrNoRows {
				return domain.ErrInsufficientBalance
			}
			return err
		}

		if balance.Cmp(order.Locked) < 0 {
			return domain.ErrInsufficientBalance
		}

		reserveSt := r.db.QueryBuilder.
			Update("accounts").
			Set("balance", sq.Expr("balance - ?", order.Locked)).
			Set("locked", sq.Expr("locked + ?", order.Locked)).
			Where(sq.Eq{"member_id": order.MemberID, "currency": order.DebitedCurrency()})

		sql, args, err = reserveSt.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}

		insertSt := r.db.QueryBuilder.
			Insert("orders").
			Columns("uuid", "side", "ord_type", "market_id", "price",
				"volume", "origin_volume", "locked", "origin_locked",
				"state", "member_id", "ask_unit", "bid_unit", "created_at").
			Values(order.UUID, order.Side, order.Type, order.MarketID, order.Price,
				order.Volume, order.OriginVolume, order.Locked, order.OriginLocked,
				order.State, order.MemberID, order.AskUnit, order.BidUnit, order.CreatedAt).
			Suffix("returning id")

		sql, args, err = insertSt.ToSql()
		if err != nil {
			return err
		}

		return tx.QueryRow(ctx, sql, args...).Scan(&order.ID)
	})

	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return nil, domain.ErrConflictingData
			case pgerrcode.CheckViolation:
				return nil, domain.ErrInvalidOrder
			}
		}
		return nil, err
	}
	return order, nil
}

func (r *Repository) scanOrderRow(row pgx.Row) (*domain.Order, error) {
	order := domain.Order{}
	err := row.Scan(
		&order.ID,
		&order.UUID,
		&order.Side,
		&order.Type,
		&order.MarketID,
		&order.Price,
		&order.Volume,
		&order.OriginVolume,
		&order.Locked,
		&order.OriginLocked,
		&order.State,
		&order.MemberID,
		&order.AskUnit,
		&order.BidUnit,
		&order.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *Repository) ReadOrder(ctx context.Context, id uint64) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return r.scanOrderRow(r.db.QueryRow(ctx, sql, args...))
}

func (r *Repository) ReadOrderByUUID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"uuid": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return r.scanOrderRow(r.db.QueryRow(ctx, sql, args...))
}

func (r *Repository) ReadMarket(ctx context.Context, id string) (*domain.Market, error) {
	statement := r.db.QueryBuilder.
		Select("id", "base_unit", "quote_unit", "engine_driver").
		From("markets").
		Where(sq.Eq{"id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	market := domain.Market{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&market.ID,
		&market.BaseUnit,
		&market.QuoteUnit,
		&market.Engine.Driver,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &market, nil
}

func (r *Repository) ReadMemberByUID(ctx context.Context, uid string) (*domain.Member, error) {
	statement := r.db.QueryBuilder.
		Select("id", "uid").
		From("members").
		Where(sq.Eq{"uid": uid})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	member := domain.Member{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&member.ID, &member.UID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &member, nil
}

// Balance implements port.BalanceSource from the accounts table.
func (r *Repository) Balance(ctx context.Context, memberID uint64, currency string) (decimal.Decimal, error) {
	statement := r.db.QueryBuilder.
		Select("balance").
		From("accounts").
		Where(sq.Eq{"member_id": memberID, "currency": currency})

	sql, args, err := statement.ToSql()
	if err != nil {
		return decimal.Zero, err
	}

	var balance decimal.Decimal
	err = r.db.QueryRow(ctx, sql, args...).Scan(&balance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}

	return balance, nil
}

func (r *Repository) StashCommand(ctx context.Context, queue string, payload []byte) error {
	statement := r.db.QueryBuilder.
		Insert("command_outbox").
		Columns("queue", "payload").
		Values(queue, payload)

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *Repository) ListStashedCommands(ctx context.Context, limit int) ([]*domain.OutboxCommand, error) {
	statement := r.db.QueryBuilder.
		Select("id", "queue", "payload", "created_at").
		From("command_outbox").
		Where("delivered_at is null").
		OrderBy("id").
		Limit(uint64(limit))

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	list := make([]*domain.OutboxCommand, 0)
	for rows.Next() {
		cmd := domain.OutboxCommand{}
		err := rows.Scan(&cmd.ID, &cmd.Queue, &cmd.Payload, &cmd.CreatedAt)
		if err != nil {
			return nil, err
		}
		list = append(list, &cmd)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) MarkCommandDelivered(ctx context.Context, id uint64) error {
	statement := r.db.QueryBuilder.
		Update("command_outbox").
		Set("delivered_at", time.Now()).
		Where(sq.Eq{"id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
