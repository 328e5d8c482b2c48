package transactionrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/vaqsi1990/cloth-sub002/internal/domain"
	"github.com/vaqsi1990/cloth-sub002/internal/pg"
)

const uniqueViolationCode = "23505"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) DeleteByOrderAndUser(ctx context.Context, orderID, userID int) error {
	query := `
        DELETE FROM transactions
        WHERE order_id = $1 AND user_id = $2
    `
	_, err := r.db.Exec(ctx, query, orderID, userID)
	if err != nil {
		zap.L().Error("can't delete transactions", zap.Int("orderID", orderID), zap.Int("userID", userID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Exists(ctx context.Context, orderID, userID int, txType string) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM transactions
            WHERE order_id = $1 AND user_id = $2 AND type = $3
        )
    `
	row := r.db.QueryRow(ctx, query, orderID, userID, txType)

	var exists bool
	if err := row.Scan(&exists); err != nil {
		zap.L().Error("can't check transaction existence", zap.Error(err))
		return false, err
	}
	return exists, nil
}

// Create surfaces the (order_id, user_id, type) unique violation as
// domain.ErrDuplicateTransaction so callers can take the idempotent-skip path.
func (r *Repository) Create(ctx context.Context, t *domain.Transaction) error {
	query := `
        INSERT INTO transactions (order_id, user_id, type, total)
        VALUES ($1, $2, $3, $4)
    `
	_, err := r.db.Exec(ctx, query, t.OrderID, t.UserID, t.Type, t.Total)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domain.ErrDuplicateTransaction
		}
		zap.L().Error("can't create transaction", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SumByUser(ctx context.Context, userID int) (float64, error) {
	query := `
        SELECT COALESCE(SUM(total), 0)
        FROM transactions
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)

	var sum float64
	if err := row.Scan(&sum); err != nil {
		zap.L().Error("can't sum transactions", zap.Int("userID", userID), zap.Error(err))
		return 0, err
	}
	return sum, nil
}
