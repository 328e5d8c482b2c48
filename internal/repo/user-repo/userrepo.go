package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/vaqsi1990/cloth-sub002/internal/domain"
	"github.com/vaqsi1990/cloth-sub002/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	query := `
        SELECT id, login, password_hash, role, verified, blocked, created_at
        FROM users
        WHERE login = $1
    `
	row := r.db.QueryRow(ctx, query, login)

	var user domain.User
	err := row.Scan(&user.ID, &user.Login, &user.PasswordHash, &user.Role, &user.Verified, &user.Blocked, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by login", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	query := `
        SELECT id, login, password_hash, role, verified, blocked, created_at
        FROM users
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var user domain.User
	err := row.Scan(&user.ID, &user.Login, &user.PasswordHash, &user.Role, &user.Verified, &user.Blocked, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (login, password_hash, role)
        VALUES ($1, $2, $3)
        RETURNING id, login, password_hash, role, verified, blocked, created_at
    `
	row := r.db.QueryRow(ctx, query, user.Login, user.PasswordHash, user.Role)

	var created domain.User
	err := row.Scan(&created.ID, &created.Login, &created.PasswordHash, &created.Role, &created.Verified, &created.Blocked, &created.CreatedAt)
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) FindVerification(ctx context.Context, userID int) (*domain.Verification, error) {
	query := `
        SELECT id, user_id, entrepreneur_status
        FROM verifications
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)

	var v domain.Verification
	err := row.Scan(&v.ID, &v.UserID, &v.EntrepreneurStatus)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find verification", zap.Error(err))
		return nil, err
	}
	return &v, nil
}

func (r *Repository) SetBlocked(ctx context.Context, userID int, blocked bool) error {
	query := `
        UPDATE users
        SET blocked = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, blocked, userID)
	if err != nil {
		zap.L().Error("can't update blocked flag", zap.Int("userID", userID), zap.Error(err))
		return err
	}
	return nil
}
