package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/vaqsi1990/cloth-sub002/internal/domain"
	"github.com/vaqsi1990/cloth-sub002/pkg/auth"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func userColumns() []string {
	return []string{"id", "login", "password_hash", "role", "verified", "blocked", "created_at"}
}

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	query := regexp.QuoteMeta(`
        SELECT id, login, password_hash, role, verified, blocked, created_at
        FROM users
        WHERE login = $1
    `)

	tests := []struct {
		name      string
		mockSetup func()
		expected  *domain.User
		expectErr bool
	}{
		{
			name: "User found",
			mockSetup: func() {
				rows := pgxmock.NewRows(userColumns()).
					AddRow(1, "testuser", "hashed", auth.RoleUser, false, false, now)
				mock.ExpectQuery(query).WithArgs("testuser").WillReturnRows(rows)
			},
			expected: &domain.User{ID: 1, Login: "testuser", PasswordHash: "hashed", Role: auth.RoleUser, CreatedAt: now},
		},
		{
			name: "Unknown login returns nil",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("testuser").WillReturnError(pgx.ErrNoRows)
			},
			expected: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("testuser").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			user, err := repo.FindByLogin(context.Background(), "testuser")
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, user)
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	query := regexp.QuoteMeta(`
        SELECT id, login, password_hash, role, verified, blocked, created_at
        FROM users
        WHERE id = $1
    `)

	tests := []struct {
		name      string
		mockSetup func()
		expected  *domain.User
	}{
		{
			name: "Blocked seller comes back with the flag set",
			mockSetup: func() {
				rows := pgxmock.NewRows(userColumns()).
					AddRow(10, "seller", "hashed", auth.RoleUser, false, true, now)
				mock.ExpectQuery(query).WithArgs(10).WillReturnRows(rows)
			},
			expected: &domain.User{ID: 10, Login: "seller", PasswordHash: "hashed", Role: auth.RoleUser, Blocked: true, CreatedAt: now},
		},
		{
			name: "Unknown id returns nil",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(10).WillReturnError(pgx.ErrNoRows)
			},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			user, err := repo.FindByID(context.Background(), 10)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, user)
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	query := regexp.QuoteMeta(`
        INSERT INTO users (login, password_hash, role)
        VALUES ($1, $2, $3)
        RETURNING id, login, password_hash, role, verified, blocked, created_at
    `)

	tests := []struct {
		name      string
		mockSetup func()
		expected  *domain.User
		expectErr bool
	}{
		{
			name: "Successfully creates user",
			mockSetup: func() {
				rows := pgxmock.NewRows(userColumns()).
					AddRow(1, "testuser", "hashed", auth.RoleUser, false, false, now)
				mock.ExpectQuery(query).WithArgs("testuser", "hashed", auth.RoleUser).WillReturnRows(rows)
			},
			expected: &domain.User{ID: 1, Login: "testuser", PasswordHash: "hashed", Role: auth.RoleUser, CreatedAt: now},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("testuser", "hashed", auth.RoleUser).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			user, err := repo.Create(context.Background(), &domain.User{Login: "testuser", PasswordHash: "hashed", Role: auth.RoleUser})
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, user)
		})
	}
}

func TestRepository_FindVerification(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT id, user_id, entrepreneur_status
        FROM verifications
        WHERE user_id = $1
    `)

	tests := []struct {
		name      string
		mockSetup func()
		expected  *domain.Verification
	}{
		{
			name: "Verification present",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "entrepreneur_status"}).
					AddRow(1, 10, domain.EntrepreneurStatusApproved)
				mock.ExpectQuery(query).WithArgs(10).WillReturnRows(rows)
			},
			expected: &domain.Verification{ID: 1, UserID: 10, EntrepreneurStatus: domain.EntrepreneurStatusApproved},
		},
		{
			name: "No verification returns nil",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(10).WillReturnError(pgx.ErrNoRows)
			},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			v, err := repo.FindVerification(context.Background(), 10)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestRepository_SetBlocked(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE users
        SET blocked = $1
        WHERE id = $2
    `)).
		WithArgs(true, 10).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.SetBlocked(context.Background(), 10, true)
	assert.NoError(t, err)
}
