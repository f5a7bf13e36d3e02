package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/coursehub/internal/domain"
)

var userColumns = []string{"id", "login", "password_hash", "role", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	id := uuid.New()
	query := regexp.QuoteMeta("SELECT id, login, password_hash, role, created_at FROM users WHERE login = $1")

	tests := []struct {
		name      string
		login     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User found",
			login: "test_user",
			mockSetup: func() {
				rows := pgxmock.NewRows(userColumns).
					AddRow(id, "test_user", "hashed_password", domain.RoleStudent, now)
				mock.ExpectQuery(query).
					WithArgs("test_user").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.User{
				ID:           id,
				Login:        "test_user",
				PasswordHash: "hashed_password",
				Role:         domain.RoleStudent,
				CreatedAt:    now,
			},
		},
		{
			name:  "User not found",
			login: "non_existing_user",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("non_existing_user").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:  "Database error",
			login: "test_user",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("test_user").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByLogin(context.Background(), tt.login)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	id := uuid.New()
	query := regexp.QuoteMeta("SELECT id, login, password_hash, role, created_at FROM users WHERE id = $1")

	mock.ExpectQuery(query).WithArgs(id).
		WillReturnRows(pgxmock.NewRows(userColumns).AddRow(id, "admin", "hash", domain.RoleAdmin, now))
	user, err := repo.FindByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)

	mock.ExpectQuery(query).WithArgs(id).WillReturnError(pgx.ErrNoRows)
	user, err = repo.FindByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	id := uuid.New()
	query := regexp.QuoteMeta("INSERT INTO users (id, login, password_hash, role, created_at) VALUES ($1, $2, $3, $4, $5)")

	tests := []struct {
		name        string
		mockSetup   func()
		expectedErr error
		expectErr   bool
	}{
		{
			name: "Create user successfully",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(id, "new_user", "hashed_password", domain.RoleStudent, now).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Login taken",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(id, "new_user", "hashed_password", domain.RoleStudent, now).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectErr:   true,
			expectedErr: ErrLoginTaken,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(id, "new_user", "hashed_password", domain.RoleStudent, now).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			user := &domain.User{ID: id, Login: "new_user", PasswordHash: "hashed_password", Role: domain.RoleStudent, CreatedAt: now}
			result, err := repo.Create(context.Background(), user)
			if tt.expectErr {
				assert.Error(t, err)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				}
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, user, result)
		})
	}
}
