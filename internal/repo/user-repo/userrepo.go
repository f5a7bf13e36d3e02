package userrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/coursehub/internal/domain"
	"github.com/GlebRadaev/coursehub/internal/pg"
)

var ErrLoginTaken = errors.New("login already taken")

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	return repo.findOne(ctx, "SELECT id, login, password_hash, role, created_at FROM users WHERE login = $1", login)
}

func (repo *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return repo.findOne(ctx, "SELECT id, login, password_hash, role, created_at FROM users WHERE id = $1", id)
}

func (repo *Repository) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, query, arg).Scan(&user.ID, &user.Login, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (id, login, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := repo.db.Exec(ctx, query, user.ID, user.Login, user.PasswordHash, user.Role, user.CreatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, ErrLoginTaken
		}
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}
