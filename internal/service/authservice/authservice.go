package authservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/coursehub/internal/domain"
	userrepo "github.com/GlebRadaev/coursehub/internal/repo/user-repo"
	"github.com/GlebRadaev/coursehub/pkg/apperr"
	"github.com/GlebRadaev/coursehub/pkg/auth"
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

var (
	ErrCredentialsRequired = apperr.InvalidErr("Login and password are required")
	ErrLoginTaken          = apperr.ConflictErr("LOGIN_TAKEN", "Username already taken")
	ErrInvalidCredentials  = apperr.UnauthenticatedErr("Invalid login or password")
)

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	tokenTTL    time.Duration
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, tokenTTL time.Duration) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
		tokenTTL:    tokenTTL,
	}
}

// Register creates a student account. Instructors and admins are promoted
// directly in the database.
func (s *Service) Register(ctx context.Context, login, password string) (*domain.User, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, ErrCredentialsRequired
	}
	existingUser, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, apperr.Wrap(err)
	}
	if existingUser != nil {
		zap.L().Info("user already exists, login: ", zap.String("login", login))
		return nil, ErrLoginTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, apperr.Wrap(err)
	}
	user := &domain.User{
		ID:           uuid.New(),
		Login:        login,
		PasswordHash: hashedPassword,
		Role:         domain.RoleStudent,
		CreatedAt:    time.Now().UTC(),
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userrepo.ErrLoginTaken) {
			return nil, ErrLoginTaken
		}
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, apperr.Wrap(err)
	}

	zap.L().Info("user successfully registered", zap.String("login", login))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return user, nil
}

func (s *Service) GenerateToken(user *domain.User) (string, error) {
	expirationTime := time.Now().Add(s.tokenTTL)

	token, err := s.jwtService.GenerateJWT(domain.Principal{UserID: user.ID, Role: user.Role}, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", apperr.Wrap(err)
	}
	return token, nil
}
