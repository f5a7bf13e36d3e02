package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/coursehub/internal/domain"
	userrepo "github.com/GlebRadaev/coursehub/internal/repo/user-repo"
	"github.com/GlebRadaev/coursehub/pkg/apperr"
	"github.com/GlebRadaev/coursehub/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, hashService, jwtService, time.Hour)
	return service, repo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		login         string
		password      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Successful registration",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "testuser").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					return user, nil
				})
			},
			expectedError: nil,
		},
		{
			name:          "Empty password",
			login:         "testuser",
			password:      "",
			prepareMock:   func() {},
			expectedError: ErrCredentialsRequired,
		},
		{
			name:     "User already exists",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "testuser").Return(&domain.User{Login: "testuser"}, nil)
			},
			expectedError: ErrLoginTaken,
		},
		{
			name:     "Login taken concurrently",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "testuser").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).Return(nil, userrepo.ErrLoginTaken)
			},
			expectedError: ErrLoginTaken,
		},
		{
			name:     "Error finding user",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "testuser").Return(nil, errors.New("database error"))
			},
			expectedError: apperr.Wrap(errors.New("database error")),
		},
		{
			name:     "Error hashing password",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "testuser").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("", errors.New("hashing error"))
			},
			expectedError: apperr.Wrap(errors.New("hashing error")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Register(context.Background(), tt.login, tt.password)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.login, user.Login)
			assert.Equal(t, "hashedpassword", user.PasswordHash)
			assert.Equal(t, domain.RoleStudent, user.Role)
			assert.NotEqual(t, uuid.Nil, user.ID)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)
	user := &domain.User{ID: uuid.New(), Login: "testuser", PasswordHash: "hashedpassword", Role: domain.RoleStudent}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name: "Successful authentication",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "testuser").Return(user, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
			expectedUser: user,
		},
		{
			name: "Unknown user",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "testuser").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "Wrong password",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "testuser").Return(user, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			result, err := service.Authenticate(context.Background(), "testuser", "testpassword")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedUser, result)
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, jwtService := NewMock(t)
	user := &domain.User{ID: uuid.New(), Role: domain.RoleAdmin}
	principal := domain.Principal{UserID: user.ID, Role: domain.RoleAdmin}

	jwtService.EXPECT().GenerateJWT(principal, gomock.Any()).DoAndReturn(func(p domain.Principal, exp time.Time) (string, error) {
		assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)
		return "token", nil
	})
	token, err := service.GenerateToken(user)
	assert.NoError(t, err)
	assert.Equal(t, "token", token)

	jwtService.EXPECT().GenerateJWT(principal, gomock.Any()).Return("", errors.New("signing error"))
	_, err = service.GenerateToken(user)
	assert.Equal(t, apperr.Internal, apperr.KindOf(err))
}
