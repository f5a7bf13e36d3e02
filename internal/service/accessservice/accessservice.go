package accessservice

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/coursehub/internal/domain"
	"github.com/GlebRadaev/coursehub/pkg/apperr"
)

type EnrollmentRepo interface {
	FindActiveByUserAndCourse(ctx context.Context, userID, courseID uuid.UUID) (*domain.Enrollment, error)
}

var (
	ErrUnauthenticated = apperr.UnauthenticatedErr("Authentication required")
	ErrForbidden       = apperr.ForbiddenErr("You do not have permission to perform this action")
	ErrNotEnrolled     = apperr.ForbiddenErr("You are not enrolled in this course")
)

type options struct {
	courseID *uuid.UUID
}

type Option func(*options)

// WithEnrollment additionally requires students to hold an active
// enrollment in the course.
func WithEnrollment(courseID uuid.UUID) Option {
	return func(o *options) {
		o.courseID = &courseID
	}
}

type Service struct {
	repo EnrollmentRepo
}

func New(repo EnrollmentRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) RequireAuthAndRoles(ctx context.Context, p *domain.Principal, roles []domain.Role, opts ...Option) (domain.Principal, error) {
	if p == nil {
		return domain.Principal{}, ErrUnauthenticated
	}
	if !hasRole(p.Role, roles) {
		zap.L().Info("role not allowed", zap.String("user_id", p.UserID.String()), zap.String("role", string(p.Role)))
		return domain.Principal{}, ErrForbidden
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.courseID == nil || p.Role != domain.RoleStudent {
		return *p, nil
	}

	enrollment, err := s.repo.FindActiveByUserAndCourse(ctx, p.UserID, *o.courseID)
	if err != nil {
		zap.L().Error("can't check enrollment", zap.Error(err))
		return domain.Principal{}, apperr.Wrap(err)
	}
	if enrollment == nil {
		return domain.Principal{}, ErrNotEnrolled
	}
	return *p, nil
}

func hasRole(role domain.Role, roles []domain.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
