package enrollmentservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/coursehub/internal/domain"
	"github.com/GlebRadaev/coursehub/internal/pg"
	enrollmentrepo "github.com/GlebRadaev/coursehub/internal/repo/enrollment-repo"
	"github.com/GlebRadaev/coursehub/internal/service/accessservice"
	"github.com/GlebRadaev/coursehub/pkg/apperr"
)

type Repo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Enrollment, error)
	FindByUserAndCourse(ctx context.Context, userID, courseID uuid.UUID) (*domain.Enrollment, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Enrollment, error)
	Save(ctx context.Context, enrollment *domain.Enrollment) error
	Update(ctx context.Context, enrollment *domain.Enrollment) error
}

type UserRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type CourseRepo interface {
	FindCourseByID(ctx context.Context, id uuid.UUID) (*domain.Course, error)
	CountLessons(ctx context.Context, courseID uuid.UUID) (int, error)
	LessonInCourse(ctx context.Context, courseID, lessonID uuid.UUID) (bool, error)
}

type Gate interface {
	RequireAuthAndRoles(ctx context.Context, p *domain.Principal, roles []domain.Role, opts ...accessservice.Option) (domain.Principal, error)
}

var (
	ErrUserNotFound        = apperr.NotFoundErr("USER_NOT_FOUND", "User not found")
	ErrCourseNotFound      = apperr.NotFoundErr("COURSE_NOT_FOUND", "Course not found")
	ErrLessonNotFound      = apperr.NotFoundErr("LESSON_NOT_FOUND", "Lesson not found in this course")
	ErrEnrollmentNotFound  = apperr.NotFoundErr("ENROLLMENT_NOT_FOUND", "Enrollment not found")
	ErrDuplicateEnrollment = apperr.ConflictErr("DUPLICATE_ENROLLMENT", "User is already enrolled in this course")
	ErrInvalidUserID       = apperr.InvalidErr("Invalid user ID")
	ErrInvalidCourseID     = apperr.InvalidErr("Invalid course ID")
	ErrInvalidLessonID     = apperr.InvalidErr("Invalid lesson ID")
	ErrInvalidEnrollmentID = apperr.InvalidErr("Invalid enrollment ID")
)

// accessMonths is how much access one approved payment buys.
const accessMonths = 1

type Service struct {
	repo      Repo
	users     UserRepo
	courses   CourseRepo
	gate      Gate
	txManager pg.TXManager
	now       func() time.Time
}

func New(repo Repo, users UserRepo, courses CourseRepo, gate Gate, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		users:     users,
		courses:   courses,
		gate:      gate,
		txManager: txManager,
		now:       time.Now,
	}
}

func (s *Service) CreateEnrollment(ctx context.Context, actor *domain.Principal, userID, courseID string) (*domain.Enrollment, error) {
	if _, err := s.gate.RequireAuthAndRoles(ctx, actor, []domain.Role{domain.RoleAdmin}); err != nil {
		return nil, err
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrInvalidUserID
	}
	cid, err := uuid.Parse(courseID)
	if err != nil {
		return nil, ErrInvalidCourseID
	}

	enrollment, err := s.create(ctx, uid, cid)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	zap.L().Info("enrollment created", zap.String("enrollment_id", enrollment.ID.String()))
	return enrollment, nil
}

func (s *Service) create(ctx context.Context, userID, courseID uuid.UUID) (*domain.Enrollment, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	course, err := s.courses.FindCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}
	existing, err := s.repo.FindByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		zap.L().Info("enrollment already exists", zap.String("enrollment_id", existing.ID.String()))
		return nil, ErrDuplicateEnrollment
	}

	now := s.now().UTC()
	enrollment := &domain.Enrollment{
		ID:               uuid.New(),
		UserID:           userID,
		CourseID:         courseID,
		Status:           domain.EnrollmentActive,
		CompletedLessons: []uuid.UUID{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	enrollment.Snapshot(now)

	if err := s.repo.Save(ctx, enrollment); err != nil {
		if errors.Is(err, enrollmentrepo.ErrDuplicate) {
			return nil, ErrDuplicateEnrollment
		}
		zap.L().Error("can't save enrollment", zap.Error(err))
		return nil, err
	}
	return enrollment, nil
}

// Reconcile grants one more month of access to the course. An existing
// enrollment is reactivated and extended from the later of now and its
// current expiry, otherwise a new one is created.
func (s *Service) Reconcile(ctx context.Context, userID, courseID uuid.UUID) (*domain.Enrollment, error) {
	var result *domain.Enrollment
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		now := s.now().UTC()
		enrollment, err := s.repo.FindByUserAndCourse(ctx, userID, courseID)
		if err != nil {
			return err
		}

		if enrollment == nil {
			enrollment, err = s.create(ctx, userID, courseID)
			if err != nil {
				return err
			}
			expiry := now.AddDate(0, accessMonths, 0)
			enrollment.ExpiryDate = &expiry
		} else {
			base := now
			if enrollment.ExpiryDate != nil && enrollment.ExpiryDate.After(now) {
				base = *enrollment.ExpiryDate
			}
			expiry := base.AddDate(0, accessMonths, 0)
			enrollment.ExpiryDate = &expiry
			enrollment.Status = domain.EnrollmentActive
			enrollment.Snapshot(now)
		}
		enrollment.UpdatedAt = now

		if err := s.repo.Update(ctx, enrollment); err != nil {
			zap.L().Error("can't update enrollment", zap.Error(err))
			return err
		}
		result = enrollment
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("enrollment reconciled",
		zap.String("enrollment_id", result.ID.String()),
		zap.Time("expiry_date", *result.ExpiryDate),
	)
	return result, nil
}

func (s *Service) GetUserEnrollments(ctx context.Context, actor *domain.Principal) ([]domain.Enrollment, error) {
	p, err := s.gate.RequireAuthAndRoles(ctx, actor, []domain.Role{domain.RoleStudent, domain.RoleInstructor, domain.RoleAdmin})
	if err != nil {
		return nil, err
	}
	enrollments, err := s.repo.FindByUserID(ctx, p.UserID)
	if err != nil {
		zap.L().Error("failed to get enrollments", zap.Error(err))
		return nil, apperr.Wrap(err)
	}
	return enrollments, nil
}

// CompleteLesson marks the lesson as done for the caller and recomputes
// progress. Reaching 100% completes the enrollment.
func (s *Service) CompleteLesson(ctx context.Context, actor *domain.Principal, courseID, lessonID string) (*domain.Enrollment, error) {
	cid, err := uuid.Parse(courseID)
	if err != nil {
		return nil, ErrInvalidCourseID
	}
	lid, err := uuid.Parse(lessonID)
	if err != nil {
		return nil, ErrInvalidLessonID
	}
	p, err := s.gate.RequireAuthAndRoles(ctx, actor, []domain.Role{domain.RoleStudent}, accessservice.WithEnrollment(cid))
	if err != nil {
		return nil, err
	}

	var result *domain.Enrollment
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.courses.LessonInCourse(ctx, cid, lid)
		if err != nil {
			return err
		}
		if !ok {
			return ErrLessonNotFound
		}
		enrollment, err := s.repo.FindByUserAndCourse(ctx, p.UserID, cid)
		if err != nil {
			return err
		}
		if enrollment == nil {
			return ErrEnrollmentNotFound
		}
		total, err := s.courses.CountLessons(ctx, cid)
		if err != nil {
			return err
		}

		now := s.now().UTC()
		if !enrollment.HasCompleted(lid) {
			enrollment.CompletedLessons = append(enrollment.CompletedLessons, lid)
		}
		enrollment.Progress = progress(len(enrollment.CompletedLessons), total)
		if enrollment.Progress == 100 {
			enrollment.Status = domain.EnrollmentCompleted
		}
		enrollment.LastAccessedAt = &now
		enrollment.UpdatedAt = now
		enrollment.Snapshot(now)

		if err := s.repo.Update(ctx, enrollment); err != nil {
			zap.L().Error("can't update enrollment", zap.Error(err))
			return err
		}
		result = enrollment
		return nil
	})
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	return result, nil
}

func progress(completed, total int) int {
	if total <= 0 {
		return 0
	}
	if completed >= total {
		return 100
	}
	return completed * 100 / total
}

// CancelEnrollment soft deletes the enrollment.
func (s *Service) CancelEnrollment(ctx context.Context, actor *domain.Principal, enrollmentID string) (*domain.Enrollment, error) {
	if _, err := s.gate.RequireAuthAndRoles(ctx, actor, []domain.Role{domain.RoleAdmin}); err != nil {
		return nil, err
	}
	id, err := uuid.Parse(enrollmentID)
	if err != nil {
		return nil, ErrInvalidEnrollmentID
	}

	enrollment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	if enrollment == nil {
		return nil, ErrEnrollmentNotFound
	}

	now := s.now().UTC()
	enrollment.Status = domain.EnrollmentCancelled
	enrollment.IsDeleted = true
	enrollment.UpdatedAt = now
	enrollment.Snapshot(now)

	if err := s.repo.Update(ctx, enrollment); err != nil {
		zap.L().Error("can't cancel enrollment", zap.Error(err))
		return nil, apperr.Wrap(err)
	}
	zap.L().Info("enrollment cancelled", zap.String("enrollment_id", enrollment.ID.String()))
	return enrollment, nil
}
