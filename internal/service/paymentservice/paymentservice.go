package paymentservice

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/coursehub/internal/domain"
	"github.com/GlebRadaev/coursehub/internal/pg"
	"github.com/GlebRadaev/coursehub/internal/service/accessservice"
	"github.com/GlebRadaev/coursehub/pkg/apperr"
	"github.com/GlebRadaev/coursehub/pkg/validate"
)

type Repo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
	FindByReference(ctx context.Context, reference string) (*domain.Payment, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Payment, error)
	FindStalePending(ctx context.Context, before time.Time, limit uint32) ([]domain.Payment, error)
	Save(ctx context.Context, payment *domain.Payment) error
	Update(ctx context.Context, payment *domain.Payment) error
}

type CourseRepo interface {
	FindCourseByID(ctx context.Context, id uuid.UUID) (*domain.Course, error)
}

type Enrollments interface {
	Reconcile(ctx context.Context, userID, courseID uuid.UUID) (*domain.Enrollment, error)
}

type Gate interface {
	RequireAuthAndRoles(ctx context.Context, p *domain.Principal, roles []domain.Role, opts ...accessservice.Option) (domain.Principal, error)
}

var (
	ErrPaymentIDRequired    = apperr.InvalidErr("Payment ID is required")
	ErrInvalidStatus        = apperr.InvalidErr("Invalid payment status")
	ErrRefundReasonRequired = apperr.InvalidErr("Refund reason is required when status is REFUNDED")
	ErrPaymentNotFound      = apperr.NotFoundErr("PAYMENT_NOT_FOUND", "Payment not found")
	ErrCourseNotFound       = apperr.NotFoundErr("COURSE_NOT_FOUND", "Course not found")
	ErrCourseNotPublished   = apperr.InvalidErr("Course is not available for purchase")
	ErrInvalidMethod        = apperr.InvalidErr("Invalid payment method")
	ErrInvalidReference     = apperr.InvalidErr("Invalid payment reference")
)

type Service struct {
	repo        Repo
	courses     CourseRepo
	enrollments Enrollments
	gate        Gate
	txManager   pg.TXManager
	now         func() time.Time
}

func New(repo Repo, courses CourseRepo, enrollments Enrollments, gate Gate, txManager pg.TXManager) *Service {
	return &Service{
		repo:        repo,
		courses:     courses,
		enrollments: enrollments,
		gate:        gate,
		txManager:   txManager,
		now:         time.Now,
	}
}

func (s *Service) CreatePayment(ctx context.Context, actor *domain.Principal, courseID, method, note string) (*domain.Payment, error) {
	p, err := s.gate.RequireAuthAndRoles(ctx, actor, []domain.Role{domain.RoleStudent})
	if err != nil {
		return nil, err
	}
	cid, err := uuid.Parse(courseID)
	if err != nil {
		return nil, ErrCourseNotFound
	}
	m := domain.PaymentMethod(method)
	if !m.Valid() {
		return nil, ErrInvalidMethod
	}

	course, err := s.courses.FindCourseByID(ctx, cid)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}
	if !course.Published {
		return nil, ErrCourseNotPublished
	}

	now := s.now().UTC()
	payment := &domain.Payment{
		ID:              uuid.New(),
		UserID:          p.UserID,
		CourseID:        course.ID,
		Amount:          course.Price,
		Status:          domain.PaymentPending,
		Method:          m,
		Reference:       validate.NewReference(),
		TransactionNote: strings.TrimSpace(note),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.Save(ctx, payment); err != nil {
		zap.L().Error("can't save payment", zap.Error(err))
		return nil, apperr.Wrap(err)
	}

	zap.L().Info("payment created",
		zap.String("payment_id", payment.ID.String()),
		zap.String("reference", payment.Reference),
	)
	return payment, nil
}

// UpdatePaymentStatus moves the payment to status. The first approval of a
// payment grants or extends the buyer's enrollment in the same transaction.
func (s *Service) UpdatePaymentStatus(ctx context.Context, actor *domain.Principal, id, status string, refundReason *string) (*domain.Payment, error) {
	if _, err := s.gate.RequireAuthAndRoles(ctx, actor, []domain.Role{domain.RoleAdmin}); err != nil {
		return nil, err
	}

	payment, err := s.transition(ctx, id, status, refundReason)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	return payment, nil
}

func (s *Service) transition(ctx context.Context, id, status string, refundReason *string) (*domain.Payment, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrPaymentIDRequired
	}
	next := domain.PaymentStatus(status)
	if !next.Valid() {
		return nil, ErrInvalidStatus
	}
	paymentID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrPaymentNotFound
	}

	var payment *domain.Payment
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		payment, err = s.repo.FindByIDForUpdate(ctx, paymentID)
		if err != nil {
			return err
		}
		if payment == nil {
			return ErrPaymentNotFound
		}
		previous := payment.Status

		if next == domain.PaymentApproved && previous != domain.PaymentApproved {
			if _, err := s.enrollments.Reconcile(ctx, payment.UserID, payment.CourseID); err != nil {
				return err
			}
		}
		if next == domain.PaymentRefunded {
			if refundReason == nil || strings.TrimSpace(*refundReason) == "" {
				return ErrRefundReasonRequired
			}
			reason := *refundReason
			payment.RefundReason = &reason
		}
		if previous == domain.PaymentRefunded && next != domain.PaymentRefunded {
			zap.L().Warn("payment leaves refunded status",
				zap.String("payment_id", payment.ID.String()),
				zap.String("status", string(next)),
			)
		}

		payment.Status = next
		payment.UpdatedAt = s.now().UTC()
		if err := s.repo.Update(ctx, payment); err != nil {
			zap.L().Error("can't update payment", zap.Error(err))
			return err
		}

		zap.L().Info("payment status updated",
			zap.String("payment_id", payment.ID.String()),
			zap.String("from", string(previous)),
			zap.String("to", string(next)),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// ExpirePending fails a payment that is still PENDING once its row is locked.
// A payment that moved on since it was picked is left untouched and
// expired is false.
func (s *Service) ExpirePending(ctx context.Context, actor *domain.Principal, id uuid.UUID) (expired bool, err error) {
	if _, err := s.gate.RequireAuthAndRoles(ctx, actor, []domain.Role{domain.RoleAdmin}); err != nil {
		return false, err
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		payment, err := s.repo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if payment == nil {
			return ErrPaymentNotFound
		}
		if payment.Status != domain.PaymentPending {
			zap.L().Info("payment no longer pending, skip expiry",
				zap.String("payment_id", payment.ID.String()),
				zap.String("status", string(payment.Status)),
			)
			return nil
		}

		payment.Status = domain.PaymentFailed
		payment.UpdatedAt = s.now().UTC()
		if err := s.repo.Update(ctx, payment); err != nil {
			zap.L().Error("can't expire payment", zap.Error(err))
			return err
		}
		expired = true
		return nil
	})
	if err != nil {
		return false, apperr.Wrap(err)
	}
	return expired, nil
}

// GetPayment is available to the buyer and to admins.
func (s *Service) GetPayment(ctx context.Context, actor *domain.Principal, id string) (*domain.Payment, error) {
	p, err := s.gate.RequireAuthAndRoles(ctx, actor, []domain.Role{domain.RoleStudent, domain.RoleInstructor, domain.RoleAdmin})
	if err != nil {
		return nil, err
	}
	paymentID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrPaymentNotFound
	}

	payment, err := s.repo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	if payment == nil || (p.Role != domain.RoleAdmin && payment.UserID != p.UserID) {
		return nil, ErrPaymentNotFound
	}
	return payment, nil
}

func (s *Service) ListUserPayments(ctx context.Context, actor *domain.Principal) ([]domain.Payment, error) {
	p, err := s.gate.RequireAuthAndRoles(ctx, actor, []domain.Role{domain.RoleStudent, domain.RoleInstructor, domain.RoleAdmin})
	if err != nil {
		return nil, err
	}
	payments, err := s.repo.FindByUserID(ctx, p.UserID)
	if err != nil {
		zap.L().Error("failed to get payments", zap.Error(err))
		return nil, apperr.Wrap(err)
	}
	return payments, nil
}

// FindByReference looks up a payment by the reference a student put into
// the bank transfer comment.
func (s *Service) FindByReference(ctx context.Context, actor *domain.Principal, reference string) (*domain.Payment, error) {
	if _, err := s.gate.RequireAuthAndRoles(ctx, actor, []domain.Role{domain.RoleAdmin}); err != nil {
		return nil, err
	}
	if !validate.IsLuhn(reference) {
		return nil, ErrInvalidReference
	}

	payment, err := s.repo.FindByReference(ctx, reference)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	return payment, nil
}
