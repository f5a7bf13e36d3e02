package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/GlebRadaev/coursehub/internal/domain"
	"github.com/GlebRadaev/coursehub/pkg/auth"
)

type PaymentService interface {
	CreatePayment(ctx context.Context, actor *domain.Principal, courseID, method, note string) (*domain.Payment, error)
	UpdatePaymentStatus(ctx context.Context, actor *domain.Principal, id, status string, refundReason *string) (*domain.Payment, error)
	GetPayment(ctx context.Context, actor *domain.Principal, id string) (*domain.Payment, error)
	ListUserPayments(ctx context.Context, actor *domain.Principal) ([]domain.Payment, error)
}

type EnrollmentService interface {
	CreateEnrollment(ctx context.Context, actor *domain.Principal, userID, courseID string) (*domain.Enrollment, error)
	GetUserEnrollments(ctx context.Context, actor *domain.Principal) ([]domain.Enrollment, error)
	CompleteLesson(ctx context.Context, actor *domain.Principal, courseID, lessonID string) (*domain.Enrollment, error)
}

type Resolver struct {
	payments    PaymentService
	enrollments EnrollmentService
}

func NewResolver(payments PaymentService, enrollments EnrollmentService) *Resolver {
	return &Resolver{
		payments:    payments,
		enrollments: enrollments,
	}
}

func (r *Resolver) Payment(ctx context.Context, args struct{ ID graphql.ID }) (*paymentResolver, error) {
	payment, err := r.payments.GetPayment(ctx, auth.PrincipalFromContext(ctx), string(args.ID))
	if err != nil {
		return nil, resolverError(err)
	}
	return &paymentResolver{p: payment}, nil
}

func (r *Resolver) MyPayments(ctx context.Context) ([]*paymentResolver, error) {
	payments, err := r.payments.ListUserPayments(ctx, auth.PrincipalFromContext(ctx))
	if err != nil {
		return nil, resolverError(err)
	}
	result := make([]*paymentResolver, 0, len(payments))
	for i := range payments {
		result = append(result, &paymentResolver{p: &payments[i]})
	}
	return result, nil
}

func (r *Resolver) MyEnrollments(ctx context.Context) ([]*enrollmentResolver, error) {
	enrollments, err := r.enrollments.GetUserEnrollments(ctx, auth.PrincipalFromContext(ctx))
	if err != nil {
		return nil, resolverError(err)
	}
	result := make([]*enrollmentResolver, 0, len(enrollments))
	for i := range enrollments {
		result = append(result, &enrollmentResolver{e: &enrollments[i]})
	}
	return result, nil
}

type updatePaymentStatusArgs struct {
	ID           graphql.ID
	Status       string
	RefundReason *string
}

func (r *Resolver) UpdatePaymentStatus(ctx context.Context, args updatePaymentStatusArgs) (*paymentResolver, error) {
	payment, err := r.payments.UpdatePaymentStatus(ctx, auth.PrincipalFromContext(ctx), string(args.ID), args.Status, args.RefundReason)
	if err != nil {
		return nil, resolverError(err)
	}
	return &paymentResolver{p: payment}, nil
}

type createPaymentArgs struct {
	CourseID        graphql.ID
	Method          string
	TransactionNote *string
}

func (r *Resolver) CreatePayment(ctx context.Context, args createPaymentArgs) (*paymentResolver, error) {
	var note string
	if args.TransactionNote != nil {
		note = *args.TransactionNote
	}
	payment, err := r.payments.CreatePayment(ctx, auth.PrincipalFromContext(ctx), string(args.CourseID), args.Method, note)
	if err != nil {
		return nil, resolverError(err)
	}
	return &paymentResolver{p: payment}, nil
}

func (r *Resolver) CreateEnrollment(ctx context.Context, args struct {
	UserID   graphql.ID
	CourseID graphql.ID
}) (*enrollmentResolver, error) {
	enrollment, err := r.enrollments.CreateEnrollment(ctx, auth.PrincipalFromContext(ctx), string(args.UserID), string(args.CourseID))
	if err != nil {
		return nil, resolverError(err)
	}
	return &enrollmentResolver{e: enrollment}, nil
}

func (r *Resolver) CompleteLesson(ctx context.Context, args struct {
	CourseID graphql.ID
	LessonID graphql.ID
}) (*enrollmentResolver, error) {
	enrollment, err := r.enrollments.CompleteLesson(ctx, auth.PrincipalFromContext(ctx), string(args.CourseID), string(args.LessonID))
	if err != nil {
		return nil, resolverError(err)
	}
	return &enrollmentResolver{e: enrollment}, nil
}
