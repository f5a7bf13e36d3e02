package service

import (
	"github.com/GlebRadaev/coursehub/internal/config"
	"github.com/GlebRadaev/coursehub/internal/handlers/auth"
	"github.com/GlebRadaev/coursehub/internal/handlers/courses"
	"github.com/GlebRadaev/coursehub/internal/handlers/enrollments"
	"github.com/GlebRadaev/coursehub/internal/handlers/payments"
	"github.com/GlebRadaev/coursehub/internal/pg"

	pkgauth "github.com/GlebRadaev/coursehub/pkg/auth"

	"github.com/GlebRadaev/coursehub/internal/repo"
	"github.com/GlebRadaev/coursehub/internal/service/accessservice"
	"github.com/GlebRadaev/coursehub/internal/service/authservice"
	"github.com/GlebRadaev/coursehub/internal/service/courseservice"
	"github.com/GlebRadaev/coursehub/internal/service/enrollmentservice"
	"github.com/GlebRadaev/coursehub/internal/service/paymentservice"
	"github.com/GlebRadaev/coursehub/internal/sweeper"
)

type Services struct {
	AuthService       auth.Service
	CourseService     courses.Service
	PaymentService    payments.Service
	EnrollmentService enrollments.Service

	PaymentExpirer sweeper.PaymentService
	TokenValidator pkgauth.TokenValidator
}

func New(repo *repo.Repositories, txManager pg.TXManager, cfg *config.Config) *Services {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)
	gate := accessservice.New(repo.AccessRepo)

	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, jwtService, cfg.TokenTTL)
	courseService := courseservice.New(repo.CourseRepo, gate)
	enrollmentService := enrollmentservice.New(repo.EnrollmentRepo, repo.UserRepo, repo.CourseRepo, gate, txManager)
	paymentService := paymentservice.New(repo.PaymentRepo, repo.CourseRepo, enrollmentService, gate, txManager)

	return &Services{
		AuthService:       authService,
		CourseService:     courseService,
		PaymentService:    paymentService,
		EnrollmentService: enrollmentService,
		PaymentExpirer:    paymentService,
		TokenValidator:    jwtService,
	}
}
