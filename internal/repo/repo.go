package repo

import (
	"github.com/GlebRadaev/coursehub/internal/pg"
	courserepo "github.com/GlebRadaev/coursehub/internal/repo/course-repo"
	enrollmentrepo "github.com/GlebRadaev/coursehub/internal/repo/enrollment-repo"
	paymentrepo "github.com/GlebRadaev/coursehub/internal/repo/payment-repo"
	userrepo "github.com/GlebRadaev/coursehub/internal/repo/user-repo"
	"github.com/GlebRadaev/coursehub/internal/service/accessservice"
	"github.com/GlebRadaev/coursehub/internal/service/authservice"
	"github.com/GlebRadaev/coursehub/internal/service/courseservice"
	"github.com/GlebRadaev/coursehub/internal/service/enrollmentservice"
	"github.com/GlebRadaev/coursehub/internal/service/paymentservice"
)

type Repositories struct {
	UserRepo       authservice.Repo
	CourseRepo     courseservice.Repo
	PaymentRepo    paymentservice.Repo
	EnrollmentRepo enrollmentservice.Repo
	AccessRepo     accessservice.EnrollmentRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	courseRepo := courserepo.New(conn, txManager)
	paymentRepo := paymentrepo.New(conn, txManager)
	enrollmentRepo := enrollmentrepo.New(conn, txManager)

	return &Repositories{
		UserRepo:       userRepo,
		CourseRepo:     courseRepo,
		PaymentRepo:    paymentRepo,
		EnrollmentRepo: enrollmentRepo,
		AccessRepo:     enrollmentRepo,
	}
}
