package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/coursehub/docs"
	"github.com/GlebRadaev/coursehub/internal/graph"
	authhandlers "github.com/GlebRadaev/coursehub/internal/handlers/auth"
	coursehandlers "github.com/GlebRadaev/coursehub/internal/handlers/courses"
	enrollmenthandlers "github.com/GlebRadaev/coursehub/internal/handlers/enrollments"
	paymenthandlers "github.com/GlebRadaev/coursehub/internal/handlers/payments"
	"github.com/GlebRadaev/coursehub/internal/service"
	"github.com/GlebRadaev/coursehub/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	CreatePayment(w http.ResponseWriter, r *http.Request)
	GetPayments(w http.ResponseWriter, r *http.Request)
	GetPayment(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	GetByReference(w http.ResponseWriter, r *http.Request)
}

type EnrollmentHandler interface {
	GetEnrollments(w http.ResponseWriter, r *http.Request)
	CreateEnrollment(w http.ResponseWriter, r *http.Request)
	CompleteLesson(w http.ResponseWriter, r *http.Request)
	CancelEnrollment(w http.ResponseWriter, r *http.Request)
}

type CourseHandler interface {
	CreateCourse(w http.ResponseWriter, r *http.Request)
	GetCourse(w http.ResponseWriter, r *http.Request)
	PublishCourse(w http.ResponseWriter, r *http.Request)
	CreateSection(w http.ResponseWriter, r *http.Request)
	CreateLesson(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	PaymentHandler    PaymentHandler
	EnrollmentHandler EnrollmentHandler
	CourseHandler     CourseHandler
	GraphQL           http.Handler

	validator auth.TokenValidator
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		PaymentHandler:    paymenthandlers.New(s.PaymentService),
		EnrollmentHandler: enrollmenthandlers.New(s.EnrollmentService),
		CourseHandler:     coursehandlers.New(s.CourseService),
		GraphQL:           graph.NewHandler(s.PaymentService, s.EnrollmentService),
		validator:         s.TokenValidator,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.With(auth.Identify(h.validator)).Method(http.MethodPost, "/graphql", h.GraphQL)

	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Route("/courses", func(r chi.Router) {
			r.With(auth.Identify(h.validator)).Get("/{courseID}", h.CourseHandler.GetCourse)

			r.Group(func(r chi.Router) {
				r.Use(auth.Authenticate(h.validator))
				r.Post("/", h.CourseHandler.CreateCourse)
				r.Post("/{courseID}/publish", h.CourseHandler.PublishCourse)
				r.Post("/{courseID}/sections", h.CourseHandler.CreateSection)
				r.Post("/{courseID}/lessons/{lessonID}/complete", h.EnrollmentHandler.CompleteLesson)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate(h.validator))

			r.Route("/payments", func(r chi.Router) {
				r.Post("/", h.PaymentHandler.CreatePayment)
				r.Get("/", h.PaymentHandler.GetPayments)
				r.Get("/{id}", h.PaymentHandler.GetPayment)
			})
			r.Get("/enrollments", h.EnrollmentHandler.GetEnrollments)
			r.Post("/sections/{sectionID}/lessons", h.CourseHandler.CreateLesson)

			r.Route("/admin", func(r chi.Router) {
				r.Patch("/payments/{id}/status", h.PaymentHandler.UpdateStatus)
				r.Get("/payments/reference/{reference}", h.PaymentHandler.GetByReference)
				r.Post("/enrollments", h.EnrollmentHandler.CreateEnrollment)
				r.Delete("/enrollments/{id}", h.EnrollmentHandler.CancelEnrollment)
			})
		})
	})

	return r
}
