package enrollments

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/coursehub/internal/domain"
	"github.com/GlebRadaev/coursehub/internal/dto"
	"github.com/GlebRadaev/coursehub/pkg/auth"
	"github.com/GlebRadaev/coursehub/pkg/utils"
)

type Service interface {
	CreateEnrollment(ctx context.Context, actor *domain.Principal, userID, courseID string) (*domain.Enrollment, error)
	GetUserEnrollments(ctx context.Context, actor *domain.Principal) ([]domain.Enrollment, error)
	CompleteLesson(ctx context.Context, actor *domain.Principal, courseID, lessonID string) (*domain.Enrollment, error)
	CancelEnrollment(ctx context.Context, actor *domain.Principal, enrollmentID string) (*domain.Enrollment, error)
}

type EnrollmentHandler struct {
	enrollmentService Service
}

func New(enrollmentService Service) *EnrollmentHandler {
	return &EnrollmentHandler{
		enrollmentService: enrollmentService,
	}
}

// GetEnrollments godoc
//
//	@Summary		List own enrollments
//	@Description	Retrieve the enrollments of the authorized user
//	@Tags			Enrollments
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.EnrollmentResponseDTO
//	@Success		204	{object}	utils.Response	"No data available"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/enrollments [get]
func (h *EnrollmentHandler) GetEnrollments(w http.ResponseWriter, r *http.Request) {
	enrollments, err := h.enrollmentService.GetUserEnrollments(r.Context(), auth.PrincipalFromContext(r.Context()))
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	if len(enrollments) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	response := make([]dto.EnrollmentResponseDTO, 0, len(enrollments))
	for i := range enrollments {
		response = append(response, dto.NewEnrollmentResponse(&enrollments[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreateEnrollment godoc
//
//	@Summary		Enroll a user manually
//	@Description	Admin only. Creates an active enrollment without a payment.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateEnrollmentRequestDTO	true	"Enrollment request body"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.EnrollmentResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		404	{object}	utils.Response	"User or course not found"
//	@Failure		409	{object}	utils.Response	"User is already enrolled"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/enrollments [post]
func (h *EnrollmentHandler) CreateEnrollment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEnrollmentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	enrollment, err := h.enrollmentService.CreateEnrollment(r.Context(), auth.PrincipalFromContext(r.Context()), req.UserID, req.CourseID)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewEnrollmentResponse(enrollment))
}

// CompleteLesson godoc
//
//	@Summary		Mark a lesson as completed
//	@Description	Records the lesson in the caller's enrollment and recalculates progress
//	@Tags			Enrollments
//	@Produce		json
//	@Param			courseID	path	string	true	"Course ID"
//	@Param			lessonID	path	string	true	"Lesson ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.EnrollmentResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid identifier"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not enrolled in this course"
//	@Failure		404	{object}	utils.Response	"Lesson not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/courses/{courseID}/lessons/{lessonID}/complete [post]
func (h *EnrollmentHandler) CompleteLesson(w http.ResponseWriter, r *http.Request) {
	enrollment, err := h.enrollmentService.CompleteLesson(r.Context(), auth.PrincipalFromContext(r.Context()),
		chi.URLParam(r, "courseID"), chi.URLParam(r, "lessonID"))
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewEnrollmentResponse(enrollment))
}

// CancelEnrollment godoc
//
//	@Summary		Cancel an enrollment
//	@Description	Admin only. The enrollment is kept with a deleted flag and CANCELLED status.
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path	string	true	"Enrollment ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.EnrollmentResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		404	{object}	utils.Response	"Enrollment not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/enrollments/{id} [delete]
func (h *EnrollmentHandler) CancelEnrollment(w http.ResponseWriter, r *http.Request) {
	enrollment, err := h.enrollmentService.CancelEnrollment(r.Context(), auth.PrincipalFromContext(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewEnrollmentResponse(enrollment))
}
