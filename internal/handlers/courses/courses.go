package courses

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
	CreateCourse(ctx context.Context, actor *domain.Principal, title, description, price string) (*domain.Course, error)
	CreateSection(ctx context.Context, actor *domain.Principal, courseID, title string, order int) (*domain.Section, error)
	CreateLesson(ctx context.Context, actor *domain.Principal, sectionID, title, content string, order int) (*domain.Lesson, error)
	GetCourse(ctx context.Context, actor *domain.Principal, courseID string) (*domain.Course, error)
	PublishCourse(ctx context.Context, actor *domain.Principal, courseID string) (*domain.Course, error)
}

type CourseHandler struct {
	courseService Service
}

func New(courseService Service) *CourseHandler {
	return &CourseHandler{
		courseService: courseService,
	}
}

// CreateCourse godoc
//
//	@Summary		Create a course
//	@Description	Instructors and admins create unpublished courses
//	@Tags			Courses
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateCourseRequestDTO	true	"Course request body"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.CourseResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid title or price"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Instructor role required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/courses [post]
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCourseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	course, err := h.courseService.CreateCourse(r.Context(), auth.PrincipalFromContext(r.Context()), req.Title, req.Description, req.Price)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewCourseResponse(course))
}

// GetCourse godoc
//
//	@Summary		Get a course tree
//	@Description	Returns the course with its sections and lessons in order. Unpublished courses are visible to their instructor and admins only.
//	@Tags			Courses
//	@Produce		json
//	@Param			courseID	path	string	true	"Course ID"
//	@Success		200	{object}	dto.CourseResponseDTO
//	@Failure		404	{object}	utils.Response	"Course not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/courses/{courseID} [get]
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	course, err := h.courseService.GetCourse(r.Context(), auth.PrincipalFromContext(r.Context()), chi.URLParam(r, "courseID"))
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCourseResponse(course))
}

// PublishCourse godoc
//
//	@Summary		Publish a course
//	@Description	Makes the course visible and available for purchase
//	@Tags			Courses
//	@Produce		json
//	@Param			courseID	path	string	true	"Course ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.CourseResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the course instructor"
//	@Failure		404	{object}	utils.Response	"Course not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/courses/{courseID}/publish [post]
func (h *CourseHandler) PublishCourse(w http.ResponseWriter, r *http.Request) {
	course, err := h.courseService.PublishCourse(r.Context(), auth.PrincipalFromContext(r.Context()), chi.URLParam(r, "courseID"))
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCourseResponse(course))
}

// CreateSection godoc
//
//	@Summary		Add a section
//	@Description	Without an order the section is placed after the last one
//	@Tags			Courses
//	@Accept			json
//	@Produce		json
//	@Param			courseID	path	string							true	"Course ID"
//	@Param			request		body	dto.CreateSectionRequestDTO	true	"Section request body"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.SectionResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid title or order"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the course instructor"
//	@Failure		404	{object}	utils.Response	"Course not found"
//	@Failure		409	{object}	utils.Response	"Order already taken"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/courses/{courseID}/sections [post]
func (h *CourseHandler) CreateSection(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSectionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	section, err := h.courseService.CreateSection(r.Context(), auth.PrincipalFromContext(r.Context()),
		chi.URLParam(r, "courseID"), req.Title, req.Order)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewSectionResponse(section))
}

// CreateLesson godoc
//
//	@Summary		Add a lesson
//	@Description	Without an order the lesson is placed after the last one in the section
//	@Tags			Courses
//	@Accept			json
//	@Produce		json
//	@Param			sectionID	path	string						true	"Section ID"
//	@Param			request		body	dto.CreateLessonRequestDTO	true	"Lesson request body"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.LessonResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid title or order"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the course instructor"
//	@Failure		404	{object}	utils.Response	"Section not found"
//	@Failure		409	{object}	utils.Response	"Order already taken"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/sections/{sectionID}/lessons [post]
func (h *CourseHandler) CreateLesson(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLessonRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	lesson, err := h.courseService.CreateLesson(r.Context(), auth.PrincipalFromContext(r.Context()),
		chi.URLParam(r, "sectionID"), req.Title, req.Content, req.Order)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewLessonResponse(lesson))
}
