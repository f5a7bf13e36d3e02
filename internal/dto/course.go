package dto

import (
	"time"

	"github.com/GlebRadaev/coursehub/internal/domain"
)

type CreateCourseRequestDTO struct {
	Title       string `json:"title" example:"Go in practice"`
	Description string `json:"description" example:"Services, storage and tests"`
	Price       string `json:"price" example:"49.90"`
}

// Order is optional: zero places the item after the last one.
type CreateSectionRequestDTO struct {
	Title string `json:"title" example:"Getting started"`
	Order int    `json:"order,omitempty" example:"1"`
}

type CreateLessonRequestDTO struct {
	Title   string `json:"title" example:"Installing Go"`
	Content string `json:"content" example:"Download the toolchain from go.dev"`
	Order   int    `json:"order,omitempty" example:"1"`
}

type LessonResponseDTO struct {
	ID        string `json:"id"`
	SectionID string `json:"section_id"`
	Title     string `json:"title" example:"Installing Go"`
	Content   string `json:"content,omitempty"`
	Order     int    `json:"order" example:"1"`
}

type SectionResponseDTO struct {
	ID       string              `json:"id"`
	CourseID string              `json:"course_id"`
	Title    string              `json:"title" example:"Getting started"`
	Order    int                 `json:"order" example:"1"`
	Lessons  []LessonResponseDTO `json:"lessons,omitempty"`
}

type CourseResponseDTO struct {
	ID           string               `json:"id"`
	InstructorID string               `json:"instructor_id"`
	Title        string               `json:"title" example:"Go in practice"`
	Description  string               `json:"description,omitempty"`
	Price        string               `json:"price" example:"49.90"`
	Published    bool                 `json:"published"`
	Sections     []SectionResponseDTO `json:"sections,omitempty"`
	CreatedAt    string               `json:"created_at" example:"2023-06-15T10:00:00Z"`
	UpdatedAt    string               `json:"updated_at" example:"2023-06-15T10:00:00Z"`
}

func NewLessonResponse(l *domain.Lesson) LessonResponseDTO {
	return LessonResponseDTO{
		ID:        l.ID.String(),
		SectionID: l.SectionID.String(),
		Title:     l.Title,
		Content:   l.Content,
		Order:     l.Order,
	}
}

func NewSectionResponse(s *domain.Section) SectionResponseDTO {
	resp := SectionResponseDTO{
		ID:       s.ID.String(),
		CourseID: s.CourseID.String(),
		Title:    s.Title,
		Order:    s.Order,
	}
	for i := range s.Lessons {
		resp.Lessons = append(resp.Lessons, NewLessonResponse(&s.Lessons[i]))
	}
	return resp
}

func NewCourseResponse(c *domain.Course) CourseResponseDTO {
	resp := CourseResponseDTO{
		ID:           c.ID.String(),
		InstructorID: c.InstructorID.String(),
		Title:        c.Title,
		Description:  c.Description,
		Price:        c.Price.StringFixed(2),
		Published:    c.Published,
		CreatedAt:    c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    c.UpdatedAt.Format(time.RFC3339),
	}
	for i := range c.Sections {
		resp.Sections = append(resp.Sections, NewSectionResponse(&c.Sections[i]))
	}
	return resp
}
