package dto

import (
	"time"

	"github.com/GlebRadaev/coursehub/internal/domain"
)

type CreateEnrollmentRequestDTO struct {
	UserID   string `json:"user_id" example:"0b7a4b8e-7c4e-4df0-b1f4-93f0f1a2c3d4"`
	CourseID string `json:"course_id" example:"c2f7e0a1-5b6d-4e8f-a9b0-1c2d3e4f5a6b"`
}

type HistoryEntryDTO struct {
	Status    string `json:"status" example:"ACTIVE"`
	Progress  int    `json:"progress" example:"50"`
	Timestamp string `json:"timestamp" example:"2023-06-15T10:00:00Z"`
}

type EnrollmentResponseDTO struct {
	ID               string            `json:"id" example:"e1b2c3d4-0000-4000-8000-000000000001"`
	UserID           string            `json:"user_id" example:"0b7a4b8e-7c4e-4df0-b1f4-93f0f1a2c3d4"`
	CourseID         string            `json:"course_id" example:"c2f7e0a1-5b6d-4e8f-a9b0-1c2d3e4f5a6b"`
	Status           string            `json:"status" example:"ACTIVE"`
	Progress         int               `json:"progress" example:"50"`
	CompletedLessons []string          `json:"completed_lessons"`
	ExpiryDate       *string           `json:"expiry_date,omitempty" example:"2023-07-15T00:00:00Z"`
	LastAccessedAt   *string           `json:"last_accessed_at,omitempty" example:"2023-06-20T08:30:00Z"`
	History          []HistoryEntryDTO `json:"history"`
	CreatedAt        string            `json:"created_at" example:"2023-06-15T10:00:00Z"`
	UpdatedAt        string            `json:"updated_at" example:"2023-06-15T10:00:00Z"`
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func NewEnrollmentResponse(e *domain.Enrollment) EnrollmentResponseDTO {
	lessons := make([]string, 0, len(e.CompletedLessons))
	for _, id := range e.CompletedLessons {
		lessons = append(lessons, id.String())
	}
	history := make([]HistoryEntryDTO, 0, len(e.History))
	for _, h := range e.History {
		history = append(history, HistoryEntryDTO{
			Status:    string(h.Status),
			Progress:  h.Progress,
			Timestamp: h.Timestamp.Format(time.RFC3339),
		})
	}
	return EnrollmentResponseDTO{
		ID:               e.ID.String(),
		UserID:           e.UserID.String(),
		CourseID:         e.CourseID.String(),
		Status:           string(e.Status),
		Progress:         e.Progress,
		CompletedLessons: lessons,
		ExpiryDate:       formatTime(e.ExpiryDate),
		LastAccessedAt:   formatTime(e.LastAccessedAt),
		History:          history,
		CreatedAt:        e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        e.UpdatedAt.Format(time.RFC3339),
	}
}
