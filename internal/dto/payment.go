package dto

import (
	"time"

	"github.com/GlebRadaev/coursehub/internal/domain"
)

type CreatePaymentRequestDTO struct {
	CourseID        string `json:"course_id" example:"c2f7e0a1-5b6d-4e8f-a9b0-1c2d3e4f5a6b"`
	Method          string `json:"method" example:"BANK_TRANSFER"`
	TransactionNote string `json:"transaction_note" example:"Transfer from Alfa, card *1234"`
}

type UpdatePaymentStatusRequestDTO struct {
	Status       string  `json:"status" example:"REFUNDED"`
	RefundReason *string `json:"refund_reason,omitempty" example:"Duplicate charge"`
}

type PaymentResponseDTO struct {
	ID              string  `json:"id" example:"6f1d1f7e-0a4b-4c55-9d57-2b0c0f3a1e01"`
	UserID          string  `json:"user_id" example:"0b7a4b8e-7c4e-4df0-b1f4-93f0f1a2c3d4"`
	CourseID        string  `json:"course_id" example:"c2f7e0a1-5b6d-4e8f-a9b0-1c2d3e4f5a6b"`
	Amount          string  `json:"amount" example:"49.90"`
	Status          string  `json:"status" example:"PENDING"`
	Method          string  `json:"method" example:"BANK_TRANSFER"`
	Reference       string  `json:"reference" example:"123456789015"`
	TransactionNote string  `json:"transaction_note,omitempty" example:"Transfer from Alfa, card *1234"`
	RefundReason    *string `json:"refund_reason,omitempty"`
	CreatedAt       string  `json:"created_at" example:"2023-06-15T10:00:00Z"`
	UpdatedAt       string  `json:"updated_at" example:"2023-06-15T10:00:00Z"`
}

func NewPaymentResponse(p *domain.Payment) PaymentResponseDTO {
	return PaymentResponseDTO{
		ID:              p.ID.String(),
		UserID:          p.UserID.String(),
		CourseID:        p.CourseID.String(),
		Amount:          p.Amount.StringFixed(2),
		Status:          string(p.Status),
		Method:          string(p.Method),
		Reference:       p.Reference,
		TransactionNote: p.TransactionNote,
		RefundReason:    p.RefundReason,
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       p.UpdatedAt.Format(time.RFC3339),
	}
}
