package payments

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
	CreatePayment(ctx context.Context, actor *domain.Principal, courseID, method, note string) (*domain.Payment, error)
	UpdatePaymentStatus(ctx context.Context, actor *domain.Principal, id, status string, refundReason *string) (*domain.Payment, error)
	GetPayment(ctx context.Context, actor *domain.Principal, id string) (*domain.Payment, error)
	ListUserPayments(ctx context.Context, actor *domain.Principal) ([]domain.Payment, error)
	FindByReference(ctx context.Context, actor *domain.Principal, reference string) (*domain.Payment, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// CreatePayment godoc
//
//	@Summary		Start a course purchase
//	@Description	Create a pending payment for a published course. The reference goes into the bank transfer comment.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreatePaymentRequestDTO	true	"Payment request body"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.PaymentResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Only students can buy courses"
//	@Failure		404	{object}	utils.Response	"Course not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payments [post]
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	payment, err := h.paymentService.CreatePayment(r.Context(), auth.PrincipalFromContext(r.Context()), req.CourseID, req.Method, req.TransactionNote)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewPaymentResponse(payment))
}

// GetPayments godoc
//
//	@Summary		List own payments
//	@Description	Retrieve the payments of the authorized user, newest first
//	@Tags			Payments
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.PaymentResponseDTO
//	@Success		204	{object}	utils.Response	"No data available"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payments [get]
func (h *PaymentHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.paymentService.ListUserPayments(r.Context(), auth.PrincipalFromContext(r.Context()))
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	if len(payments) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	response := make([]dto.PaymentResponseDTO, 0, len(payments))
	for i := range payments {
		response = append(response, dto.NewPaymentResponse(&payments[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetPayment godoc
//
//	@Summary		Get a payment
//	@Description	Retrieve a payment owned by the authorized user. Admins can read any payment.
//	@Tags			Payments
//	@Produce		json
//	@Param			id	path	string	true	"Payment ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PaymentResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Payment not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/{id} [get]
func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	payment, err := h.paymentService.GetPayment(r.Context(), auth.PrincipalFromContext(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPaymentResponse(payment))
}

// UpdateStatus godoc
//
//	@Summary		Change payment status
//	@Description	Admin only. Approving a payment grants or extends the buyer's enrollment by one month. Refunds require a reason.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string								true	"Payment ID"
//	@Param			request	body	dto.UpdatePaymentStatusRequestDTO	true	"New status"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PaymentResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid status or missing refund reason"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		404	{object}	utils.Response	"Payment not found"
//	@Failure		409	{object}	utils.Response	"Enrollment conflict"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/payments/{id}/status [patch]
func (h *PaymentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdatePaymentStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	payment, err := h.paymentService.UpdatePaymentStatus(r.Context(), auth.PrincipalFromContext(r.Context()), chi.URLParam(r, "id"), req.Status, req.RefundReason)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPaymentResponse(payment))
}

// GetByReference godoc
//
//	@Summary		Find a payment by bank transfer reference
//	@Description	Admin only. The reference must pass the Luhn check.
//	@Tags			Admin
//	@Produce		json
//	@Param			reference	path	string	true	"Payment reference"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PaymentResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid payment reference"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		404	{object}	utils.Response	"Payment not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/payments/reference/{reference} [get]
func (h *PaymentHandler) GetByReference(w http.ResponseWriter, r *http.Request) {
	payment, err := h.paymentService.FindByReference(r.Context(), auth.PrincipalFromContext(r.Context()), chi.URLParam(r, "reference"))
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPaymentResponse(payment))
}
