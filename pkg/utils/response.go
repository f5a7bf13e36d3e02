package utils

import (
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/coursehub/pkg/apperr"
	"go.uber.org/zap"
)

type Response struct {
	Message string `json:"message" example:"Payment not found"`
	Code    string `json:"code,omitempty" example:"PAYMENT_NOT_FOUND"`
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("can't encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, Response{Message: message})
}

// RespondWithAppError renders err with the status and code of its kind.
// Internal causes are logged and never sent to the client.
func RespondWithAppError(w http.ResponseWriter, err error) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		zap.L().Error("request failed", zap.Error(err))
	}
	RespondWithJSON(w, status, Response{
		Message: apperr.PublicMessage(err),
		Code:    apperr.CodeOf(err),
	})
}
