package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/coursehub/pkg/apperr"
	"github.com/stretchr/testify/assert"
)

func TestRespondWithAppError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody Response
	}{
		{
			name:         "Domain error",
			err:          apperr.NotFoundErr("PAYMENT_NOT_FOUND", "Payment not found"),
			expectedCode: http.StatusNotFound,
			expectedBody: Response{Message: "Payment not found", Code: "PAYMENT_NOT_FOUND"},
		},
		{
			name:         "Unexpected error",
			err:          errors.New("pq: connection refused"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: Response{Message: "Internal server error", Code: apperr.CodeInternal},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			RespondWithAppError(w, tt.err)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			var body Response
			assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.expectedBody, body)
		})
	}
}
