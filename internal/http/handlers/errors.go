package handlers

import (
	"errors"
	"net/http"

	"cabbooking/internal/domain"
	"cabbooking/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		RequestID: middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, domain.ErrNoCabAvailable):
		respondError(c, http.StatusNotFound, "no_cab_available", err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "already_exists", err.Error())
	case errors.Is(err, domain.ErrStoreUnavailable):
		respondError(c, http.StatusServiceUnavailable, "store_unavailable", "database unavailable")
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "internal error")
	}
}
