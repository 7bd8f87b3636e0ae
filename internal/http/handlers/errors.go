package handlers

import (
	"errors"
	"net/http"

	"buspass/internal/domain"
	"buspass/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	msgQueryFailed  = "Database query failed"
	msgInsertFailed = "Database insert failed"
	msgInternal     = "Internal server error"
)

// ErrorResponse is the error envelope of every JSON endpoint.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
	Redirect  string `json:"redirect,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		RequestID: middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses. Store and unknown errors are
// answered with a fixed message; the cause only goes to the log.
func RespondDomainError(c *gin.Context, err error) {
	var (
		storeErr   domain.StoreUnavailableError
		netErr     domain.NetworkError
		missingErr domain.StateMissingError
	)
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case errors.As(err, &missingErr):
		c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{
			Error:     missingErr.Error(),
			Code:      "state_missing",
			RequestID: middleware.GetRequestID(c),
			Redirect:  pathPasses,
		})
	case errors.As(err, &netErr):
		respondError(c, http.StatusBadGateway, "booking_failed", netErr.Error())
	case errors.As(err, &storeErr):
		msg := msgQueryFailed
		if storeErr.Op == "insert" {
			msg = msgInsertFailed
		}
		respondError(c, http.StatusInternalServerError, "store_unavailable", msg)
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", msgInternal)
	}
	_ = c.Error(err)
}
