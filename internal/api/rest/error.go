package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/degenerous-dao/potentials-staking/internal/domain"
	"github.com/degenerous-dao/potentials-staking/internal/logger"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	errCodeBadRequest       ErrorCode = "bad_request"
	errCodeNotFound         ErrorCode = "not_found"
	errCodeValidationFailed ErrorCode = "validation_failed"

	// Server errors (5xx)
	errCodeInternalError   ErrorCode = "internal_error"
	errCodeUpstreamError   ErrorCode = "upstream_error"
	errCodeUpstreamTimeout ErrorCode = "upstream_timeout"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// errorDetail contains error information
type errorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...string) {
	response := errorResponse{
		Error: errorDetail{
			Code:    code,
			Message: message,
		},
	}

	if len(details) > 0 {
		response.Error.Details = details[0]
	}

	c.AbortWithStatusJSON(statusCode, response)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, errCodeBadRequest, message, details...)
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusNotFound, errCodeNotFound, message, details...)
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, details string) {
	respondWithError(c, http.StatusBadRequest, errCodeValidationFailed, "Validation failed", details)
}

// respondServiceError maps a portal error to a status code and logs server side failures
func respondServiceError(c *gin.Context, err error, message string, fields ...zap.Field) {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument),
		errors.Is(err, domain.ErrNoTokensSelected),
		errors.Is(err, domain.ErrLengthMismatch):
		respondValidationError(c, err.Error())
	case errors.Is(err, domain.ErrGraphQLRequest),
		errors.Is(err, domain.ErrGraphQLResponse):
		logger.ErrorCtx(c.Request.Context(), err, fields...)
		respondWithError(c, http.StatusBadGateway, errCodeUpstreamError, message, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		logger.ErrorCtx(c.Request.Context(), err, fields...)
		respondWithError(c, http.StatusGatewayTimeout, errCodeUpstreamTimeout, message)
	default:
		logger.ErrorCtx(c.Request.Context(), err, fields...)
		respondWithError(c, http.StatusInternalServerError, errCodeInternalError, message)
	}
}
