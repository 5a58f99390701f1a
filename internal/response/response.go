package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/domain"
)

// APIResponse is the envelope of every JSON reply.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError describes a failed request.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// Success replies 200 with data.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// Accepted replies 202 with data.
func Accepted(c *gin.Context, data interface{}) {
	c.JSON(http.StatusAccepted, APIResponse{Success: true, Data: data})
}

// BadRequest replies 400 with a message.
func BadRequest(c *gin.Context, message string) {
	abort(c, http.StatusBadRequest, APIError{Code: "BAD_REQUEST", Message: message})
}

// Unauthorized replies 401.
func Unauthorized(c *gin.Context, message string) {
	abort(c, http.StatusUnauthorized, APIError{Code: "UNAUTHORIZED", Message: message})
}

func Forbidden(c *gin.Context, message string) {
	abort(c, http.StatusForbidden, APIError{Code: "FORBIDDEN", Message: message})
}

// Error maps domain errors to their HTTP status; anything unknown is a 500.
func Error(c *gin.Context, err error) {
	var (
		invalid     *domain.InvalidParameterError
		unsupported *domain.UnsupportedProfileError
		notFound    *domain.NotFoundError
	)
	switch {
	case errors.As(err, &invalid):
		abort(c, http.StatusBadRequest, APIError{Code: "INVALID_PARAMETER", Message: invalid.Error(), Field: invalid.Field})
	case errors.As(err, &unsupported):
		abort(c, http.StatusBadRequest, APIError{Code: "UNSUPPORTED_PROFILE", Message: unsupported.Error()})
	case errors.As(err, &notFound):
		abort(c, http.StatusNotFound, APIError{Code: "NOT_FOUND", Message: notFound.Error()})
	default:
		_ = c.Error(err)
		abort(c, http.StatusInternalServerError, APIError{Code: "INTERNAL_ERROR", Message: "internal server error"})
	}
}

func abort(c *gin.Context, status int, apiErr APIError) {
	c.AbortWithStatusJSON(status, APIResponse{Success: false, Error: &apiErr})
}
