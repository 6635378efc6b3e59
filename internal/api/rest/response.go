package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/proofcapsule/pc-anchor/internal/api/shared/errors"
)

// envelope is the uniform response body: data on success, the shared
// APIError on failure
type envelope struct {
	Success bool                `json:"success"`
	Data    interface{}         `json:"data,omitempty"`
	Error   *apierrors.APIError `json:"error,omitempty"`
}

// respondData responds with a success envelope
func respondData(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, envelope{Success: true, Data: data})
}

// respondAPIError responds with an error envelope, mapping the error code
// to its HTTP status
func respondAPIError(c *gin.Context, apiErr *apierrors.APIError) {
	c.JSON(statusForCode(apiErr.Code), envelope{Success: false, Error: apiErr})
}

// respondError maps any executor error to an error envelope
func respondError(c *gin.Context, err error) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		respondAPIError(c, apiErr)
		return
	}
	respondAPIError(c, apierrors.NewInternalError("Internal server error", err.Error()))
}

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondAPIError(c, apierrors.NewBadRequestError(message, details...))
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	respondAPIError(c, apierrors.NewNotFoundError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	respondAPIError(c, apierrors.NewValidationError(message))
}

func statusForCode(code apierrors.ErrorCode) int {
	switch code {
	case apierrors.ErrCodeBadRequest:
		return http.StatusBadRequest
	case apierrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apierrors.ErrCodeConflict:
		return http.StatusConflict
	case apierrors.ErrCodeValidationFailed:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
