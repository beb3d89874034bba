package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError carries an HTTP status alongside the {message, errors} body that
// every failing endpoint serializes.
type APIError struct {
	Status  int               `json:"-"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

// NewValidationError builds a 400 with field-keyed messages.
func NewValidationError(errs map[string]string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: "Validation Error", Errors: errs}
}

// NewNotFoundError builds a 404 with the given message and detail.
func NewNotFoundError(message, detail string) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: message, Errors: map[string]string{"message": detail}}
}

// NewUnauthorizedError builds a 401.
func NewUnauthorizedError() *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: "Unauthorized"}
}

// NewInvalidCredentialsError builds the 400 returned on bad login attempts.
// The message is keyed on email regardless of which credential was wrong.
func NewInvalidCredentialsError() *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: "Invalid credentials", Errors: map[string]string{"email": "Invalid credentials"}}
}

// RespondError writes err as the {message, errors} body. Anything that is not
// an *APIError becomes a generic 500.
func RespondError(ctx *gin.Context, err error) {
	if apiErr, ok := err.(*APIError); ok {
		ctx.JSON(apiErr.Status, apiErr)
		return
	}
	if Sugar != nil {
		Sugar.Errorf("unhandled error on %s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, err)
	}
	ctx.JSON(http.StatusInternalServerError, &APIError{Message: "Internal server error"})
}
