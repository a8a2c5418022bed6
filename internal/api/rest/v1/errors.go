package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/hillcrest-schools/school-portal/internal/domain/admissions"
	"github.com/hillcrest-schools/school-portal/internal/domain/auth"
	"github.com/hillcrest-schools/school-portal/internal/domain/careers"
	"github.com/hillcrest-schools/school-portal/internal/domain/events"
	"github.com/hillcrest-schools/school-portal/internal/domain/media"
	"github.com/hillcrest-schools/school-portal/internal/domain/messages"
	"github.com/hillcrest-schools/school-portal/internal/domain/payments"
	"github.com/hillcrest-schools/school-portal/internal/pkg/validators"

	"github.com/gin-gonic/gin"
)

var notFoundErrors = []error{
	admissions.ErrNotFound,
	careers.ErrNotFound,
	events.ErrNotFound,
	events.ErrTicketNotFound,
	messages.ErrNotFound,
	media.ErrImageNotFound,
	media.ErrResourceNotFound,
	payments.ErrNotFound,
}

// statusFor maps a service error onto an HTTP status code
func statusFor(err error) int {
	switch {
	case errors.Is(err, validators.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, events.ErrSoldOut):
		return http.StatusConflict
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized
	}
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return http.StatusNotFound
		}
	}
	return http.StatusInternalServerError
}

// respondError writes an ErrorResponse for err. Server errors only name the failed action.
func respondError(ctx *gin.Context, err error, action string) {
	status := statusFor(err)

	var errorResponse ErrorResponse
	if status == http.StatusInternalServerError {
		errorResponse.Message = fmt.Sprintf("error %s", action)
	} else {
		errorResponse.Message = fmt.Sprintf("error %s: %v", action, err.Error())
	}
	ctx.JSON(status, errorResponse)
}

// respondBadRequest writes a 400 for a body or form that could not be bound
func respondBadRequest(ctx *gin.Context, what string, err error) {
	var errorResponse ErrorResponse
	errorResponse.Message = fmt.Sprintf("invalid %s: %v", what, err.Error())
	ctx.JSON(http.StatusBadRequest, errorResponse)
}
