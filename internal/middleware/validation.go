package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Marcelo-Uk/student-management/internal/app/models/dto"
)

// RespondBindingError converts a binding or validation failure into the
// standard 400 response. Controllers call it right after ShouldBind.
func RespondBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")

	if errors.As(err, &verrs) && len(verrs) > 0 {
		messages := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			messages = append(messages, formatValidationError(fe))
		}
		detail = detail.WithDetails(messages).WithField(verrs[0].Field())
	} else {
		detail = detail.WithDetails(err.Error())
	}

	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
	c.Abort()
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
