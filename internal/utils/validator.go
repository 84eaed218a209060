package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidationErrorDetail represents the structure of a single validation error.
type ValidationErrorDetail struct {
	Field    string      `json:"field"`
	Message  string      `json:"message"`
	Expected string      `json:"expected,omitempty"`
	Received interface{} `json:"received,omitempty"`
}

// BindAndValidate binds the request body to the given object and validates it.
// If validation fails, it sends a formatted error response and returns false.
// If validation succeeds, it returns true.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var details []ValidationErrorDetail

		switch e := err.(type) {
		case validator.ValidationErrors:
			for _, fe := range e {
				details = append(details, validationDetail(fe))
			}
		case *json.UnmarshalTypeError:
			details = append(details, ValidationErrorDetail{
				Field:    e.Field,
				Message:  fmt.Sprintf("Field '%s' has invalid type", e.Field),
				Expected: e.Type.String(),
				Received: e.Value,
			})
		default:
			details = append(details, ValidationErrorDetail{
				Field:   "body",
				Message: "Malformed JSON or invalid request body",
			})
		}

		c.JSON(http.StatusBadRequest, NewValidationErrorResponse(details))
		return false
	}
	return true
}

func validationDetail(fe validator.FieldError) ValidationErrorDetail {
	detail := ValidationErrorDetail{
		Field:    fe.Field(),
		Message:  fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fe.Field(), fe.Tag()),
		Expected: fe.Param(),
		Received: fe.Value(),
	}
	if detail.Expected == "" {
		detail.Expected = fe.Tag()
	}

	switch fe.Tag() {
	case "required":
		detail.Message = fmt.Sprintf("Field '%s' is required", fe.Field())
		detail.Expected = "not null"
	case "email":
		detail.Message = fmt.Sprintf("Field '%s' must be a valid email address", fe.Field())
		detail.Expected = "email format"
	case "min":
		detail.Message = fmt.Sprintf("Field '%s' must be at least %s characters long", fe.Field(), fe.Param())
	case "max":
		detail.Message = fmt.Sprintf("Field '%s' must be at most %s characters long", fe.Field(), fe.Param())
	case "oneof":
		detail.Message = fmt.Sprintf("Field '%s' must be one of: %s", fe.Field(), fe.Param())
	case "gte":
		detail.Message = fmt.Sprintf("Field '%s' must be greater than or equal to %s", fe.Field(), fe.Param())
	}

	return detail
}
