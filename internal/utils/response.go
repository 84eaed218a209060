package utils

import "net/http"

// Response is the envelope every endpoint answers with: the HTTP status
// echoed into the body, a human-readable message, and a data field that is
// always present (null when there is nothing to return), so clients never
// branch on a missing key.
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func NewResponse(status int, message string, data interface{}) Response {
	return Response{
		Status:  status,
		Message: message,
		Data:    data,
	}
}

// NewSuccessResponse is the 200 shorthand.
func NewSuccessResponse(message string, data interface{}) Response {
	return NewResponse(http.StatusOK, message, data)
}

// NewErrorResponse carries no data; the message is the whole payload.
func NewErrorResponse(status int, message string) Response {
	return NewResponse(status, message, nil)
}

// NewValidationErrorResponse wraps field-level binding failures. The
// details ride under data.errors so clients can map them back onto form
// fields.
func NewValidationErrorResponse(details []ValidationErrorDetail) Response {
	return NewResponse(http.StatusBadRequest, "Validation failed", map[string]interface{}{
		"errors": details,
	})
}
