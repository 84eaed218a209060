package utils

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseEnvelopeAlwaysCarriesData(t *testing.T) {
	body, err := json.Marshal(NewErrorResponse(http.StatusNotFound, "User not found"))
	assert.NoError(t, err)

	// data must serialize as an explicit null, not be omitted
	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(body, &decoded))
	value, present := decoded["data"]
	assert.True(t, present)
	assert.Nil(t, value)
	assert.Equal(t, float64(http.StatusNotFound), decoded["status"])
	assert.Equal(t, "User not found", decoded["message"])
}

func TestNewSuccessResponse(t *testing.T) {
	resp := NewSuccessResponse("ok", map[string]int{"count": 2})
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "ok", resp.Message)
	assert.NotNil(t, resp.Data)
}

func TestNewValidationErrorResponse(t *testing.T) {
	details := []ValidationErrorDetail{
		{Field: "emailId", Message: "Field 'emailId' must be a valid email address", Expected: "email format"},
	}
	resp := NewValidationErrorResponse(details)
	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.Equal(t, "Validation failed", resp.Message)

	body, err := json.Marshal(resp)
	assert.NoError(t, err)
	var decoded struct {
		Data struct {
			Errors []ValidationErrorDetail `json:"errors"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(body, &decoded))
	assert.Len(t, decoded.Data.Errors, 1)
	assert.Equal(t, "emailId", decoded.Data.Errors[0].Field)
}
