package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"omitempty,email"`
	Status string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

func TestValidateStruct_ReportsJSONNames(t *testing.T) {
	errs := ValidateStruct(sampleRequest{Email: "nope", Status: "Gone"})

	assert.Equal(t, map[string]string{
		"name":   "This field is required",
		"email":  "Invalid email format",
		"status": "Must be one of: Active, Inactive",
	}, errs)
	assert.Equal(t, []string{"name"}, MissingFields(errs))
	assert.Equal(t, "email: Invalid email format; name: This field is required; status: Must be one of: Active, Inactive",
		FormatValidationErrors(errs))
}

func TestValidateStruct_Valid(t *testing.T) {
	assert.Nil(t, ValidateStruct(sampleRequest{Name: "Ann"}))
}
