package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Name      string `validate:"required"`
	Email     string `validate:"required,email"`
	StartDate string `validate:"required,datetime=2006-01-02"`
}

func TestValidateStruct_Valid(t *testing.T) {
	errs := ValidateStruct(sampleRequest{
		Name:      "Budi",
		Email:     "budi@example.com",
		StartDate: "2026-06-10",
	})

	assert.Nil(t, errs)
}

func TestValidateStruct_CollectsFieldErrors(t *testing.T) {
	errs := ValidateStruct(sampleRequest{
		Email:     "not-an-email",
		StartDate: "10/06/2026",
	})

	assert.Len(t, errs, 3)
	assert.Equal(t, "This field is required", errs["Name"])
	assert.Equal(t, "Invalid email format", errs["Email"])
	assert.NotEmpty(t, errs["StartDate"])
}

func TestFormatValidationErrors(t *testing.T) {
	msg := FormatValidationErrors(map[string]string{"Name": "This field is required"})

	assert.Equal(t, "Name: This field is required", msg)
}
