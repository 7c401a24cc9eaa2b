package dto

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaffRequestPartialDecode(t *testing.T) {
	var req StaffRequest
	require.NoError(t, json.Unmarshal([]byte(`{"department":"Research","email":""}`), &req))
	require.NoError(t, req.Validate(0))

	patch := req.ToPatch()
	require.NotNil(t, patch.Department)
	assert.Equal(t, "Research", *patch.Department)
	require.NotNil(t, patch.Email)
	assert.Equal(t, "", *patch.Email)
	assert.Nil(t, patch.FirstName)
}

func TestStaffRequestAcceptsFreeFormText(t *testing.T) {
	email := "n/a"
	dob := strings.Repeat("9", 300)
	req := &StaffRequest{Email: &email, DOB: &dob}

	assert.NoError(t, req.Validate(0))
}

func TestStaffRequestFieldLengthLimit(t *testing.T) {
	long := strings.Repeat("é", 11)
	fits := strings.Repeat("é", 10)
	req := &StaffRequest{FirstName: &long, LastName: &fits}

	err := req.Validate(10)
	require.Error(t, err)

	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, FieldErrors{"first_name": "must not exceed 10 characters"}, fieldErrs)

	assert.NoError(t, (&StaffRequest{LastName: &fits}).Validate(10))
	assert.NoError(t, (&StaffRequest{}).Validate(10))
}
