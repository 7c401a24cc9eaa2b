package dto

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/spec-kit/staff-directory/internal/domain"
)

var validate = validator.New()

// FieldErrors maps json field names to a description of what is wrong.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	return "validation failed"
}

// StaffRequest is the body of POST /staff and PUT /staff/:id. Every field is
// optional free-form text; an id in the body is accepted and ignored.
type StaffRequest struct {
	ID          *int64  `json:"id"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Gender      *string `json:"gender"`
	DOB         *string `json:"dob"`
	Email       *string `json:"email"`
	JobTitle    *string `json:"job_title"`
	Department  *string `json:"department"`
	DutyStation *string `json:"duty_station"`
}

// Validate enforces maxFieldLength (in characters) on every supplied text
// field. Zero disables the check.
func (r *StaffRequest) Validate(maxFieldLength int) error {
	if maxFieldLength <= 0 {
		return nil
	}
	rule := fmt.Sprintf("max=%d", maxFieldLength)
	errs := FieldErrors{}
	for _, f := range r.textFields() {
		if f.value == nil {
			continue
		}
		if err := validate.Var(*f.value, rule); err != nil {
			errs[f.name] = fmt.Sprintf("must not exceed %d characters", maxFieldLength)
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type namedField struct {
	name  string
	value *string
}

func (r *StaffRequest) textFields() []namedField {
	return []namedField{
		{"first_name", r.FirstName},
		{"last_name", r.LastName},
		{"gender", r.Gender},
		{"dob", r.DOB},
		{"email", r.Email},
		{"job_title", r.JobTitle},
		{"department", r.Department},
		{"duty_station", r.DutyStation},
	}
}

// ToPatch converts the request into a domain patch.
func (r *StaffRequest) ToPatch() domain.StaffPatch {
	return domain.StaffPatch{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Gender:      r.Gender,
		DOB:         r.DOB,
		Email:       r.Email,
		JobTitle:    r.JobTitle,
		Department:  r.Department,
		DutyStation: r.DutyStation,
	}
}

// StaffResponse is the wire form of a staff record.
type StaffResponse struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Gender      string `json:"gender"`
	DOB         string `json:"dob"`
	Email       string `json:"email"`
	JobTitle    string `json:"job_title"`
	Department  string `json:"department"`
	DutyStation string `json:"duty_station"`
}

// NewStaffResponse maps a domain record to its response.
func NewStaffResponse(staff *domain.Staff) StaffResponse {
	return StaffResponse{
		ID:          staff.ID,
		FirstName:   staff.FirstName,
		LastName:    staff.LastName,
		Gender:      staff.Gender,
		DOB:         staff.DOB,
		Email:       staff.Email,
		JobTitle:    staff.JobTitle,
		Department:  staff.Department,
		DutyStation: staff.DutyStation,
	}
}

// MessageResponse acknowledges an operation without a body.
type MessageResponse struct {
	Message string `json:"message"`
}
