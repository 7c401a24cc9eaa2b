package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/staff-directory/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventStaffCreated EventType = "staff_created"
	EventStaffUpdated EventType = "staff_updated"
	EventStaffDeleted EventType = "staff_deleted"
)

// Event represents a change to a staff record.
type Event struct {
	ID        string        `json:"id"`
	Type      EventType     `json:"type"`
	StaffID   int64         `json:"staff_id"`
	Timestamp time.Time     `json:"timestamp"`
	Payload   *StaffPayload `json:"payload,omitempty"`
}

// StaffPayload is the record snapshot carried by created and updated events.
type StaffPayload struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Gender      string `json:"gender"`
	DOB         string `json:"dob"`
	Email       string `json:"email"`
	JobTitle    string `json:"job_title"`
	Department  string `json:"department"`
	DutyStation string `json:"duty_station"`
}

// NewStaffEvent builds an event for the given record. staff may be nil for
// deletions.
func NewStaffEvent(eventType EventType, id int64, staff *domain.Staff) Event {
	event := Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		StaffID:   id,
		Timestamp: time.Now().UTC(),
	}
	if staff != nil {
		event.Payload = &StaffPayload{
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
	return event
}
