package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/academia/backend/internal/domain/academic"
	"github.com/academia/backend/internal/domain/integration"
)

// EnrollmentResponse represents an enrollment in API responses
type EnrollmentResponse struct {
	ID           uuid.UUID  `json:"id"`
	PersonID     uuid.UUID  `json:"person_id"`
	CourseID     uuid.UUID  `json:"course_id"`
	InvoiceID    *uuid.UUID `json:"invoice_id,omitempty"`
	Matriculated bool       `json:"matriculated"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// EnrollmentResponseFromDomain converts a domain enrollment to a response
func EnrollmentResponseFromDomain(enrollment *academic.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:           enrollment.ID,
		PersonID:     enrollment.PersonID,
		CourseID:     enrollment.CourseID,
		InvoiceID:    enrollment.InvoiceID,
		Matriculated: enrollment.Matriculated,
		CreatedAt:    enrollment.CreatedAt,
		UpdatedAt:    enrollment.UpdatedAt,
	}
}

// EnrollmentLinkResponse represents the remote synchronization record of
// an enrollment
type EnrollmentLinkResponse struct {
	EnrollmentID   uuid.UUID `json:"enrollment_id"`
	RemoteUserID   int64     `json:"remote_user_id"`
	RemoteUsername string    `json:"remote_username"`
	State          string    `json:"state"`
	Notes          string    `json:"notes,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// EnrollmentLinkResponseFromDomain converts an enrollment link to a response
func EnrollmentLinkResponseFromDomain(link *integration.EnrollmentLink) EnrollmentLinkResponse {
	return EnrollmentLinkResponse{
		EnrollmentID:   link.EnrollmentID,
		RemoteUserID:   link.RemoteUserID,
		RemoteUsername: link.RemoteUsername,
		State:          link.State.String(),
		Notes:          link.Notes,
		UpdatedAt:      link.UpdatedAt,
	}
}
