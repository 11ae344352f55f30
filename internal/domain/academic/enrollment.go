package academic

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEnrollmentNotFound            = errors.New("academic: enrollment not found")
	ErrEnrollmentInvalidPersonID     = errors.New("academic: invalid enrollment person ID")
	ErrEnrollmentInvalidCourseID     = errors.New("academic: invalid enrollment course ID")
	ErrEnrollmentAlreadyMatriculated = errors.New("academic: enrollment already matriculated")
)

// Enrollment links a person to a course. The Matriculated flag marks the
// transition from a commercial enrollment (invoiced, maybe unpaid) to an
// academic one with access to the LMS. Flipping it to true is what
// triggers the matriculation saga; the saga may flip it back to false as
// its compensating action and does nothing else to this entity.
type Enrollment struct {
	ID           uuid.UUID
	PersonID     uuid.UUID
	CourseID     uuid.UUID
	InvoiceID    *uuid.UUID
	Matriculated bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewEnrollment creates a new enrollment
func NewEnrollment(personID, courseID uuid.UUID) (*Enrollment, error) {
	if personID == uuid.Nil {
		return nil, ErrEnrollmentInvalidPersonID
	}
	if courseID == uuid.Nil {
		return nil, ErrEnrollmentInvalidCourseID
	}

	now := time.Now()
	return &Enrollment{
		ID:        uuid.New(),
		PersonID:  personID,
		CourseID:  courseID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Matriculate marks the enrollment as matriculated
func (e *Enrollment) Matriculate() error {
	if e.Matriculated {
		return ErrEnrollmentAlreadyMatriculated
	}
	e.Matriculated = true
	e.UpdatedAt = time.Now()
	return nil
}

// RevertMatriculation flips the matriculated flag back to false.
// Used only as a compensating action by the sync orchestrator.
func (e *Enrollment) RevertMatriculation() {
	e.Matriculated = false
	e.UpdatedAt = time.Now()
}

// EnrollmentRepository defines the persistence port for enrollments
type EnrollmentRepository interface {
	// FindByID finds an enrollment by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Enrollment, error)

	// FindByPersonAndCourse finds an enrollment for a person/course pair
	FindByPersonAndCourse(ctx context.Context, personID, courseID uuid.UUID) (*Enrollment, error)

	// Save creates or updates an enrollment
	Save(ctx context.Context, enrollment *Enrollment) error

	// Delete deletes an enrollment
	Delete(ctx context.Context, id uuid.UUID) error
}
