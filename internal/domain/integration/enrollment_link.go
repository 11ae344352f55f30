package integration

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrLinkInvalidEnrollmentID = errors.New("integration: invalid local enrollment ID")
	ErrLinkInvalidRemoteUserID = errors.New("integration: invalid remote user ID")
	ErrLinkInvalidUsername     = errors.New("integration: invalid remote username")
	ErrLinkInvalidState        = errors.New("integration: invalid enrollment link state")
)

// EnrollmentState is the administrative state of a remote enrollment.
// Transitions are set by an explicit state-change operation, never
// re-derived from the remote system.
type EnrollmentState string

const (
	EnrollmentStateMatriculado    EnrollmentState = "MATRICULADO"
	EnrollmentStateSuspendido     EnrollmentState = "SUSPENDIDO"
	EnrollmentStateCompletado     EnrollmentState = "COMPLETADO"
	EnrollmentStateDesmatriculado EnrollmentState = "DESMATRICULADO"
)

// IsValid returns true if the state is a known state
func (s EnrollmentState) IsValid() bool {
	switch s {
	case EnrollmentStateMatriculado, EnrollmentStateSuspendido,
		EnrollmentStateCompletado, EnrollmentStateDesmatriculado:
		return true
	default:
		return false
	}
}

// String returns the string representation of the state
func (s EnrollmentState) String() string {
	return string(s)
}

// EnrollmentLink maps one local enrollment to one remote LMS
// user/enrollment. At most one link exists per local enrollment; it is
// created once, on the first successful remote enrollment, whether the
// user was newly enrolled or found already enrolled.
type EnrollmentLink struct {
	ID             uuid.UUID
	EnrollmentID   uuid.UUID
	RemoteUserID   int64
	RemoteUsername string
	State          EnrollmentState
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewEnrollmentLink creates a new enrollment link in state MATRICULADO
func NewEnrollmentLink(enrollmentID uuid.UUID, remoteUserID int64, remoteUsername string) (*EnrollmentLink, error) {
	if enrollmentID == uuid.Nil {
		return nil, ErrLinkInvalidEnrollmentID
	}
	if remoteUserID <= 0 {
		return nil, ErrLinkInvalidRemoteUserID
	}
	if remoteUsername == "" {
		return nil, ErrLinkInvalidUsername
	}

	now := time.Now()
	return &EnrollmentLink{
		ID:             uuid.New(),
		EnrollmentID:   enrollmentID,
		RemoteUserID:   remoteUserID,
		RemoteUsername: remoteUsername,
		State:          EnrollmentStateMatriculado,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// ChangeState applies an administrative state transition
func (l *EnrollmentLink) ChangeState(state EnrollmentState, notes string) error {
	if !state.IsValid() {
		return ErrLinkInvalidState
	}
	l.State = state
	if notes != "" {
		l.Notes = notes
	}
	l.UpdatedAt = time.Now()
	return nil
}

// EnrollmentLinkRepository defines the persistence port for enrollment
// links. Only the enrollment lifecycle orchestrator writes through it.
type EnrollmentLinkRepository interface {
	// FindByEnrollmentID finds the link for a local enrollment
	FindByEnrollmentID(ctx context.Context, enrollmentID uuid.UUID) (*EnrollmentLink, error)

	// ExistsByEnrollmentID checks whether a link exists for a local enrollment
	ExistsByEnrollmentID(ctx context.Context, enrollmentID uuid.UUID) (bool, error)

	// Save creates or updates a link
	Save(ctx context.Context, link *EnrollmentLink) error

	// DeleteByEnrollmentID deletes the link for a local enrollment
	DeleteByEnrollmentID(ctx context.Context, enrollmentID uuid.UUID) error
}
