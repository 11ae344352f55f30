package integration

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewEnrollmentLink(t *testing.T) {
	enrollmentID := uuid.New()

	link, err := NewEnrollmentLink(enrollmentID, 42, "ana@example.com")

	assert.NoError(t, err)
	assert.Equal(t, enrollmentID, link.EnrollmentID)
	assert.Equal(t, int64(42), link.RemoteUserID)
	assert.Equal(t, "ana@example.com", link.RemoteUsername)
	assert.Equal(t, EnrollmentStateMatriculado, link.State)
}

func TestNewEnrollmentLink_Validation(t *testing.T) {
	tests := []struct {
		name         string
		enrollmentID uuid.UUID
		remoteUserID int64
		username     string
		expected     error
	}{
		{"nil enrollment ID", uuid.Nil, 42, "ana@example.com", ErrLinkInvalidEnrollmentID},
		{"zero remote user ID", uuid.New(), 0, "ana@example.com", ErrLinkInvalidRemoteUserID},
		{"empty username", uuid.New(), 42, "", ErrLinkInvalidUsername},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link, err := NewEnrollmentLink(tt.enrollmentID, tt.remoteUserID, tt.username)
			assert.Nil(t, link)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestEnrollmentLink_ChangeState(t *testing.T) {
	link, err := NewEnrollmentLink(uuid.New(), 42, "ana@example.com")
	assert.NoError(t, err)

	err = link.ChangeState(EnrollmentStateSuspendido, "impago")

	assert.NoError(t, err)
	assert.Equal(t, EnrollmentStateSuspendido, link.State)
	assert.Equal(t, "impago", link.Notes)
}

func TestEnrollmentLink_ChangeState_InvalidState(t *testing.T) {
	link, err := NewEnrollmentLink(uuid.New(), 42, "ana@example.com")
	assert.NoError(t, err)

	err = link.ChangeState(EnrollmentState("EXPULSADO"), "")

	assert.ErrorIs(t, err, ErrLinkInvalidState)
	assert.Equal(t, EnrollmentStateMatriculado, link.State)
}

func TestEnrollmentState_IsValid(t *testing.T) {
	valid := []EnrollmentState{
		EnrollmentStateMatriculado,
		EnrollmentStateSuspendido,
		EnrollmentStateCompletado,
		EnrollmentStateDesmatriculado,
	}
	for _, s := range valid {
		assert.True(t, s.IsValid(), s.String())
	}
	assert.False(t, EnrollmentState("OTRO").IsValid())
}
