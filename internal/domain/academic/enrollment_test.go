package academic

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewEnrollment(t *testing.T) {
	personID := uuid.New()
	courseID := uuid.New()

	enrollment, err := NewEnrollment(personID, courseID)

	assert.NoError(t, err)
	assert.Equal(t, personID, enrollment.PersonID)
	assert.Equal(t, courseID, enrollment.CourseID)
	assert.False(t, enrollment.Matriculated)
}

func TestNewEnrollment_Validation(t *testing.T) {
	_, err := NewEnrollment(uuid.Nil, uuid.New())
	assert.ErrorIs(t, err, ErrEnrollmentInvalidPersonID)

	_, err = NewEnrollment(uuid.New(), uuid.Nil)
	assert.ErrorIs(t, err, ErrEnrollmentInvalidCourseID)
}

func TestEnrollment_Matriculate(t *testing.T) {
	enrollment, err := NewEnrollment(uuid.New(), uuid.New())
	assert.NoError(t, err)

	assert.NoError(t, enrollment.Matriculate())
	assert.True(t, enrollment.Matriculated)

	assert.ErrorIs(t, enrollment.Matriculate(), ErrEnrollmentAlreadyMatriculated)
}

func TestEnrollment_RevertMatriculation(t *testing.T) {
	enrollment, err := NewEnrollment(uuid.New(), uuid.New())
	assert.NoError(t, err)
	assert.NoError(t, enrollment.Matriculate())

	enrollment.RevertMatriculation()

	assert.False(t, enrollment.Matriculated)
}
