package academic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewCourse(t *testing.T) {
	course, err := NewCourse("JS101", "JavaScript desde cero")

	assert.NoError(t, err)
	assert.Equal(t, "JS101", course.ShortName)
	assert.Equal(t, "JavaScript desde cero", course.Name)
	assert.True(t, course.IsActive)
}

func TestNewCourse_Validation(t *testing.T) {
	_, err := NewCourse("", "JavaScript desde cero")
	assert.ErrorIs(t, err, ErrCourseInvalidShortName)

	_, err = NewCourse("JS101", "")
	assert.ErrorIs(t, err, ErrCourseInvalidName)
}

func TestCourse_Validate_DatesOutOfOrder(t *testing.T) {
	course, err := NewCourse("JS101", "JavaScript desde cero")
	assert.NoError(t, err)

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, -1, 0)
	course.StartDate = &start
	course.EndDate = &end

	assert.ErrorIs(t, course.Validate(), ErrCourseInvalidDates)
}
