package academic

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCourseNotFound         = errors.New("academic: course not found")
	ErrCourseInvalidShortName = errors.New("academic: invalid course short name")
	ErrCourseInvalidName      = errors.New("academic: invalid course name")
	ErrCourseInvalidDates     = errors.New("academic: course end date before start date")
)

// Course represents a sellable course offering.
type Course struct {
	ID          uuid.UUID
	ShortName   string
	Name        string
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
	Price       decimal.Decimal
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCourse creates a new course
func NewCourse(shortName, name string) (*Course, error) {
	if shortName == "" {
		return nil, ErrCourseInvalidShortName
	}
	if name == "" {
		return nil, ErrCourseInvalidName
	}

	now := time.Now()
	return &Course{
		ID:        uuid.New(),
		ShortName: shortName,
		Name:      name,
		Price:     decimal.Zero,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Validate validates the course
func (c *Course) Validate() error {
	if c.ShortName == "" {
		return ErrCourseInvalidShortName
	}
	if c.Name == "" {
		return ErrCourseInvalidName
	}
	if c.StartDate != nil && c.EndDate != nil && c.EndDate.Before(*c.StartDate) {
		return ErrCourseInvalidDates
	}
	return nil
}

// Deactivate deactivates the course
func (c *Course) Deactivate() {
	c.IsActive = false
	c.UpdatedAt = time.Now()
}

// CourseRepository defines the persistence port for courses.
// The sync orchestrators use Delete as a compensating action only;
// normal lifecycle writes belong to the academic application service.
type CourseRepository interface {
	// FindByID finds a course by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Course, error)

	// FindByShortName finds a course by its short name
	FindByShortName(ctx context.Context, shortName string) (*Course, error)

	// FindAll returns all courses
	FindAll(ctx context.Context) ([]Course, error)

	// Save creates or updates a course
	Save(ctx context.Context, course *Course) error

	// Delete deletes a course
	Delete(ctx context.Context, id uuid.UUID) error
}
