package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/academia/backend/internal/domain/academic"
)

// CourseResponse represents a course in API responses
type CourseResponse struct {
	ID          uuid.UUID  `json:"id"`
	ShortName   string     `json:"short_name"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Price       float64    `json:"price"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CourseResponseFromDomain converts a domain course to a response
func CourseResponseFromDomain(course *academic.Course) CourseResponse {
	return CourseResponse{
		ID:          course.ID,
		ShortName:   course.ShortName,
		Name:        course.Name,
		Description: course.Description,
		StartDate:   course.StartDate,
		EndDate:     course.EndDate,
		Price:       course.Price.InexactFloat64(),
		IsActive:    course.IsActive,
		CreatedAt:   course.CreatedAt,
		UpdatedAt:   course.UpdatedAt,
	}
}

// SyncStatusResponse reports whether a course is present on the remote
// learning platform
type SyncStatusResponse struct {
	CourseID uuid.UUID `json:"course_id"`
	Synced   bool      `json:"synced"`
}
