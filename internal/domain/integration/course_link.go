package integration

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrLinkInvalidCourseID  = errors.New("integration: invalid local course ID")
	ErrLinkInvalidRemoteID  = errors.New("integration: invalid remote course ID")
	ErrLinkInvalidShortName = errors.New("integration: invalid remote short name")
)

// CourseLink maps one local course to one remote LMS course.
// At most one active link exists per local course. The link is created
// right after a successful remote course creation and deleted before a
// local course delete; it is never re-pointed at a different remote
// course (updates do not resync the mapping).
type CourseLink struct {
	ID              uuid.UUID
	CourseID        uuid.UUID
	RemoteCourseID  int64
	RemoteShortName string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewCourseLink creates a new course link
func NewCourseLink(courseID uuid.UUID, remoteCourseID int64, remoteShortName string) (*CourseLink, error) {
	if courseID == uuid.Nil {
		return nil, ErrLinkInvalidCourseID
	}
	if remoteCourseID <= 0 {
		return nil, ErrLinkInvalidRemoteID
	}
	if remoteShortName == "" {
		return nil, ErrLinkInvalidShortName
	}

	now := time.Now()
	return &CourseLink{
		ID:              uuid.New(),
		CourseID:        courseID,
		RemoteCourseID:  remoteCourseID,
		RemoteShortName: remoteShortName,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// Deactivate deactivates the link
func (l *CourseLink) Deactivate() {
	l.IsActive = false
	l.UpdatedAt = time.Now()
}

// CourseLinkRepository defines the persistence port for course links.
// Only the course lifecycle orchestrator writes through it.
type CourseLinkRepository interface {
	// FindByCourseID finds the active link for a local course
	FindByCourseID(ctx context.Context, courseID uuid.UUID) (*CourseLink, error)

	// ExistsByCourseID checks whether an active link exists for a local course
	ExistsByCourseID(ctx context.Context, courseID uuid.UUID) (bool, error)

	// Save creates or updates a link
	Save(ctx context.Context, link *CourseLink) error

	// DeleteByCourseID deletes the link for a local course
	DeleteByCourseID(ctx context.Context, courseID uuid.UUID) error
}
