package integration

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrGroupInvalidCourseID = errors.New("integration: invalid local course ID for group")
	ErrGroupInvalidRemoteID = errors.New("integration: invalid remote group ID")
)

// MessagingGroup maps one local course to one remote chat group.
// Created best-effort after course creation and deleted best-effort
// before course deletion; its absence is never an error condition for
// any other entity.
type MessagingGroup struct {
	ID         uuid.UUID
	CourseID   uuid.UUID
	GroupID    string
	GroupTitle string
	InviteLink string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewMessagingGroup creates a new messaging group record
func NewMessagingGroup(courseID uuid.UUID, groupID, groupTitle, inviteLink string) (*MessagingGroup, error) {
	if courseID == uuid.Nil {
		return nil, ErrGroupInvalidCourseID
	}
	if groupID == "" {
		return nil, ErrGroupInvalidRemoteID
	}

	now := time.Now()
	return &MessagingGroup{
		ID:         uuid.New(),
		CourseID:   courseID,
		GroupID:    groupID,
		GroupTitle: groupTitle,
		InviteLink: inviteLink,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// MessagingGroupRepository defines the persistence port for messaging
// group records. Only the course lifecycle orchestrator writes through it.
type MessagingGroupRepository interface {
	// FindByCourseID finds the group record for a local course
	FindByCourseID(ctx context.Context, courseID uuid.UUID) (*MessagingGroup, error)

	// Save creates or updates a group record
	Save(ctx context.Context, group *MessagingGroup) error

	// DeleteByCourseID deletes the group record for a local course
	DeleteByCourseID(ctx context.Context, courseID uuid.UUID) error
}
