package integration

import (
	"context"
	"time"
)

// ---------------------------------------------------------------------------
// LMS ports
// ---------------------------------------------------------------------------

// UserProfile carries the person data needed to create a remote LMS user
type UserProfile struct {
	FirstName   string
	LastName    string
	Email       string
	Country     string
	City        string
	Phone       string
	Institution string
	Profession  string
}

// RemoteCourse carries the course data needed to create a remote LMS course
type RemoteCourse struct {
	ShortName string
	FullName  string
	Summary   string
	StartDate *time.Time
	EndDate   *time.Time
}

// EnrolRequest is a request to enrol a remote user in a remote course.
// StartDate defaults to "now" at the adapter so access is immediate
// regardless of the course's nominal start date.
type EnrolRequest struct {
	UserID    int64
	CourseID  int64
	StartDate *time.Time
	EndDate   *time.Time
}

// UserGateway resolves and creates users on the LMS
type UserGateway interface {
	// FindUserByEmail returns the remote user id for an email, or
	// ErrRemoteUserNotFound on a clean miss
	FindUserByEmail(ctx context.Context, email string) (int64, error)

	// CreateUser creates a remote user from a person profile. Fails with
	// an ExternalService error when the remote response lacks a valid id.
	CreateUser(ctx context.Context, profile UserProfile) (int64, error)
}

// CourseGateway resolves and manages courses on the LMS
type CourseGateway interface {
	// CreateCourse creates a remote course and returns its id
	CreateCourse(ctx context.Context, course RemoteCourse) (int64, error)

	// DeleteCourse deletes a remote course
	DeleteCourse(ctx context.Context, remoteCourseID int64) error

	// FindCourseIDByShortName finds a course by exact short name, or
	// ErrRemoteCourseNotFound on a clean miss
	FindCourseIDByShortName(ctx context.Context, shortName string) (int64, error)

	// FindCourseIDByPattern finds a course whose short name matches the
	// given prefix pattern, or ErrRemoteCourseNotFound on a clean miss.
	// When the pattern matches several remote courses the first result
	// returned by the LMS wins.
	FindCourseIDByPattern(ctx context.Context, pattern string) (int64, error)

	// FindCourseIDByFullName finds a course by its full display name, or
	// ErrRemoteCourseNotFound on a clean miss
	FindCourseIDByFullName(ctx context.Context, fullName string) (int64, error)
}

// EnrolmentGateway manages enrolments on the LMS
type EnrolmentGateway interface {
	// IsEnrolled reports whether the remote user is enrolled in the remote course
	IsEnrolled(ctx context.Context, userID, courseID int64) (bool, error)

	// Enrol enrols the user with the default student role. Critical
	// remote warnings (missing user, missing course, enrolment not
	// permitted) surface as ExternalService errors; other warnings such
	// as "already enrolled" are treated as success.
	Enrol(ctx context.Context, req EnrolRequest) error

	// Unenrol removes the user's enrolment from the remote course
	Unenrol(ctx context.Context, userID, courseID int64) error
}

// ---------------------------------------------------------------------------
// Messaging port
// ---------------------------------------------------------------------------

// GroupInfo describes a remote chat group
type GroupInfo struct {
	GroupID    string
	Title      string
	InviteLink string
}

// GroupGateway manages chat groups on the messaging platform. Every
// orchestrator call site treats failures here as non-fatal.
type GroupGateway interface {
	// CreateGroup creates a remote group with the given title
	CreateGroup(ctx context.Context, title string) (*GroupInfo, error)

	// DeleteGroup deletes a remote group
	DeleteGroup(ctx context.Context, groupID string) error

	// GetGroupInfo returns info for a group, or ErrGroupNotFound
	GetGroupInfo(ctx context.Context, groupID string) (*GroupInfo, error)

	// IsConfigured reports whether the platform credentials are present
	IsConfigured() bool
}
