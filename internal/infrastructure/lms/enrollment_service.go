package lms

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/academia/backend/internal/domain/integration"
)

// defaultStudentRoleID is the LMS role assigned on enrolment
const defaultStudentRoleID = 5

// Critical warning codes. The remote call succeeds transport-wise but
// these conditions must still fail the saga. Anything else (notably
// "alreadyenrolled") is treated as success.
var criticalWarningCodes = map[string]bool{
	"usernotexist":      true,
	"coursenotexist":    true,
	"enrolnotpermitted": true,
}

// EnrollmentService manages enrolments on the LMS
type EnrollmentService struct {
	client *Client
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(client *Client) *EnrollmentService {
	return &EnrollmentService{client: client}
}

// IsEnrolled reports whether the remote user is enrolled in the remote
// course. Backs the idempotent enrol check of the enrollment saga.
func (s *EnrollmentService) IsEnrolled(ctx context.Context, userID, courseID int64) (bool, error) {
	params := url.Values{}
	params.Set("userid", strconv.FormatInt(userID, 10))

	var courses []remoteCourse
	if err := s.client.Call(ctx, "core_enrol_get_users_courses", params, &courses); err != nil {
		return false, err
	}

	for _, course := range courses {
		if course.ID == courseID {
			return true, nil
		}
	}
	return false, nil
}

// Enrol enrols the user in the course with the default student role.
// The enrolment start defaults to "now" so access is immediate
// regardless of the course's nominal start date; the end is set only
// when the course has an end date.
func (s *EnrollmentService) Enrol(ctx context.Context, req integration.EnrolRequest) error {
	start := time.Now()
	if req.StartDate != nil {
		start = *req.StartDate
	}

	params := url.Values{}
	params.Set("enrolments[0][roleid]", strconv.Itoa(defaultStudentRoleID))
	params.Set("enrolments[0][userid]", strconv.FormatInt(req.UserID, 10))
	params.Set("enrolments[0][courseid]", strconv.FormatInt(req.CourseID, 10))
	params.Set("enrolments[0][timestart]", strconv.FormatInt(start.Unix(), 10))
	if req.EndDate != nil {
		params.Set("enrolments[0][timeend]", strconv.FormatInt(req.EndDate.Unix(), 10))
	}

	var resp enrolResponse
	if err := s.client.Call(ctx, "enrol_manual_enrol_users", params, &resp); err != nil {
		return err
	}

	return classifyWarnings(resp.Warnings)
}

// Unenrol removes the user's enrolment from the remote course
func (s *EnrollmentService) Unenrol(ctx context.Context, userID, courseID int64) error {
	params := url.Values{}
	params.Set("enrolments[0][userid]", strconv.FormatInt(userID, 10))
	params.Set("enrolments[0][courseid]", strconv.FormatInt(courseID, 10))

	return s.client.Call(ctx, "enrol_manual_unenrol_users", params, nil)
}

// classifyWarnings distinguishes critical warnings from benign ones by
// code. The first critical warning fails the call.
func classifyWarnings(warnings []wsWarning) error {
	for _, w := range warnings {
		if criticalWarningCodes[w.WarningCode] {
			return integration.NewExternalError(
				fmt.Sprintf("lms: enrolment rejected with code %s: %s", w.WarningCode, w.Message), nil)
		}
	}
	return nil
}

// Ensure EnrollmentService implements the EnrolmentGateway port
var _ integration.EnrolmentGateway = (*EnrollmentService)(nil)
