package lms

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/academia/backend/internal/domain/integration"
)

// CourseService resolves and manages courses on the LMS. The three
// find operations back the tiered resolution strategy of the enrollment
// saga: exact short name, short-name pattern, full display name. Each
// returns integration.ErrRemoteCourseNotFound on a clean miss and never
// fails a simple non-match.
type CourseService struct {
	client *Client
}

// NewCourseService creates a new CourseService
func NewCourseService(client *Client) *CourseService {
	return &CourseService{client: client}
}

// CreateCourse creates a remote course and returns its id
func (s *CourseService) CreateCourse(ctx context.Context, course integration.RemoteCourse) (int64, error) {
	params := url.Values{}
	params.Set("courses[0][shortname]", course.ShortName)
	params.Set("courses[0][fullname]", course.FullName)
	params.Set("courses[0][categoryid]", strconv.Itoa(s.client.config.DefaultCategoryID))
	if course.Summary != "" {
		params.Set("courses[0][summary]", course.Summary)
	}
	if course.StartDate != nil {
		params.Set("courses[0][startdate]", strconv.FormatInt(course.StartDate.Unix(), 10))
	}
	if course.EndDate != nil {
		params.Set("courses[0][enddate]", strconv.FormatInt(course.EndDate.Unix(), 10))
	}

	var created []remoteCourse
	if err := s.client.Call(ctx, "core_course_create_courses", params, &created); err != nil {
		return 0, err
	}

	if len(created) == 0 || created[0].ID <= 0 {
		return 0, integration.NewExternalError(
			fmt.Sprintf("lms: course creation for %s returned no valid id", course.ShortName), nil)
	}
	return created[0].ID, nil
}

// DeleteCourse deletes a remote course
func (s *CourseService) DeleteCourse(ctx context.Context, remoteCourseID int64) error {
	params := url.Values{}
	params.Set("courseids[0]", strconv.FormatInt(remoteCourseID, 10))

	var resp deleteCoursesResponse
	return s.client.Call(ctx, "core_course_delete_courses", params, &resp)
}

// FindCourseIDByShortName finds a course by exact short name
func (s *CourseService) FindCourseIDByShortName(ctx context.Context, shortName string) (int64, error) {
	params := url.Values{}
	params.Set("field", "shortname")
	params.Set("value", shortName)

	var resp coursesByFieldResponse
	if err := s.client.Call(ctx, "core_course_get_courses_by_field", params, &resp); err != nil {
		return 0, err
	}

	if len(resp.Courses) == 0 {
		return 0, integration.ErrRemoteCourseNotFound
	}
	return resp.Courses[0].ID, nil
}

// FindCourseIDByPattern finds a course whose short name starts with the
// given prefix. The LMS search is free-text, so the prefix condition is
// re-checked locally. When several remote courses match, the first
// result returned by the LMS wins; there is no disambiguation rule.
func (s *CourseService) FindCourseIDByPattern(ctx context.Context, pattern string) (int64, error) {
	if pattern == "" {
		return 0, integration.ErrRemoteCourseNotFound
	}

	resp, err := s.searchCourses(ctx, pattern)
	if err != nil {
		return 0, err
	}

	for _, course := range resp.Courses {
		if strings.HasPrefix(strings.ToLower(course.ShortName), strings.ToLower(pattern)) {
			return course.ID, nil
		}
	}
	return 0, integration.ErrRemoteCourseNotFound
}

// FindCourseIDByFullName finds a course whose full display name equals
// the given name (case-insensitive)
func (s *CourseService) FindCourseIDByFullName(ctx context.Context, fullName string) (int64, error) {
	if fullName == "" {
		return 0, integration.ErrRemoteCourseNotFound
	}

	resp, err := s.searchCourses(ctx, fullName)
	if err != nil {
		return 0, err
	}

	for _, course := range resp.Courses {
		if strings.EqualFold(course.FullName, fullName) {
			return course.ID, nil
		}
	}
	return 0, integration.ErrRemoteCourseNotFound
}

// searchCourses runs the LMS free-text course search
func (s *CourseService) searchCourses(ctx context.Context, criteria string) (*searchCoursesResponse, error) {
	params := url.Values{}
	params.Set("criterianame", "search")
	params.Set("criteriavalue", criteria)

	var resp searchCoursesResponse
	if err := s.client.Call(ctx, "core_course_search_courses", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Ensure CourseService implements the CourseGateway port
var _ integration.CourseGateway = (*CourseService)(nil)
