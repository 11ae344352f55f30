package sync

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/academia/backend/internal/domain/academic"
	"github.com/academia/backend/internal/domain/integration"
)

type mockCourseRepository struct {
	mock.Mock
}

func (m *mockCourseRepository) FindByID(ctx context.Context, id uuid.UUID) (*academic.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*academic.Course), args.Error(1)
}

func (m *mockCourseRepository) FindByShortName(ctx context.Context, shortName string) (*academic.Course, error) {
	args := m.Called(ctx, shortName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*academic.Course), args.Error(1)
}

func (m *mockCourseRepository) FindAll(ctx context.Context) ([]academic.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]academic.Course), args.Error(1)
}

func (m *mockCourseRepository) Save(ctx context.Context, course *academic.Course) error {
	return m.Called(ctx, course).Error(0)
}

func (m *mockCourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockEnrollmentRepository struct {
	mock.Mock
}

func (m *mockEnrollmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*academic.Enrollment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*academic.Enrollment), args.Error(1)
}

func (m *mockEnrollmentRepository) FindByPersonAndCourse(ctx context.Context, personID, courseID uuid.UUID) (*academic.Enrollment, error) {
	args := m.Called(ctx, personID, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*academic.Enrollment), args.Error(1)
}

func (m *mockEnrollmentRepository) Save(ctx context.Context, enrollment *academic.Enrollment) error {
	return m.Called(ctx, enrollment).Error(0)
}

func (m *mockEnrollmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockCourseLinkRepository struct {
	mock.Mock
}

func (m *mockCourseLinkRepository) FindByCourseID(ctx context.Context, courseID uuid.UUID) (*integration.CourseLink, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*integration.CourseLink), args.Error(1)
}

func (m *mockCourseLinkRepository) ExistsByCourseID(ctx context.Context, courseID uuid.UUID) (bool, error) {
	args := m.Called(ctx, courseID)
	return args.Bool(0), args.Error(1)
}

func (m *mockCourseLinkRepository) Save(ctx context.Context, link *integration.CourseLink) error {
	return m.Called(ctx, link).Error(0)
}

func (m *mockCourseLinkRepository) DeleteByCourseID(ctx context.Context, courseID uuid.UUID) error {
	return m.Called(ctx, courseID).Error(0)
}

type mockEnrollmentLinkRepository struct {
	mock.Mock
}

func (m *mockEnrollmentLinkRepository) FindByEnrollmentID(ctx context.Context, enrollmentID uuid.UUID) (*integration.EnrollmentLink, error) {
	args := m.Called(ctx, enrollmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*integration.EnrollmentLink), args.Error(1)
}

func (m *mockEnrollmentLinkRepository) ExistsByEnrollmentID(ctx context.Context, enrollmentID uuid.UUID) (bool, error) {
	args := m.Called(ctx, enrollmentID)
	return args.Bool(0), args.Error(1)
}

func (m *mockEnrollmentLinkRepository) Save(ctx context.Context, link *integration.EnrollmentLink) error {
	return m.Called(ctx, link).Error(0)
}

func (m *mockEnrollmentLinkRepository) DeleteByEnrollmentID(ctx context.Context, enrollmentID uuid.UUID) error {
	return m.Called(ctx, enrollmentID).Error(0)
}

type mockMessagingGroupRepository struct {
	mock.Mock
}

func (m *mockMessagingGroupRepository) FindByCourseID(ctx context.Context, courseID uuid.UUID) (*integration.MessagingGroup, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*integration.MessagingGroup), args.Error(1)
}

func (m *mockMessagingGroupRepository) Save(ctx context.Context, group *integration.MessagingGroup) error {
	return m.Called(ctx, group).Error(0)
}

func (m *mockMessagingGroupRepository) DeleteByCourseID(ctx context.Context, courseID uuid.UUID) error {
	return m.Called(ctx, courseID).Error(0)
}

type mockUserGateway struct {
	mock.Mock
}

func (m *mockUserGateway) FindUserByEmail(ctx context.Context, email string) (int64, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserGateway) CreateUser(ctx context.Context, profile integration.UserProfile) (int64, error) {
	args := m.Called(ctx, profile)
	return args.Get(0).(int64), args.Error(1)
}

type mockCourseGateway struct {
	mock.Mock
}

func (m *mockCourseGateway) CreateCourse(ctx context.Context, course integration.RemoteCourse) (int64, error) {
	args := m.Called(ctx, course)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCourseGateway) DeleteCourse(ctx context.Context, remoteCourseID int64) error {
	return m.Called(ctx, remoteCourseID).Error(0)
}

func (m *mockCourseGateway) FindCourseIDByShortName(ctx context.Context, shortName string) (int64, error) {
	args := m.Called(ctx, shortName)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCourseGateway) FindCourseIDByPattern(ctx context.Context, pattern string) (int64, error) {
	args := m.Called(ctx, pattern)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCourseGateway) FindCourseIDByFullName(ctx context.Context, fullName string) (int64, error) {
	args := m.Called(ctx, fullName)
	return args.Get(0).(int64), args.Error(1)
}

type mockEnrolmentGateway struct {
	mock.Mock
}

func (m *mockEnrolmentGateway) IsEnrolled(ctx context.Context, userID, courseID int64) (bool, error) {
	args := m.Called(ctx, userID, courseID)
	return args.Bool(0), args.Error(1)
}

func (m *mockEnrolmentGateway) Enrol(ctx context.Context, req integration.EnrolRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockEnrolmentGateway) Unenrol(ctx context.Context, userID, courseID int64) error {
	return m.Called(ctx, userID, courseID).Error(0)
}

type mockGroupGateway struct {
	mock.Mock
}

func (m *mockGroupGateway) CreateGroup(ctx context.Context, title string) (*integration.GroupInfo, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*integration.GroupInfo), args.Error(1)
}

func (m *mockGroupGateway) DeleteGroup(ctx context.Context, groupID string) error {
	return m.Called(ctx, groupID).Error(0)
}

func (m *mockGroupGateway) GetGroupInfo(ctx context.Context, groupID string) (*integration.GroupInfo, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*integration.GroupInfo), args.Error(1)
}

func (m *mockGroupGateway) IsConfigured() bool {
	return m.Called().Bool(0)
}
