package academic

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/academia/backend/internal/application/sync"
	domain "github.com/academia/backend/internal/domain/academic"
	"github.com/academia/backend/internal/domain/integration"
)

type mockCourseRepository struct {
	mock.Mock
}

func (m *mockCourseRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Course), args.Error(1)
}

func (m *mockCourseRepository) FindByShortName(ctx context.Context, shortName string) (*domain.Course, error) {
	args := m.Called(ctx, shortName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Course), args.Error(1)
}

func (m *mockCourseRepository) FindAll(ctx context.Context) ([]domain.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Course), args.Error(1)
}

func (m *mockCourseRepository) Save(ctx context.Context, course *domain.Course) error {
	return m.Called(ctx, course).Error(0)
}

func (m *mockCourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockPersonRepository struct {
	mock.Mock
}

func (m *mockPersonRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

func (m *mockPersonRepository) FindByEmail(ctx context.Context, email string) (*domain.Person, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

func (m *mockPersonRepository) Save(ctx context.Context, person *domain.Person) error {
	return m.Called(ctx, person).Error(0)
}

type mockEnrollmentRepository struct {
	mock.Mock
}

func (m *mockEnrollmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Enrollment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enrollment), args.Error(1)
}

func (m *mockEnrollmentRepository) FindByPersonAndCourse(ctx context.Context, personID, courseID uuid.UUID) (*domain.Enrollment, error) {
	args := m.Called(ctx, personID, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enrollment), args.Error(1)
}

func (m *mockEnrollmentRepository) Save(ctx context.Context, enrollment *domain.Enrollment) error {
	return m.Called(ctx, enrollment).Error(0)
}

func (m *mockEnrollmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockCourseSynchronizer struct {
	mock.Mock
}

func (m *mockCourseSynchronizer) PostCreate(ctx context.Context, course *domain.Course) error {
	return m.Called(ctx, course).Error(0)
}

func (m *mockCourseSynchronizer) PostUpdate(ctx context.Context, course *domain.Course) error {
	return m.Called(ctx, course).Error(0)
}

func (m *mockCourseSynchronizer) PreDelete(ctx context.Context, courseID uuid.UUID) error {
	return m.Called(ctx, courseID).Error(0)
}

func (m *mockCourseSynchronizer) VerifySync(ctx context.Context, course *domain.Course) (bool, error) {
	args := m.Called(ctx, course)
	return args.Bool(0), args.Error(1)
}

type mockEnrollmentSynchronizer struct {
	mock.Mock
}

func (m *mockEnrollmentSynchronizer) Matriculate(ctx context.Context, req *sync.MatriculationRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockEnrollmentSynchronizer) PreDelete(ctx context.Context, enrollmentID uuid.UUID) error {
	return m.Called(ctx, enrollmentID).Error(0)
}

func (m *mockEnrollmentSynchronizer) ChangeState(ctx context.Context, enrollmentID uuid.UUID, state integration.EnrollmentState, notes string) (*integration.EnrollmentLink, error) {
	args := m.Called(ctx, enrollmentID, state, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*integration.EnrollmentLink), args.Error(1)
}
