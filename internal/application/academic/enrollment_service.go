package academic

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/academia/backend/internal/application/sync"
	domain "github.com/academia/backend/internal/domain/academic"
	"github.com/academia/backend/internal/domain/integration"
)

// ErrAlreadyEnrolled indicates the person already has an enrollment in the course
var ErrAlreadyEnrolled = errors.New("academic: person already enrolled in course")

// EnrollmentSynchronizer is the slice of the sync orchestrator the
// enrollment service needs
type EnrollmentSynchronizer interface {
	Matriculate(ctx context.Context, req *sync.MatriculationRequest) error
	PreDelete(ctx context.Context, enrollmentID uuid.UUID) error
	ChangeState(ctx context.Context, enrollmentID uuid.UUID, state integration.EnrollmentState, notes string) (*integration.EnrollmentLink, error)
}

// EnrollmentService implements the enrollment lifecycle use cases
type EnrollmentService struct {
	enrollments domain.EnrollmentRepository
	people      domain.PersonRepository
	courses     domain.CourseRepository
	sync        EnrollmentSynchronizer
	logger      *zap.Logger
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(
	enrollments domain.EnrollmentRepository,
	people domain.PersonRepository,
	courses domain.CourseRepository,
	sync EnrollmentSynchronizer,
	logger *zap.Logger,
) *EnrollmentService {
	return &EnrollmentService{
		enrollments: enrollments,
		people:      people,
		courses:     courses,
		sync:        sync,
		logger:      logger.Named("enrollment-service"),
	}
}

// Enroll creates a commercial enrollment for a person in a course. No
// remote synchronization happens yet; that is deferred to Matriculate.
func (s *EnrollmentService) Enroll(ctx context.Context, personID, courseID uuid.UUID) (*domain.Enrollment, error) {
	if _, err := s.people.FindByID(ctx, personID); err != nil {
		return nil, err
	}
	if _, err := s.courses.FindByID(ctx, courseID); err != nil {
		return nil, err
	}

	existing, err := s.enrollments.FindByPersonAndCourse(ctx, personID, courseID)
	if err != nil && !errors.Is(err, domain.ErrEnrollmentNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyEnrolled
	}

	enrollment, err := domain.NewEnrollment(personID, courseID)
	if err != nil {
		return nil, err
	}
	if err := s.enrollments.Save(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

// Matriculate flips the matriculated flag, commits it, and then runs
// the matriculation saga. On a critical saga failure the flag has been
// reverted by the compensating action and the error surfaces both facts.
func (s *EnrollmentService) Matriculate(ctx context.Context, enrollmentID uuid.UUID) (*domain.Enrollment, error) {
	enrollment, err := s.enrollments.FindByID(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}

	if err := enrollment.Matriculate(); err != nil {
		return nil, err
	}
	if err := s.enrollments.Save(ctx, enrollment); err != nil {
		return nil, err
	}

	person, err := s.people.FindByID(ctx, enrollment.PersonID)
	if err != nil {
		return nil, err
	}
	course, err := s.courses.FindByID(ctx, enrollment.CourseID)
	if err != nil {
		return nil, err
	}

	err = s.sync.Matriculate(ctx, &sync.MatriculationRequest{
		Enrollment: enrollment,
		Person:     person,
		Course:     course,
	})
	if err != nil {
		return nil, err
	}
	return enrollment, nil
}

// Delete removes an enrollment after cleaning up its link record
func (s *EnrollmentService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.enrollments.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.sync.PreDelete(ctx, id); err != nil {
		s.logger.Warn("pre-delete synchronization failed",
			zap.String("enrollment_id", id.String()), zap.Error(err))
	}
	return s.enrollments.Delete(ctx, id)
}

// Get returns an enrollment by id
func (s *EnrollmentService) Get(ctx context.Context, id uuid.UUID) (*domain.Enrollment, error) {
	return s.enrollments.FindByID(ctx, id)
}

// ChangeSyncState applies an administrative state transition to the
// enrollment's link record
func (s *EnrollmentService) ChangeSyncState(ctx context.Context, enrollmentID uuid.UUID, state integration.EnrollmentState, notes string) (*integration.EnrollmentLink, error) {
	if _, err := s.enrollments.FindByID(ctx, enrollmentID); err != nil {
		return nil, err
	}
	return s.sync.ChangeState(ctx, enrollmentID, state, notes)
}
