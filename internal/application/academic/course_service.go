package academic

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "github.com/academia/backend/internal/domain/academic"
)

// CourseSynchronizer is the slice of the sync orchestrator the course
// service needs. Local persistence always happens first; the hooks run
// against the committed state.
type CourseSynchronizer interface {
	PostCreate(ctx context.Context, course *domain.Course) error
	PostUpdate(ctx context.Context, course *domain.Course) error
	PreDelete(ctx context.Context, courseID uuid.UUID) error
	VerifySync(ctx context.Context, course *domain.Course) (bool, error)
}

// CourseService implements the course lifecycle use cases
type CourseService struct {
	courses domain.CourseRepository
	sync    CourseSynchronizer
	logger  *zap.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(courses domain.CourseRepository, sync CourseSynchronizer, logger *zap.Logger) *CourseService {
	return &CourseService{
		courses: courses,
		sync:    sync,
		logger:  logger.Named("course-service"),
	}
}

// Create persists a new course and then runs the post-create
// synchronization saga. When the saga fails the local row has already
// been deleted by its compensating action and the whole operation fails.
func (s *CourseService) Create(ctx context.Context, input CreateCourseInput) (*domain.Course, error) {
	course, err := domain.NewCourse(input.ShortName, input.Name)
	if err != nil {
		return nil, err
	}
	course.Description = input.Description
	course.StartDate = input.StartDate
	course.EndDate = input.EndDate
	course.Price = input.Price
	if err := course.Validate(); err != nil {
		return nil, err
	}

	if err := s.courses.Save(ctx, course); err != nil {
		return nil, err
	}

	if err := s.sync.PostCreate(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Update mutates a course locally. Remote propagation is delegated to
// the post-update hook, which is best-effort.
func (s *CourseService) Update(ctx context.Context, id uuid.UUID, input UpdateCourseInput) (*domain.Course, error) {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		course.Name = *input.Name
	}
	if input.Description != nil {
		course.Description = *input.Description
	}
	if input.StartDate != nil {
		course.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		course.EndDate = input.EndDate
	}
	if input.Price != nil {
		course.Price = *input.Price
	}
	if err := course.Validate(); err != nil {
		return nil, err
	}

	if err := s.courses.Save(ctx, course); err != nil {
		return nil, err
	}

	if err := s.sync.PostUpdate(ctx, course); err != nil {
		s.logger.Warn("post-update synchronization failed",
			zap.String("course_id", course.ID.String()), zap.Error(err))
	}
	return course, nil
}

// Delete removes a course. Integration cleanup runs first and never
// blocks the deletion.
func (s *CourseService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.courses.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.sync.PreDelete(ctx, id); err != nil {
		s.logger.Warn("pre-delete synchronization failed",
			zap.String("course_id", id.String()), zap.Error(err))
	}
	return s.courses.Delete(ctx, id)
}

// Get returns a course by id
func (s *CourseService) Get(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	return s.courses.FindByID(ctx, id)
}

// List returns all courses
func (s *CourseService) List(ctx context.Context) ([]domain.Course, error) {
	return s.courses.FindAll(ctx)
}

// VerifySync reports whether the course is integrated with the LMS
func (s *CourseService) VerifySync(ctx context.Context, id uuid.UUID) (bool, error) {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	return s.sync.VerifySync(ctx, course)
}
