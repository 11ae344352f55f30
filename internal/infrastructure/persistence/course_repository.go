package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/academia/backend/internal/domain/academic"
	"github.com/academia/backend/internal/infrastructure/persistence/models"
)

// GormCourseRepository implements CourseRepository using GORM
type GormCourseRepository struct {
	db *gorm.DB
}

// NewGormCourseRepository creates a new GormCourseRepository
func NewGormCourseRepository(db *gorm.DB) *GormCourseRepository {
	return &GormCourseRepository{db: db}
}

// FindByID finds a course by its ID
func (r *GormCourseRepository) FindByID(ctx context.Context, id uuid.UUID) (*academic.Course, error) {
	var model models.CourseModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, academic.ErrCourseNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByShortName finds a course by its short name
func (r *GormCourseRepository) FindByShortName(ctx context.Context, shortName string) (*academic.Course, error) {
	var model models.CourseModel
	if err := r.db.WithContext(ctx).First(&model, "short_name = ?", shortName).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, academic.ErrCourseNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all courses ordered by short name
func (r *GormCourseRepository) FindAll(ctx context.Context) ([]academic.Course, error) {
	var courseModels []models.CourseModel
	if err := r.db.WithContext(ctx).Order("short_name ASC").Find(&courseModels).Error; err != nil {
		return nil, err
	}

	courses := make([]academic.Course, len(courseModels))
	for i, model := range courseModels {
		courses[i] = *model.ToDomain()
	}
	return courses, nil
}

// Save creates or updates a course
func (r *GormCourseRepository) Save(ctx context.Context, course *academic.Course) error {
	model := models.CourseModelFromDomain(course)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a course
func (r *GormCourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CourseModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return academic.ErrCourseNotFound
	}
	return nil
}

// Ensure GormCourseRepository implements CourseRepository
var _ academic.CourseRepository = (*GormCourseRepository)(nil)
