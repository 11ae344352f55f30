package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/academia/backend/internal/domain/integration"
	"github.com/academia/backend/internal/infrastructure/persistence/models"
)

// GormCourseLinkRepository implements CourseLinkRepository using GORM
type GormCourseLinkRepository struct {
	db *gorm.DB
}

// NewGormCourseLinkRepository creates a new GormCourseLinkRepository
func NewGormCourseLinkRepository(db *gorm.DB) *GormCourseLinkRepository {
	return &GormCourseLinkRepository{db: db}
}

// FindByCourseID finds the link for a local course
func (r *GormCourseLinkRepository) FindByCourseID(ctx context.Context, courseID uuid.UUID) (*integration.CourseLink, error) {
	var model models.CourseLinkModel
	if err := r.db.WithContext(ctx).First(&model, "course_id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, integration.ErrCourseLinkNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ExistsByCourseID checks whether a link exists for a local course
func (r *GormCourseLinkRepository) ExistsByCourseID(ctx context.Context, courseID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CourseLinkModel{}).
		Where("course_id = ?", courseID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a link
func (r *GormCourseLinkRepository) Save(ctx context.Context, link *integration.CourseLink) error {
	model := models.CourseLinkModelFromDomain(link)
	return r.db.WithContext(ctx).Save(model).Error
}

// DeleteByCourseID deletes the link for a local course
func (r *GormCourseLinkRepository) DeleteByCourseID(ctx context.Context, courseID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CourseLinkModel{}, "course_id = ?", courseID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return integration.ErrCourseLinkNotFound
	}
	return nil
}

// Ensure GormCourseLinkRepository implements CourseLinkRepository
var _ integration.CourseLinkRepository = (*GormCourseLinkRepository)(nil)
