package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/academia/backend/internal/domain/academic"
	"github.com/academia/backend/internal/infrastructure/persistence/models"
)

// GormEnrollmentRepository implements EnrollmentRepository using GORM
type GormEnrollmentRepository struct {
	db *gorm.DB
}

// NewGormEnrollmentRepository creates a new GormEnrollmentRepository
func NewGormEnrollmentRepository(db *gorm.DB) *GormEnrollmentRepository {
	return &GormEnrollmentRepository{db: db}
}

// FindByID finds an enrollment by its ID
func (r *GormEnrollmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*academic.Enrollment, error) {
	var model models.EnrollmentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, academic.ErrEnrollmentNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByPersonAndCourse finds an enrollment for a person/course pair
func (r *GormEnrollmentRepository) FindByPersonAndCourse(ctx context.Context, personID, courseID uuid.UUID) (*academic.Enrollment, error) {
	var model models.EnrollmentModel
	if err := r.db.WithContext(ctx).
		Where("person_id = ? AND course_id = ?", personID, courseID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, academic.ErrEnrollmentNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates an enrollment
func (r *GormEnrollmentRepository) Save(ctx context.Context, enrollment *academic.Enrollment) error {
	model := models.EnrollmentModelFromDomain(enrollment)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes an enrollment
func (r *GormEnrollmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.EnrollmentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return academic.ErrEnrollmentNotFound
	}
	return nil
}

// Ensure GormEnrollmentRepository implements EnrollmentRepository
var _ academic.EnrollmentRepository = (*GormEnrollmentRepository)(nil)
