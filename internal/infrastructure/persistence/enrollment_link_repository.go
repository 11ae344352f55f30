package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/academia/backend/internal/domain/integration"
	"github.com/academia/backend/internal/infrastructure/persistence/models"
)

// GormEnrollmentLinkRepository implements EnrollmentLinkRepository using GORM
type GormEnrollmentLinkRepository struct {
	db *gorm.DB
}

// NewGormEnrollmentLinkRepository creates a new GormEnrollmentLinkRepository
func NewGormEnrollmentLinkRepository(db *gorm.DB) *GormEnrollmentLinkRepository {
	return &GormEnrollmentLinkRepository{db: db}
}

// FindByEnrollmentID finds the link for a local enrollment
func (r *GormEnrollmentLinkRepository) FindByEnrollmentID(ctx context.Context, enrollmentID uuid.UUID) (*integration.EnrollmentLink, error) {
	var model models.EnrollmentLinkModel
	if err := r.db.WithContext(ctx).First(&model, "enrollment_id = ?", enrollmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, integration.ErrEnrollmentLinkNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ExistsByEnrollmentID checks whether a link exists for a local enrollment
func (r *GormEnrollmentLinkRepository) ExistsByEnrollmentID(ctx context.Context, enrollmentID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.EnrollmentLinkModel{}).
		Where("enrollment_id = ?", enrollmentID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a link
func (r *GormEnrollmentLinkRepository) Save(ctx context.Context, link *integration.EnrollmentLink) error {
	model := models.EnrollmentLinkModelFromDomain(link)
	return r.db.WithContext(ctx).Save(model).Error
}

// DeleteByEnrollmentID deletes the link for a local enrollment
func (r *GormEnrollmentLinkRepository) DeleteByEnrollmentID(ctx context.Context, enrollmentID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.EnrollmentLinkModel{}, "enrollment_id = ?", enrollmentID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return integration.ErrEnrollmentLinkNotFound
	}
	return nil
}

// Ensure GormEnrollmentLinkRepository implements EnrollmentLinkRepository
var _ integration.EnrollmentLinkRepository = (*GormEnrollmentLinkRepository)(nil)
