package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/academia/backend/internal/domain/integration"
	"github.com/academia/backend/internal/infrastructure/persistence/models"
)

// GormMessagingGroupRepository implements MessagingGroupRepository using GORM
type GormMessagingGroupRepository struct {
	db *gorm.DB
}

// NewGormMessagingGroupRepository creates a new GormMessagingGroupRepository
func NewGormMessagingGroupRepository(db *gorm.DB) *GormMessagingGroupRepository {
	return &GormMessagingGroupRepository{db: db}
}

// FindByCourseID finds the group record for a local course
func (r *GormMessagingGroupRepository) FindByCourseID(ctx context.Context, courseID uuid.UUID) (*integration.MessagingGroup, error) {
	var model models.MessagingGroupModel
	if err := r.db.WithContext(ctx).First(&model, "course_id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, integration.ErrGroupNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a group record
func (r *GormMessagingGroupRepository) Save(ctx context.Context, group *integration.MessagingGroup) error {
	model := models.MessagingGroupModelFromDomain(group)
	return r.db.WithContext(ctx).Save(model).Error
}

// DeleteByCourseID deletes the group record for a local course
func (r *GormMessagingGroupRepository) DeleteByCourseID(ctx context.Context, courseID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.MessagingGroupModel{}, "course_id = ?", courseID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return integration.ErrGroupNotFound
	}
	return nil
}

// Ensure GormMessagingGroupRepository implements MessagingGroupRepository
var _ integration.MessagingGroupRepository = (*GormMessagingGroupRepository)(nil)
