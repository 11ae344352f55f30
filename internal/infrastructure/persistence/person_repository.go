package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/academia/backend/internal/domain/academic"
	"github.com/academia/backend/internal/infrastructure/persistence/models"
)

// GormPersonRepository implements PersonRepository using GORM
type GormPersonRepository struct {
	db *gorm.DB
}

// NewGormPersonRepository creates a new GormPersonRepository
func NewGormPersonRepository(db *gorm.DB) *GormPersonRepository {
	return &GormPersonRepository{db: db}
}

// FindByID finds a person by its ID
func (r *GormPersonRepository) FindByID(ctx context.Context, id uuid.UUID) (*academic.Person, error) {
	var model models.PersonModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, academic.ErrPersonNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByEmail finds a person by email, case-insensitively
func (r *GormPersonRepository) FindByEmail(ctx context.Context, email string) (*academic.Person, error) {
	var model models.PersonModel
	if err := r.db.WithContext(ctx).
		First(&model, "lower(email) = ?", strings.ToLower(email)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, academic.ErrPersonNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a person
func (r *GormPersonRepository) Save(ctx context.Context, person *academic.Person) error {
	model := models.PersonModelFromDomain(person)
	return r.db.WithContext(ctx).Save(model).Error
}

// Ensure GormPersonRepository implements PersonRepository
var _ academic.PersonRepository = (*GormPersonRepository)(nil)
