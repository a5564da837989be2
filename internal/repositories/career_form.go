package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/career-mentor/internal/models"
)

type CareerFormRepository interface {
	Create(ctx context.Context, form *models.CareerForm) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.CareerForm, error)
}

type careerFormRepository struct {
	db *gorm.DB
}

func NewCareerFormRepository(db *gorm.DB) CareerFormRepository {
	return &careerFormRepository{db: db}
}

// Create implements CareerFormRepository.
func (r *careerFormRepository) Create(ctx context.Context, form *models.CareerForm) error {
	if err := r.db.WithContext(ctx).Create(form).Error; err != nil {
		return fmt.Errorf("failed to create career form: %w", err)
	}
	return nil
}

// FindByID implements CareerFormRepository.
func (r *careerFormRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.CareerForm, error) {
	var form models.CareerForm
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&form).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("career form %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find career form: %w", err)
	}
	return &form, nil
}
