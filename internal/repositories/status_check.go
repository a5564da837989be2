package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"alfredoptarigan/career-mentor/internal/models"
)

// MaxStatusChecks caps a status listing.
const MaxStatusChecks = 1000

type StatusCheckRepository interface {
	Create(ctx context.Context, check *models.StatusCheck) error
	List(ctx context.Context, limit int) ([]models.StatusCheck, error)
}

type statusCheckRepository struct {
	db *gorm.DB
}

func NewStatusCheckRepository(db *gorm.DB) StatusCheckRepository {
	return &statusCheckRepository{db: db}
}

func (r *statusCheckRepository) Create(ctx context.Context, check *models.StatusCheck) error {
	if err := r.db.WithContext(ctx).Create(check).Error; err != nil {
		return fmt.Errorf("failed to create status check: %w", err)
	}
	return nil
}

// List returns at most limit records in no particular order.
func (r *statusCheckRepository) List(ctx context.Context, limit int) ([]models.StatusCheck, error) {
	if limit <= 0 || limit > MaxStatusChecks {
		limit = MaxStatusChecks
	}

	checks := make([]models.StatusCheck, 0)
	if err := r.db.WithContext(ctx).Limit(limit).Find(&checks).Error; err != nil {
		return nil, fmt.Errorf("failed to list status checks: %w", err)
	}
	return checks, nil
}
