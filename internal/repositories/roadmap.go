package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/career-mentor/internal/models"
)

type RoadmapRepository interface {
	Create(ctx context.Context, roadmap *models.Roadmap) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Roadmap, error)
	FindByFormID(ctx context.Context, formID uuid.UUID) ([]models.Roadmap, error)
}

type roadmapRepository struct {
	db *gorm.DB
}

func NewRoadmapRepository(db *gorm.DB) RoadmapRepository {
	return &roadmapRepository{db: db}
}

// Create implements RoadmapRepository.
func (r *roadmapRepository) Create(ctx context.Context, roadmap *models.Roadmap) error {
	if err := r.db.WithContext(ctx).Create(roadmap).Error; err != nil {
		return fmt.Errorf("failed to create roadmap: %w", err)
	}
	return nil
}

// FindByID implements RoadmapRepository.
func (r *roadmapRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Roadmap, error) {
	var roadmap models.Roadmap
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&roadmap).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("roadmap %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find roadmap: %w", err)
	}
	return &roadmap, nil
}

// FindByFormID implements RoadmapRepository.
func (r *roadmapRepository) FindByFormID(ctx context.Context, formID uuid.UUID) ([]models.Roadmap, error) {
	var roadmaps []models.Roadmap
	err := r.db.WithContext(ctx).
		Where("form_id = ?", formID).
		Order("created_at ASC").
		Find(&roadmaps).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find roadmaps for form: %w", err)
	}
	return roadmaps, nil
}
