package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "tourmuse/internal/models/db_models"
)

type GuideRepository interface {
	ByDestination(ctx context.Context, destination string) (*dbm.CityGuide, error)
}

type guideRepository struct {
	db *gorm.DB
}

func NewGuideRepository(db *gorm.DB) GuideRepository {
	return &guideRepository{db: db}
}

func (r *guideRepository) ByDestination(ctx context.Context, destination string) (*dbm.CityGuide, error) {
	var guide dbm.CityGuide
	err := r.db.WithContext(ctx).
		Where("destination ILIKE ?", destination).
		First(&guide).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &guide, nil
}
