package repositories

import (
	"context"

	"gorm.io/gorm"

	dbm "tourmuse/internal/models/db_models"
)

// HotelRepository serves the read-only hotel catalog.
type HotelRepository interface {
	All(ctx context.Context) ([]dbm.Hotel, error)
	ByLocation(ctx context.Context, location string) ([]dbm.Hotel, error)
}

type hotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) HotelRepository {
	return &hotelRepository{db: db}
}

func (r *hotelRepository) All(ctx context.Context) ([]dbm.Hotel, error) {
	var hotels []dbm.Hotel
	if err := r.db.WithContext(ctx).Order("name").Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *hotelRepository) ByLocation(ctx context.Context, location string) ([]dbm.Hotel, error) {
	var hotels []dbm.Hotel
	if err := r.db.WithContext(ctx).
		Where("location ILIKE ?", "%"+location+"%").
		Order("name").
		Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}
