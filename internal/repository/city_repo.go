package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"stayhub/internal/domain"
)

type CityRepository struct {
	db *gorm.DB
}

func NewCityRepository(db *gorm.DB) *CityRepository {
	return &CityRepository{db: db}
}

func (r *CityRepository) List(ctx context.Context) ([]domain.City, error) {
	var cities []domain.City
	tx := r.db.WithContext(ctx).Order("name asc").Find(&cities)
	return cities, tx.Error
}

func (r *CityRepository) GetByID(ctx context.Context, id int64) (*domain.City, error) {
	var c domain.City
	tx := r.db.WithContext(ctx).First(&c, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &c, nil
}
