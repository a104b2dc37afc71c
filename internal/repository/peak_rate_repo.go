package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"stayhub/internal/domain"
	"stayhub/internal/pkg/daterange"
)

type PeakRateRepository struct {
	db *gorm.DB
}

func NewPeakRateRepository(db *gorm.DB) *PeakRateRepository {
	return &PeakRateRepository{db: db}
}

func (r *PeakRateRepository) ListByRoom(ctx context.Context, roomID int64) ([]domain.PeakSeasonRate, error) {
	var rows []domain.PeakSeasonRate
	tx := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("start_date asc").
		Find(&rows)
	return rows, tx.Error
}

func (r *PeakRateRepository) ListByRoomInRange(ctx context.Context, roomID int64, rng daterange.Range) ([]domain.PeakSeasonRate, error) {
	var rows []domain.PeakSeasonRate
	tx := r.db.WithContext(ctx).
		Where("room_id = ? AND start_date <= ? AND end_date >= ?", roomID, rng.End, rng.Start).
		Order("start_date asc").
		Find(&rows)
	return rows, tx.Error
}

// ListByProperty pages through the peak season rates of every room of a
// property owned by the tenant.
func (r *PeakRateRepository) ListByProperty(ctx context.Context, propertyID, tenantID int64, limit, offset int) ([]domain.PeakSeasonRate, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&domain.PeakSeasonRate{}).
		Joins("JOIN rooms ON rooms.id = peak_season_rates.room_id").
		Joins("JOIN properties ON properties.id = rooms.property_id").
		Where("rooms.property_id = ? AND properties.tenant_id = ?", propertyID, tenantID)

	var total int64
	if tx := base.Session(&gorm.Session{}).Count(&total); tx.Error != nil {
		return nil, 0, tx.Error
	}

	var rows []domain.PeakSeasonRate
	tx := base.Session(&gorm.Session{}).
		Order("peak_season_rates.start_date asc").
		Limit(limit).Offset(offset).
		Find(&rows)
	return rows, total, tx.Error
}

// GetOwned fetches a rate only if its room's property belongs to the tenant;
// (nil, nil) otherwise.
func (r *PeakRateRepository) GetOwned(ctx context.Context, id, tenantID int64) (*domain.PeakSeasonRate, error) {
	var row domain.PeakSeasonRate
	tx := r.db.WithContext(ctx).
		Joins("JOIN rooms ON rooms.id = peak_season_rates.room_id").
		Joins("JOIN properties ON properties.id = rooms.property_id").
		Where("peak_season_rates.id = ? AND properties.tenant_id = ?", id, tenantID).
		First(&row)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &row, nil
}

func (r *PeakRateRepository) Create(ctx context.Context, row *domain.PeakSeasonRate) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *PeakRateRepository) Update(ctx context.Context, row *domain.PeakSeasonRate) error {
	return r.db.WithContext(ctx).Save(row).Error
}

func (r *PeakRateRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.PeakSeasonRate{}, id).Error
}
