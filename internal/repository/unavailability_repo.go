package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"stayhub/internal/domain"
	"stayhub/internal/pkg/daterange"
)

type UnavailabilityRepository struct {
	db *gorm.DB
}

func NewUnavailabilityRepository(db *gorm.DB) *UnavailabilityRepository {
	return &UnavailabilityRepository{db: db}
}

// ListByRoom returns every unavailability window of the room, ordered by
// start date. The overlap guard scans this snapshot with the canonical
// predicate rather than pushing the comparison into SQL.
func (r *UnavailabilityRepository) ListByRoom(ctx context.Context, roomID int64) ([]domain.RoomUnavailability, error) {
	var rows []domain.RoomUnavailability
	tx := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("start_date asc").
		Find(&rows)
	return rows, tx.Error
}

func (r *UnavailabilityRepository) ListByRoomInRange(ctx context.Context, roomID int64, rng daterange.Range) ([]domain.RoomUnavailability, error) {
	var rows []domain.RoomUnavailability
	tx := r.db.WithContext(ctx).
		Where("room_id = ? AND start_date <= ? AND end_date >= ?", roomID, rng.End, rng.Start).
		Order("start_date asc").
		Find(&rows)
	return rows, tx.Error
}

// ListByProperty pages through the unavailabilities of every room of a
// property owned by the tenant.
func (r *UnavailabilityRepository) ListByProperty(ctx context.Context, propertyID, tenantID int64, limit, offset int) ([]domain.RoomUnavailability, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&domain.RoomUnavailability{}).
		Joins("JOIN rooms ON rooms.id = room_unavailabilities.room_id").
		Joins("JOIN properties ON properties.id = rooms.property_id").
		Where("rooms.property_id = ? AND properties.tenant_id = ?", propertyID, tenantID)

	var total int64
	if tx := base.Session(&gorm.Session{}).Count(&total); tx.Error != nil {
		return nil, 0, tx.Error
	}

	var rows []domain.RoomUnavailability
	tx := base.Session(&gorm.Session{}).
		Order("room_unavailabilities.start_date asc").
		Limit(limit).Offset(offset).
		Find(&rows)
	return rows, total, tx.Error
}

// GetOwned fetches an unavailability only if its room's property belongs to
// the tenant; (nil, nil) otherwise.
func (r *UnavailabilityRepository) GetOwned(ctx context.Context, id, tenantID int64) (*domain.RoomUnavailability, error) {
	var row domain.RoomUnavailability
	tx := r.db.WithContext(ctx).
		Joins("JOIN rooms ON rooms.id = room_unavailabilities.room_id").
		Joins("JOIN properties ON properties.id = rooms.property_id").
		Where("room_unavailabilities.id = ? AND properties.tenant_id = ?", id, tenantID).
		First(&row)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &row, nil
}

func (r *UnavailabilityRepository) Create(ctx context.Context, row *domain.RoomUnavailability) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *UnavailabilityRepository) Update(ctx context.Context, row *domain.RoomUnavailability) error {
	return r.db.WithContext(ctx).Save(row).Error
}

func (r *UnavailabilityRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.RoomUnavailability{}, id).Error
}
