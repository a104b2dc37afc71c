package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"stayhub/internal/domain"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

// GetOwned fetches a room only if its property belongs to the tenant.
// Absence and foreign ownership are indistinguishable: both yield (nil, nil).
func (r *RoomRepository) GetOwned(ctx context.Context, roomID, tenantID int64) (*domain.Room, error) {
	var room domain.Room
	tx := r.db.WithContext(ctx).
		Joins("JOIN properties ON properties.id = rooms.property_id").
		Where("rooms.id = ? AND properties.tenant_id = ?", roomID, tenantID).
		First(&room)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &room, nil
}

func (r *RoomRepository) ListByTenant(ctx context.Context, tenantID int64, propertyID int64, limit, offset int) ([]domain.Room, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&domain.Room{}).
		Joins("JOIN properties ON properties.id = rooms.property_id").
		Where("properties.tenant_id = ?", tenantID)
	if propertyID != 0 {
		base = base.Where("rooms.property_id = ?", propertyID)
	}

	var total int64
	if tx := base.Session(&gorm.Session{}).Count(&total); tx.Error != nil {
		return nil, 0, tx.Error
	}

	q := base.Session(&gorm.Session{}).
		Preload("Pictures", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc").Limit(1)
		}).
		Order("rooms.created_at desc")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var rooms []domain.Room
	tx := q.Find(&rooms)
	return rooms, total, tx.Error
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

func (r *RoomRepository) Delete(ctx context.Context, roomID int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Room{}, roomID).Error
}

// CountActiveBookings counts confirmed or paid bookings for the room that have
// not checked out yet. Such bookings block room deletion.
func (r *RoomRepository) CountActiveBookings(ctx context.Context, roomID int64, now time.Time) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("room_id = ? AND status_id IN ? AND check_out >= ?",
			roomID, []int{domain.BookingStatusConfirmed, domain.BookingStatusPaid}, now).
		Count(&cnt)
	return cnt, tx.Error
}
