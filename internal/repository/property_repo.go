package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"stayhub/internal/domain"
	"stayhub/internal/pkg/daterange"
)

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// SearchQuery carries the store-level filters for an availability search. The
// date filters only narrow the fetched child collections; the resolver applies
// the canonical predicates on the snapshot.
type SearchQuery struct {
	CityID        int64
	GuestCount    int
	CheckIn       time.Time
	CheckOut      time.Time
	PropertyName  string
	CategoryNames []string
}

func (r *PropertyRepository) SearchAvailable(ctx context.Context, q SearchQuery) ([]domain.Property, error) {
	lastNight := daterange.Nights(q.CheckIn, q.CheckOut).End

	db := r.db.WithContext(ctx).
		Model(&domain.Property{}).
		Where("properties.city_id = ?", q.CityID).
		Where("EXISTS (SELECT 1 FROM rooms WHERE rooms.property_id = properties.id AND rooms.max_guests >= ? AND rooms.quantity > 0)", q.GuestCount)

	if q.PropertyName != "" {
		db = db.Where("lower(properties.name) LIKE ?", "%"+strings.ToLower(q.PropertyName)+"%")
	}

	switch len(q.CategoryNames) {
	case 0:
	case 1:
		db = db.
			Joins("JOIN property_categories pc ON pc.id = properties.category_id").
			Where("lower(pc.name) LIKE ?", "%"+strings.ToLower(q.CategoryNames[0])+"%")
	default:
		names := make([]string, 0, len(q.CategoryNames))
		for _, n := range q.CategoryNames {
			names = append(names, strings.ToLower(strings.TrimSpace(n)))
		}
		db = db.
			Joins("JOIN property_categories pc ON pc.id = properties.category_id").
			Where("lower(pc.name) IN ?", names)
	}

	var props []domain.Property
	tx := db.
		Preload("Category").
		Preload("Pictures", "is_main = ?", true).
		Preload("Rooms", "max_guests >= ? AND quantity > 0", q.GuestCount).
		Preload("Rooms.Bookings", "status_id <> ? AND check_in < ? AND check_out > ?",
			domain.BookingStatusCanceled, q.CheckOut, q.CheckIn).
		Preload("Rooms.Unavailabilities", "start_date <= ? AND end_date >= ?", lastNight, q.CheckIn).
		Preload("Rooms.PeakRates", func(db *gorm.DB) *gorm.DB {
			return db.Where("start_date <= ? AND end_date >= ?", lastNight, q.CheckIn).
				Order("start_date asc")
		}).
		Find(&props)
	return props, tx.Error
}

// GetDetail loads one property with the same date-filtered room snapshot the
// search uses, plus city, ordered pictures and room pictures. Returns
// (nil, nil) when the property does not exist.
func (r *PropertyRepository) GetDetail(ctx context.Context, propertyID int64, q SearchQuery) (*domain.Property, error) {
	lastNight := daterange.Nights(q.CheckIn, q.CheckOut).End

	var prop domain.Property
	tx := r.db.WithContext(ctx).
		Preload("Category").
		Preload("City").
		Preload("Pictures", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_main desc, id asc")
		}).
		Preload("Rooms", "max_guests >= ? AND quantity > 0", q.GuestCount).
		Preload("Rooms.Bookings", "status_id <> ? AND check_in < ? AND check_out > ?",
			domain.BookingStatusCanceled, q.CheckOut, q.CheckIn).
		Preload("Rooms.Unavailabilities", "start_date <= ? AND end_date >= ?", lastNight, q.CheckIn).
		Preload("Rooms.PeakRates", func(db *gorm.DB) *gorm.DB {
			return db.Where("start_date <= ? AND end_date >= ?", lastNight, q.CheckIn).
				Order("start_date asc")
		}).
		Preload("Rooms.Pictures", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc")
		}).
		First(&prop, propertyID)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &prop, nil
}

// GetForCalendar loads a property with every room (quantity > 0) and the
// child records intersecting the given month. Returns (nil, nil) when absent.
func (r *PropertyRepository) GetForCalendar(ctx context.Context, propertyID int64, month daterange.Range) (*domain.Property, error) {
	var prop domain.Property
	tx := r.db.WithContext(ctx).
		Preload("Rooms", "quantity > 0").
		Preload("Rooms.Bookings", "status_id <> ? AND check_in <= ? AND check_out >= ?",
			domain.BookingStatusCanceled, month.End, month.Start).
		Preload("Rooms.Unavailabilities", "start_date <= ? AND end_date >= ?", month.End, month.Start).
		Preload("Rooms.PeakRates", func(db *gorm.DB) *gorm.DB {
			return db.Where("start_date <= ? AND end_date >= ?", month.End, month.Start).
				Order("start_date asc")
		}).
		First(&prop, propertyID)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &prop, nil
}

/* ---------- tenant CRUD ---------- */

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// GetOwned fetches a property only if the tenant owns it; (nil, nil) otherwise.
func (r *PropertyRepository) GetOwned(ctx context.Context, propertyID, tenantID int64) (*domain.Property, error) {
	var prop domain.Property
	tx := r.db.WithContext(ctx).
		Preload("Category").
		Preload("City").
		Preload("Pictures", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_main desc, id asc")
		}).
		Where("id = ? AND tenant_id = ?", propertyID, tenantID).
		First(&prop)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &prop, nil
}

func (r *PropertyRepository) ListByTenant(ctx context.Context, tenantID int64, limit, offset int) ([]domain.Property, int64, error) {
	var props []domain.Property
	q := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Preload("Category").
		Preload("City").
		Preload("Pictures", "is_main = ?", true).
		Preload("Rooms").
		Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if tx := q.Find(&props); tx.Error != nil {
		return nil, 0, tx.Error
	}

	var total int64
	tx := r.db.WithContext(ctx).
		Model(&domain.Property{}).
		Where("tenant_id = ?", tenantID).
		Count(&total)
	return props, total, tx.Error
}

func (r *PropertyRepository) Update(ctx context.Context, p *domain.Property) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PropertyRepository) Delete(ctx context.Context, propertyID int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Property{}, propertyID).Error
}

func (r *PropertyRepository) CountRooms(ctx context.Context, propertyID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&domain.Room{}).
		Where("property_id = ?", propertyID).
		Count(&cnt)
	return cnt, tx.Error
}
