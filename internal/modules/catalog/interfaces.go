package catalog

import (
	"context"
	"time"

	"stayhub/internal/domain"
)

type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) error
	GetOwned(ctx context.Context, propertyID, tenantID int64) (*domain.Property, error)
	ListByTenant(ctx context.Context, tenantID int64, limit, offset int) ([]domain.Property, int64, error)
	Update(ctx context.Context, p *domain.Property) error
	Delete(ctx context.Context, propertyID int64) error
	CountRooms(ctx context.Context, propertyID int64) (int64, error)
}

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetOwned(ctx context.Context, roomID, tenantID int64) (*domain.Room, error)
	ListByTenant(ctx context.Context, tenantID, propertyID int64, limit, offset int) ([]domain.Room, int64, error)
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, roomID int64) error
	CountActiveBookings(ctx context.Context, roomID int64, now time.Time) (int64, error)
}

type CategoryRepository interface {
	ListVisible(ctx context.Context, tenantID int64) ([]domain.PropertyCategory, error)
	GetOwned(ctx context.Context, id, tenantID int64) (*domain.PropertyCategory, error)
	Create(ctx context.Context, cat *domain.PropertyCategory) error
	Update(ctx context.Context, cat *domain.PropertyCategory) error
	Delete(ctx context.Context, id int64) error
	CountProperties(ctx context.Context, categoryID int64) (int64, error)
}

type CityRepository interface {
	List(ctx context.Context) ([]domain.City, error)
	GetByID(ctx context.Context, id int64) (*domain.City, error)
}
