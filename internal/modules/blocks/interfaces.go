package blocks

import (
	"context"

	"stayhub/internal/domain"
	"stayhub/internal/pkg/daterange"
)

type UnavailabilityRepository interface {
	ListByRoom(ctx context.Context, roomID int64) ([]domain.RoomUnavailability, error)
	ListByRoomInRange(ctx context.Context, roomID int64, rng daterange.Range) ([]domain.RoomUnavailability, error)
	ListByProperty(ctx context.Context, propertyID, tenantID int64, limit, offset int) ([]domain.RoomUnavailability, int64, error)
	GetOwned(ctx context.Context, id, tenantID int64) (*domain.RoomUnavailability, error)
	Create(ctx context.Context, row *domain.RoomUnavailability) error
	Update(ctx context.Context, row *domain.RoomUnavailability) error
	Delete(ctx context.Context, id int64) error
}

type RoomRepository interface {
	GetOwned(ctx context.Context, roomID, tenantID int64) (*domain.Room, error)
}
