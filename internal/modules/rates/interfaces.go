package rates

import (
	"context"

	"stayhub/internal/domain"
	"stayhub/internal/pkg/daterange"
)

type PeakRateRepository interface {
	ListByRoom(ctx context.Context, roomID int64) ([]domain.PeakSeasonRate, error)
	ListByRoomInRange(ctx context.Context, roomID int64, rng daterange.Range) ([]domain.PeakSeasonRate, error)
	ListByProperty(ctx context.Context, propertyID, tenantID int64, limit, offset int) ([]domain.PeakSeasonRate, int64, error)
	GetOwned(ctx context.Context, id, tenantID int64) (*domain.PeakSeasonRate, error)
	Create(ctx context.Context, row *domain.PeakSeasonRate) error
	Update(ctx context.Context, row *domain.PeakSeasonRate) error
	Delete(ctx context.Context, id int64) error
}

type RoomRepository interface {
	GetOwned(ctx context.Context, roomID, tenantID int64) (*domain.Room, error)
}
