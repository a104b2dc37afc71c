package search

import (
	"context"

	"stayhub/internal/domain"
	"stayhub/internal/pkg/daterange"
	"stayhub/internal/repository"
)

// PropertyRepository defines the store reads the availability façades need.
// Implementations return snapshots whose child collections are already
// narrowed to the requested window; the resolver re-applies the canonical
// predicates on top.
type PropertyRepository interface {
	SearchAvailable(ctx context.Context, q repository.SearchQuery) ([]domain.Property, error)
	GetDetail(ctx context.Context, propertyID int64, q repository.SearchQuery) (*domain.Property, error)
	GetForCalendar(ctx context.Context, propertyID int64, month daterange.Range) (*domain.Property, error)
}
