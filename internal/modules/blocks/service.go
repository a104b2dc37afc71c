package blocks

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"stayhub/internal/domain"
	"stayhub/internal/pkg/daterange"
)

const defaultPageSize = 10

type Service struct {
	unavailabilities UnavailabilityRepository
	rooms            RoomRepository
}

func NewService(unavailabilities UnavailabilityRepository, rooms RoomRepository) *Service {
	return &Service{unavailabilities: unavailabilities, rooms: rooms}
}

func (s *Service) List(ctx context.Context, p ListParams) (*ListResult, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = defaultPageSize
	}

	rows, total, err := s.unavailabilities.ListByProperty(ctx, p.PropertyID, p.TenantID, p.PageSize, (p.Page-1)*p.PageSize)
	if err != nil {
		return nil, err
	}

	out := make([]UnavailabilityResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toResponse(row.ID, row.RoomID, row.StartDate, row.EndDate))
	}
	totalPages := int((total + int64(p.PageSize) - 1) / int64(p.PageSize))
	return &ListResult{Data: out, Total: total, Page: p.Page, TotalPages: totalPages}, nil
}

// ListForRoom returns the room's blocks that touch the given calendar month.
func (s *Service) ListForRoom(ctx context.Context, tenantID, roomID int64, year int, month time.Month) ([]UnavailabilityResponse, error) {
	room, err := s.rooms.GetOwned(ctx, roomID, tenantID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	rows, err := s.unavailabilities.ListByRoomInRange(ctx, roomID, daterange.Month(year, month))
	if err != nil {
		return nil, err
	}

	out := make([]UnavailabilityResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toResponse(row.ID, row.RoomID, row.StartDate, row.EndDate))
	}
	return out, nil
}

// Create blocks a room for the inclusive date range. The range must start
// today or later and must not overlap any existing block of the same room.
func (s *Service) Create(ctx context.Context, tenantID int64, start, end time.Time, roomID int64) (*domain.RoomUnavailability, error) {
	room, err := s.rooms.GetOwned(ctx, roomID, tenantID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	rng := daterange.New(start, end)
	if !rng.Valid() {
		return nil, ErrInvalidRange
	}
	if rng.Start.Before(daterange.Day(time.Now())) {
		return nil, ErrPastStart
	}

	if err := s.checkOverlap(ctx, roomID, rng, 0); err != nil {
		return nil, err
	}

	row := &domain.RoomUnavailability{
		RoomID:    roomID,
		StartDate: rng.Start,
		EndDate:   rng.End,
	}
	if err := s.unavailabilities.Create(ctx, row); err != nil {
		return nil, mapConstraintError(err)
	}
	return row, nil
}

// Update moves an existing block. Omitted bounds keep their stored value;
// the merged range is then validated the same way Create validates a new one,
// except a start in the past is allowed to stand if it was already stored.
func (s *Service) Update(ctx context.Context, tenantID, id int64, start, end *time.Time) (*domain.RoomUnavailability, error) {
	row, err := s.unavailabilities.GetOwned(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}

	if start != nil {
		row.StartDate = daterange.Day(*start)
	}
	if end != nil {
		row.EndDate = daterange.Day(*end)
	}

	rng := daterange.New(row.StartDate, row.EndDate)
	if !rng.Valid() {
		return nil, ErrInvalidRange
	}

	if err := s.checkOverlap(ctx, row.RoomID, rng, row.ID); err != nil {
		return nil, err
	}

	if err := s.unavailabilities.Update(ctx, row); err != nil {
		return nil, mapConstraintError(err)
	}
	return row, nil
}

func (s *Service) Delete(ctx context.Context, tenantID, id int64) error {
	row, err := s.unavailabilities.GetOwned(ctx, id, tenantID)
	if err != nil {
		return err
	}
	if row == nil {
		return ErrNotFound
	}
	return s.unavailabilities.Delete(ctx, row.ID)
}

// checkOverlap scans the room's stored blocks with the shared conflict
// predicate. excludeID skips the row being updated.
func (s *Service) checkOverlap(ctx context.Context, roomID int64, rng daterange.Range, excludeID int64) error {
	existing, err := s.unavailabilities.ListByRoom(ctx, roomID)
	if err != nil {
		return err
	}
	for i := range existing {
		if existing[i].ID == excludeID {
			continue
		}
		if rng.Conflicts(daterange.New(existing[i].StartDate, existing[i].EndDate)) {
			return ErrOverlap
		}
	}
	return nil
}

// mapConstraintError folds a postgres exclusion or unique violation, raised
// when two writers pass the in-memory scan concurrently, into ErrOverlap.
func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (pgErr.Code == "23P01" || pgErr.Code == "23505") {
		return ErrOverlap
	}
	return err
}
