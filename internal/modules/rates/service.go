package rates

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
	rates PeakRateRepository
	rooms RoomRepository
}

func NewService(rates PeakRateRepository, rooms RoomRepository) *Service {
	return &Service{rates: rates, rooms: rooms}
}

func (s *Service) List(ctx context.Context, p ListParams) (*ListResult, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = defaultPageSize
	}

	rows, total, err := s.rates.ListByProperty(ctx, p.PropertyID, p.TenantID, p.PageSize, (p.Page-1)*p.PageSize)
	if err != nil {
		return nil, err
	}

	out := make([]RateResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toResponse(&rows[i]))
	}
	totalPages := int((total + int64(p.PageSize) - 1) / int64(p.PageSize))
	return &ListResult{Data: out, Total: total, Page: p.Page, TotalPages: totalPages}, nil
}

// ListForRoom returns the room's rate windows. When month is non-zero only
// windows touching that calendar month of the given year are returned.
func (s *Service) ListForRoom(ctx context.Context, tenantID, roomID int64, year int, month time.Month) ([]RateResponse, error) {
	room, err := s.rooms.GetOwned(ctx, roomID, tenantID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	var rows []domain.PeakSeasonRate
	if month == 0 {
		rows, err = s.rates.ListByRoom(ctx, roomID)
	} else {
		rows, err = s.rates.ListByRoomInRange(ctx, roomID, daterange.Month(year, month))
	}
	if err != nil {
		return nil, err
	}

	out := make([]RateResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toResponse(&rows[i]))
	}
	return out, nil
}

// Create adds a price adjustment window for a room. Windows of the same room
// must never overlap so that a single rate applies to any given night.
func (s *Service) Create(ctx context.Context, tenantID int64, req CreateRequest, start, end time.Time) (*domain.PeakSeasonRate, error) {
	room, err := s.rooms.GetOwned(ctx, req.RoomID, tenantID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	rateType := domain.RateType(req.Type)
	if err := validateRate(rateType, req.Value); err != nil {
		return nil, err
	}

	rng := daterange.New(start, end)
	if !rng.Valid() {
		return nil, ErrInvalidRange
	}
	if rng.Start.Before(daterange.Day(time.Now())) {
		return nil, ErrPastStart
	}

	if err := s.checkOverlap(ctx, req.RoomID, rng, 0); err != nil {
		return nil, err
	}

	row := &domain.PeakSeasonRate{
		RoomID:    req.RoomID,
		Type:      rateType,
		Value:     req.Value,
		StartDate: rng.Start,
		EndDate:   rng.End,
	}
	if err := s.rates.Create(ctx, row); err != nil {
		return nil, mapConstraintError(err)
	}
	return row, nil
}

// Update merges the provided fields into the stored rate and revalidates the
// result against the room's other windows.
func (s *Service) Update(ctx context.Context, tenantID, id int64, fields UpdateFields) (*domain.PeakSeasonRate, error) {
	row, err := s.rates.GetOwned(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}

	if fields.Type != nil {
		row.Type = *fields.Type
	}
	if fields.Value != nil {
		row.Value = *fields.Value
	}
	if fields.StartDate != nil {
		row.StartDate = daterange.Day(*fields.StartDate)
	}
	if fields.EndDate != nil {
		row.EndDate = daterange.Day(*fields.EndDate)
	}

	if err := validateRate(row.Type, row.Value); err != nil {
		return nil, err
	}

	rng := daterange.New(row.StartDate, row.EndDate)
	if !rng.Valid() {
		return nil, ErrInvalidRange
	}

	if err := s.checkOverlap(ctx, row.RoomID, rng, row.ID); err != nil {
		return nil, err
	}

	if err := s.rates.Update(ctx, row); err != nil {
		return nil, mapConstraintError(err)
	}
	return row, nil
}

func (s *Service) Delete(ctx context.Context, tenantID, id int64) error {
	row, err := s.rates.GetOwned(ctx, id, tenantID)
	if err != nil {
		return err
	}
	if row == nil {
		return ErrNotFound
	}
	return s.rates.Delete(ctx, row.ID)
}

func validateRate(t domain.RateType, value float64) error {
	if t != domain.RatePercentage && t != domain.RateFixed {
		return ErrInvalidType
	}
	if value <= 0 {
		return ErrInvalidValue
	}
	if t == domain.RatePercentage && value > 100 {
		return ErrInvalidValue
	}
	return nil
}

func (s *Service) checkOverlap(ctx context.Context, roomID int64, rng daterange.Range, excludeID int64) error {
	existing, err := s.rates.ListByRoom(ctx, roomID)
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

func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (pgErr.Code == "23P01" || pgErr.Code == "23505") {
		return ErrOverlap
	}
	return err
}
