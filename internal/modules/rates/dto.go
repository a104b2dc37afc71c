package rates

import (
	"time"

	"stayhub/internal/domain"
)

type CreateRequest struct {
	RoomID    int64   `json:"room_id" binding:"required"`
	Type      string  `json:"type" binding:"required"`
	Value     float64 `json:"value" binding:"required"`
	StartDate string  `json:"start_date" binding:"required"`
	EndDate   string  `json:"end_date" binding:"required"`
}

type UpdateRequest struct {
	Type      *string  `json:"type"`
	Value     *float64 `json:"value"`
	StartDate *string  `json:"start_date"`
	EndDate   *string  `json:"end_date"`
}

type ListParams struct {
	PropertyID int64
	TenantID   int64
	Page       int
	PageSize   int
}

type RateResponse struct {
	ID        int64   `json:"id"`
	RoomID    int64   `json:"room_id"`
	Type      string  `json:"type"`
	Value     float64 `json:"value"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
}

type ListResult struct {
	Data       []RateResponse `json:"data"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
}

func toResponse(row *domain.PeakSeasonRate) RateResponse {
	const layout = "2006-01-02"
	return RateResponse{
		ID:        row.ID,
		RoomID:    row.RoomID,
		Type:      string(row.Type),
		Value:     row.Value,
		StartDate: row.StartDate.Format(layout),
		EndDate:   row.EndDate.Format(layout),
	}
}

// UpdateFields carries the parsed optional fields of an update.
type UpdateFields struct {
	Type      *domain.RateType
	Value     *float64
	StartDate *time.Time
	EndDate   *time.Time
}
