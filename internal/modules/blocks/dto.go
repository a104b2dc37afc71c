package blocks

import "time"

type CreateRequest struct {
	RoomID    int64  `json:"room_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

type UpdateRequest struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

type ListParams struct {
	PropertyID int64
	TenantID   int64
	Page       int
	PageSize   int
}

type UnavailabilityResponse struct {
	ID        int64  `json:"id"`
	RoomID    int64  `json:"room_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type ListResult struct {
	Data       []UnavailabilityResponse `json:"data"`
	Total      int64                    `json:"total"`
	Page       int                      `json:"page"`
	TotalPages int                      `json:"total_pages"`
}

func toResponse(id, roomID int64, start, end time.Time) UnavailabilityResponse {
	const layout = "2006-01-02"
	return UnavailabilityResponse{
		ID:        id,
		RoomID:    roomID,
		StartDate: start.Format(layout),
		EndDate:   end.Format(layout),
	}
}
