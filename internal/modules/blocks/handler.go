package blocks

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"stayhub/internal/pkg/daterange"
	"stayhub/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /tenant/properties/:id/unavailabilities.
func (h *Handler) List(c *gin.Context) {
	propertyID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || propertyID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid property id")
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	result, err := h.service.List(c.Request.Context(), ListParams{
		PropertyID: propertyID,
		TenantID:   c.GetInt64("user_id"),
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to list unavailabilities")
		return
	}
	response.Success(c, http.StatusOK, result)
}

// ListForRoom handles GET /tenant/rooms/:id/unavailabilities. year and month
// default to the current month.
func (h *Handler) ListForRoom(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || roomID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid room id")
		return
	}

	now := time.Now()
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil || year < 2000 || year > 2100 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "year must be between 2000 and 2100")
		return
	}
	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || month < 1 || month > 12 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "month must be between 1 and 12")
		return
	}

	rows, err := h.service.ListForRoom(c.Request.Context(), c.GetInt64("user_id"), roomID, year, time.Month(month))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows)
}

// Create handles POST /tenant/unavailabilities.
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "room_id, start_date and end_date are required")
		return
	}

	start, err := daterange.Parse(req.StartDate)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "start_date must be formatted as YYYY-MM-DD")
		return
	}
	end, err := daterange.Parse(req.EndDate)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "end_date must be formatted as YYYY-MM-DD")
		return
	}

	row, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), start, end, req.RoomID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toResponse(row.ID, row.RoomID, row.StartDate, row.EndDate))
}

// Update handles PUT /tenant/unavailabilities/:id.
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid unavailability id")
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}
	if req.StartDate == nil && req.EndDate == nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "at least one of start_date, end_date is required")
		return
	}

	var start, end *time.Time
	if req.StartDate != nil {
		t, err := daterange.Parse(*req.StartDate)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "start_date must be formatted as YYYY-MM-DD")
			return
		}
		start = &t
	}
	if req.EndDate != nil {
		t, err := daterange.Parse(*req.EndDate)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "end_date must be formatted as YYYY-MM-DD")
			return
		}
		end = &t
	}

	row, err := h.service.Update(c.Request.Context(), c.GetInt64("user_id"), id, start, end)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toResponse(row.ID, row.RoomID, row.StartDate, row.EndDate))
}

// Delete handles DELETE /tenant/unavailabilities/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid unavailability id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrRoomNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "room not found")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "unavailability not found")
	case errors.Is(err, ErrInvalidRange), errors.Is(err, ErrPastStart):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrOverlap):
		response.Error(c, http.StatusBadRequest, "OVERLAP", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "operation failed")
	}
}
