package rates

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"stayhub/internal/domain"
	"stayhub/internal/pkg/daterange"
	"stayhub/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /tenant/properties/:id/peak-seasons.
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
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to list peak season rates")
		return
	}
	response.Success(c, http.StatusOK, result)
}

// ListForRoom handles GET /tenant/rooms/:id/peak-seasons. With no month
// parameter every window of the room is returned; with month (and an optional
// year, defaulting to the current one) the listing narrows to that month.
func (h *Handler) ListForRoom(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || roomID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid room id")
		return
	}

	month := 0
	if raw := c.Query("month"); raw != "" {
		month, err = strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "month must be between 1 and 12")
			return
		}
	}
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(time.Now().Year())))
	if err != nil || year < 2000 || year > 2100 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "year must be between 2000 and 2100")
		return
	}

	rows, err := h.service.ListForRoom(c.Request.Context(), c.GetInt64("user_id"), roomID, year, time.Month(month))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows)
}

// Create handles POST /tenant/peak-seasons.
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "room_id, type, value, start_date and end_date are required")
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

	row, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req, start, end)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toResponse(row))
}

// Update handles PUT /tenant/peak-seasons/:id.
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid peak season rate id")
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}
	if req.Type == nil && req.Value == nil && req.StartDate == nil && req.EndDate == nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "at least one field is required")
		return
	}

	var fields UpdateFields
	if req.Type != nil {
		t := domain.RateType(*req.Type)
		fields.Type = &t
	}
	fields.Value = req.Value
	if req.StartDate != nil {
		t, err := daterange.Parse(*req.StartDate)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "start_date must be formatted as YYYY-MM-DD")
			return
		}
		fields.StartDate = &t
	}
	if req.EndDate != nil {
		t, err := daterange.Parse(*req.EndDate)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "end_date must be formatted as YYYY-MM-DD")
			return
		}
		fields.EndDate = &t
	}

	row, err := h.service.Update(c.Request.Context(), c.GetInt64("user_id"), id, fields)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toResponse(row))
}

// Delete handles DELETE /tenant/peak-seasons/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid peak season rate id")
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
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "peak season rate not found")
	case errors.Is(err, ErrInvalidRange), errors.Is(err, ErrPastStart),
		errors.Is(err, ErrInvalidType), errors.Is(err, ErrInvalidValue):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrOverlap):
		response.Error(c, http.StatusBadRequest, "OVERLAP", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "operation failed")
	}
}
