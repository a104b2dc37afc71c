package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stayhub/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

/* ---------- public ---------- */

// ListCities handles GET /cities.
func (h *Handler) ListCities(c *gin.Context) {
	cities, err := h.service.ListCities(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to list cities")
		return
	}
	response.Success(c, http.StatusOK, cities)
}

// ListPublicCategories handles GET /categories.
func (h *Handler) ListPublicCategories(c *gin.Context) {
	cats, err := h.service.ListCategories(c.Request.Context(), 0)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to list categories")
		return
	}
	response.Success(c, http.StatusOK, cats)
}

/* ---------- tenant categories ---------- */

// ListCategories handles GET /tenant/categories.
func (h *Handler) ListCategories(c *gin.Context) {
	cats, err := h.service.ListCategories(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to list categories")
		return
	}
	response.Success(c, http.StatusOK, cats)
}

// CreateCategory handles POST /tenant/categories.
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "name is required")
		return
	}
	cat, err := h.service.CreateCategory(c.Request.Context(), c.GetInt64("user_id"), req.Name)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, cat)
}

// UpdateCategory handles PUT /tenant/categories/:id.
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c, "invalid category id")
	if !ok {
		return
	}
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "name is required")
		return
	}
	cat, err := h.service.UpdateCategory(c.Request.Context(), c.GetInt64("user_id"), id, req.Name)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cat)
}

// DeleteCategory handles DELETE /tenant/categories/:id.
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c, "invalid category id")
	if !ok {
		return
	}
	if err := h.service.DeleteCategory(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

/* ---------- tenant properties ---------- */

// CreateProperty handles POST /tenant/properties.
func (h *Handler) CreateProperty(c *gin.Context) {
	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "name and city_id are required")
		return
	}
	prop, err := h.service.CreateProperty(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, prop)
}

// ListProperties handles GET /tenant/properties.
func (h *Handler) ListProperties(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	props, meta, err := h.service.ListProperties(c.Request.Context(), c.GetInt64("user_id"), page, pageSize)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to list properties")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"properties": props, "meta": meta})
}

// GetProperty handles GET /tenant/properties/:id.
func (h *Handler) GetProperty(c *gin.Context) {
	id, ok := pathID(c, "invalid property id")
	if !ok {
		return
	}
	prop, err := h.service.GetProperty(c.Request.Context(), c.GetInt64("user_id"), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, prop)
}

// UpdateProperty handles PUT /tenant/properties/:id.
func (h *Handler) UpdateProperty(c *gin.Context) {
	id, ok := pathID(c, "invalid property id")
	if !ok {
		return
	}
	var req UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}
	prop, err := h.service.UpdateProperty(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, prop)
}

// DeleteProperty handles DELETE /tenant/properties/:id.
func (h *Handler) DeleteProperty(c *gin.Context) {
	id, ok := pathID(c, "invalid property id")
	if !ok {
		return
	}
	if err := h.service.DeleteProperty(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

/* ---------- tenant rooms ---------- */

// CreateRoom handles POST /tenant/rooms.
func (h *Handler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "property_id, name, price, max_guests and quantity are required")
		return
	}
	room, err := h.service.CreateRoom(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, room)
}

// ListRooms handles GET /tenant/rooms.
func (h *Handler) ListRooms(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	propertyID, _ := strconv.ParseInt(c.Query("property_id"), 10, 64)

	rooms, meta, err := h.service.ListRooms(c.Request.Context(), c.GetInt64("user_id"), propertyID, page, pageSize)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to list rooms")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": rooms, "meta": meta})
}

// UpdateRoom handles PUT /tenant/rooms/:id.
func (h *Handler) UpdateRoom(c *gin.Context) {
	id, ok := pathID(c, "invalid room id")
	if !ok {
		return
	}
	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}
	room, err := h.service.UpdateRoom(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, room)
}

// DeleteRoom handles DELETE /tenant/rooms/:id.
func (h *Handler) DeleteRoom(c *gin.Context) {
	id, ok := pathID(c, "invalid room id")
	if !ok {
		return
	}
	if err := h.service.DeleteRoom(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func pathID(c *gin.Context, msg string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", msg)
		return 0, false
	}
	return id, true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrPropertyNotFound),
		errors.Is(err, ErrRoomNotFound),
		errors.Is(err, ErrCategoryNotFound),
		errors.Is(err, ErrCityNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrHasRooms), errors.Is(err, ErrHasBookings), errors.Is(err, ErrCategoryInUse):
		response.Error(c, http.StatusBadRequest, "CONFLICT", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "operation failed")
	}
}
