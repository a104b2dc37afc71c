package search

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
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

// Search handles GET /properties/search.
func (h *Handler) Search(c *gin.Context) {
	params, err := parseSearchParams(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.service.Search(c.Request.Context(), *params)
	if err != nil {
		if errors.Is(err, ErrPageOutOfRange) {
			response.Error(c, http.StatusBadRequest, "PAGE_OUT_OF_RANGE", "requested page exceeds available pages")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to search properties")
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Detail handles GET /properties/detail.
func (h *Handler) Detail(c *gin.Context) {
	params, err := parseDetailParams(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), *params)
	if err != nil {
		if errors.Is(err, ErrPropertyNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "property not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to load property")
		return
	}

	if len(detail.AvailableRooms) == 0 {
		response.SuccessWithMessage(c, http.StatusOK, "no rooms available for the selected dates", gin.H{"data": detail})
		return
	}
	response.Success(c, http.StatusOK, detail)
}

// Calendar handles GET /properties/:id/calendar.
func (h *Handler) Calendar(c *gin.Context) {
	propertyID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || propertyID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid property id")
		return
	}

	now := time.Now()
	year := now.Year()
	month := int(now.Month())
	if raw := c.Query("year"); raw != "" {
		year, err = strconv.Atoi(raw)
		if err != nil || year < 2000 || year > 2100 {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "year must be between 2000 and 2100")
			return
		}
	}
	if raw := c.Query("month"); raw != "" {
		month, err = strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "month must be between 1 and 12")
			return
		}
	}

	data, err := h.service.Calendar(c.Request.Context(), propertyID, year, month)
	if err != nil {
		if errors.Is(err, ErrPropertyNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "property not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to build calendar")
		return
	}

	response.Success(c, http.StatusOK, data)
}

func parseSearchParams(c *gin.Context) (*SearchParams, error) {
	cityID, err := strconv.ParseInt(c.Query("city_id"), 10, 64)
	if err != nil || cityID <= 0 {
		return nil, errors.New("city_id is required and must be a positive integer")
	}

	checkIn, checkOut, err := parseStayWindow(c)
	if err != nil {
		return nil, err
	}

	guests, err := strconv.Atoi(c.Query("guests"))
	if err != nil || guests <= 0 {
		return nil, errors.New("guests is required and must be a positive integer")
	}

	page := 1
	if raw := c.Query("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil || page < 1 {
			return nil, errors.New("page must be a positive integer")
		}
	}

	sortBy := c.Query("sort_by")
	switch sortBy {
	case "", "name", "price":
	default:
		return nil, errors.New("sort_by must be one of: name, price")
	}

	sortOrder := c.DefaultQuery("sort_order", "asc")
	if sortOrder != "asc" && sortOrder != "desc" {
		return nil, errors.New("sort_order must be one of: asc, desc")
	}

	var categories []string
	if raw := c.Query("category_name"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				categories = append(categories, name)
			}
		}
	}

	return &SearchParams{
		CityID:        cityID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		GuestCount:    guests,
		Page:          page,
		PropertyName:  strings.TrimSpace(c.Query("property_name")),
		CategoryNames: categories,
		SortBy:        sortBy,
		SortOrder:     sortOrder,
	}, nil
}

func parseDetailParams(c *gin.Context) (*DetailParams, error) {
	propertyID, err := strconv.ParseInt(c.Query("property_id"), 10, 64)
	if err != nil || propertyID <= 0 {
		return nil, errors.New("property_id is required and must be a positive integer")
	}

	checkIn, checkOut, err := parseStayWindow(c)
	if err != nil {
		return nil, err
	}

	guests, err := strconv.Atoi(c.Query("guests"))
	if err != nil || guests <= 0 {
		return nil, errors.New("guests is required and must be a positive integer")
	}

	return &DetailParams{
		PropertyID: propertyID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		GuestCount: guests,
	}, nil
}

func parseStayWindow(c *gin.Context) (checkIn, checkOut time.Time, err error) {
	checkIn, err = daterange.Parse(c.Query("check_in"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("check_in is required and must be formatted as YYYY-MM-DD")
	}
	checkOut, err = daterange.Parse(c.Query("check_out"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("check_out is required and must be formatted as YYYY-MM-DD")
	}
	if !checkIn.Before(checkOut) {
		return time.Time{}, time.Time{}, errors.New("check_out must be after check_in")
	}
	if checkIn.Before(daterange.Day(time.Now())) {
		return time.Time{}, time.Time{}, errors.New("check_in must not be in the past")
	}
	return checkIn, checkOut, nil
}
