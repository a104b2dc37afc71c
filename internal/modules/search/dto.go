package search

import "time"

type SearchParams struct {
	CityID        int64
	CheckIn       time.Time
	CheckOut      time.Time
	GuestCount    int
	Page          int
	PropertyName  string
	CategoryNames []string
	SortBy        string
	SortOrder     string
}

type DetailParams struct {
	PropertyID int64
	CheckIn    time.Time
	CheckOut   time.Time
	GuestCount int
}

type PropertySummary struct {
	PropertyID     int64   `json:"property_id"`
	Name           string  `json:"name"`
	Location       string  `json:"location"`
	Category       *string `json:"category"`
	CityID         int64   `json:"city_id"`
	MainPicture    *string `json:"property_picture"`
	Price          int64   `json:"price"`
	AvailableRooms int     `json:"available_rooms"`
}

type CategorySummary struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	PropertiesCount int    `json:"properties_count"`
}

type Pagination struct {
	CurrentPage     int  `json:"current_page"`
	TotalPages      int  `json:"total_pages"`
	TotalProperties int  `json:"total_properties"`
	HasNextPage     bool `json:"has_next_page"`
	HasPrevPage     bool `json:"has_prev_page"`
}

type SearchResult struct {
	Data       []PropertySummary `json:"data"`
	Categories []CategorySummary `json:"categories"`
	Pagination Pagination        `json:"pagination"`
}

type PictureInfo struct {
	ID       int64  `json:"id"`
	FilePath string `json:"file_path"`
	IsMain   bool   `json:"is_main,omitempty"`
}

type RoomDetail struct {
	ID                int64         `json:"id"`
	Name              string        `json:"name"`
	Description       string        `json:"description,omitempty"`
	Price             int64         `json:"price"`
	MaxGuests         int           `json:"max_guests"`
	Quantity          int           `json:"quantity"`
	AvailableQuantity int           `json:"available_quantity"`
	FinalPrice        int64         `json:"final_price"`
	Pictures          []PictureInfo `json:"pictures"`
}

type CityInfo struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

type PropertyDetail struct {
	PropertyID     int64         `json:"property_id"`
	Name           string        `json:"name"`
	Description    string        `json:"description,omitempty"`
	Location       string        `json:"location"`
	Category       *string       `json:"category"`
	City           *CityInfo     `json:"city,omitempty"`
	Pictures       []PictureInfo `json:"pictures"`
	AvailableRooms []RoomDetail  `json:"available_rooms"`
}

type CalendarDay struct {
	Date                string `json:"date"`
	DayOfWeek           string `json:"day_of_week"`
	IsAvailable         bool   `json:"is_available"`
	MinPrice            *int64 `json:"min_price"`
	AvailableRoomsCount int    `json:"available_rooms_count"`
}

type CalendarPagination struct {
	CurrentMonth int    `json:"current_month"`
	CurrentYear  int    `json:"current_year"`
	HasPrevMonth bool   `json:"has_prev_month"`
	HasNextMonth bool   `json:"has_next_month"`
	PrevMonthURL string `json:"prev_month_url"`
	NextMonthURL string `json:"next_month_url"`
}

type CalendarData struct {
	PropertyID   int64              `json:"property_id"`
	PropertyName string             `json:"property_name"`
	Year         int                `json:"year"`
	Month        int                `json:"month"`
	Calendar     []CalendarDay      `json:"calendar"`
	Pagination   CalendarPagination `json:"pagination"`
}
