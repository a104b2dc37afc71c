package catalog

type CreatePropertyRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
	CategoryID  *int64 `json:"category_id"`
	CityID      int64  `json:"city_id" binding:"required"`
}

type UpdatePropertyRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	CategoryID  *int64  `json:"category_id"`
	CityID      *int64  `json:"city_id"`
}

type CreateRoomRequest struct {
	PropertyID  int64  `json:"property_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"required,gt=0"`
	MaxGuests   int    `json:"max_guests" binding:"required,gt=0"`
	Quantity    int    `json:"quantity" binding:"required,gt=0"`
}

type UpdateRoomRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
	MaxGuests   *int    `json:"max_guests"`
	Quantity    *int    `json:"quantity"`
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type ListMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	TotalPages int   `json:"total_pages"`
}
