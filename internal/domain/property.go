package domain

import "time"

type City struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// PropertyCategory with a nil TenantID is a global category visible to every
// tenant; otherwise it belongs to the tenant that created it.
type PropertyCategory struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required"`
	TenantID  *int64    `json:"tenant_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Property struct {
	ID          int64   `json:"id"`
	TenantID    int64   `json:"tenant_id"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description,omitempty" gorm:"type:text"`
	Location    string  `json:"location,omitempty"`
	CategoryID  *int64  `json:"category_id,omitempty"`
	CityID      int64   `json:"city_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Category *PropertyCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	City     *City             `json:"city,omitempty" gorm:"foreignKey:CityID"`
	Pictures []PropertyPicture `json:"pictures,omitempty" gorm:"foreignKey:PropertyID"`
	Rooms    []Room            `json:"rooms,omitempty" gorm:"foreignKey:PropertyID"`
}

type PropertyPicture struct {
	ID         int64     `json:"id"`
	PropertyID int64     `json:"property_id"`
	FilePath   string    `json:"file_path"`
	IsMain     bool      `json:"is_main"`
	CreatedAt  time.Time `json:"created_at"`
}

// MainPicturePath returns the file path of the main picture, or nil when the
// property has no main picture.
func (p *Property) MainPicturePath() *string {
	for i := range p.Pictures {
		if p.Pictures[i].IsMain {
			return &p.Pictures[i].FilePath
		}
	}
	return nil
}

// CategoryName returns the category name, or nil for uncategorized properties.
func (p *Property) CategoryName() *string {
	if p.Category == nil {
		return nil
	}
	return &p.Category.Name
}
