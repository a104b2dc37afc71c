package catalog

import (
	"context"
	"time"

	"stayhub/internal/domain"
)

type Service struct {
	properties PropertyRepository
	rooms      RoomRepository
	categories CategoryRepository
	cities     CityRepository
}

func NewService(properties PropertyRepository, rooms RoomRepository, categories CategoryRepository, cities CityRepository) *Service {
	return &Service{
		properties: properties,
		rooms:      rooms,
		categories: categories,
		cities:     cities,
	}
}

/* ---------- cities ---------- */

func (s *Service) ListCities(ctx context.Context) ([]domain.City, error) {
	return s.cities.List(ctx)
}

/* ---------- categories ---------- */

// ListCategories returns the categories visible to the tenant. tenantID 0
// (public callers) yields only the global set.
func (s *Service) ListCategories(ctx context.Context, tenantID int64) ([]domain.PropertyCategory, error) {
	return s.categories.ListVisible(ctx, tenantID)
}

func (s *Service) CreateCategory(ctx context.Context, tenantID int64, name string) (*domain.PropertyCategory, error) {
	cat := &domain.PropertyCategory{Name: name, TenantID: &tenantID}
	if err := s.categories.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *Service) UpdateCategory(ctx context.Context, tenantID, id int64, name string) (*domain.PropertyCategory, error) {
	cat, err := s.categories.GetOwned(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, ErrCategoryNotFound
	}
	cat.Name = name
	if err := s.categories.Update(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// DeleteCategory refuses to delete a category still referenced by properties.
func (s *Service) DeleteCategory(ctx context.Context, tenantID, id int64) error {
	cat, err := s.categories.GetOwned(ctx, id, tenantID)
	if err != nil {
		return err
	}
	if cat == nil {
		return ErrCategoryNotFound
	}
	cnt, err := s.categories.CountProperties(ctx, id)
	if err != nil {
		return err
	}
	if cnt > 0 {
		return ErrCategoryInUse
	}
	return s.categories.Delete(ctx, id)
}

/* ---------- properties ---------- */

func (s *Service) CreateProperty(ctx context.Context, tenantID int64, req CreatePropertyRequest) (*domain.Property, error) {
	city, err := s.cities.GetByID(ctx, req.CityID)
	if err != nil {
		return nil, err
	}
	if city == nil {
		return nil, ErrCityNotFound
	}

	if req.CategoryID != nil {
		cat, err := s.categories.GetOwned(ctx, *req.CategoryID, tenantID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			// global categories are usable by everyone
			visible, err := s.categories.ListVisible(ctx, 0)
			if err != nil {
				return nil, err
			}
			found := false
			for i := range visible {
				if visible[i].ID == *req.CategoryID {
					found = true
					break
				}
			}
			if !found {
				return nil, ErrCategoryNotFound
			}
		}
	}

	prop := &domain.Property{
		TenantID:    tenantID,
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		CategoryID:  req.CategoryID,
		CityID:      req.CityID,
	}
	if err := s.properties.Create(ctx, prop); err != nil {
		return nil, err
	}
	return prop, nil
}

func (s *Service) GetProperty(ctx context.Context, tenantID, id int64) (*domain.Property, error) {
	prop, err := s.properties.GetOwned(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}
	if prop == nil {
		return nil, ErrPropertyNotFound
	}
	return prop, nil
}

func (s *Service) ListProperties(ctx context.Context, tenantID int64, page, pageSize int) ([]domain.Property, ListMeta, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	props, total, err := s.properties.ListByTenant(ctx, tenantID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, ListMeta{}, err
	}
	meta := ListMeta{
		Total:      total,
		Page:       page,
		TotalPages: int((total + int64(pageSize) - 1) / int64(pageSize)),
	}
	return props, meta, nil
}

func (s *Service) UpdateProperty(ctx context.Context, tenantID, id int64, req UpdatePropertyRequest) (*domain.Property, error) {
	prop, err := s.properties.GetOwned(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}
	if prop == nil {
		return nil, ErrPropertyNotFound
	}

	if req.Name != nil {
		prop.Name = *req.Name
	}
	if req.Description != nil {
		prop.Description = *req.Description
	}
	if req.Location != nil {
		prop.Location = *req.Location
	}
	if req.CategoryID != nil {
		prop.CategoryID = req.CategoryID
	}
	if req.CityID != nil {
		city, err := s.cities.GetByID(ctx, *req.CityID)
		if err != nil {
			return nil, err
		}
		if city == nil {
			return nil, ErrCityNotFound
		}
		prop.CityID = *req.CityID
	}

	// Save would cascade stale preloaded relations otherwise.
	prop.Category = nil
	prop.City = nil
	prop.Pictures = nil
	prop.Rooms = nil

	if err := s.properties.Update(ctx, prop); err != nil {
		return nil, err
	}
	return prop, nil
}

// DeleteProperty refuses to delete a property that still has rooms; rooms
// carry the booking history and must be removed explicitly first.
func (s *Service) DeleteProperty(ctx context.Context, tenantID, id int64) error {
	prop, err := s.properties.GetOwned(ctx, id, tenantID)
	if err != nil {
		return err
	}
	if prop == nil {
		return ErrPropertyNotFound
	}
	cnt, err := s.properties.CountRooms(ctx, id)
	if err != nil {
		return err
	}
	if cnt > 0 {
		return ErrHasRooms
	}
	return s.properties.Delete(ctx, id)
}

/* ---------- rooms ---------- */

func (s *Service) CreateRoom(ctx context.Context, tenantID int64, req CreateRoomRequest) (*domain.Room, error) {
	prop, err := s.properties.GetOwned(ctx, req.PropertyID, tenantID)
	if err != nil {
		return nil, err
	}
	if prop == nil {
		return nil, ErrPropertyNotFound
	}

	room := &domain.Room{
		PropertyID:  req.PropertyID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		MaxGuests:   req.MaxGuests,
		Quantity:    req.Quantity,
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) ListRooms(ctx context.Context, tenantID, propertyID int64, page, pageSize int) ([]domain.Room, ListMeta, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	rooms, total, err := s.rooms.ListByTenant(ctx, tenantID, propertyID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, ListMeta{}, err
	}
	meta := ListMeta{
		Total:      total,
		Page:       page,
		TotalPages: int((total + int64(pageSize) - 1) / int64(pageSize)),
	}
	return rooms, meta, nil
}

func (s *Service) UpdateRoom(ctx context.Context, tenantID, id int64, req UpdateRoomRequest) (*domain.Room, error) {
	room, err := s.rooms.GetOwned(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	if req.Name != nil {
		room.Name = *req.Name
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if req.Price != nil {
		room.Price = *req.Price
	}
	if req.MaxGuests != nil {
		room.MaxGuests = *req.MaxGuests
	}
	if req.Quantity != nil {
		room.Quantity = *req.Quantity
	}

	room.Bookings = nil
	room.Unavailabilities = nil
	room.PeakRates = nil
	room.Pictures = nil

	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// DeleteRoom refuses to delete a room with confirmed or paid bookings that
// have not checked out yet.
func (s *Service) DeleteRoom(ctx context.Context, tenantID, id int64) error {
	room, err := s.rooms.GetOwned(ctx, id, tenantID)
	if err != nil {
		return err
	}
	if room == nil {
		return ErrRoomNotFound
	}
	cnt, err := s.rooms.CountActiveBookings(ctx, id, time.Now())
	if err != nil {
		return err
	}
	if cnt > 0 {
		return ErrHasBookings
	}
	return s.rooms.Delete(ctx, id)
}
