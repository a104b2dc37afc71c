package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"stayhub/internal/domain"
)

type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	args := m.Called(ctx, p)
	if p != nil {
		p.ID = 100
	}
	return args.Error(0)
}

func (m *MockPropertyRepository) GetOwned(ctx context.Context, propertyID, tenantID int64) (*domain.Property, error) {
	args := m.Called(ctx, propertyID, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockPropertyRepository) ListByTenant(ctx context.Context, tenantID int64, limit, offset int) ([]domain.Property, int64, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Property), args.Get(1).(int64), args.Error(2)
}

func (m *MockPropertyRepository) Update(ctx context.Context, p *domain.Property) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPropertyRepository) Delete(ctx context.Context, propertyID int64) error {
	args := m.Called(ctx, propertyID)
	return args.Error(0)
}

func (m *MockPropertyRepository) CountRooms(ctx context.Context, propertyID int64) (int64, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).(int64), args.Error(1)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) Create(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	if room != nil {
		room.ID = 200
	}
	return args.Error(0)
}

func (m *MockRoomRepository) GetOwned(ctx context.Context, roomID, tenantID int64) (*domain.Room, error) {
	args := m.Called(ctx, roomID, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) ListByTenant(ctx context.Context, tenantID, propertyID int64, limit, offset int) ([]domain.Room, int64, error) {
	args := m.Called(ctx, tenantID, propertyID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Room), args.Get(1).(int64), args.Error(2)
}

func (m *MockRoomRepository) Update(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) Delete(ctx context.Context, roomID int64) error {
	args := m.Called(ctx, roomID)
	return args.Error(0)
}

func (m *MockRoomRepository) CountActiveBookings(ctx context.Context, roomID int64, now time.Time) (int64, error) {
	args := m.Called(ctx, roomID, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) ListVisible(ctx context.Context, tenantID int64) ([]domain.PropertyCategory, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PropertyCategory), args.Error(1)
}

func (m *MockCategoryRepository) GetOwned(ctx context.Context, id, tenantID int64) (*domain.PropertyCategory, error) {
	args := m.Called(ctx, id, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PropertyCategory), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, cat *domain.PropertyCategory) error {
	args := m.Called(ctx, cat)
	if cat != nil {
		cat.ID = 300
	}
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, cat *domain.PropertyCategory) error {
	args := m.Called(ctx, cat)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) CountProperties(ctx context.Context, categoryID int64) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

type MockCityRepository struct {
	mock.Mock
}

func (m *MockCityRepository) List(ctx context.Context) ([]domain.City, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.City), args.Error(1)
}

func (m *MockCityRepository) GetByID(ctx context.Context, id int64) (*domain.City, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.City), args.Error(1)
}

func newService() (*MockPropertyRepository, *MockRoomRepository, *MockCategoryRepository, *MockCityRepository, *Service) {
	props := new(MockPropertyRepository)
	rooms := new(MockRoomRepository)
	cats := new(MockCategoryRepository)
	cities := new(MockCityRepository)
	return props, rooms, cats, cities, NewService(props, rooms, cats, cities)
}

func TestService_CreateProperty_UnknownCity(t *testing.T) {
	_, _, _, cities, service := newService()

	cities.On("GetByID", mock.Anything, int64(9)).Return(nil, nil)

	_, err := service.CreateProperty(context.Background(), 1, CreatePropertyRequest{Name: "A", CityID: 9})

	assert.ErrorIs(t, err, ErrCityNotFound)
}

func TestService_CreateProperty_GlobalCategoryAccepted(t *testing.T) {
	props, _, cats, cities, service := newService()

	cities.On("GetByID", mock.Anything, int64(1)).Return(&domain.City{ID: 1}, nil)
	catID := int64(7)
	cats.On("GetOwned", mock.Anything, catID, int64(1)).Return(nil, nil)
	cats.On("ListVisible", mock.Anything, int64(0)).Return([]domain.PropertyCategory{{ID: 7, Name: "Villa"}}, nil)
	props.On("Create", mock.Anything, mock.Anything).Return(nil)

	prop, err := service.CreateProperty(context.Background(), 1, CreatePropertyRequest{
		Name: "A", CityID: 1, CategoryID: &catID,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(100), prop.ID)
}

func TestService_CreateProperty_ForeignCategoryRejected(t *testing.T) {
	_, _, cats, cities, service := newService()

	cities.On("GetByID", mock.Anything, int64(1)).Return(&domain.City{ID: 1}, nil)
	catID := int64(7)
	cats.On("GetOwned", mock.Anything, catID, int64(1)).Return(nil, nil)
	cats.On("ListVisible", mock.Anything, int64(0)).Return([]domain.PropertyCategory{}, nil)

	_, err := service.CreateProperty(context.Background(), 1, CreatePropertyRequest{
		Name: "A", CityID: 1, CategoryID: &catID,
	})

	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestService_DeleteProperty_BlockedByRooms(t *testing.T) {
	props, _, _, _, service := newService()

	props.On("GetOwned", mock.Anything, int64(5), int64(1)).Return(&domain.Property{ID: 5}, nil)
	props.On("CountRooms", mock.Anything, int64(5)).Return(int64(2), nil)

	err := service.DeleteProperty(context.Background(), 1, 5)

	assert.ErrorIs(t, err, ErrHasRooms)
}

func TestService_DeleteProperty_Success(t *testing.T) {
	props, _, _, _, service := newService()

	props.On("GetOwned", mock.Anything, int64(5), int64(1)).Return(&domain.Property{ID: 5}, nil)
	props.On("CountRooms", mock.Anything, int64(5)).Return(int64(0), nil)
	props.On("Delete", mock.Anything, int64(5)).Return(nil)

	err := service.DeleteProperty(context.Background(), 1, 5)

	assert.NoError(t, err)
	props.AssertCalled(t, "Delete", mock.Anything, int64(5))
}

func TestService_DeleteProperty_NotOwned(t *testing.T) {
	props, _, _, _, service := newService()

	props.On("GetOwned", mock.Anything, int64(5), int64(2)).Return(nil, nil)

	err := service.DeleteProperty(context.Background(), 2, 5)

	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestService_CreateRoom_PropertyNotOwned(t *testing.T) {
	props, _, _, _, service := newService()

	props.On("GetOwned", mock.Anything, int64(5), int64(2)).Return(nil, nil)

	_, err := service.CreateRoom(context.Background(), 2, CreateRoomRequest{
		PropertyID: 5, Name: "Deluxe", Price: 50000, MaxGuests: 2, Quantity: 3,
	})

	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestService_DeleteRoom_BlockedByActiveBookings(t *testing.T) {
	_, rooms, _, _, service := newService()

	rooms.On("GetOwned", mock.Anything, int64(8), int64(1)).Return(&domain.Room{ID: 8}, nil)
	rooms.On("CountActiveBookings", mock.Anything, int64(8), mock.Anything).Return(int64(1), nil)

	err := service.DeleteRoom(context.Background(), 1, 8)

	assert.ErrorIs(t, err, ErrHasBookings)
}

func TestService_DeleteRoom_Success(t *testing.T) {
	_, rooms, _, _, service := newService()

	rooms.On("GetOwned", mock.Anything, int64(8), int64(1)).Return(&domain.Room{ID: 8}, nil)
	rooms.On("CountActiveBookings", mock.Anything, int64(8), mock.Anything).Return(int64(0), nil)
	rooms.On("Delete", mock.Anything, int64(8)).Return(nil)

	err := service.DeleteRoom(context.Background(), 1, 8)

	assert.NoError(t, err)
}

func TestService_UpdateRoom_MergesFields(t *testing.T) {
	_, rooms, _, _, service := newService()

	stored := &domain.Room{ID: 8, Name: "Deluxe", Price: 50000, MaxGuests: 2, Quantity: 3}
	rooms.On("GetOwned", mock.Anything, int64(8), int64(1)).Return(stored, nil)
	rooms.On("Update", mock.Anything, mock.Anything).Return(nil)

	newPrice := int64(65000)
	room, err := service.UpdateRoom(context.Background(), 1, 8, UpdateRoomRequest{Price: &newPrice})

	assert.NoError(t, err)
	assert.Equal(t, int64(65000), room.Price)
	assert.Equal(t, "Deluxe", room.Name)
}

func TestService_DeleteCategory_BlockedWhenInUse(t *testing.T) {
	_, _, cats, _, service := newService()

	tenantID := int64(1)
	cats.On("GetOwned", mock.Anything, int64(3), tenantID).Return(&domain.PropertyCategory{ID: 3, TenantID: &tenantID}, nil)
	cats.On("CountProperties", mock.Anything, int64(3)).Return(int64(4), nil)

	err := service.DeleteCategory(context.Background(), 1, 3)

	assert.ErrorIs(t, err, ErrCategoryInUse)
}

func TestService_ListProperties_Meta(t *testing.T) {
	props, _, _, _, service := newService()

	props.On("ListByTenant", mock.Anything, int64(1), 10, 0).Return([]domain.Property{{ID: 1}}, int64(23), nil)

	_, meta, err := service.ListProperties(context.Background(), 1, 1, 10)

	assert.NoError(t, err)
	assert.Equal(t, int64(23), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
}
