package rates

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"stayhub/internal/domain"
	"stayhub/internal/pkg/daterange"
)

type MockPeakRateRepository struct {
	mock.Mock
}

func (m *MockPeakRateRepository) ListByRoom(ctx context.Context, roomID int64) ([]domain.PeakSeasonRate, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PeakSeasonRate), args.Error(1)
}

func (m *MockPeakRateRepository) ListByRoomInRange(ctx context.Context, roomID int64, rng daterange.Range) ([]domain.PeakSeasonRate, error) {
	args := m.Called(ctx, roomID, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PeakSeasonRate), args.Error(1)
}

func (m *MockPeakRateRepository) ListByProperty(ctx context.Context, propertyID, tenantID int64, limit, offset int) ([]domain.PeakSeasonRate, int64, error) {
	args := m.Called(ctx, propertyID, tenantID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.PeakSeasonRate), args.Get(1).(int64), args.Error(2)
}

func (m *MockPeakRateRepository) GetOwned(ctx context.Context, id, tenantID int64) (*domain.PeakSeasonRate, error) {
	args := m.Called(ctx, id, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeakSeasonRate), args.Error(1)
}

func (m *MockPeakRateRepository) Create(ctx context.Context, row *domain.PeakSeasonRate) error {
	args := m.Called(ctx, row)
	if row != nil {
		row.ID = 888
	}
	return args.Error(0)
}

func (m *MockPeakRateRepository) Update(ctx context.Context, row *domain.PeakSeasonRate) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *MockPeakRateRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetOwned(ctx context.Context, roomID, tenantID int64) (*domain.Room, error) {
	args := m.Called(ctx, roomID, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newMocks(t *testing.T) (*MockPeakRateRepository, *MockRoomRepository, *Service) {
	t.Helper()
	repo := new(MockPeakRateRepository)
	rooms := new(MockRoomRepository)
	return repo, rooms, NewService(repo, rooms)
}

func TestService_ListForRoom_MonthScoped(t *testing.T) {
	repo, rooms, service := newMocks(t)

	rooms.On("GetOwned", mock.Anything, int64(10), int64(1)).Return(&domain.Room{ID: 10}, nil)
	repo.On("ListByRoomInRange", mock.Anything, int64(10), daterange.Month(2999, time.June)).Return([]domain.PeakSeasonRate{
		{ID: 3, RoomID: 10, Type: domain.RateFixed, Value: 10000, StartDate: date(2999, time.June, 10), EndDate: date(2999, time.June, 20)},
	}, nil)

	rows, err := service.ListForRoom(context.Background(), 1, 10, 2999, time.June)

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "fixed", rows[0].Type)
}

func TestService_ListForRoom_NoMonthListsAll(t *testing.T) {
	repo, rooms, service := newMocks(t)

	rooms.On("GetOwned", mock.Anything, int64(10), int64(1)).Return(&domain.Room{ID: 10}, nil)
	repo.On("ListByRoom", mock.Anything, int64(10)).Return([]domain.PeakSeasonRate{
		{ID: 3, RoomID: 10, Type: domain.RateFixed, Value: 10000, StartDate: date(2999, time.June, 10), EndDate: date(2999, time.June, 20)},
		{ID: 4, RoomID: 10, Type: domain.RatePercentage, Value: 15, StartDate: date(2999, time.December, 20), EndDate: date(3000, time.January, 5)},
	}, nil)

	rows, err := service.ListForRoom(context.Background(), 1, 10, 2999, 0)

	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	repo.AssertNotCalled(t, "ListByRoomInRange", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ListForRoom_RoomNotOwned(t *testing.T) {
	_, rooms, service := newMocks(t)

	rooms.On("GetOwned", mock.Anything, int64(10), int64(2)).Return(nil, nil)

	_, err := service.ListForRoom(context.Background(), 2, 10, 2999, time.June)

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestService_Create_Success(t *testing.T) {
	repo, rooms, service := newMocks(t)

	rooms.On("GetOwned", mock.Anything, int64(10), int64(1)).Return(&domain.Room{ID: 10}, nil)
	repo.On("ListByRoom", mock.Anything, int64(10)).Return([]domain.PeakSeasonRate{}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	req := CreateRequest{RoomID: 10, Type: "percentage", Value: 25}
	row, err := service.Create(context.Background(), 1, req, date(2999, time.June, 10), date(2999, time.June, 20))

	assert.NoError(t, err)
	assert.Equal(t, int64(888), row.ID)
	assert.Equal(t, domain.RatePercentage, row.Type)
}

func TestService_Create_RoomNotOwned(t *testing.T) {
	_, rooms, service := newMocks(t)

	rooms.On("GetOwned", mock.Anything, int64(10), int64(2)).Return(nil, nil)

	req := CreateRequest{RoomID: 10, Type: "percentage", Value: 25}
	_, err := service.Create(context.Background(), 2, req, date(2999, time.June, 10), date(2999, time.June, 20))

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestService_Create_UnknownType(t *testing.T) {
	_, rooms, service := newMocks(t)

	rooms.On("GetOwned", mock.Anything, int64(10), int64(1)).Return(&domain.Room{ID: 10}, nil)

	req := CreateRequest{RoomID: 10, Type: "multiplier", Value: 2}
	_, err := service.Create(context.Background(), 1, req, date(2999, time.June, 10), date(2999, time.June, 20))

	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestService_Create_PercentageOverHundred(t *testing.T) {
	_, rooms, service := newMocks(t)

	rooms.On("GetOwned", mock.Anything, int64(10), int64(1)).Return(&domain.Room{ID: 10}, nil)

	req := CreateRequest{RoomID: 10, Type: "percentage", Value: 150}
	_, err := service.Create(context.Background(), 1, req, date(2999, time.June, 10), date(2999, time.June, 20))

	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestService_Create_NegativeValue(t *testing.T) {
	_, rooms, service := newMocks(t)

	rooms.On("GetOwned", mock.Anything, int64(10), int64(1)).Return(&domain.Room{ID: 10}, nil)

	req := CreateRequest{RoomID: 10, Type: "fixed", Value: -5000}
	_, err := service.Create(context.Background(), 1, req, date(2999, time.June, 10), date(2999, time.June, 20))

	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestService_Create_OverlapRejected(t *testing.T) {
	repo, rooms, service := newMocks(t)

	rooms.On("GetOwned", mock.Anything, int64(10), int64(1)).Return(&domain.Room{ID: 10}, nil)
	repo.On("ListByRoom", mock.Anything, int64(10)).Return([]domain.PeakSeasonRate{
		{ID: 3, RoomID: 10, StartDate: date(2999, time.June, 15), EndDate: date(2999, time.June, 25)},
	}, nil)

	req := CreateRequest{RoomID: 10, Type: "fixed", Value: 10000}
	_, err := service.Create(context.Background(), 1, req, date(2999, time.June, 10), date(2999, time.June, 20))

	assert.ErrorIs(t, err, ErrOverlap)
}

func TestService_Create_AdjacentWindowAllowed(t *testing.T) {
	repo, rooms, service := newMocks(t)

	rooms.On("GetOwned", mock.Anything, int64(10), int64(1)).Return(&domain.Room{ID: 10}, nil)
	repo.On("ListByRoom", mock.Anything, int64(10)).Return([]domain.PeakSeasonRate{
		{ID: 3, RoomID: 10, StartDate: date(2999, time.June, 1), EndDate: date(2999, time.June, 10)},
	}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	req := CreateRequest{RoomID: 10, Type: "fixed", Value: 10000}
	_, err := service.Create(context.Background(), 1, req, date(2999, time.June, 10), date(2999, time.June, 20))

	assert.NoError(t, err)
}

func TestService_Update_MergedFieldsRevalidated(t *testing.T) {
	repo, _, service := newMocks(t)

	stored := &domain.PeakSeasonRate{
		ID: 3, RoomID: 10, Type: domain.RatePercentage, Value: 20,
		StartDate: date(2999, time.June, 10), EndDate: date(2999, time.June, 20),
	}
	repo.On("GetOwned", mock.Anything, int64(3), int64(1)).Return(stored, nil)

	badValue := 150.0
	_, err := service.Update(context.Background(), 1, 3, UpdateFields{Value: &badValue})

	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestService_Update_ExcludesOwnRowFromOverlapCheck(t *testing.T) {
	repo, _, service := newMocks(t)

	stored := &domain.PeakSeasonRate{
		ID: 3, RoomID: 10, Type: domain.RatePercentage, Value: 20,
		StartDate: date(2999, time.June, 10), EndDate: date(2999, time.June, 20),
	}
	repo.On("GetOwned", mock.Anything, int64(3), int64(1)).Return(stored, nil)
	repo.On("ListByRoom", mock.Anything, int64(10)).Return([]domain.PeakSeasonRate{*stored}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	newEnd := date(2999, time.June, 22)
	row, err := service.Update(context.Background(), 1, 3, UpdateFields{EndDate: &newEnd})

	assert.NoError(t, err)
	assert.Equal(t, newEnd, row.EndDate)
}

func TestService_Update_NotOwned(t *testing.T) {
	repo, _, service := newMocks(t)

	repo.On("GetOwned", mock.Anything, int64(3), int64(2)).Return(nil, nil)

	newEnd := date(2999, time.June, 22)
	_, err := service.Update(context.Background(), 2, 3, UpdateFields{EndDate: &newEnd})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete_Success(t *testing.T) {
	repo, _, service := newMocks(t)

	repo.On("GetOwned", mock.Anything, int64(3), int64(1)).Return(&domain.PeakSeasonRate{ID: 3, RoomID: 10}, nil)
	repo.On("Delete", mock.Anything, int64(3)).Return(nil)

	err := service.Delete(context.Background(), 1, 3)

	assert.NoError(t, err)
	repo.AssertCalled(t, "Delete", mock.Anything, int64(3))
}
