package booking

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/rideshare-connect/rideshare/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) Create(ctx context.Context, req *domain.Request) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockRequestRepository) GetByID(ctx context.Context, id int64) (*domain.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}

func (m *MockRequestRepository) ExistsForPassenger(ctx context.Context, passengerID, rideID int64) (bool, error) {
	args := m.Called(ctx, passengerID, rideID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRequestRepository) Accept(ctx context.Context, id int64) (*domain.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}

func (m *MockRequestRepository) Reject(ctx context.Context, id int64) (*domain.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}

func (m *MockRequestRepository) Withdraw(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRequestRepository) ListReceived(ctx context.Context, hostID int64) ([]domain.ReceivedRequest, error) {
	args := m.Called(ctx, hostID)
	return args.Get(0).([]domain.ReceivedRequest), args.Error(1)
}

func (m *MockRequestRepository) ListSent(ctx context.Context, passengerID int64) ([]domain.SentRequest, error) {
	args := m.Called(ctx, passengerID)
	return args.Get(0).([]domain.SentRequest), args.Error(1)
}

type MockRideRepository struct {
	mock.Mock
}

func (m *MockRideRepository) Create(ctx context.Context, ride *domain.Ride) error {
	args := m.Called(ctx, ride)
	return args.Error(0)
}

func (m *MockRideRepository) GetByID(ctx context.Context, id int64) (*domain.Ride, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ride), args.Error(1)
}

func (m *MockRideRepository) Search(ctx context.Context, filter domain.RideSearch) ([]domain.RideWithHost, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.RideWithHost), args.Error(1)
}

func (m *MockRideRepository) ListByHost(ctx context.Context, hostID int64) ([]domain.Ride, error) {
	args := m.Called(ctx, hostID)
	return args.Get(0).([]domain.Ride), args.Error(1)
}

func (m *MockRideRepository) ListAll(ctx context.Context) ([]domain.RideWithHost, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.RideWithHost), args.Error(1)
}

func (m *MockRideRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id int64, name, phone, address, bio *string) (*domain.User, error) {
	args := m.Called(ctx, id, name, phone, address, bio)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) AddRating(ctx context.Context, id int64, rating int) (float64, error) {
	args := m.Called(ctx, id, rating)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, deleted bool) ([]domain.User, error) {
	args := m.Called(ctx, deleted)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) Recent(ctx context.Context, limit int) ([]domain.User, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SetDeleted(ctx context.Context, id int64, deleted bool) error {
	args := m.Called(ctx, id, deleted)
	return args.Error(0)
}

func (m *MockUserRepository) SetRole(ctx context.Context, id int64, role domain.Role) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

func (m *MockUserRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountByRole(ctx context.Context) (map[domain.Role]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[domain.Role]int64), args.Error(1)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(requests *MockRequestRepository, rides *MockRideRepository, users *MockUserRepository, producer *MockProducer) *BookingService {
	return &BookingService{
		requests:           requests,
		rides:              rides,
		users:              users,
		producer:           producer,
		eventsTopic:        "request_events",
		notificationsTopic: "notifications",
		logger:             testLogger(),
	}
}

func TestBookingService_CreateRequest_Success(t *testing.T) {
	mockRequests := &MockRequestRepository{}
	mockRides := &MockRideRepository{}
	mockUsers := &MockUserRepository{}
	mockProducer := &MockProducer{}
	service := newTestService(mockRequests, mockRides, mockUsers, mockProducer)

	ctx := context.Background()
	ride := &domain.Ride{ID: 7, HostID: 2, Origin: "Pune", Destination: "Mumbai", SeatsAvailable: 3}

	mockRides.On("GetByID", ctx, int64(7)).Return(ride, nil).Once()
	mockRequests.On("ExistsForPassenger", ctx, int64(1), int64(7)).Return(false, nil).Once()
	mockRequests.On("Create", ctx, mock.AnythingOfType("*domain.Request")).Return(nil).Once()
	mockUsers.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1, Name: "Asha", Email: "asha@example.com"}, nil).Once()
	mockUsers.On("GetByID", ctx, int64(2)).Return(&domain.User{ID: 2, Email: "host@example.com"}, nil).Once()
	mockProducer.On("Publish", ctx, "request_events", mock.Anything, mock.Anything).Return(nil).Once()
	mockProducer.On("Publish", ctx, "notifications", mock.Anything, mock.Anything).Return(nil).Once()

	req, err := service.CreateRequest(ctx, 1, CreateRequestInput{RideID: 7, Seats: 2, Phone: "9876543210"})

	assert.NoError(t, err)
	assert.NotNil(t, req)
	assert.Equal(t, int64(7), req.RideID)
	assert.Equal(t, 2, req.Seats)

	mockRequests.AssertExpectations(t)
	mockRides.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestBookingService_CreateRequest_ValidationErrors(t *testing.T) {
	service := newTestService(&MockRequestRepository{}, &MockRideRepository{}, &MockUserRepository{}, &MockProducer{})
	ctx := context.Background()

	testCases := []struct {
		name  string
		input CreateRequestInput
	}{
		{name: "bad phone", input: CreateRequestInput{RideID: 7, Seats: 1, Phone: "12345"}},
		{name: "phone with letters", input: CreateRequestInput{RideID: 7, Seats: 1, Phone: "98765abcde"}},
		{name: "zero seats", input: CreateRequestInput{RideID: 7, Seats: 0, Phone: "9876543210"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := service.CreateRequest(ctx, 1, tc.input)
			assert.Nil(t, req)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestBookingService_CreateRequest_InsufficientSeats(t *testing.T) {
	mockRequests := &MockRequestRepository{}
	mockRides := &MockRideRepository{}
	service := newTestService(mockRequests, mockRides, &MockUserRepository{}, &MockProducer{})

	ctx := context.Background()
	ride := &domain.Ride{ID: 7, HostID: 2, SeatsAvailable: 1}
	mockRides.On("GetByID", ctx, int64(7)).Return(ride, nil).Once()

	req, err := service.CreateRequest(ctx, 1, CreateRequestInput{RideID: 7, Seats: 3, Phone: "9876543210"})

	assert.Nil(t, req)
	assert.ErrorIs(t, err, domain.ErrInsufficientSeats)
	mockRequests.AssertNotCalled(t, "Create")
}

func TestBookingService_CreateRequest_AlreadyRequested(t *testing.T) {
	mockRequests := &MockRequestRepository{}
	mockRides := &MockRideRepository{}
	service := newTestService(mockRequests, mockRides, &MockUserRepository{}, &MockProducer{})

	ctx := context.Background()
	ride := &domain.Ride{ID: 7, HostID: 2, SeatsAvailable: 3}
	mockRides.On("GetByID", ctx, int64(7)).Return(ride, nil).Once()
	mockRequests.On("ExistsForPassenger", ctx, int64(1), int64(7)).Return(true, nil).Once()

	req, err := service.CreateRequest(ctx, 1, CreateRequestInput{RideID: 7, Seats: 1, Phone: "9876543210"})

	assert.Nil(t, req)
	assert.ErrorIs(t, err, domain.ErrAlreadyRequested)
	mockRequests.AssertNotCalled(t, "Create")
}

func TestBookingService_CreateRequest_OwnRide(t *testing.T) {
	mockRequests := &MockRequestRepository{}
	mockRides := &MockRideRepository{}
	service := newTestService(mockRequests, mockRides, &MockUserRepository{}, &MockProducer{})

	ctx := context.Background()
	ride := &domain.Ride{ID: 7, HostID: 1, SeatsAvailable: 3}
	mockRides.On("GetByID", ctx, int64(7)).Return(ride, nil).Once()
	mockRequests.On("ExistsForPassenger", ctx, int64(1), int64(7)).Return(false, nil).Once()

	req, err := service.CreateRequest(ctx, 1, CreateRequestInput{RideID: 7, Seats: 1, Phone: "9876543210"})

	assert.Nil(t, req)
	assert.ErrorIs(t, err, domain.ErrOwnRide)
	mockRequests.AssertNotCalled(t, "Create")
}

func TestBookingService_CreateRequest_RideNotFound(t *testing.T) {
	mockRides := &MockRideRepository{}
	service := newTestService(&MockRequestRepository{}, mockRides, &MockUserRepository{}, &MockProducer{})

	ctx := context.Background()
	mockRides.On("GetByID", ctx, int64(404)).Return(nil, domain.ErrRideNotFound).Once()

	req, err := service.CreateRequest(ctx, 1, CreateRequestInput{RideID: 404, Seats: 1, Phone: "9876543210"})

	assert.Nil(t, req)
	assert.ErrorIs(t, err, domain.ErrRideNotFound)
}

func TestBookingService_UpdateStatus_Accept(t *testing.T) {
	mockRequests := &MockRequestRepository{}
	mockRides := &MockRideRepository{}
	mockUsers := &MockUserRepository{}
	mockProducer := &MockProducer{}
	service := newTestService(mockRequests, mockRides, mockUsers, mockProducer)

	ctx := context.Background()
	pending := &domain.Request{ID: 11, PassengerID: 1, RideID: 7, Seats: 2, Status: domain.RequestStatusPending}
	accepted := &domain.Request{ID: 11, PassengerID: 1, RideID: 7, Seats: 2, Status: domain.RequestStatusAccepted}
	ride := &domain.Ride{ID: 7, HostID: 2, SeatsAvailable: 3}

	mockRequests.On("GetByID", ctx, int64(11)).Return(pending, nil).Once()
	mockRides.On("GetByID", ctx, int64(7)).Return(ride, nil).Once()
	mockRequests.On("Accept", ctx, int64(11)).Return(accepted, nil).Once()
	mockUsers.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1, Name: "Asha", Email: "asha@example.com"}, nil).Once()
	mockUsers.On("GetByID", ctx, int64(2)).Return(&domain.User{ID: 2, Email: "host@example.com"}, nil).Once()
	mockProducer.On("Publish", ctx, "request_events", mock.Anything, mock.Anything).Return(nil).Once()
	mockProducer.On("Publish", ctx, "notifications", mock.Anything, mock.Anything).Return(nil).Once()

	updated, err := service.UpdateStatus(ctx, 2, 11, "accepted")

	assert.NoError(t, err)
	assert.NotNil(t, updated)
	assert.Equal(t, domain.RequestStatusAccepted, updated.Status)

	mockRequests.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestBookingService_UpdateStatus_Reject(t *testing.T) {
	mockRequests := &MockRequestRepository{}
	mockRides := &MockRideRepository{}
	mockUsers := &MockUserRepository{}
	mockProducer := &MockProducer{}
	service := newTestService(mockRequests, mockRides, mockUsers, mockProducer)

	ctx := context.Background()
	pending := &domain.Request{ID: 11, PassengerID: 1, RideID: 7, Seats: 2, Status: domain.RequestStatusPending}
	rejected := &domain.Request{ID: 11, PassengerID: 1, RideID: 7, Seats: 2, Status: domain.RequestStatusRejected}
	ride := &domain.Ride{ID: 7, HostID: 2, SeatsAvailable: 3}

	mockRequests.On("GetByID", ctx, int64(11)).Return(pending, nil).Once()
	mockRides.On("GetByID", ctx, int64(7)).Return(ride, nil).Once()
	mockRequests.On("Reject", ctx, int64(11)).Return(rejected, nil).Once()
	mockUsers.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1, Name: "Asha", Email: "asha@example.com"}, nil).Once()
	mockUsers.On("GetByID", ctx, int64(2)).Return(&domain.User{ID: 2, Email: "host@example.com"}, nil).Once()
	mockProducer.On("Publish", ctx, "request_events", mock.Anything, mock.Anything).Return(nil).Once()
	mockProducer.On("Publish", ctx, "notifications", mock.Anything, mock.Anything).Return(nil).Once()

	updated, err := service.UpdateStatus(ctx, 2, 11, "rejected")

	assert.NoError(t, err)
	assert.Equal(t, domain.RequestStatusRejected, updated.Status)
	mockRequests.AssertExpectations(t)
}

func TestBookingService_UpdateStatus_InvalidStatus(t *testing.T) {
	mockRequests := &MockRequestRepository{}
	service := newTestService(mockRequests, &MockRideRepository{}, &MockUserRepository{}, &MockProducer{})

	updated, err := service.UpdateStatus(context.Background(), 2, 11, "maybe")

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domain.ErrValidation)
	mockRequests.AssertNotCalled(t, "GetByID")
}

func TestBookingService_UpdateStatus_NotHost(t *testing.T) {
	mockRequests := &MockRequestRepository{}
	mockRides := &MockRideRepository{}
	service := newTestService(mockRequests, mockRides, &MockUserRepository{}, &MockProducer{})

	ctx := context.Background()
	pending := &domain.Request{ID: 11, PassengerID: 1, RideID: 7, Status: domain.RequestStatusPending}
	ride := &domain.Ride{ID: 7, HostID: 2, SeatsAvailable: 3}

	mockRequests.On("GetByID", ctx, int64(11)).Return(pending, nil).Once()
	mockRides.On("GetByID", ctx, int64(7)).Return(ride, nil).Once()

	updated, err := service.UpdateStatus(ctx, 99, 11, "accepted")

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domain.ErrNotHost)
	mockRequests.AssertNotCalled(t, "Accept")
	mockRequests.AssertNotCalled(t, "Reject")
}

func TestBookingService_UpdateStatus_CapacityRefused(t *testing.T) {
	mockRequests := &MockRequestRepository{}
	mockRides := &MockRideRepository{}
	service := newTestService(mockRequests, mockRides, &MockUserRepository{}, &MockProducer{})

	ctx := context.Background()
	pending := &domain.Request{ID: 11, PassengerID: 1, RideID: 7, Seats: 4, Status: domain.RequestStatusPending}
	ride := &domain.Ride{ID: 7, HostID: 2, SeatsAvailable: 1}

	mockRequests.On("GetByID", ctx, int64(11)).Return(pending, nil).Once()
	mockRides.On("GetByID", ctx, int64(7)).Return(ride, nil).Once()
	mockRequests.On("Accept", ctx, int64(11)).Return(nil, domain.ErrInsufficientSeats).Once()

	updated, err := service.UpdateStatus(ctx, 2, 11, "accepted")

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domain.ErrInsufficientSeats)
	mockRequests.AssertExpectations(t)
}

func TestBookingService_UpdateStatus_AcceptIdempotent(t *testing.T) {
	mockRequests := &MockRequestRepository{}
	mockRides := &MockRideRepository{}
	mockUsers := &MockUserRepository{}
	mockProducer := &MockProducer{}
	service := newTestService(mockRequests, mockRides, mockUsers, mockProducer)

	ctx := context.Background()
	// The repository short-circuits an already-accepted request and
	// returns it without touching capacity.
	accepted := &domain.Request{ID: 11, PassengerID: 1, RideID: 7, Seats: 2, Status: domain.RequestStatusAccepted}
	ride := &domain.Ride{ID: 7, HostID: 2, SeatsAvailable: 1}

	mockRequests.On("GetByID", ctx, int64(11)).Return(accepted, nil).Once()
	mockRides.On("GetByID", ctx, int64(7)).Return(ride, nil).Once()
	mockRequests.On("Accept", ctx, int64(11)).Return(accepted, nil).Once()
	mockUsers.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1, Email: "asha@example.com"}, nil).Once()
	mockUsers.On("GetByID", ctx, int64(2)).Return(&domain.User{ID: 2, Email: "host@example.com"}, nil).Once()
	mockProducer.On("Publish", ctx, "request_events", mock.Anything, mock.Anything).Return(nil).Once()
	mockProducer.On("Publish", ctx, "notifications", mock.Anything, mock.Anything).Return(nil).Once()

	updated, err := service.UpdateStatus(ctx, 2, 11, "accepted")

	assert.NoError(t, err)
	assert.Equal(t, domain.RequestStatusAccepted, updated.Status)
	mockRequests.AssertExpectations(t)
}

func TestBookingService_WithdrawRequest_Success(t *testing.T) {
	mockRequests := &MockRequestRepository{}
	mockRides := &MockRideRepository{}
	mockUsers := &MockUserRepository{}
	mockProducer := &MockProducer{}
	service := newTestService(mockRequests, mockRides, mockUsers, mockProducer)

	ctx := context.Background()
	req := &domain.Request{ID: 11, PassengerID: 1, RideID: 7, Seats: 2, Status: domain.RequestStatusPending}
	ride := &domain.Ride{ID: 7, HostID: 2, SeatsAvailable: 3}

	mockRequests.On("GetByID", ctx, int64(11)).Return(req, nil).Once()
	mockRequests.On("Withdraw", ctx, int64(11)).Return(nil).Once()
	mockRides.On("GetByID", ctx, int64(7)).Return(ride, nil).Once()
	mockUsers.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1, Email: "asha@example.com"}, nil).Once()
	mockUsers.On("GetByID", ctx, int64(2)).Return(&domain.User{ID: 2, Email: "host@example.com"}, nil).Once()
	mockProducer.On("Publish", ctx, "request_events", mock.Anything, mock.Anything).Return(nil).Once()
	mockProducer.On("Publish", ctx, "notifications", mock.Anything, mock.Anything).Return(nil).Once()

	err := service.WithdrawRequest(ctx, 1, 11)

	assert.NoError(t, err)
	mockRequests.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestBookingService_WithdrawRequest_NotPassenger(t *testing.T) {
	mockRequests := &MockRequestRepository{}
	service := newTestService(mockRequests, &MockRideRepository{}, &MockUserRepository{}, &MockProducer{})

	ctx := context.Background()
	req := &domain.Request{ID: 11, PassengerID: 1, RideID: 7, Status: domain.RequestStatusPending}
	mockRequests.On("GetByID", ctx, int64(11)).Return(req, nil).Once()

	err := service.WithdrawRequest(ctx, 42, 11)

	assert.ErrorIs(t, err, domain.ErrNotPassenger)
	mockRequests.AssertNotCalled(t, "Withdraw")
}

func TestBookingService_WithdrawRequest_NotFound(t *testing.T) {
	mockRequests := &MockRequestRepository{}
	service := newTestService(mockRequests, &MockRideRepository{}, &MockUserRepository{}, &MockProducer{})

	ctx := context.Background()
	mockRequests.On("GetByID", ctx, int64(404)).Return(nil, domain.ErrRequestNotFound).Once()

	err := service.WithdrawRequest(ctx, 1, 404)

	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
	mockRequests.AssertNotCalled(t, "Withdraw")
}

func TestBookingService_Publish_NoProducer(t *testing.T) {
	service := &BookingService{logger: testLogger()}

	req := &domain.Request{ID: 11, Status: domain.RequestStatusPending}
	ride := &domain.Ride{ID: 7}

	// No producer wired means publish is a no-op.
	service.publish(context.Background(), "request_created", req, ride)
}

func TestBookingService_Publish_ProducerFailureIsNonFatal(t *testing.T) {
	mockRequests := &MockRequestRepository{}
	mockRides := &MockRideRepository{}
	mockUsers := &MockUserRepository{}
	mockProducer := &MockProducer{}
	service := newTestService(mockRequests, mockRides, mockUsers, mockProducer)

	ctx := context.Background()
	ride := &domain.Ride{ID: 7, HostID: 2, SeatsAvailable: 3}

	mockRides.On("GetByID", ctx, int64(7)).Return(ride, nil).Once()
	mockRequests.On("ExistsForPassenger", ctx, int64(1), int64(7)).Return(false, nil).Once()
	mockRequests.On("Create", ctx, mock.Anything).Return(nil).Once()
	mockUsers.On("GetByID", ctx, mock.Anything).Return(&domain.User{Email: "x@example.com"}, nil)
	mockProducer.On("Publish", ctx, "request_events", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	req, err := service.CreateRequest(ctx, 1, CreateRequestInput{RideID: 7, Seats: 1, Phone: "9876543210"})

	assert.NoError(t, err)
	assert.NotNil(t, req)
	// Notifications are skipped once the events publish fails.
	mockProducer.AssertNumberOfCalls(t, "Publish", 1)
}

func TestBookingService_ListReceived(t *testing.T) {
	mockRequests := &MockRequestRepository{}
	service := newTestService(mockRequests, &MockRideRepository{}, &MockUserRepository{}, &MockProducer{})

	ctx := context.Background()
	expected := []domain.ReceivedRequest{{Request: domain.Request{ID: 11}, PassengerName: "Asha"}}
	mockRequests.On("ListReceived", ctx, int64(2)).Return(expected, nil).Once()

	results, err := service.ListReceived(ctx, 2)

	assert.NoError(t, err)
	assert.Equal(t, expected, results)
}

func TestBookingService_ListSent(t *testing.T) {
	mockRequests := &MockRequestRepository{}
	service := newTestService(mockRequests, &MockRideRepository{}, &MockUserRepository{}, &MockProducer{})

	ctx := context.Background()
	expected := []domain.SentRequest{{Request: domain.Request{ID: 11}, HostName: "Ravi"}}
	mockRequests.On("ListSent", ctx, int64(1)).Return(expected, nil).Once()

	results, err := service.ListSent(ctx, 1)

	assert.NoError(t, err)
	assert.Equal(t, expected, results)
}
