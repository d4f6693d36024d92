package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/rideshare-connect/rideshare/internal/domain"
	"github.com/rideshare-connect/rideshare/internal/kafka"
	"github.com/rideshare-connect/rideshare/internal/observability"
	"github.com/rideshare-connect/rideshare/internal/repository"
)

// BookingUseCase is the seat-request state machine. Requests start
// pending and are accepted or rejected by the ride host; only
// acceptance reserves capacity.
type BookingUseCase interface {
	CreateRequest(ctx context.Context, passengerID int64, input CreateRequestInput) (*domain.Request, error)
	UpdateStatus(ctx context.Context, actorID, requestID int64, status string) (*domain.Request, error)
	WithdrawRequest(ctx context.Context, actorID, requestID int64) error
	ListReceived(ctx context.Context, hostID int64) ([]domain.ReceivedRequest, error)
	ListSent(ctx context.Context, passengerID int64) ([]domain.SentRequest, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	requests           repository.RequestRepository
	rides              repository.RideRepository
	users              repository.UserRepository
	producer           Producer
	eventsTopic        string
	notificationsTopic string
	logger             *slog.Logger
}

type CreateRequestInput struct {
	RideID int64  `json:"ride_id"`
	Seats  int    `json:"seats"`
	Phone  string `json:"phone"`
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	requests repository.RequestRepository,
	rides repository.RideRepository,
	users repository.UserRepository,
	producer Producer,
	eventsTopic string,
	logger *slog.Logger,
	opts ...BookingServiceOption,
) *BookingService {
	s := &BookingService{
		requests:    requests,
		rides:       rides,
		users:       users,
		producer:    producer,
		eventsTopic: eventsTopic,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var phoneRE = regexp.MustCompile(`^[0-9]{10}$`)

func (s *BookingService) CreateRequest(ctx context.Context, passengerID int64, input CreateRequestInput) (*domain.Request, error) {
	if !phoneRE.MatchString(input.Phone) {
		return nil, fmt.Errorf("%w: please provide a valid 10-digit mobile number", domain.ErrValidation)
	}
	if input.Seats < 1 {
		return nil, fmt.Errorf("%w: please select at least 1 seat", domain.ErrValidation)
	}

	ride, err := s.rides.GetByID(ctx, input.RideID)
	if err != nil {
		return nil, err
	}
	if ride.SeatsAvailable < input.Seats {
		return nil, fmt.Errorf("%w: only %d seat(s) available", domain.ErrInsufficientSeats, ride.SeatsAvailable)
	}

	exists, err := s.requests.ExistsForPassenger(ctx, passengerID, input.RideID)
	if err != nil {
		return nil, fmt.Errorf("check existing request: %w", err)
	}
	if exists {
		return nil, domain.ErrAlreadyRequested
	}
	if ride.HostID == passengerID {
		return nil, domain.ErrOwnRide
	}

	req := &domain.Request{
		PassengerID: passengerID,
		RideID:      input.RideID,
		Seats:       input.Seats,
		Phone:       input.Phone,
	}
	if err := s.requests.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	observability.RequestsCreated.Inc()
	s.logger.Info("seat request created",
		"request_id", req.ID, "ride_id", ride.ID, "passenger_id", passengerID, "seats", req.Seats)
	s.publish(ctx, kafka.EventRequestCreated, req, ride)
	return req, nil
}

func (s *BookingService) UpdateStatus(ctx context.Context, actorID, requestID int64, status string) (*domain.Request, error) {
	target := domain.RequestStatus(status)
	if target != domain.RequestStatusAccepted && target != domain.RequestStatusRejected {
		return nil, fmt.Errorf("%w: invalid status", domain.ErrValidation)
	}

	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	ride, err := s.rides.GetByID(ctx, req.RideID)
	if err != nil {
		return nil, err
	}
	if ride.HostID != actorID {
		return nil, domain.ErrNotHost
	}

	// The repository re-applies the capacity check inside the same
	// transaction as the status write, so the read above is advisory
	// and a concurrent accept cannot oversell.
	var updated *domain.Request
	switch target {
	case domain.RequestStatusAccepted:
		updated, err = s.requests.Accept(ctx, requestID)
		if err != nil {
			if errors.Is(err, domain.ErrInsufficientSeats) {
				observability.CapacityRefusals.Inc()
				return nil, fmt.Errorf("%w: only %d seat(s) available", domain.ErrInsufficientSeats, ride.SeatsAvailable)
			}
			return nil, err
		}
		observability.RequestsAccepted.Inc()
		s.publish(ctx, kafka.EventRequestAccepted, updated, ride)
	case domain.RequestStatusRejected:
		updated, err = s.requests.Reject(ctx, requestID)
		if err != nil {
			return nil, err
		}
		observability.RequestsRejected.Inc()
		s.publish(ctx, kafka.EventRequestRejected, updated, ride)
	}

	s.logger.Info("seat request updated",
		"request_id", requestID, "ride_id", ride.ID, "status", string(updated.Status))
	return updated, nil
}

func (s *BookingService) WithdrawRequest(ctx context.Context, actorID, requestID int64) error {
	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req.PassengerID != actorID {
		return domain.ErrNotPassenger
	}

	if err := s.requests.Withdraw(ctx, requestID); err != nil {
		return err
	}

	s.logger.Info("seat request withdrawn", "request_id", requestID, "ride_id", req.RideID)
	if ride, err := s.rides.GetByID(ctx, req.RideID); err == nil {
		s.publish(ctx, kafka.EventRequestWithdrawn, req, ride)
	}
	return nil
}

func (s *BookingService) ListReceived(ctx context.Context, hostID int64) ([]domain.ReceivedRequest, error) {
	return s.requests.ListReceived(ctx, hostID)
}

func (s *BookingService) ListSent(ctx context.Context, passengerID int64) ([]domain.SentRequest, error) {
	return s.requests.ListSent(ctx, passengerID)
}

func (s *BookingService) publish(ctx context.Context, eventType string, req *domain.Request, ride *domain.Ride) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}

	event := kafka.RequestEvent{
		Type:        eventType,
		RequestID:   req.ID,
		RideID:      ride.ID,
		Seats:       req.Seats,
		Origin:      ride.Origin,
		Destination: ride.Destination,
		Status:      string(req.Status),
		OccurredAt:  time.Now().UTC(),
	}
	if passenger, err := s.users.GetByID(ctx, req.PassengerID); err == nil {
		event.PassengerName = passenger.Name
		event.PassengerEmail = passenger.Email
	}
	if host, err := s.users.GetByID(ctx, ride.HostID); err == nil {
		event.HostEmail = host.Email
	}

	key := fmt.Sprintf("request-%d", req.ID)
	if err := s.producer.Publish(ctx, s.eventsTopic, key, event); err != nil {
		s.logger.Warn("failed to publish request event", "type", eventType, "request_id", req.ID, "error", err)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, key, event); err != nil {
			s.logger.Warn("failed to publish notification", "type", eventType, "request_id", req.ID, "error", err)
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
