package rides

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/rideshare-connect/rideshare/internal/domain"
	"github.com/rideshare-connect/rideshare/internal/observability"
	"github.com/rideshare-connect/rideshare/internal/repository"
)

type RideUseCase interface {
	CreateRide(ctx context.Context, hostID int64, input CreateRideInput) (*domain.Ride, error)
	Search(ctx context.Context, filter domain.RideSearch) ([]domain.RideWithHost, error)
	MyRides(ctx context.Context, hostID int64) ([]domain.Ride, error)
	GetByID(ctx context.Context, id int64) (*domain.Ride, error)
}

// Cache holds the unfiltered open-rides listing. Filtered searches
// always hit the database.
type Cache interface {
	GetOpenRides(ctx context.Context) ([]domain.RideWithHost, error)
	SetOpenRides(ctx context.Context, rides []domain.RideWithHost) error
	InvalidateOpenRides(ctx context.Context) error
}

type RideService struct {
	repo   repository.RideRepository
	cache  Cache
	logger *slog.Logger
}

type CreateRideInput struct {
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureDate string  `json:"departure_date"`
	DepartureTime string  `json:"departure_time"`
	PriceCents    int64   `json:"price_cents"`
	Seats         int     `json:"seats"`
	Phone         string  `json:"phone"`
	CarModel      string  `json:"car_model"`
	CarType       string  `json:"car_type"`
	Description   string  `json:"description"`
}

func NewRideService(repo repository.RideRepository, cache Cache, logger *slog.Logger) *RideService {
	return &RideService{repo: repo, cache: cache, logger: logger}
}

var phoneRE = regexp.MustCompile(`^[0-9]{10}$`)

func (s *RideService) CreateRide(ctx context.Context, hostID int64, input CreateRideInput) (*domain.Ride, error) {
	if len(strings.TrimSpace(input.Origin)) < 3 || len(strings.TrimSpace(input.Destination)) < 3 {
		return nil, fmt.Errorf("%w: origin and destination must be at least 3 characters", domain.ErrValidation)
	}
	date, err := time.Parse("2006-01-02", input.DepartureDate)
	if err != nil {
		return nil, fmt.Errorf("%w: departure date must be YYYY-MM-DD", domain.ErrValidation)
	}
	if !date.After(time.Now().Truncate(24 * time.Hour)) {
		return nil, fmt.Errorf("%w: departure date must be in the future", domain.ErrValidation)
	}
	if _, err := time.Parse("15:04", input.DepartureTime); err != nil {
		return nil, fmt.Errorf("%w: departure time must be HH:MM", domain.ErrValidation)
	}
	if input.PriceCents < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", domain.ErrValidation)
	}
	if input.Seats < 1 || input.Seats > 8 {
		return nil, fmt.Errorf("%w: seats must be between 1 and 8", domain.ErrValidation)
	}
	if !phoneRE.MatchString(input.Phone) {
		return nil, fmt.Errorf("%w: please provide a valid 10-digit mobile number", domain.ErrValidation)
	}
	if strings.TrimSpace(input.CarModel) == "" {
		return nil, fmt.Errorf("%w: car model is required", domain.ErrValidation)
	}
	carType := domain.CarType(input.CarType)
	if carType != domain.CarTypeFourSeater && carType != domain.CarTypeSevenSeater {
		return nil, fmt.Errorf("%w: car type must be 4-seater or 7-seater", domain.ErrValidation)
	}

	ride := &domain.Ride{
		HostID:        hostID,
		Origin:        strings.TrimSpace(input.Origin),
		Destination:   strings.TrimSpace(input.Destination),
		DepartureDate: date,
		DepartureTime: input.DepartureTime,
		PriceCents:    input.PriceCents,
		Seats:         input.Seats,
		Phone:         input.Phone,
		CarModel:      strings.TrimSpace(input.CarModel),
		CarType:       carType,
		Description:   input.Description,
	}
	if err := s.repo.Create(ctx, ride); err != nil {
		return nil, fmt.Errorf("create ride: %w", err)
	}

	observability.RidesCreated.Inc()
	s.logger.Info("ride created", "ride_id", ride.ID, "host_id", hostID, "seats", ride.Seats)
	if s.cache != nil {
		if err := s.cache.InvalidateOpenRides(ctx); err != nil {
			s.logger.Warn("failed to invalidate rides cache", "error", err)
		}
	}
	return ride, nil
}

func (s *RideService) Search(ctx context.Context, filter domain.RideSearch) ([]domain.RideWithHost, error) {
	if filter.Empty() && s.cache != nil {
		if cached, err := s.cache.GetOpenRides(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	rides, err := s.repo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	if filter.Empty() && s.cache != nil {
		if err := s.cache.SetOpenRides(ctx, rides); err != nil {
			s.logger.Warn("failed to cache open rides", "error", err)
		}
	}
	return rides, nil
}

func (s *RideService) MyRides(ctx context.Context, hostID int64) ([]domain.Ride, error) {
	return s.repo.ListByHost(ctx, hostID)
}

func (s *RideService) GetByID(ctx context.Context, id int64) (*domain.Ride, error) {
	return s.repo.GetByID(ctx, id)
}

var _ RideUseCase = (*RideService)(nil)
