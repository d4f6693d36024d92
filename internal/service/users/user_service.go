package users

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"regexp"
	"time"

	"github.com/rideshare-connect/rideshare/internal/auth"
	"github.com/rideshare-connect/rideshare/internal/domain"
	"github.com/rideshare-connect/rideshare/internal/kafka"
	"github.com/rideshare-connect/rideshare/internal/repository"
)

type UserUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GetProfile(ctx context.Context, userID int64) (*domain.User, error)
	GetPublicProfile(ctx context.Context, userID int64) (*domain.PublicProfile, error)
	UpdateProfile(ctx context.Context, userID int64, input UpdateProfileInput) (*domain.User, error)
	RateUser(ctx context.Context, raterID, userID int64, rating int) (float64, error)
	Dashboard(ctx context.Context, userID int64) (*DashboardView, error)
	RequestPasswordReset(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, otp string) error
	ResetPassword(ctx context.Context, email, otp, newPassword string) error
}

// OTPStore is the expiring key-value store behind the password-reset
// flow.
type OTPStore interface {
	StoreOTP(ctx context.Context, email, otp string, ttl time.Duration) error
	CheckOTP(ctx context.Context, email, otp string) (bool, error)
	DeleteOTP(ctx context.Context, email string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type UserService struct {
	users              repository.UserRepository
	rides              repository.RideRepository
	requests           repository.RequestRepository
	otps               OTPStore
	producer           Producer
	notificationsTopic string
	jwt                *auth.JWTManager
	otpTTL             time.Duration
	logger             *slog.Logger
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileInput struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Bio     *string `json:"bio"`
}

type AuthResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// DashboardView aggregates the three collections a user's dashboard
// shows. Each is queried independently.
type DashboardView struct {
	RidesOffered     []domain.Ride            `json:"rides_offered"`
	RequestsMade     []domain.SentRequest     `json:"requests_made"`
	RequestsReceived []domain.ReceivedRequest `json:"requests_received"`
}

func NewUserService(
	users repository.UserRepository,
	rides repository.RideRepository,
	requests repository.RequestRepository,
	otps OTPStore,
	producer Producer,
	notificationsTopic string,
	jwt *auth.JWTManager,
	otpTTL time.Duration,
	logger *slog.Logger,
) *UserService {
	return &UserService{
		users:              users,
		rides:              rides,
		requests:           requests,
		otps:               otps,
		producer:           producer,
		notificationsTopic: notificationsTopic,
		jwt:                jwt,
		otpTTL:             otpTTL,
		logger:             logger,
	}
}

var (
	emailRE    = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phoneRE    = regexp.MustCompile(`^[0-9]{10}$`)
	digitRE    = regexp.MustCompile(`[0-9]`)
	symbolRE   = regexp.MustCompile(`[!@#$%^&*]`)
)

func (s *UserService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if len(input.Name) < 3 {
		return nil, fmt.Errorf("%w: name must be at least 3 characters", domain.ErrValidation)
	}
	if !emailRE.MatchString(input.Email) {
		return nil, fmt.Errorf("%w: invalid email address", domain.ErrValidation)
	}
	if len(input.Password) < 8 || !digitRE.MatchString(input.Password) || !symbolRE.MatchString(input.Password) {
		return nil, fmt.Errorf("%w: password must be at least 8 characters with a digit and a symbol", domain.ErrValidation)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{Name: input.Name, Email: input.Email, PasswordHash: hash}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return &AuthResult{Token: token, User: user}, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if user.IsDeleted {
		return nil, domain.ErrAccountSuspended
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &AuthResult{Token: token, User: user}, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *UserService) GetPublicProfile(ctx context.Context, userID int64) (*domain.PublicProfile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile := user.Public()
	return &profile, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID int64, input UpdateProfileInput) (*domain.User, error) {
	if input.Phone != nil && *input.Phone != "" && !phoneRE.MatchString(*input.Phone) {
		return nil, fmt.Errorf("%w: phone number must be 10 digits", domain.ErrValidation)
	}
	if input.Address != nil && len(*input.Address) > 200 {
		return nil, fmt.Errorf("%w: address must be less than 200 characters", domain.ErrValidation)
	}
	if input.Bio != nil && len(*input.Bio) > 500 {
		return nil, fmt.Errorf("%w: bio must be less than 500 characters", domain.ErrValidation)
	}

	return s.users.UpdateProfile(ctx, userID, input.Name, input.Phone, input.Address, input.Bio)
}

func (s *UserService) RateUser(ctx context.Context, raterID, userID int64, rating int) (float64, error) {
	if rating < 1 || rating > 5 {
		return 0, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)
	}
	if raterID == userID {
		return 0, fmt.Errorf("%w: you cannot rate yourself", domain.ErrValidation)
	}
	return s.users.AddRating(ctx, userID, rating)
}

func (s *UserService) Dashboard(ctx context.Context, userID int64) (*DashboardView, error) {
	offered, err := s.rides.ListByHost(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list rides: %w", err)
	}
	made, err := s.requests.ListSent(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list sent requests: %w", err)
	}
	received, err := s.requests.ListReceived(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list received requests: %w", err)
	}
	return &DashboardView{RidesOffered: offered, RequestsMade: made, RequestsReceived: received}, nil
}

// RequestPasswordReset always reports success so the endpoint does not
// reveal whether an email is registered.
func (s *UserService) RequestPasswordReset(ctx context.Context, email string) error {
	if _, err := s.users.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil
		}
		return err
	}

	otp, err := generateOTP()
	if err != nil {
		return fmt.Errorf("generate otp: %w", err)
	}
	if err := s.otps.StoreOTP(ctx, email, otp, s.otpTTL); err != nil {
		return fmt.Errorf("store otp: %w", err)
	}

	if s.producer != nil && s.notificationsTopic != "" {
		event := kafka.OTPEvent{Type: kafka.EventPasswordResetOTP, Email: email, OTP: otp}
		if err := s.producer.Publish(ctx, s.notificationsTopic, "otp-"+email, event); err != nil {
			s.logger.Warn("failed to publish otp notification", "error", err)
		}
	}
	s.logger.Info("password reset requested", "email", email)
	return nil
}

func (s *UserService) VerifyOTP(ctx context.Context, email, otp string) error {
	ok, err := s.otps.CheckOTP(ctx, email, otp)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrInvalidOTP
	}
	return nil
}

func (s *UserService) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	if len(newPassword) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", domain.ErrValidation)
	}
	if err := s.VerifyOTP(ctx, email, otp); err != nil {
		return err
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}

	if err := s.otps.DeleteOTP(ctx, email); err != nil {
		s.logger.Warn("failed to clear otp", "error", err)
	}
	s.logger.Info("password reset", "user_id", user.ID)
	return nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

var _ UserUseCase = (*UserService)(nil)
