package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rideshare-connect/rideshare/internal/auth"
	"github.com/rideshare-connect/rideshare/internal/domain"
	"github.com/rideshare-connect/rideshare/internal/repository"
)

type AdminUseCase interface {
	Stats(ctx context.Context) (*StatsView, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	RecycleBin(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, id int64, input UpdateUserInput) (*domain.User, error)
	UpdateRole(ctx context.Context, actorID, id int64, role string) error
	SuspendUser(ctx context.Context, actorID, id int64) error
	RestoreUser(ctx context.Context, id int64) error
	ListRides(ctx context.Context) ([]domain.RideWithHost, error)
}

type AdminService struct {
	users  repository.UserRepository
	rides  repository.RideRepository
	logger *slog.Logger
}

type StatsView struct {
	TotalUsers  int64                  `json:"total_users"`
	TotalRides  int64                  `json:"total_rides"`
	UserRoles   map[domain.Role]int64  `json:"user_roles"`
	RecentUsers []domain.User          `json:"recent_users"`
}

type CreateUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
	Bio      string `json:"bio"`
}

type UpdateUserInput struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Bio   *string `json:"bio"`
}

func NewAdminService(users repository.UserRepository, rides repository.RideRepository, logger *slog.Logger) *AdminService {
	return &AdminService{users: users, rides: rides, logger: logger}
}

func (s *AdminService) Stats(ctx context.Context) (*StatsView, error) {
	totalUsers, err := s.users.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	totalRides, err := s.rides.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count rides: %w", err)
	}
	roles, err := s.users.CountByRole(ctx)
	if err != nil {
		return nil, fmt.Errorf("count roles: %w", err)
	}
	recent, err := s.users.Recent(ctx, 5)
	if err != nil {
		return nil, fmt.Errorf("recent users: %w", err)
	}
	return &StatsView{TotalUsers: totalUsers, TotalRides: totalRides, UserRoles: roles, RecentUsers: recent}, nil
}

func (s *AdminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx, false)
}

func (s *AdminService) RecycleBin(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx, true)
}

func (s *AdminService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *AdminService) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" || len(input.Password) < 8 {
		return nil, fmt.Errorf("%w: name, email and a password of at least 8 characters are required", domain.ErrValidation)
	}
	role := domain.Role(input.Role)
	if role == "" {
		role = domain.RoleUser
	}
	if role != domain.RoleUser && role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: invalid role", domain.ErrValidation)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Phone:        input.Phone,
		Bio:          input.Bio,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("admin created user", "user_id", user.ID, "role", string(user.Role))
	return user, nil
}

func (s *AdminService) UpdateUser(ctx context.Context, id int64, input UpdateUserInput) (*domain.User, error) {
	return s.users.UpdateProfile(ctx, id, input.Name, input.Phone, nil, input.Bio)
}

func (s *AdminService) UpdateRole(ctx context.Context, actorID, id int64, role string) error {
	r := domain.Role(role)
	if r != domain.RoleUser && r != domain.RoleAdmin {
		return fmt.Errorf("%w: invalid role", domain.ErrValidation)
	}
	if actorID == id && r != domain.RoleAdmin {
		return fmt.Errorf("%w: cannot change your own role", domain.ErrValidation)
	}
	if err := s.users.SetRole(ctx, id, r); err != nil {
		return err
	}
	s.logger.Info("user role updated", "user_id", id, "role", role)
	return nil
}

func (s *AdminService) SuspendUser(ctx context.Context, actorID, id int64) error {
	if actorID == id {
		return fmt.Errorf("%w: cannot delete yourself", domain.ErrValidation)
	}
	if err := s.users.SetDeleted(ctx, id, true); err != nil {
		return err
	}
	s.logger.Info("user suspended", "user_id", id)
	return nil
}

func (s *AdminService) RestoreUser(ctx context.Context, id int64) error {
	if err := s.users.SetDeleted(ctx, id, false); err != nil {
		return err
	}
	s.logger.Info("user restored", "user_id", id)
	return nil
}

func (s *AdminService) ListRides(ctx context.Context) ([]domain.RideWithHost, error) {
	return s.rides.ListAll(ctx)
}

var _ AdminUseCase = (*AdminService)(nil)
