package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rideshare-connect/rideshare/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int64, name, phone, address, bio *string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	AddRating(ctx context.Context, id int64, rating int) (float64, error)
	List(ctx context.Context, deleted bool) ([]domain.User, error)
	Recent(ctx context.Context, limit int) ([]domain.User, error)
	SetDeleted(ctx context.Context, id int64, deleted bool) error
	SetRole(ctx context.Context, id int64, role domain.Role) error
	CountActive(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context) (map[domain.Role]int64, error)
}

type PGUserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &PGUserRepository{db: db}
}

const userColumns = `id, name, email, password_hash, phone, address, bio, rating, total_ratings, role, is_deleted, created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.Address, &u.Bio,
		&u.Rating, &u.TotalRatings, &u.Role, &u.IsDeleted, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PGUserRepository) Create(ctx context.Context, user *domain.User) error {
	if user.Role == "" {
		user.Role = domain.RoleUser
	}
	err := r.db.QueryRow(ctx, `INSERT INTO users (name, email, password_hash, phone, address, bio, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, rating, total_ratings, created_at`,
		user.Name, user.Email, user.PasswordHash, user.Phone, user.Address, user.Bio, user.Role).
		Scan(&user.ID, &user.Rating, &user.TotalRatings, &user.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domain.ErrEmailTaken
	}
	return err
}

func (r *PGUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	return user, err
}

func (r *PGUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email=$1`, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	return user, err
}

func (r *PGUserRepository) UpdateProfile(ctx context.Context, id int64, name, phone, address, bio *string) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `UPDATE users SET
			name = COALESCE($2, name),
			phone = COALESCE($3, phone),
			address = COALESCE($4, address),
			bio = COALESCE($5, bio)
		WHERE id=$1
		RETURNING `+userColumns, id, name, phone, address, bio))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	return user, err
}

func (r *PGUserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	cmd, err := r.db.Exec(ctx, `UPDATE users SET password_hash=$2 WHERE id=$1`, id, passwordHash)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// AddRating folds a new rating into the running average in a single
// statement, rounded to one decimal like the original aggregate.
func (r *PGUserRepository) AddRating(ctx context.Context, id int64, rating int) (float64, error) {
	var updated float64
	err := r.db.QueryRow(ctx, `UPDATE users SET
			rating = round(((rating * total_ratings + $2) / (total_ratings + 1))::numeric, 1),
			total_ratings = total_ratings + 1
		WHERE id=$1
		RETURNING rating`, id, rating).Scan(&updated)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrUserNotFound
	}
	return updated, err
}

func (r *PGUserRepository) List(ctx context.Context, deleted bool) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users WHERE is_deleted=$1 ORDER BY created_at DESC`, deleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

func (r *PGUserRepository) Recent(ctx context.Context, limit int) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users WHERE is_deleted=false ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

func collectUsers(rows pgx.Rows) ([]domain.User, error) {
	users := make([]domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func (r *PGUserRepository) SetDeleted(ctx context.Context, id int64, deleted bool) error {
	cmd, err := r.db.Exec(ctx, `UPDATE users SET is_deleted=$2 WHERE id=$1`, id, deleted)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *PGUserRepository) SetRole(ctx context.Context, id int64, role domain.Role) error {
	cmd, err := r.db.Exec(ctx, `UPDATE users SET role=$2 WHERE id=$1`, id, role)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *PGUserRepository) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM users WHERE is_deleted=false`).Scan(&n)
	return n, err
}

func (r *PGUserRepository) CountByRole(ctx context.Context) (map[domain.Role]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT role, count(*) FROM users WHERE is_deleted=false GROUP BY role`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.Role]int64)
	for rows.Next() {
		var role domain.Role
		var n int64
		if err := rows.Scan(&role, &n); err != nil {
			return nil, err
		}
		counts[role] = n
	}
	return counts, rows.Err()
}

var _ UserRepository = (*PGUserRepository)(nil)
