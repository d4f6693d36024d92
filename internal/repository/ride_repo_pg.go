package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rideshare-connect/rideshare/internal/domain"
)

type RideRepository interface {
	Create(ctx context.Context, ride *domain.Ride) error
	GetByID(ctx context.Context, id int64) (*domain.Ride, error)
	Search(ctx context.Context, filter domain.RideSearch) ([]domain.RideWithHost, error)
	ListByHost(ctx context.Context, hostID int64) ([]domain.Ride, error)
	ListAll(ctx context.Context) ([]domain.RideWithHost, error)
	Count(ctx context.Context) (int64, error)
}

type PGRideRepository struct {
	db *pgxpool.Pool
}

func NewRideRepository(db *pgxpool.Pool) RideRepository {
	return &PGRideRepository{db: db}
}

const rideColumns = `id, host_id, origin, destination, departure_date, departure_time, price_cents, seats, seats_available, phone, car_model, car_type, description, created_at, updated_at`

func scanRide(row pgx.Row) (*domain.Ride, error) {
	var r domain.Ride
	err := row.Scan(&r.ID, &r.HostID, &r.Origin, &r.Destination, &r.DepartureDate, &r.DepartureTime,
		&r.PriceCents, &r.Seats, &r.SeatsAvailable, &r.Phone, &r.CarModel, &r.CarType,
		&r.Description, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *PGRideRepository) Create(ctx context.Context, ride *domain.Ride) error {
	return r.db.QueryRow(ctx, `INSERT INTO rides (host_id, origin, destination, departure_date, departure_time, price_cents, seats, seats_available, phone, car_model, car_type, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7, $8, $9, $10, $11)
		RETURNING id, seats_available, created_at, updated_at`,
		ride.HostID, ride.Origin, ride.Destination, ride.DepartureDate, ride.DepartureTime,
		ride.PriceCents, ride.Seats, ride.Phone, ride.CarModel, ride.CarType, ride.Description).
		Scan(&ride.ID, &ride.SeatsAvailable, &ride.CreatedAt, &ride.UpdatedAt)
}

func (r *PGRideRepository) GetByID(ctx context.Context, id int64) (*domain.Ride, error) {
	ride, err := scanRide(r.db.QueryRow(ctx, `SELECT `+rideColumns+` FROM rides WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrRideNotFound
	}
	return ride, err
}

func (r *PGRideRepository) Search(ctx context.Context, filter domain.RideSearch) ([]domain.RideWithHost, error) {
	query := `SELECT r.` + joinedRideColumns("r") + `, u.name, u.email
		FROM rides r JOIN users u ON u.id = r.host_id
		WHERE r.seats_available > 0`
	args := []any{}
	if filter.Origin != "" {
		args = append(args, "%"+filter.Origin+"%")
		query += fmt.Sprintf(" AND r.origin ILIKE $%d", len(args))
	}
	if filter.Destination != "" {
		args = append(args, "%"+filter.Destination+"%")
		query += fmt.Sprintf(" AND r.destination ILIKE $%d", len(args))
	}
	if !filter.Date.IsZero() {
		args = append(args, filter.Date)
		query += fmt.Sprintf(" AND r.departure_date >= $%d AND r.departure_date < $%d + interval '1 day'", len(args), len(args))
	}
	query += ` ORDER BY r.departure_date, r.departure_time`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rides := make([]domain.RideWithHost, 0)
	for rows.Next() {
		var rw domain.RideWithHost
		if err := rows.Scan(&rw.ID, &rw.HostID, &rw.Origin, &rw.Destination, &rw.DepartureDate, &rw.DepartureTime,
			&rw.PriceCents, &rw.Seats, &rw.SeatsAvailable, &rw.Phone, &rw.CarModel, &rw.CarType,
			&rw.Description, &rw.CreatedAt, &rw.UpdatedAt, &rw.HostName, &rw.HostEmail); err != nil {
			return nil, err
		}
		rides = append(rides, rw)
	}
	return rides, rows.Err()
}

func (r *PGRideRepository) ListByHost(ctx context.Context, hostID int64) ([]domain.Ride, error) {
	rows, err := r.db.Query(ctx, `SELECT `+rideColumns+` FROM rides WHERE host_id=$1 ORDER BY departure_date DESC`, hostID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rides := make([]domain.Ride, 0)
	for rows.Next() {
		ride, err := scanRide(rows)
		if err != nil {
			return nil, err
		}
		rides = append(rides, *ride)
	}
	return rides, rows.Err()
}

func (r *PGRideRepository) ListAll(ctx context.Context) ([]domain.RideWithHost, error) {
	rows, err := r.db.Query(ctx, `SELECT r.`+joinedRideColumns("r")+`, u.name, u.email
		FROM rides r JOIN users u ON u.id = r.host_id
		ORDER BY r.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rides := make([]domain.RideWithHost, 0)
	for rows.Next() {
		var rw domain.RideWithHost
		if err := rows.Scan(&rw.ID, &rw.HostID, &rw.Origin, &rw.Destination, &rw.DepartureDate, &rw.DepartureTime,
			&rw.PriceCents, &rw.Seats, &rw.SeatsAvailable, &rw.Phone, &rw.CarModel, &rw.CarType,
			&rw.Description, &rw.CreatedAt, &rw.UpdatedAt, &rw.HostName, &rw.HostEmail); err != nil {
			return nil, err
		}
		rides = append(rides, rw)
	}
	return rides, rows.Err()
}

func (r *PGRideRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM rides`).Scan(&n)
	return n, err
}

// joinedRideColumns prefixes every ride column with the given table
// alias for use in join queries.
func joinedRideColumns(alias string) string {
	return `id, ` + alias + `.host_id, ` + alias + `.origin, ` + alias + `.destination, ` + alias + `.departure_date, ` +
		alias + `.departure_time, ` + alias + `.price_cents, ` + alias + `.seats, ` + alias + `.seats_available, ` +
		alias + `.phone, ` + alias + `.car_model, ` + alias + `.car_type, ` + alias + `.description, ` +
		alias + `.created_at, ` + alias + `.updated_at`
}

var _ RideRepository = (*PGRideRepository)(nil)
