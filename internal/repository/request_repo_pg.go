package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rideshare-connect/rideshare/internal/domain"
)

type RequestRepository interface {
	Create(ctx context.Context, req *domain.Request) error
	GetByID(ctx context.Context, id int64) (*domain.Request, error)
	ExistsForPassenger(ctx context.Context, passengerID, rideID int64) (bool, error)
	Accept(ctx context.Context, id int64) (*domain.Request, error)
	Reject(ctx context.Context, id int64) (*domain.Request, error)
	Withdraw(ctx context.Context, id int64) error
	ListReceived(ctx context.Context, hostID int64) ([]domain.ReceivedRequest, error)
	ListSent(ctx context.Context, passengerID int64) ([]domain.SentRequest, error)
}

type PGRequestRepository struct {
	db *pgxpool.Pool
}

func NewRequestRepository(db *pgxpool.Pool) RequestRepository {
	return &PGRequestRepository{db: db}
}

const requestColumns = `id, passenger_id, ride_id, seats, phone, status, created_at, updated_at`

func scanRequest(row pgx.Row) (*domain.Request, error) {
	var q domain.Request
	err := row.Scan(&q.ID, &q.PassengerID, &q.RideID, &q.Seats, &q.Phone, &q.Status, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *PGRequestRepository) Create(ctx context.Context, req *domain.Request) error {
	req.Status = domain.RequestStatusPending
	return r.db.QueryRow(ctx, `INSERT INTO requests (passenger_id, ride_id, seats, phone, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		req.PassengerID, req.RideID, req.Seats, req.Phone, req.Status).
		Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
}

func (r *PGRequestRepository) GetByID(ctx context.Context, id int64) (*domain.Request, error) {
	req, err := scanRequest(r.db.QueryRow(ctx, `SELECT `+requestColumns+` FROM requests WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrRequestNotFound
	}
	return req, err
}

func (r *PGRequestRepository) ExistsForPassenger(ctx context.Context, passengerID, rideID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM requests WHERE passenger_id=$1 AND ride_id=$2)`, passengerID, rideID).Scan(&exists)
	return exists, err
}

// Accept transitions a request to accepted and reserves its seats. The
// status write and the capacity decrement run in one transaction, and
// the request row is locked first so a repeated accept can never
// decrement twice. The capacity update is conditional on enough seats
// remaining, which closes the oversell window between check and write.
func (r *PGRequestRepository) Accept(ctx context.Context, id int64) (*domain.Request, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	req, err := scanRequest(tx.QueryRow(ctx, `SELECT `+requestColumns+` FROM requests WHERE id=$1 FOR UPDATE`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}

	if req.Status == domain.RequestStatusAccepted {
		return req, tx.Commit(ctx)
	}

	cmd, err := tx.Exec(ctx, `UPDATE rides SET seats_available = seats_available - $2, updated_at = now()
		WHERE id=$1 AND seats_available >= $2`, req.RideID, req.Seats)
	if err != nil {
		return nil, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, domain.ErrInsufficientSeats
	}

	if err := tx.QueryRow(ctx, `UPDATE requests SET status=$2, updated_at=now() WHERE id=$1 RETURNING updated_at`,
		id, domain.RequestStatusAccepted).Scan(&req.UpdatedAt); err != nil {
		return nil, err
	}
	req.Status = domain.RequestStatusAccepted

	return req, tx.Commit(ctx)
}

// Reject transitions a request to rejected. Seats are released only
// when the request was accepted, inside the same transaction as the
// status write.
func (r *PGRequestRepository) Reject(ctx context.Context, id int64) (*domain.Request, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	req, err := scanRequest(tx.QueryRow(ctx, `SELECT `+requestColumns+` FROM requests WHERE id=$1 FOR UPDATE`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}

	if req.Status == domain.RequestStatusRejected {
		return req, tx.Commit(ctx)
	}

	if req.Status == domain.RequestStatusAccepted {
		if _, err := tx.Exec(ctx, `UPDATE rides SET seats_available = seats_available + $2, updated_at = now()
			WHERE id=$1`, req.RideID, req.Seats); err != nil {
			return nil, err
		}
	}

	if err := tx.QueryRow(ctx, `UPDATE requests SET status=$2, updated_at=now() WHERE id=$1 RETURNING updated_at`,
		id, domain.RequestStatusRejected).Scan(&req.UpdatedAt); err != nil {
		return nil, err
	}
	req.Status = domain.RequestStatusRejected

	return req, tx.Commit(ctx)
}

// Withdraw deletes a request. An accepted request gives its seats back
// to the ride in the same transaction.
func (r *PGRequestRepository) Withdraw(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var (
		rideID int64
		seats  int
		status domain.RequestStatus
	)
	err = tx.QueryRow(ctx, `DELETE FROM requests WHERE id=$1 RETURNING ride_id, seats, status`, id).
		Scan(&rideID, &seats, &status)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrRequestNotFound
	}
	if err != nil {
		return err
	}

	if status == domain.RequestStatusAccepted {
		if _, err := tx.Exec(ctx, `UPDATE rides SET seats_available = seats_available + $2, updated_at = now()
			WHERE id=$1`, rideID, seats); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PGRequestRepository) ListReceived(ctx context.Context, hostID int64) ([]domain.ReceivedRequest, error) {
	rows, err := r.db.Query(ctx, `SELECT q.id, q.passenger_id, q.ride_id, q.seats, q.phone, q.status, q.created_at, q.updated_at,
			p.name, p.email,
			r.`+joinedRideColumns("r")+`
		FROM requests q
		JOIN rides r ON r.id = q.ride_id
		JOIN users p ON p.id = q.passenger_id
		WHERE r.host_id = $1
		ORDER BY q.created_at DESC`, hostID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	received := make([]domain.ReceivedRequest, 0)
	for rows.Next() {
		var rr domain.ReceivedRequest
		if err := rows.Scan(&rr.ID, &rr.PassengerID, &rr.RideID, &rr.Seats, &rr.Phone, &rr.Status, &rr.CreatedAt, &rr.UpdatedAt,
			&rr.PassengerName, &rr.PassengerEmail,
			&rr.Ride.ID, &rr.Ride.HostID, &rr.Ride.Origin, &rr.Ride.Destination, &rr.Ride.DepartureDate, &rr.Ride.DepartureTime,
			&rr.Ride.PriceCents, &rr.Ride.Seats, &rr.Ride.SeatsAvailable, &rr.Ride.Phone, &rr.Ride.CarModel, &rr.Ride.CarType,
			&rr.Ride.Description, &rr.Ride.CreatedAt, &rr.Ride.UpdatedAt); err != nil {
			return nil, err
		}
		received = append(received, rr)
	}
	return received, rows.Err()
}

func (r *PGRequestRepository) ListSent(ctx context.Context, passengerID int64) ([]domain.SentRequest, error) {
	rows, err := r.db.Query(ctx, `SELECT q.id, q.passenger_id, q.ride_id, q.seats, q.phone, q.status, q.created_at, q.updated_at,
			r.`+joinedRideColumns("r")+`,
			u.name
		FROM requests q
		JOIN rides r ON r.id = q.ride_id
		JOIN users u ON u.id = r.host_id
		WHERE q.passenger_id = $1
		ORDER BY q.created_at DESC`, passengerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sent := make([]domain.SentRequest, 0)
	for rows.Next() {
		var sr domain.SentRequest
		if err := rows.Scan(&sr.ID, &sr.PassengerID, &sr.RideID, &sr.Seats, &sr.Phone, &sr.Status, &sr.CreatedAt, &sr.UpdatedAt,
			&sr.Ride.ID, &sr.Ride.HostID, &sr.Ride.Origin, &sr.Ride.Destination, &sr.Ride.DepartureDate, &sr.Ride.DepartureTime,
			&sr.Ride.PriceCents, &sr.Ride.Seats, &sr.Ride.SeatsAvailable, &sr.Ride.Phone, &sr.Ride.CarModel, &sr.Ride.CarType,
			&sr.Ride.Description, &sr.Ride.CreatedAt, &sr.Ride.UpdatedAt,
			&sr.HostName); err != nil {
			return nil, err
		}
		sent = append(sent, sr)
	}
	return sent, rows.Err()
}

var _ RequestRepository = (*PGRequestRepository)(nil)
