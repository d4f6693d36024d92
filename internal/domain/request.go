package domain

import "time"

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusRejected RequestStatus = "rejected"
)

// Request is a passenger's bid for seats on a ride. Capacity is only
// reserved when the host accepts; pending requests never touch the
// ride's seat counter.
type Request struct {
	ID          int64         `json:"id"`
	PassengerID int64         `json:"passenger_id"`
	RideID      int64         `json:"ride_id"`
	Seats       int           `json:"seats"`
	Phone       string        `json:"phone"`
	Status      RequestStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// ReceivedRequest is what a host sees: the request plus who asked and
// which of the host's rides it targets.
type ReceivedRequest struct {
	Request
	PassengerName  string `json:"passenger_name"`
	PassengerEmail string `json:"passenger_email"`
	Ride           Ride   `json:"ride"`
}

// SentRequest is what a passenger sees: the request plus the ride and
// its host's public name.
type SentRequest struct {
	Request
	Ride     Ride   `json:"ride"`
	HostName string `json:"host_name"`
}
