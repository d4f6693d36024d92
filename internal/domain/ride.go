package domain

import "time"

type CarType string

const (
	CarTypeFourSeater  CarType = "4-seater"
	CarTypeSevenSeater CarType = "7-seater"
)

type Ride struct {
	ID             int64     `json:"id"`
	HostID         int64     `json:"host_id"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	DepartureDate  time.Time `json:"departure_date"`
	DepartureTime  string    `json:"departure_time"`
	PriceCents     int64     `json:"price_cents"`
	Seats          int       `json:"seats"`
	SeatsAvailable int       `json:"seats_available"`
	Phone          string    `json:"phone"`
	CarModel       string    `json:"car_model"`
	CarType        CarType   `json:"car_type"`
	Description    string    `json:"description,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// RideWithHost is the search/listing projection that embeds the host's
// public identity alongside the ride.
type RideWithHost struct {
	Ride
	HostName  string `json:"host_name"`
	HostEmail string `json:"host_email"`
}

// RideSearch carries the optional search filters. A zero value matches
// every ride that still has seats available.
type RideSearch struct {
	Origin      string
	Destination string
	Date        time.Time
}

func (s RideSearch) Empty() bool {
	return s.Origin == "" && s.Destination == "" && s.Date.IsZero()
}
