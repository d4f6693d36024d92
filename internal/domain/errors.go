package domain

import "errors"

var (
	ErrRideNotFound    = errors.New("ride not found")
	ErrRequestNotFound = errors.New("request not found")
	ErrUserNotFound    = errors.New("user not found")
)

var (
	ErrInsufficientSeats = errors.New("not enough seats available")
	ErrAlreadyRequested  = errors.New("you have already requested this ride")
	ErrOwnRide           = errors.New("you cannot request your own ride")
	ErrNotHost           = errors.New("only the ride host can update this request")
	ErrNotPassenger      = errors.New("only the requesting passenger can withdraw this request")
)

var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidOTP         = errors.New("invalid or expired OTP")
	ErrAccountSuspended   = errors.New("account is suspended")
)

var (
	ErrValidation = errors.New("validation error")
	ErrForbidden  = errors.New("access denied")
)
