package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rideshare-connect/rideshare/internal/domain"
)

// respondError maps domain errors to HTTP statuses. The message is the
// error text itself so clients can show it verbatim.
func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidOTP):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrRideNotFound),
		errors.Is(err, domain.ErrRequestNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientSeats),
		errors.Is(err, domain.ErrAlreadyRequested),
		errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNotHost),
		errors.Is(err, domain.ErrNotPassenger),
		errors.Is(err, domain.ErrOwnRide),
		errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrAccountSuspended):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
