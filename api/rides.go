package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rideshare-connect/rideshare/internal/auth"
	"github.com/rideshare-connect/rideshare/internal/domain"
	"github.com/rideshare-connect/rideshare/internal/service/rides"
)

type RideHandler struct {
	service rides.RideUseCase
}

func NewRideHandler(service rides.RideUseCase) *RideHandler {
	return &RideHandler{service: service}
}

// Register wires the ride routes. Search is public; creation and
// my-rides sit behind the auth middleware.
func (h *RideHandler) Register(public, authed *gin.RouterGroup) {
	public.GET("", h.search)
	authed.POST("", h.create)
	authed.GET("/my-rides", h.myRides)
}

func (h *RideHandler) create(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}

	var req rides.CreateRideInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ride, err := h.service.CreateRide(c.Request.Context(), claims.UserID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ride)
}

func (h *RideHandler) search(c *gin.Context) {
	filter := domain.RideSearch{
		Origin:      c.Query("from"),
		Destination: c.Query("to"),
	}
	if raw := c.Query("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		filter.Date = date
	}

	results, err := h.service.Search(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

func (h *RideHandler) myRides(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}

	results, err := h.service.MyRides(c.Request.Context(), claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
