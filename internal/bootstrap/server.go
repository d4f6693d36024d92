package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rideshare-connect/rideshare/api"
	"github.com/rideshare-connect/rideshare/config"
	"github.com/rideshare-connect/rideshare/internal/auth"
	"github.com/rideshare-connect/rideshare/internal/observability"
	"github.com/rideshare-connect/rideshare/internal/service/admin"
	"github.com/rideshare-connect/rideshare/internal/service/booking"
	"github.com/rideshare-connect/rideshare/internal/service/rides"
	"github.com/rideshare-connect/rideshare/internal/service/users"
)

type Services struct {
	Users   users.UserUseCase
	Rides   rides.RideUseCase
	Booking booking.BookingUseCase
	Admin   admin.AdminUseCase
}

// Run starts the HTTP server and blocks until the context is canceled
// or the server fails.
func Run(ctx context.Context, cfg *config.Config, jwt *auth.JWTManager, svcs Services, logger *slog.Logger) error {
	engine := newEngine(jwt, svcs, logger)

	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: engine,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	logger.Info("http server started", "address", cfg.HTTP.Address)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newEngine(jwt *auth.JWTManager, svcs Services, logger *slog.Logger) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(logger), metricsMiddleware())

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	root := engine.Group("/api")
	authed := root.Group("")
	authed.Use(jwt.Middleware())

	api.NewAuthHandler(svcs.Users).Register(root.Group("/auth"))
	api.NewRideHandler(svcs.Rides).Register(root.Group("/rides"), authed.Group("/rides"))
	api.NewRequestHandler(svcs.Booking).Register(authed.Group("/requests"))
	api.NewUserHandler(svcs.Users).Register(root.Group(""), authed.Group(""))

	adminGroup := authed.Group("/admin")
	adminGroup.Use(auth.RequireAdmin())
	api.NewAdminHandler(svcs.Admin).Register(adminGroup)

	return engine
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("http_request",
			"method", c.Request.Method,
			"route", routeTemplate(c),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.ClientIP(),
		)
	}
}

func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := routeTemplate(c)
		status := strconv.Itoa(c.Writer.Status())
		observability.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, status).Inc()
		observability.HTTPRequestDuration.WithLabelValues(c.Request.Method, route, status).Observe(time.Since(start).Seconds())
	}
}

// routeTemplate keeps metric label cardinality bounded by using the
// registered path pattern rather than the raw URL.
func routeTemplate(c *gin.Context) string {
	if path := c.FullPath(); path != "" {
		return path
	}
	return "unmatched"
}
