package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rideshare-connect/rideshare/config"
	"github.com/rideshare-connect/rideshare/internal/auth"
	"github.com/rideshare-connect/rideshare/internal/bootstrap"
	"github.com/rideshare-connect/rideshare/internal/cache"
	"github.com/rideshare-connect/rideshare/internal/kafka"
	"github.com/rideshare-connect/rideshare/internal/logging"
	"github.com/rideshare-connect/rideshare/internal/repository"
	"github.com/rideshare-connect/rideshare/internal/service/admin"
	"github.com/rideshare-connect/rideshare/internal/service/booking"
	"github.com/rideshare-connect/rideshare/internal/service/rides"
	"github.com/rideshare-connect/rideshare/internal/service/users"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := logging.NewLogger(cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Rides.ListCacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	userRepo := repository.NewUserRepository(pool)
	rideRepo := repository.NewRideRepository(pool)
	requestRepo := repository.NewRequestRepository(pool)

	svcs := bootstrap.Services{
		Users: users.NewUserService(
			userRepo,
			rideRepo,
			requestRepo,
			redisCache,
			producer,
			cfg.Kafka.NotificationsTopic,
			jwtManager,
			time.Duration(cfg.Rides.OTPTTLMinutes)*time.Minute,
			logger,
		),
		Rides: rides.NewRideService(rideRepo, redisCache, logger),
		Booking: booking.NewBookingService(
			requestRepo,
			rideRepo,
			userRepo,
			producer,
			cfg.Kafka.RequestEventsTopic,
			logger,
			booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		),
		Admin: admin.NewAdminService(userRepo, rideRepo, logger),
	}

	if err := bootstrap.Run(ctx, cfg, jwtManager, svcs, logger); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
