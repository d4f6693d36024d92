package cache

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rideshare-connect/rideshare/config"
	"github.com/rideshare-connect/rideshare/internal/domain"
)

type RedisCache struct {
	client   *redis.Client
	ridesTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, ridesTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:   redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		ridesTTL: ridesTTL,
	}
}

func (c *RedisCache) GetOpenRides(ctx context.Context) ([]domain.RideWithHost, error) {
	data, err := c.client.Get(ctx, openRidesKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var rides []domain.RideWithHost
	if err := json.Unmarshal(data, &rides); err != nil {
		return nil, err
	}
	return rides, nil
}

func (c *RedisCache) SetOpenRides(ctx context.Context, rides []domain.RideWithHost) error {
	payload, err := json.Marshal(rides)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, openRidesKey(), payload, c.ridesTTL).Err()
}

func (c *RedisCache) InvalidateOpenRides(ctx context.Context) error {
	return c.client.Del(ctx, openRidesKey()).Err()
}

// StoreOTP keeps the password-reset code in redis with a TTL so it
// survives restarts and is shared across instances.
func (c *RedisCache) StoreOTP(ctx context.Context, email, otp string, ttl time.Duration) error {
	return c.client.Set(ctx, otpKey(email), otp, ttl).Err()
}

func (c *RedisCache) CheckOTP(ctx context.Context, email, otp string) (bool, error) {
	stored, err := c.client.Get(ctx, otpKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(otp)) == 1, nil
}

func (c *RedisCache) DeleteOTP(ctx context.Context, email string) error {
	return c.client.Del(ctx, otpKey(email)).Err()
}

func openRidesKey() string {
	return "cache:rides:open"
}

func otpKey(email string) string {
	return fmt.Sprintf("otp:reset:%s", email)
}
