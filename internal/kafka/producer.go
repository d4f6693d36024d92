package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// RequestEvent is published on every booking state change and consumed
// by the notification worker.
type RequestEvent struct {
	Type           string    `json:"type"`
	RequestID      int64     `json:"request_id"`
	RideID         int64     `json:"ride_id"`
	Seats          int       `json:"seats"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	PassengerName  string    `json:"passenger_name"`
	PassengerEmail string    `json:"passenger_email"`
	HostEmail      string    `json:"host_email"`
	Status         string    `json:"status"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// OTPEvent carries a password-reset code to the notification worker.
type OTPEvent struct {
	Type  string `json:"type"`
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

const (
	EventRequestCreated   = "request_created"
	EventRequestAccepted  = "request_accepted"
	EventRequestRejected  = "request_rejected"
	EventRequestWithdrawn = "request_withdrawn"
	EventPasswordResetOTP = "password_reset_otp"
)

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	})
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
