package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/rideshare-connect/rideshare/config"
	"github.com/rideshare-connect/rideshare/internal/email"
	"github.com/rideshare-connect/rideshare/internal/kafka"
	"github.com/rideshare-connect/rideshare/internal/logging"
	kafkaGo "github.com/segmentio/kafka-go"
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

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	sender := email.NewSender(cfg.SMTP)

	logger.Info("notification worker started", "topic", cfg.Kafka.NotificationsTopic)

	err = consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		var envelope struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(msg.Value, &envelope); err != nil {
			logger.Warn("skipping undecodable event", "error", err)
			return nil
		}

		if err := dispatch(ctx, sender, envelope.Type, msg.Value); err != nil {
			logger.Error("notification delivery failed", "type", envelope.Type, "error", err)
		}
		return nil
	})
	if err != nil && ctx.Err() == nil {
		log.Fatalf("consumer error: %v", err)
	}
}

func dispatch(ctx context.Context, sender *email.Sender, eventType string, payload []byte) error {
	if eventType == kafka.EventPasswordResetOTP {
		var event kafka.OTPEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			return fmt.Errorf("decode otp event: %w", err)
		}
		return sender.Send(ctx, event.Email, "Password Reset OTP - RideShare Connect", email.OTPBody(event.OTP))
	}

	var event kafka.RequestEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("decode request event: %w", err)
	}

	to, subject, body := composeRequestMail(event)
	if to == "" {
		return nil
	}
	return sender.Send(ctx, to, subject, body)
}

// composeRequestMail picks the recipient by event type: the host hears
// about new and withdrawn requests, the passenger about decisions.
func composeRequestMail(event kafka.RequestEvent) (to, subject, body string) {
	route := fmt.Sprintf("%s to %s", event.Origin, event.Destination)

	switch event.Type {
	case kafka.EventRequestCreated:
		to = event.HostEmail
		subject = "New seat request - RideShare Connect"
		body = fmt.Sprintf("%s requested %d seat(s) on your ride from %s.", event.PassengerName, event.Seats, route)
	case kafka.EventRequestAccepted:
		to = event.PassengerEmail
		subject = "Your seat request was accepted"
		body = fmt.Sprintf("Your request for %d seat(s) on the ride from %s has been accepted. Safe travels!", event.Seats, route)
	case kafka.EventRequestRejected:
		to = event.PassengerEmail
		subject = "Your seat request was rejected"
		body = fmt.Sprintf("Unfortunately your request for the ride from %s has been rejected.", route)
	case kafka.EventRequestWithdrawn:
		to = event.HostEmail
		subject = "A seat request was withdrawn"
		body = fmt.Sprintf("%s withdrew their request for %d seat(s) on your ride from %s.", event.PassengerName, event.Seats, route)
	}
	return to, subject, body
}
