package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/khoahotran/devfolio/adapters/event"
	"github.com/khoahotran/devfolio/adapters/mail"
	"github.com/khoahotran/devfolio/adapters/persistence"
	"github.com/khoahotran/devfolio/internal/application/service"
	"github.com/khoahotran/devfolio/internal/config"
	"github.com/khoahotran/devfolio/pkg/logger"
)

func main() {
	fmt.Println("Starting DevFolio Worker...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Redis: %v", err)
	}
	defer redisClient.Close()
	viewCache := persistence.NewRedisViewCache(redisClient, cfg.Redis.ViewTTL)

	mailer, err := mail.NewSMTPSender(cfg)
	if err != nil {
		log.Fatalf("FATAL: cannot init SMTP sender: %v", err)
	}

	ctx := context.Background()

	go consumePortfolioEvents(ctx, cfg, viewCache)
	consumeMailRequests(ctx, cfg, mailer)
}

// consumePortfolioEvents drops the cached public view for any owner whose
// content changed. The cache TTL covers the window if this consumer lags.
func consumePortfolioEvents(ctx context.Context, cfg config.Config, viewCache service.ViewCache) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicPortfolioEvents,
		GroupID:  "view-cache-invalidator",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer reader.Close()

	log.Printf("Worker listening on topic '%s'...", event.TopicPortfolioEvents)

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			log.Printf("ERROR: Failed to read message from Kafka: %v", err)
			continue
		}

		var payload event.PortfolioEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			log.Printf("ERROR: Failed to unmarshal portfolio event: %v. Skipping.", err)
			continue
		}
		// A rename carries both names; the old one still has a cached view.
		for _, username := range []string{payload.Username, payload.PreviousUsername} {
			if username == "" {
				continue
			}
			if err := viewCache.InvalidateView(ctx, username); err != nil {
				log.Printf("ERROR: Failed to invalidate view for '%s': %v", username, err)
			}
		}
	}
}

// consumeMailRequests delivers contact messages. Fire and forget: a failed
// send is logged and the message is not retried.
func consumeMailRequests(ctx context.Context, cfg config.Config, mailer service.Mailer) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicMailRequests,
		GroupID:  "mail-sender",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer reader.Close()

	log.Printf("Worker listening on topic '%s'...", event.TopicMailRequests)

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			log.Printf("ERROR: Failed to read message from Kafka: %v", err)
			continue
		}

		var payload event.MailRequestPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			log.Printf("ERROR: Failed to unmarshal mail request: %v. Skipping.", err)
			continue
		}

		subject := fmt.Sprintf("Portfolio contact from %s", payload.SenderName)
		body := fmt.Sprintf("From: %s <%s>\n\n%s", payload.SenderName, payload.SenderEmail, payload.Message)

		if err := mailer.Send(ctx, payload.RecipientEmail, subject, body); err != nil {
			log.Printf("ERROR: Failed to send contact mail to '%s': %v", payload.RecipientEmail, err)
		}
	}
}
