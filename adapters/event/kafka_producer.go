package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/khoahotran/devfolio/internal/config"
)

const (
	TopicPortfolioEvents = "portfolio.events"
	TopicMailRequests    = "mail.requests"
)

const (
	PortfolioEventProfileUpdated  = "profile.updated"
	PortfolioEventCategoryCreated = "category.created"
	PortfolioEventCategoryUpdated = "category.updated"
	PortfolioEventCategoryDeleted = "category.deleted"
	PortfolioEventProjectCreated  = "project.created"
	PortfolioEventProjectUpdated  = "project.updated"
	PortfolioEventProjectDeleted  = "project.deleted"
)

// PortfolioEventPayload announces a content change under one owner. The worker
// uses Username to drop the cached public view; PreviousUsername is set when a
// rename leaves a second cached view behind under the old name.
type PortfolioEventPayload struct {
	EventType        string    `json:"event_type"`
	OwnerID          uuid.UUID `json:"owner_id"`
	Username         string    `json:"username"`
	PreviousUsername string    `json:"previous_username,omitempty"`
}

type MailRequestPayload struct {
	RecipientEmail string `json:"recipient_email"`
	SenderName     string `json:"sender_name"`
	SenderEmail    string `json:"sender_email"`
	Message        string `json:"message"`
}

// Publisher is the outbound messaging port. Implemented by
// KafkaProducerClient; substituted with fakes in use case tests.
type Publisher interface {
	PublishPortfolioEvent(ctx context.Context, payload PortfolioEventPayload) error
	EnqueueMail(ctx context.Context, payload MailRequestPayload) error
}

type KafkaProducerClient struct {
	PortfolioEventsWriter *kafka.Writer
	MailRequestsWriter    *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	portfolioWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicPortfolioEvents,
		Balancer: &kafka.LeastBytes{},
	}

	mailWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicMailRequests,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{
		PortfolioEventsWriter: portfolioWriter,
		MailRequestsWriter:    mailWriter,
	}, nil
}

func (c *KafkaProducerClient) PublishPortfolioEvent(ctx context.Context, payload PortfolioEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal portfolio event: %w", err)
	}
	return c.PortfolioEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.OwnerID.String()),
		Value: value,
	})
}

func (c *KafkaProducerClient) EnqueueMail(ctx context.Context, payload MailRequestPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal mail request: %w", err)
	}
	return c.MailRequestsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.RecipientEmail),
		Value: value,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.PortfolioEventsWriter != nil {
		c.PortfolioEventsWriter.Close()
	}
	if c.MailRequestsWriter != nil {
		c.MailRequestsWriter.Close()
	}
}
