package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/GopalChinta/Online-Fraud-Detection/pkg/events"
)

// LogPublisher implements port.EventPublisher by writing events to the log.
// It is used when no Kafka brokers are configured.
type LogPublisher struct {
	logger *slog.Logger
	topic  string
}

// NewLogPublisher creates a new log-backed event publisher.
func NewLogPublisher(topic string, logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{
		topic:  topic,
		logger: logger,
	}
}

// Publish logs each event at info level and its payload at debug level.
func (p *LogPublisher) Publish(ctx context.Context, domainEvents ...events.DomainEvent) error {
	for _, evt := range domainEvents {
		eventType := evt.EventType()

		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("failed to marshal event %s: %w", eventType, err)
		}

		p.logger.InfoContext(ctx, "publishing event",
			slog.String("event_type", eventType),
			slog.String("event_id", evt.EventID().String()),
			slog.String("topic", p.topic),
			slog.Int("payload_size", len(payload)),
		)
		p.logger.DebugContext(ctx, "event payload",
			slog.String("event_type", eventType),
			slog.String("payload", string(payload)),
		)
	}

	return nil
}
