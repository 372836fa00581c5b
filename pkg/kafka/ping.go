package kafka

import (
	"context"
	"errors"
	"fmt"

	kafkago "github.com/segmentio/kafka-go"
)

// Ping dials each broker in turn and returns nil as soon as one answers.
func Ping(ctx context.Context, cfg Config) error {
	if !cfg.Enabled() {
		return errors.New("kafka: no brokers configured")
	}

	mechanism, err := resolveSASL(cfg)
	if err != nil {
		return err
	}
	dialer := &kafkago.Dialer{
		ClientID:      cfg.ClientID,
		DualStack:     true,
		SASLMechanism: mechanism,
		TLS:           resolveTLS(cfg),
	}

	var errs []error
	for _, broker := range cfg.Brokers {
		conn, err := dialer.DialContext(ctx, "tcp", broker)
		if err != nil {
			errs = append(errs, fmt.Errorf("kafka: dial %s: %w", broker, err))
			continue
		}
		_ = conn.Close()
		return nil
	}
	return errors.Join(errs...)
}
