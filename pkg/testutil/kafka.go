//go:build integration

package testutil

import (
	"context"
	"testing"
	"time"

	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"

	"github.com/GopalChinta/Online-Fraud-Detection/pkg/kafka"
)

const kafkaImage = "confluentinc/confluent-local:7.6.1"

// KafkaBroker is a single-node Kafka running in a container for the lifetime
// of one test.
type KafkaBroker struct {
	container *tckafka.KafkaContainer
	Brokers   []string
}

// StartKafka runs a Kafka container and registers its termination with
// t.Cleanup. The test fails immediately when Docker is unavailable.
func StartKafka(ctx context.Context, t *testing.T) *KafkaBroker {
	t.Helper()

	c, err := tckafka.Run(ctx, kafkaImage, tckafka.WithClusterID("fraud-detection-test"))
	if err != nil {
		t.Fatalf("start kafka container: %v", err)
	}
	t.Cleanup(func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := c.Terminate(stopCtx); err != nil {
			t.Logf("terminate kafka container: %v", err)
		}
	})

	brokers, err := c.Brokers(ctx)
	if err != nil {
		t.Fatalf("kafka brokers: %v", err)
	}
	return &KafkaBroker{container: c, Brokers: brokers}
}

// Config returns a client configuration pointed at the container.
func (b *KafkaBroker) Config(clientID string) kafka.Config {
	return kafka.Config{Brokers: b.Brokers, ClientID: clientID}
}
