package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/GopalChinta/Online-Fraud-Detection/pkg/events"
	"github.com/GopalChinta/Online-Fraud-Detection/pkg/kafka"
)

type eventsOptions struct {
	brokers    string
	topic      string
	group      string
	fromLatest bool
}

func newEventsCmd(g *globalOptions) *cobra.Command {
	opts := &eventsOptions{}

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Tail detection events from Kafka",
		Long: `Tail the detection event topic and print one line per event.

Runs until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runEvents(ctx, cmd.OutOrStdout(), g, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.brokers, "brokers", os.Getenv("KAFKA_BROKERS"), "comma-separated Kafka brokers")
	f.StringVar(&opts.topic, "topic", "fraud.detections", "detection event topic")
	f.StringVar(&opts.group, "group", "", "consumer group (no offsets committed when empty)")
	f.BoolVar(&opts.fromLatest, "from-latest", true, "skip events published before the tail started")
	return cmd
}

func runEvents(ctx context.Context, w io.Writer, g *globalOptions, opts *eventsOptions) error {
	cfg := kafka.Config{
		Brokers:         kafka.ParseBrokers(opts.brokers),
		ClientID:        "qfraudctl",
		ConsumerGroup:   opts.group,
		StartFromLatest: opts.fromLatest,
	}

	consumer, err := kafka.NewConsumer(cfg, opts.topic, printEnvelope(w), g.logger)
	if err != nil {
		return err
	}
	defer consumer.Close()

	return consumer.Start(ctx)
}

// printEnvelope returns a handler writing one summary line per event.
func printEnvelope(w io.Writer) kafka.Handler {
	return func(_ context.Context, msg kafka.Message) error {
		env, err := events.DecodeEnvelope(msg.Value)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s %-26s %s %s\n",
			env.OccurredAt.UTC().Format(time.RFC3339),
			env.EventType,
			env.AggregateID,
			env.Payload,
		)
		return err
	}
}
