package kafka

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPingRequiresBrokers(t *testing.T) {
	err := Ping(context.Background(), Config{})
	require.Error(t, err)
}

func TestPingUnreachableBroker(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err = Ping(ctx, Config{Brokers: []string{addr}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), addr)
}

func TestPingRejectsUnknownMechanism(t *testing.T) {
	err := Ping(context.Background(), Config{
		Brokers:       []string{"localhost:9092"},
		SASLEnabled:   true,
		SASLMechanism: "GSSAPI",
	})
	require.Error(t, err)
}
