package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
)

// Client calls FraudDetectionService over an established connection.
type Client struct {
	conn grpc.ClientConnInterface
}

// NewClient wraps conn.
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

// Dial opens a client connection to target with the given transport credentials.
func Dial(target string, creds credentials.TransportCredentials) (*grpc.ClientConn, error) {
	return grpc.NewClient(target, grpc.WithTransportCredentials(creds))
}

// Detect scores a transaction remotely.
func (c *Client) Detect(ctx context.Context, req *DetectRequest, opts ...grpc.CallOption) (*DetectResponse, error) {
	out := new(DetectResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codecName)}, opts...)
	if err := c.conn.Invoke(ctx, FraudDetectionService_Detect_FullMethodName, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// GetBenchmarks fetches the comparison fixture remotely.
func (c *Client) GetBenchmarks(ctx context.Context, opts ...grpc.CallOption) (*GetBenchmarksResponse, error) {
	out := new(GetBenchmarksResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codecName)}, opts...)
	if err := c.conn.Invoke(ctx, FraudDetectionService_GetBenchmarks_FullMethodName, &GetBenchmarksRequest{}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
