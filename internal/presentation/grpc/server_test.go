package grpc_test

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/GopalChinta/Online-Fraud-Detection/internal/application/usecase"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/model"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/service"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/valueobject"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/infrastructure/annealing"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/infrastructure/fixtures"
	fraudgrpc "github.com/GopalChinta/Online-Fraud-Detection/internal/presentation/grpc"
	"github.com/GopalChinta/Online-Fraud-Detection/pkg/observability"
	"github.com/GopalChinta/Online-Fraud-Detection/pkg/tlsutil"
)

type failingScorer struct{}

func (failingScorer) Score(context.Context, model.Transaction, valueobject.ScoringMode) (*model.DetectionResult, error) {
	return nil, errors.New("random source exhausted")
}

func startServer(t *testing.T, scorer service.Scorer) *grpclib.ClientConn {
	t.Helper()
	return startServerWith(t, scorer, fraudgrpc.ServerConfig{}, insecure.NewCredentials())
}

func startServerWith(t *testing.T, scorer service.Scorer, cfg fraudgrpc.ServerConfig, creds credentials.TransportCredentials) *grpclib.ClientConn {
	t.Helper()
	logger := observability.NewDiscardLogger()

	if scorer == nil {
		scorer = service.NewDetectionScorer(
			service.NewLockedSource(service.NewSeededSource(9)),
			annealing.NewStubAnnealer(logger),
			logger,
		)
	}
	loader, err := fixtures.NewLoader("")
	require.NoError(t, err)

	handler := fraudgrpc.NewFraudDetectionHandler(
		usecase.NewDetectFraud(scorer, nil, nil, valueobject.ModeQuick, logger),
		usecase.NewGetBenchmarks(loader),
		logger,
	)
	srv, err := fraudgrpc.NewServer(handler, cfg, logger)
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpclib.NewClient("passthrough:///bufnet",
		grpclib.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpclib.WithTransportCredentials(creds),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func sampleTransaction() *fraudgrpc.TransactionMsg {
	return &fraudgrpc.TransactionMsg{
		Amount:     "7200.00",
		MerchantID: "MERCH-8765",
		CustomerID: "CUST-1234",
		Location:   "New York, USA",
		DeviceID:   "DEV-5678",
		IPAddress:  "192.168.1.1",
		Timestamp:  "2023-03-15T14:30:00Z",
	}
}

func TestDetect(t *testing.T) {
	client := fraudgrpc.NewClient(startServer(t, nil))

	for _, mode := range []string{"", "quick", "two-stage"} {
		t.Run("mode="+mode, func(t *testing.T) {
			resp, err := client.Detect(testContext(t), &fraudgrpc.DetectRequest{Transaction: sampleTransaction(), Mode: mode})
			require.NoError(t, err)
			require.NotNil(t, resp.Result)

			lo, hi := valueobject.TierHigh.ConfidenceRange(resp.Result.IsFraudulent)
			assert.GreaterOrEqual(t, resp.Result.Confidence, lo)
			assert.LessOrEqual(t, resp.Result.Confidence, hi)
			assert.GreaterOrEqual(t, resp.Result.ProcessingTimeMs, 100.0)
			assert.LessOrEqual(t, resp.Result.ProcessingTimeMs, 250.0)
		})
	}
}

func TestDetect_InvalidArgument(t *testing.T) {
	client := fraudgrpc.NewClient(startServer(t, nil))

	tests := []struct {
		name string
		req  *fraudgrpc.DetectRequest
	}{
		{"no transaction", &fraudgrpc.DetectRequest{}},
		{"bad amount", &fraudgrpc.DetectRequest{Transaction: &fraudgrpc.TransactionMsg{Amount: "abc"}}},
		{"bad mode", &fraudgrpc.DetectRequest{Transaction: sampleTransaction(), Mode: "deep"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Detect(testContext(t), tt.req)
			require.Error(t, err)
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
		})
	}
}

func TestDetect_Internal(t *testing.T) {
	client := fraudgrpc.NewClient(startServer(t, failingScorer{}))

	_, err := client.Detect(testContext(t), &fraudgrpc.DetectRequest{Transaction: sampleTransaction()})
	require.Error(t, err)

	st, _ := status.FromError(err)
	assert.Equal(t, codes.Internal, st.Code())
	assert.Equal(t, "internal error", st.Message())
}

func TestGetBenchmarks(t *testing.T) {
	client := fraudgrpc.NewClient(startServer(t, nil))

	resp, err := client.GetBenchmarks(testContext(t))
	require.NoError(t, err)
	require.Len(t, resp.Metrics, 5)
	assert.Equal(t, "false_positive_rate", resp.Metrics[4].Key)
	assert.True(t, resp.Metrics[4].LowerIsBetter)
}

func TestHealth(t *testing.T) {
	conn := startServer(t, nil)

	resp, err := healthpb.NewHealthClient(conn).Check(testContext(t), &healthpb.HealthCheckRequest{
		Service: fraudgrpc.FraudDetectionServiceName,
	})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)
}

func TestUnimplementedServer(t *testing.T) {
	var srv fraudgrpc.UnimplementedFraudDetectionServiceServer

	_, err := srv.Detect(context.Background(), &fraudgrpc.DetectRequest{})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
	_, err = srv.GetBenchmarks(context.Background(), &fraudgrpc.GetBenchmarksRequest{})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestNewServer_MissingTLSFiles(t *testing.T) {
	_, err := fraudgrpc.NewServer(nil, fraudgrpc.ServerConfig{
		TLSCertFile: "/nonexistent/server.crt",
		TLSKeyFile:  "/nonexistent/server.key",
	}, observability.NewDiscardLogger())
	require.Error(t, err)
}

func TestDetect_OverTLS(t *testing.T) {
	paths, err := tlsutil.GenerateSelfSignedCert([]string{"bufnet"}, t.TempDir())
	require.NoError(t, err)

	creds, err := tlsutil.ClientTLSConfig(paths.CA, false)
	require.NoError(t, err)

	conn := startServerWith(t, nil, fraudgrpc.ServerConfig{
		TLSCertFile: paths.Server,
		TLSKeyFile:  paths.ServerKey,
	}, creds)

	resp, err := fraudgrpc.NewClient(conn).Detect(testContext(t), &fraudgrpc.DetectRequest{Transaction: sampleTransaction()})
	require.NoError(t, err)
	assert.NotNil(t, resp.Result)
}
