package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/GopalChinta/Online-Fraud-Detection/internal/application/dto"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/application/usecase"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/service"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/valueobject"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/infrastructure/annealing"
	grpcpresentation "github.com/GopalChinta/Online-Fraud-Detection/internal/presentation/grpc"
	"github.com/GopalChinta/Online-Fraud-Detection/pkg/tlsutil"
)

// remoteOptions selects a running server instead of in-process scoring.
type remoteOptions struct {
	address string
	caFile  string
	timeout time.Duration
}

func (o *remoteOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.address, "remote", "", "gRPC address of a running server (in-process when empty)")
	cmd.Flags().StringVar(&o.caFile, "ca", "", "CA certificate for a TLS server")
	cmd.Flags().DurationVar(&o.timeout, "timeout", 10*time.Second, "remote call timeout")
}

func (o *remoteOptions) client() (*grpcpresentation.Client, func() error, error) {
	var creds credentials.TransportCredentials = insecure.NewCredentials()
	if o.caFile != "" {
		c, err := tlsutil.ClientTLSConfig(o.caFile, false)
		if err != nil {
			return nil, nil, err
		}
		creds = c
	}
	conn, err := grpcpresentation.Dial(o.address, creds)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to %s: %w", o.address, err)
	}
	return grpcpresentation.NewClient(conn), conn.Close, nil
}

type scoreOptions struct {
	tx     dto.DetectRequest
	amount string
	mode   string
	seed   uint64
	remote remoteOptions
}

func newScoreCmd(g *globalOptions) *cobra.Command {
	opts := &scoreOptions{}

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score one transaction",
		Long: `Score one transaction and print the detection result as JSON.

Without --remote the transaction is scored in-process. A fixed --seed makes
the in-process result reproducible.`,
		Example: `  qfraudctl score --amount 7500 --merchant-id m-1 --mode two-stage
  qfraudctl score --amount 120.50 --seed 42
  qfraudctl score --amount 900 --remote localhost:9090`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.tx.Amount = dto.Amount(opts.amount)
			return runScore(cmd.Context(), cmd.OutOrStdout(), g, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.amount, "amount", "", "transaction amount (required)")
	f.StringVar(&opts.tx.MerchantID, "merchant-id", "", "merchant identifier")
	f.StringVar(&opts.tx.CustomerID, "customer-id", "", "customer identifier")
	f.StringVar(&opts.tx.Location, "location", "", "transaction location")
	f.StringVar(&opts.tx.DeviceID, "device-id", "", "device identifier")
	f.StringVar(&opts.tx.IPAddress, "ip-address", "", "client IP address")
	f.StringVar(&opts.tx.Timestamp, "timestamp", "", "RFC 3339 transaction time")
	f.StringVar(&opts.mode, "mode", "quick", "scoring mode: quick or two-stage")
	f.Uint64Var(&opts.seed, "seed", 0, "random seed for in-process scoring (clock-based when 0)")
	opts.remote.register(cmd)
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func runScore(ctx context.Context, w io.Writer, g *globalOptions, opts *scoreOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	mode, err := valueobject.ScoringModeFromString(opts.mode)
	if err != nil {
		return err
	}

	var resp dto.DetectionResponse
	if opts.remote.address != "" {
		resp, err = scoreRemote(ctx, opts, mode)
	} else {
		resp, err = scoreLocal(ctx, g, opts, mode)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func scoreLocal(ctx context.Context, g *globalOptions, opts *scoreOptions, mode valueobject.ScoringMode) (dto.DetectionResponse, error) {
	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	scorer := service.NewDetectionScorer(
		service.NewSeededSource(seed),
		annealing.NewStubAnnealer(g.logger),
		g.logger,
	)
	return usecase.NewDetectFraud(scorer, nil, nil, mode, g.logger).Execute(ctx, opts.tx, mode)
}

func scoreRemote(ctx context.Context, opts *scoreOptions, mode valueobject.ScoringMode) (dto.DetectionResponse, error) {
	client, closeConn, err := opts.remote.client()
	if err != nil {
		return dto.DetectionResponse{}, err
	}
	defer closeConn()

	ctx, cancel := context.WithTimeout(ctx, opts.remote.timeout)
	defer cancel()

	resp, err := client.Detect(ctx, &grpcpresentation.DetectRequest{
		Transaction: &grpcpresentation.TransactionMsg{
			Amount:     string(opts.tx.Amount),
			MerchantID: opts.tx.MerchantID,
			CustomerID: opts.tx.CustomerID,
			Location:   opts.tx.Location,
			DeviceID:   opts.tx.DeviceID,
			IPAddress:  opts.tx.IPAddress,
			Timestamp:  opts.tx.Timestamp,
		},
		Mode: mode.Label(),
	})
	if err != nil {
		return dto.DetectionResponse{}, fmt.Errorf("remote detect: %w", err)
	}
	if resp.Result == nil {
		return dto.DetectionResponse{}, fmt.Errorf("remote detect: empty result")
	}
	return dto.DetectionResponse{
		IsFraudulent:        resp.Result.IsFraudulent,
		Confidence:          resp.Result.Confidence,
		ProcessingTime:      resp.Result.ProcessingTimeMs,
		QuantumContribution: resp.Result.QuantumContribution,
	}, nil
}
