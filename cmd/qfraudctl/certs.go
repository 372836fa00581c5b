package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GopalChinta/Online-Fraud-Detection/pkg/tlsutil"
)

func newCertsCmd() *cobra.Command {
	var (
		hosts []string
		out   string
	)

	cmd := &cobra.Command{
		Use:   "certs",
		Short: "Generate a development CA and server certificate",
		Long: `Generate a self-signed CA and a server certificate for the gRPC listener.

Point GRPC_TLS_CERT_FILE and GRPC_TLS_KEY_FILE at the server files and pass
the CA to qfraudctl with --ca.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			paths, err := tlsutil.GenerateSelfSignedCert(hosts, out)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "CA certificate:     %s\n", paths.CA)
			fmt.Fprintf(w, "CA key:             %s\n", paths.CAKey)
			fmt.Fprintf(w, "Server certificate: %s\n", paths.Server)
			fmt.Fprintf(w, "Server key:         %s\n", paths.ServerKey)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&hosts, "host", []string{"localhost", "127.0.0.1"}, "DNS names or IPs for the server certificate")
	cmd.Flags().StringVar(&out, "out", "certs", "output directory")
	return cmd
}
