package tlsutil

import (
	"crypto/x509"
	"encoding/pem"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSelfSignedCertLoadsAsServerAndClientCreds(t *testing.T) {
	dir := t.TempDir()

	paths, err := GenerateSelfSignedCert([]string{"localhost", "127.0.0.1"}, dir)
	require.NoError(t, err)

	for _, p := range []string{paths.CA, paths.CAKey, paths.Server, paths.ServerKey} {
		_, statErr := os.Stat(p)
		require.NoError(t, statErr, "expected %s to exist", p)
	}

	serverCreds, err := ServerTLSConfig(paths.Server, paths.ServerKey)
	require.NoError(t, err)
	assert.Equal(t, "tls", serverCreds.Info().SecurityProtocol)

	clientCreds, err := ClientTLSConfig(paths.CA, false)
	require.NoError(t, err)
	assert.NotNil(t, clientCreds)
}

func TestGenerateSelfSignedCertSANs(t *testing.T) {
	paths, err := GenerateSelfSignedCert([]string{"fraud.local", "10.0.0.7"}, t.TempDir())
	require.NoError(t, err)

	raw, err := os.ReadFile(paths.Server)
	require.NoError(t, err)
	block, _ := pem.Decode(raw)
	require.NotNil(t, block)

	cert, err := x509.ParseCertificate(block.Bytes)
	require.NoError(t, err)
	assert.Equal(t, []string{"fraud.local"}, cert.DNSNames)
	require.Len(t, cert.IPAddresses, 1)
	assert.Equal(t, "10.0.0.7", cert.IPAddresses[0].String())
}

func TestGenerateSelfSignedCertRequiresHost(t *testing.T) {
	_, err := GenerateSelfSignedCert(nil, t.TempDir())
	require.Error(t, err)
}

func TestServerTLSConfigMissingFiles(t *testing.T) {
	_, err := ServerTLSConfig("/nonexistent/server.pem", "/nonexistent/server-key.pem")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load server key pair")
}

func TestClientTLSConfigBadCA(t *testing.T) {
	dir := t.TempDir()
	bad := dir + "/ca.pem"
	require.NoError(t, os.WriteFile(bad, []byte("not a cert"), 0o600))

	_, err := ClientTLSConfig(bad, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse CA certificate")
}
