package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/valueobject"
	"github.com/GopalChinta/Online-Fraud-Detection/pkg/kafka"
)

// Config holds all configuration for the fraud detection service.
type Config struct {
	HTTPPort       int
	GRPCPort       int
	Environment    string
	LogLevel       string
	LogFormat      string
	KafkaTopic     string
	DefaultMode    string
	BenchmarksFile string
	OTLPEndpoint   string
	GRPCTLSCert    string
	GRPCTLSKey     string
	Kafka          kafka.Config
	RandomSeed     uint64
	RateLimit      int // requests per second, 0 disables limiting
	GRPCReflection bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		HTTPPort:       getEnvInt("HTTP_PORT", 8080),
		GRPCPort:       getEnvInt("GRPC_PORT", 9090),
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		KafkaTopic:     getEnv("KAFKA_TOPIC", "fraud.detections"),
		DefaultMode:    getEnv("DEFAULT_MODE", "two-stage"),
		BenchmarksFile: getEnv("BENCHMARKS_FILE", ""),
		OTLPEndpoint:   getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		GRPCTLSCert:    getEnv("GRPC_TLS_CERT_FILE", ""),
		GRPCTLSKey:     getEnv("GRPC_TLS_KEY_FILE", ""),
		RandomSeed:     getEnvUint64("RANDOM_SEED", 0),
		RateLimit:      getEnvInt("RATE_LIMIT", 100),
		GRPCReflection: getEnvBool("GRPC_REFLECTION", false),
		Kafka: kafka.Config{
			Brokers:       kafka.ParseBrokers(getEnv("KAFKA_BROKERS", "")),
			ClientID:      getEnv("KAFKA_CLIENT_ID", "fraud-detection"),
			ConsumerGroup: getEnv("KAFKA_CONSUMER_GROUP", ""),
			TLS:           getEnvBool("KAFKA_TLS", false),
			SASLEnabled:   getEnvBool("KAFKA_SASL_ENABLED", false),
			SASLMechanism: getEnv("KAFKA_SASL_MECHANISM", "PLAIN"),
			SASLUsername:  getEnv("KAFKA_SASL_USERNAME", ""),
			SASLPassword:  getEnv("KAFKA_SASL_PASSWORD", ""),
		},
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("HTTP_PORT %d out of range", c.HTTPPort))
	}
	if c.GRPCPort <= 0 || c.GRPCPort > 65535 {
		errs = append(errs, fmt.Errorf("GRPC_PORT %d out of range", c.GRPCPort))
	}
	if c.HTTPPort == c.GRPCPort {
		errs = append(errs, fmt.Errorf("HTTP_PORT and GRPC_PORT must differ"))
	}
	if _, err := c.Mode(); err != nil {
		errs = append(errs, fmt.Errorf("DEFAULT_MODE: %w", err))
	}
	if c.RateLimit < 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT must not be negative"))
	}
	if c.Kafka.Enabled() && c.KafkaTopic == "" {
		errs = append(errs, fmt.Errorf("KAFKA_TOPIC is required when KAFKA_BROKERS is set"))
	}
	if (c.GRPCTLSCert == "") != (c.GRPCTLSKey == "") {
		errs = append(errs, fmt.Errorf("GRPC_TLS_CERT_FILE and GRPC_TLS_KEY_FILE must be set together"))
	}
	return errors.Join(errs...)
}

// Mode parses DefaultMode.
func (c Config) Mode() (valueobject.ScoringMode, error) {
	return valueobject.ScoringModeFromString(c.DefaultMode)
}

// HTTPAddress returns the full HTTP listen address.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// GRPCAddress returns the full gRPC listen address.
func (c Config) GRPCAddress() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return defaultVal
}

// getEnvInt returns the integer value of an environment variable or a default.
func getEnvInt(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvUint64(key string, defaultVal uint64) uint64 {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.ParseUint(strings.TrimSpace(val), 10, 64); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}
