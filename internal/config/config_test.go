package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_DefaultValues(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "50051", cfg.GRPC.Port)
	assert.Equal(t, false, cfg.GRPC.EnableHTTPS)
	assert.Equal(t, "cert.pem", cfg.GRPC.CertFileName)
	assert.Equal(t, "key.pem", cfg.GRPC.PrivateKeyFileName)
	assert.Equal(t, true, cfg.Metrics.Enabled)
	assert.Equal(t, "9090", cfg.Metrics.Port)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected func(*Config)
	}{
		{
			name: "log level override",
			envVars: map[string]string{
				"LOG_LEVEL": "-4",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, -4, cfg.LogLevel)
			},
		},
		{
			name: "shutdown timeout override",
			envVars: map[string]string{
				"SHUTDOWN_TIMEOUT": "3s",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
			},
		},
		{
			name: "grpc config override",
			envVars: map[string]string{
				"GRPC_PORT":                  "8080",
				"GRPC_ENABLE_HTTPS":          "true",
				"GRPC_CERT_FILE_NAME":        "custom.pem",
				"GRPC_PRIVATE_KEY_FILE_NAME": "custom-key.pem",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "8080", cfg.GRPC.Port)
				assert.Equal(t, true, cfg.GRPC.EnableHTTPS)
				assert.Equal(t, "custom.pem", cfg.GRPC.CertFileName)
				assert.Equal(t, "custom-key.pem", cfg.GRPC.PrivateKeyFileName)
			},
		},
		{
			name: "metrics config override",
			envVars: map[string]string{
				"METRICS_ENABLED": "false",
				"METRICS_PORT":    "9100",
				"METRICS_PATH":    "/prom",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, false, cfg.Metrics.Enabled)
				assert.Equal(t, "9100", cfg.Metrics.Port)
				assert.Equal(t, "/prom", cfg.Metrics.Path)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg, err := NewConfig()
			require.NoError(t, err)

			tt.expected(cfg)
		})
	}
}

func TestNewConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
	}{
		{name: "non numeric log level", envVars: map[string]string{"LOG_LEVEL": "loud"}},
		{name: "malformed duration", envVars: map[string]string{"SHUTDOWN_TIMEOUT": "soon"}},
		{name: "non positive duration", envVars: map[string]string{"SHUTDOWN_TIMEOUT": "0s"}},
		{name: "malformed bool", envVars: map[string]string{"GRPC_ENABLE_HTTPS": "maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			_, err := NewConfig()
			assert.Error(t, err)
		})
	}
}
