package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	// Test cases
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-w", "127.0.0.1:8080", "-s", "secret", "-k", "/etc/certs",
			"-d", "db.internal", "-p", "6432", "-u", "user", "-x", "password", "-n", "pizza", "-t", "3",
		}, expectPanic: false,
			expected: &Config{
				EndpointAddrGRPC: "127.0.0.1:9090",
				EndpointAddrHTTP: "127.0.0.1:8080",
				SecretKey:        "secret",
				CertsDir:         "/etc/certs",
				DBHost:           "db.internal",
				DBPort:           "6432",
				DBUser:           "user",
				DBPassword:       "password",
				DBName:           "pizza",
				RequestTimeout:   3 * time.Second,
			}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {

				require.NotPanics(t, func() { parseFlags(config) })
				assert.Equal(t, tt.expected, config)
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
