package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv(t *testing.T) {

	t.Run("overrides from environment", func(t *testing.T) {
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("DB_PORT", "6432")
		t.Setenv("DB_USER", "bib")
		t.Setenv("DB_PASSWORD", "fortuna")
		t.Setenv("DB_NAME", "pizza")
		t.Setenv("JWT_SECRET", "env-secret")
		t.Setenv("CERTS_DIR", "/etc/certs")
		t.Setenv("GRPC_ADDR", ":9090")
		t.Setenv("HTTP_ADDR", ":8080")
		t.Setenv("REQUEST_TIMEOUT", "7s")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "db.internal", cfg.DBHost)
		assert.Equal(t, "6432", cfg.DBPort)
		assert.Equal(t, "bib", cfg.DBUser)
		assert.Equal(t, "fortuna", cfg.DBPassword)
		assert.Equal(t, "pizza", cfg.DBName)
		assert.Equal(t, "env-secret", cfg.SecretKey)
		assert.Equal(t, "/etc/certs", cfg.CertsDir)
		assert.Equal(t, ":9090", cfg.EndpointAddrGRPC)
		assert.Equal(t, ":8080", cfg.EndpointAddrHTTP)
		assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
	})

	t.Run("unset variables keep defaults", func(t *testing.T) {
		for _, k := range []string{
			"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
			"JWT_SECRET", "CERTS_DIR", "GRPC_ADDR", "HTTP_ADDR", "REQUEST_TIMEOUT",
		} {
			t.Setenv(k, "")
			os.Unsetenv(k)
		}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "127.0.0.1", cfg.DBHost)
		assert.Equal(t, "jabba", cfg.DBUser)
		assert.Equal(t, "dev-only-super-secret-key", cfg.SecretKey)
		assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	})

	t.Run("invalid REQUEST_TIMEOUT panics", func(t *testing.T) {
		t.Setenv("REQUEST_TIMEOUT", "not-a-duration")

		cfg := &Config{}
		cfg.LoadDefaults()
		require.Panics(t, func() { parseEnv(cfg) })
	})
}
