package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"db_host":            "db.internal",
		"db_port":            "6432",
		"db_user":            "bib",
		"db_password":        "fortuna",
		"db_name":            "pizza",
		"secret_key":         "my_secret_key",
		"certs_dir":          "/etc/certs",
		"endpoint_addr_grpc": "www.example:9000",
		"endpoint_addr_http": "www.example:8000",
		"request_timeout":    "7s",
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "db.internal", cfg.DBHost)
		assert.Equal(t, "6432", cfg.DBPort)
		assert.Equal(t, "bib", cfg.DBUser)
		assert.Equal(t, "fortuna", cfg.DBPassword)
		assert.Equal(t, "pizza", cfg.DBName)
		assert.Equal(t, "my_secret_key", cfg.SecretKey)
		assert.Equal(t, "/etc/certs", cfg.CertsDir)
		assert.Equal(t, "www.example:9000", cfg.EndpointAddrGRPC)
		assert.Equal(t, "www.example:8000", cfg.EndpointAddrHTTP)
		assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
	})

	t.Run("partial file overrides only its keys", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{
			"db_host": "other.host",
		})
		os.Args = []string{"testbin", "-config", partial}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "other.host", cfg.DBHost)
		assert.Equal(t, "jabba", cfg.DBUser)
		assert.Equal(t, ":50051", cfg.EndpointAddrGRPC)
		assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	})

	t.Run("no flags means no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			DBHost:           "defaults.host",
			DBPort:           "5432",
			DBUser:           "user",
			DBPassword:       "password",
			DBName:           "db",
			SecretKey:        "key",
			CertsDir:         "./certs",
			EndpointAddrGRPC: "defaults:1234",
			EndpointAddrHTTP: "defaults:5678",
			RequestTimeout:   2 * time.Second,
		}
		parseJson(cfg)

		assert.Equal(t, "defaults.host", cfg.DBHost)
		assert.Equal(t, "key", cfg.SecretKey)
		assert.Equal(t, "defaults:1234", cfg.EndpointAddrGRPC)
		assert.Equal(t, "defaults:5678", cfg.EndpointAddrHTTP)
		assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
