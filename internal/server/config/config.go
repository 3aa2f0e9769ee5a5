// Package config handles configuration for the accounts server, including
// defaults, JSON overlay, environment variables, and command-line flags.
package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the accounts server.
//
// Fields:
//   - DBHost / DBPort / DBUser / DBPassword / DBName: PostgreSQL connection settings.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use test defaults in prod.
//   - CertsDir: directory holding the TLS key and certificate files.
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - EndpointAddrHTTP: bind address for the HTTP front door.
//   - RequestTimeout: per-request deadline the HTTP front door applies to gRPC calls.
type Config struct {
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	SecretKey        string
	CertsDir         string
	EndpointAddrGRPC string
	EndpointAddrHTTP string
	RequestTimeout   time.Duration
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.DBHost = "127.0.0.1"
	c.DBPort = "5432"
	c.DBUser = "jabba"
	c.DBPassword = "hutt"
	c.DBName = "accounts"
	c.SecretKey = "dev-only-super-secret-key"
	c.CertsDir = "./certs"
	c.EndpointAddrGRPC = ":50051"
	c.EndpointAddrHTTP = ":8000"
	c.RequestTimeout = 5 * time.Second
}

// DSN assembles a pgx connection string from the discrete database settings.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, environment variables, and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
