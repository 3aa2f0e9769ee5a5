package config

import (
	"os"
	"time"
)

// parseEnv overlays Config fields from environment variables. Unset
// variables leave the current values untouched.
//
// Recognized variables:
//
//	DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME
//	JWT_SECRET
//	CERTS_DIR
//	GRPC_ADDR, HTTP_ADDR
//	REQUEST_TIMEOUT (Go duration string, e.g. "5s")
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("DB_HOST"); ok {
		config.DBHost = v
	}
	if v, ok := os.LookupEnv("DB_PORT"); ok {
		config.DBPort = v
	}
	if v, ok := os.LookupEnv("DB_USER"); ok {
		config.DBUser = v
	}
	if v, ok := os.LookupEnv("DB_PASSWORD"); ok {
		config.DBPassword = v
	}
	if v, ok := os.LookupEnv("DB_NAME"); ok {
		config.DBName = v
	}
	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("CERTS_DIR"); ok {
		config.CertsDir = v
	}
	if v, ok := os.LookupEnv("GRPC_ADDR"); ok {
		config.EndpointAddrGRPC = v
	}
	if v, ok := os.LookupEnv("HTTP_ADDR"); ok {
		config.EndpointAddrHTTP = v
	}
	if v, ok := os.LookupEnv("REQUEST_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		config.RequestTimeout = d
	}
}
