package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/jabbaspizza/accounts/internal/flagx"
	"github.com/jabbaspizza/accounts/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for the timeout field, which allows
// parsing both string values such as "5s" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON
// configuration files. After unmarshalling, its fields are copied into the
// runtime Config struct which uses time.Duration.
type JsonConfig struct {
	DBHost           string         `json:"db_host"`
	DBPort           string         `json:"db_port"`
	DBUser           string         `json:"db_user"`
	DBPassword       string         `json:"db_password"`
	DBName           string         `json:"db_name"`
	SecretKey        string         `json:"secret_key"`
	CertsDir         string         `json:"certs_dir"`
	EndpointAddrGRPC string         `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP string         `json:"endpoint_addr_http"`
	RequestTimeout   timex.Duration `json:"request_timeout"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The JSON file path comes from the -c or -config command-line flags; if
// neither is set, no file is loaded. Keys absent from the file leave the
// current Config values untouched, so the file can override just a subset.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.DBHost != "" {
		config.DBHost = c.DBHost
	}
	if c.DBPort != "" {
		config.DBPort = c.DBPort
	}
	if c.DBUser != "" {
		config.DBUser = c.DBUser
	}
	if c.DBPassword != "" {
		config.DBPassword = c.DBPassword
	}
	if c.DBName != "" {
		config.DBName = c.DBName
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.CertsDir != "" {
		config.CertsDir = c.CertsDir
	}
	if c.EndpointAddrGRPC != "" {
		config.EndpointAddrGRPC = c.EndpointAddrGRPC
	}
	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.RequestTimeout.Duration != 0 {
		config.RequestTimeout = time.Duration(c.RequestTimeout.Duration)
	}
}
