package config

import (
	"flag"
	"os"
	"time"

	"github.com/jabbaspizza/accounts/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-w string   HTTP front door bind address (e.g., ":8000")
//	-s string   JWT HMAC secret key
//	-k string   directory with TLS key and certificate files
//	-d string   database host
//	-p string   database port
//	-u string   database user
//	-x string   database password
//	-n string   database name
//	-t int      request timeout, seconds
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components (the JSON
// overlay claims -c and -config).
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-w", "-s", "-k", "-d", "-p", "-u", "-x", "-n", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run gRPC server")
	fs.StringVar(&config.EndpointAddrHTTP, "w", config.EndpointAddrHTTP, "address and port to run HTTP front door")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.CertsDir, "k", config.CertsDir, "directory with TLS certificate files")

	fs.StringVar(&config.DBHost, "d", config.DBHost, "database host")
	fs.StringVar(&config.DBPort, "p", config.DBPort, "database port")
	fs.StringVar(&config.DBUser, "u", config.DBUser, "database user")
	fs.StringVar(&config.DBPassword, "x", config.DBPassword, "database password")
	fs.StringVar(&config.DBName, "n", config.DBName, "database name")

	requestTimeout := fs.Int("t", int(config.RequestTimeout.Seconds()), "request_timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
