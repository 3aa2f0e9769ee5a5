// Package creds loads the TLS material securing the gRPC endpoint.
package creds

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"google.golang.org/grpc/credentials"

	"github.com/jabbaspizza/accounts/internal/common"
	"github.com/jabbaspizza/accounts/internal/logging"
)

const (
	// KeyFileName and CertFileName are the two files expected in the
	// configured certs directory.
	KeyFileName  = "accounts.key"
	CertFileName = "accounts.crt"
)

// Load reads the PEM-encoded private key and certificate from dir. A missing
// file is reported as common.ErrorCredentialsNotFound after logging the
// attempted paths; the caller is expected to treat that as fatal at startup.
func Load(ctx context.Context, logger logging.Logger, dir string) (key []byte, cert []byte, err error) {
	keyFile := filepath.Join(dir, KeyFileName)
	certFile := filepath.Join(dir, CertFileName)

	key, err = os.ReadFile(keyFile)
	if err == nil {
		cert, err = os.ReadFile(certFile)
	}
	if err != nil {
		logger.Error(ctx, "Certificate files not found",
			"error", err.Error(), "key_file", keyFile, "cert_file", certFile)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %v", common.ErrorCredentialsNotFound, err)
		}
		return nil, nil, err
	}

	return key, cert, nil
}

// ServerCredentials builds gRPC transport credentials from the key and
// certificate stored in dir.
func ServerCredentials(ctx context.Context, logger logging.Logger, dir string) (credentials.TransportCredentials, error) {
	key, cert, err := Load(ctx, logger, dir)
	if err != nil {
		return nil, err
	}

	certificate, err := tls.X509KeyPair(cert, key)
	if err != nil {
		return nil, fmt.Errorf("invalid TLS material: %w", err)
	}

	return credentials.NewTLS(&tls.Config{Certificates: []tls.Certificate{certificate}}), nil
}

// ClientCredentials builds client-side transport credentials that trust the
// server certificate stored in dir.
func ClientCredentials(dir string) (credentials.TransportCredentials, error) {
	return credentials.NewClientTLSFromFile(filepath.Join(dir, CertFileName), "")
}
